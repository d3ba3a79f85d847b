package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/marie/cpu"
)

func TestDumpWords(t *testing.T) {
	assert := assert.New(t)

	words := make([]cpu.Code, cpu.MEMORY_WORDS)
	words[0] = 0x1002
	words[1] = 0x7000
	words[0x11] = 0xbeef

	buff := &bytes.Buffer{}
	assert.NoError(dumpWords(buff, words))

	lines := strings.Split(strings.TrimSuffix(buff.String(), "\n"), "\n")
	assert.Equal(4, len(lines))
	assert.True(strings.HasPrefix(lines[0], "         +0   +1"), lines[0])
	assert.True(strings.HasSuffix(lines[0], "+F"), lines[0])
	assert.Equal("0000   1002 7000"+strings.Repeat(" 0000", 14), lines[1])
	assert.Equal("0010   0000 BEEF"+strings.Repeat(" 0000", 14), lines[2])
	assert.Equal("... 0020 to 0FFE is all zeroed memory ...", lines[3])
}

func TestDumpWordsShort(t *testing.T) {
	assert := assert.New(t)

	buff := &bytes.Buffer{}
	assert.NoError(dumpWords(buff, []cpu.Code{1, 2, 3}))

	lines := strings.Split(strings.TrimSuffix(buff.String(), "\n"), "\n")
	assert.Equal(2, len(lines))
	assert.Equal("0000   0001 0002 0003", lines[1])
}
