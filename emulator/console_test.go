package emulator

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsole(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	doAssemble(emu, []string{"INPUT", "OUTPUT", "INPUT", "OUTPUT", "HALT"}, t)

	output := &bytes.Buffer{}
	con := &Console{Prompt: "> "}
	con.Input = strings.NewReader("5\n-6\n")
	con.Output = output

	emu.SetDevice(con)
	assert.NoError(emu.Run(0))

	assert.Equal("> 5\n> 65530\n", output.String())
	assert.Equal([]uint16{5, 0xfffa}, con.Written)
}

func TestConsoleDetach(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	doAssemble(emu, []string{"INPUT", "OUTPUT", "HALT"}, t)

	con := &Console{}
	con.Input = strings.NewReader("1")
	con.Output = &bytes.Buffer{}

	emu.SetDevice(con)
	emu.SetDevice(&emu.Tape)
	assert.Nil(con.hooks)

	tape_output := &bytes.Buffer{}
	emu.Tape.Input = strings.NewReader("2")
	emu.Tape.Output = tape_output

	assert.NoError(emu.Run(0))
	assert.Equal("2\n", tape_output.String())
	assert.Nil(con.Written)
}

func TestConsoleEmpty(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	doAssemble(emu, []string{"INPUT", "HALT"}, t)

	con := &Console{}
	emu.SetDevice(con)

	err := emu.Run(0)
	assert.Error(err)
	assert.Equal(0, emu.Ticks())
}
