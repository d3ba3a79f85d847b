package io

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWordsAsBytes(t *testing.T) {
	assert := assert.New(t)

	tests := []struct {
		name     string
		words    []uint16
		expected []byte
	}{
		{"empty", []uint16{}, []byte{}},
		{"single", []uint16{0x1234}, []byte{0x12, 0x34}},
		{"halt", []uint16{0x7000, 0x0001}, []byte{0x70, 0x00, 0x00, 0x01}},
		{"all bits", []uint16{0xffff}, []byte{0xff, 0xff}},
	}

	for _, tt := range tests {
		assert.Equal(tt.expected, WordsAsBytes(tt.words), tt.name)
	}
}

func TestBytesAsWords(t *testing.T) {
	assert := assert.New(t)

	words, err := BytesAsWords([]byte{0x50, 0x00, 0x60, 0x00})
	assert.NoError(err)
	assert.Equal([]uint16{0x5000, 0x6000}, words)

	_, err = BytesAsWords([]byte{0x50})
	assert.ErrorIs(err, ErrImageOdd)
}

func TestReadImage(t *testing.T) {
	assert := assert.New(t)

	data, err := ReadImage(bytes.NewReader([]byte{1, 2, 3, 4}), 4)
	assert.NoError(err)
	assert.Equal([]byte{1, 2, 3, 4}, data)

	data, err = ReadImage(bytes.NewReader([]byte{1, 2, 3, 4, 5}), 4)
	assert.Nil(data)
	var size ErrImageSize
	assert.True(errors.As(err, &size))
	assert.Equal(ErrImageSize(5), size)
}

func TestWriteImage(t *testing.T) {
	assert := assert.New(t)

	buf := &bytes.Buffer{}
	err := WriteImage(buf, []uint16{0x1004, 0x7000})
	assert.NoError(err)
	assert.Equal([]byte{0x10, 0x04, 0x70, 0x00}, buf.Bytes())
}
