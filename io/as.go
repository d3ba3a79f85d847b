package io

import (
	"encoding/binary"
	"io"
)

// WordsAsBytes serializes words big-endian, high byte first.
func WordsAsBytes[W ~uint16](words []W) (data []byte) {
	data = make([]byte, 2*len(words))
	for n, word := range words {
		binary.BigEndian.PutUint16(data[2*n:], uint16(word))
	}
	return
}

// BytesAsWords deserializes a big-endian byte stream into words.
// The stream must have an even length.
func BytesAsWords(data []byte) (words []uint16, err error) {
	if len(data)%2 != 0 {
		err = ErrImageOdd
		return
	}

	words = make([]uint16, len(data)/2)
	for n := range words {
		words[n] = binary.BigEndian.Uint16(data[2*n:])
	}
	return
}

// ReadImage reads a whole binary image, failing with ErrImageSize if the
// stream holds more than limit bytes.
func ReadImage(input io.Reader, limit int) (data []byte, err error) {
	data, err = io.ReadAll(io.LimitReader(input, int64(limit)+1))
	if err != nil {
		return
	}

	if len(data) > limit {
		err = ErrImageSize(len(data))
		data = nil
		return
	}

	return
}

// WriteImage writes words to a stream as a binary image.
func WriteImage[W ~uint16](output io.Writer, words []W) (err error) {
	_, err = output.Write(WordsAsBytes(words))
	return
}
