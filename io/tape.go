package io

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// Tape provides a text stream device. Input is read as whitespace separated
// tokens, one word per token; output is written one word per line.
// Decimal tokens may be negative, and are stored as two's complement.
type Tape struct {
	Input  io.Reader
	Output io.Writer
	Hex    bool // Use hexadecimal for both directions.

	scanner *bufio.Scanner
	reader  io.Reader
}

var _ Device = (*Tape)(nil)

// Rewind discards any buffered input.
func (tc *Tape) Rewind() {
	tc.scanner = nil
	tc.reader = nil
}

// ParseValue parses a single tape token.
func (tc *Tape) ParseValue(token string) (value uint16, err error) {
	if tc.Hex {
		var u64 uint64
		u64, err = strconv.ParseUint(token, 16, 16)
		if err != nil {
			err = ErrParseValue(token)
			return
		}
		value = uint16(u64)
		return
	}

	i64, err := strconv.ParseInt(token, 10, 32)
	if err != nil || i64 < -0x8000 || i64 > 0xffff {
		err = ErrParseValue(token)
		return
	}

	value = uint16(i64)
	return
}

// Read returns the next token from the input stream. End of input is
// reported as ErrDeviceEmpty.
func (tc *Tape) Read() (value uint16, err error) {
	if tc.Input == nil {
		err = ErrDeviceInput
		return
	}

	if tc.scanner == nil || tc.reader != tc.Input {
		tc.scanner = bufio.NewScanner(tc.Input)
		tc.scanner.Split(bufio.ScanWords)
		tc.reader = tc.Input
	}

	if !tc.scanner.Scan() {
		err = tc.scanner.Err()
		if err == nil {
			err = ErrDeviceEmpty
		}
		return
	}

	return tc.ParseValue(tc.scanner.Text())
}

// Write prints a word to the output stream.
func (tc *Tape) Write(value uint16) (err error) {
	if tc.Output == nil {
		err = ErrDeviceOutput
		return
	}

	if tc.Hex {
		_, err = fmt.Fprintf(tc.Output, "%04X\n", value)
	} else {
		_, err = fmt.Fprintf(tc.Output, "%d\n", value)
	}

	return
}
