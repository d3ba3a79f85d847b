// Package io provides word-level I/O devices for the MARIE simulator, and
// the big-endian binary image format used to move programs between the
// assembler and the machine.
//
// Devices include a text stream (Tape), a bounded queue (Temporary), a
// read-only input sequence (Rom) and the do-nothing default (Null).
package io

// Device defines the contract every MARIE I/O device implements. The
// simulator falls back to a Device when no I/O hook services an input or
// output request.
type Device interface {
	// Read returns the next input word. It may block.
	Read() (value uint16, err error)
	// Write sends a single word to the device.
	Write(value uint16) error
}

// Null is the device attached when nothing else is. Reads always fail with
// ErrDeviceEmpty, writes are dropped.
type Null struct{}

var _ Device = Null{}

func (Null) Read() (value uint16, err error) {
	err = ErrDeviceEmpty
	return
}

func (Null) Write(value uint16) error {
	return nil
}
