package io

// Rom serves a fixed sequence of input words and rejects output.
type Rom struct {
	Data []uint16

	index int
}

var _ Device = (*Rom)(nil)

// Rewind restarts the sequence from the first word.
func (rc *Rom) Rewind() {
	rc.index = 0
}

// Remaining returns the number of words not yet read.
func (rc *Rom) Remaining() int {
	return len(rc.Data) - rc.index
}

func (rc *Rom) Read() (value uint16, err error) {
	if rc.index >= len(rc.Data) {
		err = ErrDeviceEmpty
		return
	}

	value = rc.Data[rc.index]
	rc.index++

	return
}

func (rc *Rom) Write(value uint16) error {
	return ErrDeviceReadOnly
}
