package io

// Temporary implements a bounded FIFO of words. Writes append to the queue
// and reads drain it, so a Temporary attached to a simulator loops output
// back as input.
type Temporary struct {
	Capacity int // Capacity in words; zero means unbounded.

	Data []uint16
}

var _ Device = (*Temporary)(nil)

// Rewind empties the queue.
func (temp *Temporary) Rewind() {
	temp.Data = temp.Data[:0]
}

// Size returns the number of queued words.
func (temp *Temporary) Size() int {
	return len(temp.Data)
}

// Read pops the oldest word, or returns ErrDeviceEmpty.
func (temp *Temporary) Read() (value uint16, err error) {
	if len(temp.Data) == 0 {
		err = ErrDeviceEmpty
		return
	}

	value = temp.Data[0]
	temp.Data = temp.Data[1:]

	return
}

// Write queues a word. Returns ErrDeviceFull if the queue has reached
// capacity.
func (temp *Temporary) Write(value uint16) (err error) {
	if temp.Capacity > 0 && len(temp.Data) >= temp.Capacity {
		err = ErrDeviceFull
		return
	}

	temp.Data = append(temp.Data, value)

	return
}
