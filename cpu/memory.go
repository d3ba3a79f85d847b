package cpu

import (
	"encoding/binary"
)

const (
	MEMORY_WORDS = 0x0fff           // Addressable words, 0x000 to 0xffe.
	MEMORY_BYTES = 2 * MEMORY_WORDS // Size of the backing store.
	LAST_ADDRESS = MEMORY_WORDS - 1 // Highest valid word address.
)

// Memory is the word-addressable main store, kept as big-endian bytes.
type Memory struct {
	data [MEMORY_BYTES]byte
}

// offset checks a raw address and returns its byte offset.
func (mem *Memory) offset(address uint16) (offset int, err error) {
	if address > LAST_ADDRESS {
		err = ErrAddress(address)
		return
	}

	offset = 2 * int(address&ADDRESS_MASK)
	return
}

// Get returns the word at an address.
func (mem *Memory) Get(address uint16) (value Code, err error) {
	offset, err := mem.offset(address)
	if err != nil {
		return
	}

	value = Code(binary.BigEndian.Uint16(mem.data[offset:]))
	return
}

// Set stores a word at an address.
func (mem *Memory) Set(address uint16, value Code) (err error) {
	offset, err := mem.offset(address)
	if err != nil {
		return
	}

	binary.BigEndian.PutUint16(mem.data[offset:], uint16(value))
	return
}

// Load replaces the memory contents with a program. The remainder of memory
// is zero filled. On error the memory is not modified.
func (mem *Memory) Load(program []byte) (err error) {
	if len(program) > MEMORY_BYTES {
		err = ErrProgramSize(len(program))
		return
	}

	clear(mem.data[:])
	copy(mem.data[:], program)

	return
}

// Bytes returns a copy of the backing store.
func (mem *Memory) Bytes() []byte {
	data := make([]byte, MEMORY_BYTES)
	copy(data, mem.data[:])
	return data
}
