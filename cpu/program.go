package cpu

import (
	"iter"

	"github.com/ezrec/marie/io"
)

// Opcode represents a line of assembled code with its source location and
// the instruction it placed in the image.
type Opcode struct {
	LineNo      int
	Address     uint16
	Words       []string
	Instruction Instruction
}

// Program is the output of the assembler.
type Program struct {
	Opcodes []Opcode    // Source map, in emission order.
	Symbols SymbolTable // Declared names.
	Codes   []Code      // Resolved image, MEMORY_WORDS long.
}

// Debug returns the source line that last emitted to an address.
func (prog *Program) Debug(address uint16) (op *Opcode) {
	for n := len(prog.Opcodes) - 1; n >= 0; n-- {
		if prog.Opcodes[n].Address == address {
			op = &prog.Opcodes[n]
			break
		}
	}

	return
}

// Symbol returns the address of a declared name.
func (prog *Program) Symbol(name string) (address uint16, ok bool) {
	address, ok = prog.Symbols[name]
	return
}

// Binary returns the image as big-endian bytes, ready for Cpu.Load.
func (prog *Program) Binary() []byte {
	return io.WordsAsBytes(prog.Codes)
}

// Used iterates over the addresses written by the source, in address order,
// with their resolved words.
func (prog *Program) Used() iter.Seq2[uint16, Code] {
	return func(yield func(address uint16, code Code) bool) {
		written := make([]bool, len(prog.Codes))
		for _, op := range prog.Opcodes {
			written[op.Address] = true
		}
		for address, used := range written {
			if !used {
				continue
			}
			if !yield(uint16(address), prog.Codes[address]) {
				return
			}
		}
	}
}
