package cpu

import (
	"fmt"
)

const (
	ADDRESS_MASK = 0x0fff // Mask of the 12-bit address field.
	OPCODE_SHIFT = 12     // Position of the 4-bit opcode field.
	OPCODE_LIMIT = 16     // Number of encodable opcodes.
)

// CodeOp is the 4-bit instruction class selector.
type CodeOp int

const (
	OP_LOAD     = CodeOp(0x1) // LOAD
	OP_STORE    = CodeOp(0x2) // STORE
	OP_ADD      = CodeOp(0x3) // ADD
	OP_SUBT     = CodeOp(0x4) // SUBT
	OP_INPUT    = CodeOp(0x5) // INPUT
	OP_OUTPUT   = CodeOp(0x6) // OUTPUT
	OP_HALT     = CodeOp(0x7) // HALT
	OP_SKIPCOND = CodeOp(0x8) // SKIPCOND
	OP_JUMP     = CodeOp(0x9) // JUMP
)

var opNames = map[CodeOp]string{
	OP_LOAD:     "LOAD",
	OP_STORE:    "STORE",
	OP_ADD:      "ADD",
	OP_SUBT:     "SUBT",
	OP_INPUT:    "INPUT",
	OP_OUTPUT:   "OUTPUT",
	OP_HALT:     "HALT",
	OP_SKIPCOND: "SKIPCOND",
	OP_JUMP:     "JUMP",
}

// String returns the mnemonic of the opcode.
func (op CodeOp) String() string {
	name, ok := opNames[op]
	if !ok {
		return fmt.Sprintf("op(%#x)", int(op))
	}
	return name
}

// HasAddress returns true if the opcode's mnemonic takes an operand.
func (op CodeOp) HasAddress() bool {
	switch op {
	case OP_INPUT, OP_OUTPUT, OP_HALT:
		return false
	}
	return true
}

// Skipcond condition selectors, found in address bits 11-10.
const (
	SKIP_NEGATIVE = 0b00 // Skip if AC < 0
	SKIP_ZERO     = 0b01 // Skip if AC == 0
	SKIP_POSITIVE = 0b10 // Skip if AC > 0
	SKIP_RESERVED = 0b11 // No-op
)

// Code is a single 16-bit MARIE word.
type Code uint16

// MakeCode creates a word from an opcode and address.
func MakeCode(op CodeOp, address uint16) Code {
	return Code((uint16(op)&0xf)<<OPCODE_SHIFT | (address & ADDRESS_MASK))
}

// MakeCodeSkipcond creates a Skipcond word testing the given condition.
func MakeCodeSkipcond(cond int) Code {
	return MakeCode(OP_SKIPCOND, uint16(cond&0b11)<<10)
}

// Op returns the opcode from bits 15-12.
func (code Code) Op() CodeOp {
	return CodeOp(uint16(code) >> OPCODE_SHIFT)
}

// Address returns the address from bits 11-0.
func (code Code) Address() uint16 {
	return uint16(code) & ADDRESS_MASK
}

// Decode returns both fields of the word.
func (code Code) Decode() (op CodeOp, address uint16) {
	op = code.Op()
	address = code.Address()
	return
}

// SkipCondition returns the Skipcond selector from bits 11-10.
func (code Code) SkipCondition() int {
	return int(code.Address()>>10) & 0b11
}

// String returns the assembly language representation of this word.
func (code Code) String() (out string) {
	op, address := code.Decode()

	if !op.HasAddress() {
		out = op.String()
		if address != 0 {
			out = fmt.Sprintf("%v 0x%03x", out, address)
		}
		return
	}

	out = fmt.Sprintf("%v 0x%03x", op.String(), address)

	return
}
