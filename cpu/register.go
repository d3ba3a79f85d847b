package cpu

// Registers is the MARIE register file.
//
// PC and MAR hold 12-bit addresses; assignments silently wrap into the
// address space. The input and output registers are only reachable through
// the Cpu so that every access passes the I/O hooks.
type Registers struct {
	AC  uint16 // Accumulator.
	IR  uint16 // Instruction register.
	MBR uint16 // Memory buffer register.

	pc     uint16
	mar    uint16
	input  uint16
	output uint16
}

// PC returns the program counter.
func (reg *Registers) PC() uint16 {
	return reg.pc & ADDRESS_MASK
}

// SetPC sets the program counter, masked to 12 bits.
func (reg *Registers) SetPC(value uint16) {
	reg.pc = value & ADDRESS_MASK
}

// MAR returns the memory address register.
func (reg *Registers) MAR() uint16 {
	return reg.mar & ADDRESS_MASK
}

// SetMAR sets the memory address register, masked to 12 bits.
func (reg *Registers) SetMAR(value uint16) {
	reg.mar = value & ADDRESS_MASK
}

// Reset zeroes AC, IR, MBR, MAR and PC.
func (reg *Registers) Reset() {
	reg.AC = 0
	reg.IR = 0
	reg.MBR = 0
	reg.SetMAR(0)
	reg.SetPC(0)
}
