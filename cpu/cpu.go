package cpu

import (
	"errors"
	"fmt"
	"log"
)

// State is the execution state of the CPU.
type State int

const (
	STATE_HALTED    = State(0) // halted
	STATE_EXECUTING = State(1) // executing
)

func (state State) String() string {
	switch state {
	case STATE_HALTED:
		return "halted"
	case STATE_EXECUTING:
		return "executing"
	}
	return fmt.Sprintf("state(%d)", int(state))
}

// Cpu is the simulation context for the MARIE processor.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Registers        // Register file.
	Memory    Memory // Main memory.
	Opcode    CodeOp // Opcode decoded by the last Decode.
	State     State  // Current execution state.

	Ticks int // Completed cycle counter.

	table       *OpcodeTable
	device      Device
	hookCount   int
	inputHooks  []cpuHook
	outputHooks []cpuHook
}

// NewCpu creates a new CPU dispatching through an opcode table. A nil table
// is replaced by the default MARIE instruction set. The CPU starts halted
// with io.Null attached.
func NewCpu(table *OpcodeTable) (cpu *Cpu) {
	if table == nil {
		table = NewOpcodeTable()
	}

	cpu = &Cpu{
		table: table,
	}

	cpu.SetDevice(nil)

	return
}

// OpcodeTable returns the table the CPU dispatches through.
func (cpu *Cpu) OpcodeTable() *OpcodeTable {
	return cpu.table
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	regs := []string{
		"state",
		"pc", "ir", "mar", "mbr", "ac",
		"in", "out",
	}
	for _, reg := range regs {
		var strval string
		switch reg {
		case "state":
			strval = cpu.State.String()
		case "pc":
			strval = fmt.Sprintf("%03X", cpu.PC())
		case "ir":
			strval = fmt.Sprintf("%04X %v", cpu.IR, Code(cpu.IR))
		case "mar":
			strval = fmt.Sprintf("%03X", cpu.MAR())
		case "mbr":
			strval = fmt.Sprintf("%04X", cpu.MBR)
		case "ac":
			strval = fmt.Sprintf("%04X (%d)", cpu.AC, int16(cpu.AC))
		case "in":
			strval = fmt.Sprintf("%04X", cpu.input)
		case "out":
			strval = fmt.Sprintf("%04X", cpu.output)
		}
		text += fmt.Sprintf("% 5s: %v\n", reg, strval)
	}

	return
}

// Load a program image and reset the CPU for execution.
// - Replaces the memory, zero filling past the program.
// - Clears AC, IR, MBR, MAR, PC, the decoded opcode and the tick counter.
// - Sets the state to executing.
//
// An oversized program is rejected and leaves the CPU untouched.
func (cpu *Cpu) Load(program []byte) (err error) {
	err = cpu.Memory.Load(program)
	if err != nil {
		return
	}

	cpu.Registers.Reset()
	cpu.Opcode = 0
	cpu.Ticks = 0
	cpu.State = STATE_EXECUTING

	if cpu.Verbose {
		log.Printf("cpu: load %v bytes", len(program))
	}

	return
}

// Fetch the instruction at PC into IR, and advance PC.
// MAR <- PC, IR <- M[MAR], PC <- PC + 1
func (cpu *Cpu) Fetch() (err error) {
	cpu.SetMAR(cpu.PC())

	code, err := cpu.Memory.Get(cpu.MAR())
	if err != nil {
		return
	}

	cpu.IR = uint16(code)
	cpu.SetPC(cpu.PC() + 1)

	return
}

// Decode the instruction register.
// MAR <- IR[11-0], opcode <- IR[15-12]
func (cpu *Cpu) Decode() {
	op, address := Code(cpu.IR).Decode()
	cpu.SetMAR(address)
	cpu.Opcode = op
}

// Execute the decoded opcode through the opcode table.
func (cpu *Cpu) Execute() (err error) {
	code := Code(cpu.IR)

	defer func() {
		if err != nil {
			err = errors.Join(ErrOpcode(code), err)
		}
	}()

	handler, err := cpu.table.Lookup(cpu.Opcode)
	if err != nil {
		return
	}

	err = handler(cpu)

	return
}

// Tick executes a single Fetch-Decode-Execute cycle.
func (cpu *Cpu) Tick() (err error) {
	if cpu.State != STATE_EXECUTING {
		err = ErrHalted
		return
	}

	pc := cpu.PC()

	err = cpu.Fetch()
	if err != nil {
		return
	}

	cpu.Decode()

	if cpu.Verbose {
		log.Printf("%03x: %v", pc, Code(cpu.IR))
	}

	err = cpu.Execute()
	if err != nil {
		return
	}

	cpu.Ticks++

	if cpu.Verbose && cpu.State == STATE_HALTED {
		log.Printf("cpu: halted at 0x%03x", pc)
	}

	return
}
