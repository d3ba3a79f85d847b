// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"
	"log"

	"github.com/ezrec/marie/cpu"
	"github.com/ezrec/marie/io"
)

// Emulator state. CPU + program listing + tape.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently running program listing.

	Tape io.Tape // Tape device, attached by default.
}

// NewEmulator creates a new emulator with the tape attached.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(nil),
		Program: &cpu.Program{},
	}

	emu.Cpu.SetDevice(&emu.Tape)

	return
}

// Reset loads the program binary into the CPU and readies it to execute.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Verbose = emu.Verbose

	err = emu.Cpu.Load(emu.Program.Binary())
	if err != nil {
		return
	}

	return
}

// Ticks returns the total ticks since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// Pc returns the current program counter.
func (emu *Emulator) Pc() uint16 {
	return emu.Cpu.PC()
}

// Code returns the word at the program counter.
func (emu *Emulator) Code() (code cpu.Code) {
	code, _ = emu.Cpu.Memory.Get(emu.Cpu.PC())
	return
}

// LineNo returns the source line number of the word at the program counter,
// or 0 if the address was not written by the program source.
func (emu *Emulator) LineNo() int {
	op := emu.Program.Debug(emu.Cpu.PC())
	if op == nil {
		return 0
	}

	return op.LineNo
}

// Tick performs a single tick of the emulator. Returns done once the CPU
// has halted.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Err: err}
		}
	}()

	err = emu.Cpu.Tick()
	if errors.Is(err, cpu.ErrHalted) {
		err = nil
		done = true
		return
	}
	if err != nil {
		return
	}

	done = emu.Cpu.State == cpu.STATE_HALTED

	return
}

// Run ticks the emulator until it halts. A positive limit bounds the number
// of ticks, failing with ErrTickLimit when reached.
func (emu *Emulator) Run(limit int) (err error) {
	for n := 0; limit <= 0 || n < limit; n++ {
		var done bool
		done, err = emu.Tick()
		if err != nil || done {
			if emu.Verbose {
				log.Printf("emulator: %v ticks", emu.Ticks())
			}
			return
		}
	}

	err = ErrTickLimit

	return
}
