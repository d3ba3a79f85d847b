package emulator

import (
	"fmt"

	"github.com/ezrec/marie/cpu"
	"github.com/ezrec/marie/io"
)

// Console services the CPU registers through I/O hooks, converting values
// with its tape. Every word written is also kept in Written.
type Console struct {
	io.Tape          // Value streams and conversion.
	Prompt  string   // If set, written to the output before each input.
	Written []uint16 // Output register history.

	hooks []cpu.HookId
}

// Attach registers the console hooks on a CPU.
func (con *Console) Attach(cp *cpu.Cpu) {
	con.hooks = append(con.hooks,
		cp.OnInput(con.onInput),
		cp.OnOutput(con.onOutput),
	)
}

// Detach removes the console hooks from a CPU.
func (con *Console) Detach(cp *cpu.Cpu) {
	for _, id := range con.hooks {
		cp.RemoveHook(id)
	}
	con.hooks = nil
}

func (con *Console) onInput(event *cpu.IoEvent) (err error) {
	if len(con.Prompt) > 0 && con.Output != nil {
		_, err = fmt.Fprint(con.Output, con.Prompt)
		if err != nil {
			return
		}
	}

	value, err := con.Tape.Read()
	if err != nil {
		return
	}

	event.Cpu.SetInputRegister(value)
	event.Handled = true

	return
}

func (con *Console) onOutput(event *cpu.IoEvent) (err error) {
	value := event.Cpu.OutputRegister()

	con.Written = append(con.Written, value)

	err = con.Tape.Write(value)
	if err != nil {
		return
	}

	event.Handled = true

	return
}
