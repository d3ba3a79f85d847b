package cpu

import (
	"log"
	"slices"

	"github.com/ezrec/marie/io"
)

// Device is an I/O device the CPU falls back to.
type Device io.Device

// Attacher is implemented by devices that service I/O through hooks. The
// CPU calls Attach when the device is installed and Detach when it is
// replaced.
type Attacher interface {
	Attach(cpu *Cpu)
	Detach(cpu *Cpu)
}

// IoEvent is passed to each I/O hook. A hook that services the request sets
// Handled, which suppresses the device fallback.
type IoEvent struct {
	Cpu     *Cpu
	Handled bool
}

// IoHook intercepts an input or output register access.
type IoHook func(event *IoEvent) error

// HookId identifies a registered hook for removal.
type HookId int

type cpuHook struct {
	id   HookId
	hook IoHook
}

func (cpu *Cpu) addHook(hooks *[]cpuHook, hook IoHook) (id HookId) {
	cpu.hookCount++
	id = HookId(cpu.hookCount)
	*hooks = append(*hooks, cpuHook{id: id, hook: hook})
	return
}

// OnInput registers a hook fired whenever the input register is read.
func (cpu *Cpu) OnInput(hook IoHook) HookId {
	return cpu.addHook(&cpu.inputHooks, hook)
}

// OnOutput registers a hook fired whenever the output register is written.
func (cpu *Cpu) OnOutput(hook IoHook) HookId {
	return cpu.addHook(&cpu.outputHooks, hook)
}

// RemoveHook unregisters a hook. Returns false if the id is unknown.
func (cpu *Cpu) RemoveHook(id HookId) (ok bool) {
	match := func(h cpuHook) bool { return h.id == id }

	for _, hooks := range [](*[]cpuHook){&cpu.inputHooks, &cpu.outputHooks} {
		if slices.ContainsFunc(*hooks, match) {
			*hooks = slices.DeleteFunc(*hooks, match)
			ok = true
		}
	}

	return
}

// fireHooks runs every hook in registration order, and reports whether any
// of them handled the event.
func (cpu *Cpu) fireHooks(hooks []cpuHook) (handled bool, err error) {
	event := &IoEvent{Cpu: cpu}

	// Hooks may detach themselves while running.
	for _, h := range slices.Clone(hooks) {
		err = h.hook(event)
		if err != nil {
			return
		}
	}

	handled = event.Handled
	return
}

// Device returns the attached device.
func (cpu *Cpu) Device() Device {
	return cpu.device
}

// SetDevice replaces the attached device, detaching the previous one first.
// A nil device installs io.Null.
func (cpu *Cpu) SetDevice(dev Device) {
	if attacher, ok := cpu.device.(Attacher); ok {
		attacher.Detach(cpu)
	}

	if dev == nil {
		dev = io.Null{}
	}

	cpu.device = dev

	if attacher, ok := cpu.device.(Attacher); ok {
		attacher.Attach(cpu)
	}
}

// InputRegister reads the input register. Input hooks are given the chance
// to fill it; otherwise the attached device is read.
func (cpu *Cpu) InputRegister() (value uint16, err error) {
	handled, err := cpu.fireHooks(cpu.inputHooks)
	if err != nil {
		return
	}

	if !handled {
		value, err = cpu.device.Read()
		if err != nil {
			return
		}
		cpu.input = value
	}

	value = cpu.input

	if cpu.Verbose {
		log.Printf("cpu: input 0x%04x", value)
	}

	return
}

// SetInputRegister stores a word in the input register without firing hooks.
func (cpu *Cpu) SetInputRegister(value uint16) {
	cpu.input = value
}

// OutputRegister returns the last word written to the output register.
func (cpu *Cpu) OutputRegister() uint16 {
	return cpu.output
}

// SetOutputRegister writes the output register. Output hooks are given the
// chance to consume it; otherwise it is written to the attached device.
func (cpu *Cpu) SetOutputRegister(value uint16) (err error) {
	cpu.output = value

	if cpu.Verbose {
		log.Printf("cpu: output 0x%04x", value)
	}

	handled, err := cpu.fireHooks(cpu.outputHooks)
	if err != nil {
		return
	}

	if !handled {
		err = cpu.device.Write(value)
	}

	return
}
