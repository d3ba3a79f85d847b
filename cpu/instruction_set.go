package cpu

var defaultHandlers = [](struct {
	op      CodeOp
	handler Handler
}){
	{OP_LOAD, doLoad},
	{OP_STORE, doStore},
	{OP_ADD, doAdd},
	{OP_SUBT, doSubt},
	{OP_INPUT, doInput},
	{OP_OUTPUT, doOutput},
	{OP_HALT, doHalt},
	{OP_SKIPCOND, doSkipcond},
	{OP_JUMP, doJump},
}

// RegisterDefaults registers the nine MARIE instructions into a table.
func RegisterDefaults(table *OpcodeTable) (err error) {
	for _, entry := range defaultHandlers {
		err = table.Register(entry.op, entry.handler)
		if err != nil {
			return
		}
	}

	return
}

// fetchOperand loads the addressed word into MBR.
// MAR <- X, MBR <- M[MAR]
func fetchOperand(cpu *Cpu) (err error) {
	cpu.SetMAR(Code(cpu.IR).Address())

	value, err := cpu.Memory.Get(cpu.MAR())
	if err != nil {
		return
	}

	cpu.MBR = uint16(value)
	return
}

// AC <- M[X]
func doLoad(cpu *Cpu) (err error) {
	err = fetchOperand(cpu)
	if err != nil {
		return
	}

	cpu.AC = cpu.MBR
	return
}

// M[X] <- AC
func doStore(cpu *Cpu) (err error) {
	cpu.SetMAR(Code(cpu.IR).Address())
	cpu.MBR = cpu.AC

	return cpu.Memory.Set(cpu.MAR(), Code(cpu.MBR))
}

// AC <- AC + M[X]
func doAdd(cpu *Cpu) (err error) {
	err = fetchOperand(cpu)
	if err != nil {
		return
	}

	cpu.AC += cpu.MBR
	return
}

// AC <- AC - M[X]
func doSubt(cpu *Cpu) (err error) {
	err = fetchOperand(cpu)
	if err != nil {
		return
	}

	cpu.AC -= cpu.MBR
	return
}

// AC <- InREG
func doInput(cpu *Cpu) (err error) {
	value, err := cpu.InputRegister()
	if err != nil {
		return
	}

	cpu.AC = value
	return
}

// OutREG <- AC
func doOutput(cpu *Cpu) (err error) {
	return cpu.SetOutputRegister(cpu.AC)
}

func doHalt(cpu *Cpu) (err error) {
	cpu.State = STATE_HALTED
	return
}

// Skip the next instruction when AC, taken as signed, meets the condition
// selected by IR[11-10].
func doSkipcond(cpu *Cpu) (err error) {
	ac := int16(cpu.AC)

	var skip bool
	switch Code(cpu.IR).SkipCondition() {
	case SKIP_NEGATIVE:
		skip = ac < 0
	case SKIP_ZERO:
		skip = ac == 0
	case SKIP_POSITIVE:
		skip = ac > 0
	case SKIP_RESERVED:
		// no-op
	}

	if skip {
		cpu.SetPC(cpu.PC() + 1)
	}

	return
}

// PC <- X
func doJump(cpu *Cpu) (err error) {
	cpu.SetPC(Code(cpu.IR).Address())
	return
}
