package cpu

// Handler executes one decoded instruction against the CPU state.
type Handler func(cpu *Cpu) error

// OpcodeTable maps each 4-bit opcode to its handler. The zero value is an
// empty table; NewOpcodeTable returns one holding the MARIE instruction set.
type OpcodeTable struct {
	handler [OPCODE_LIMIT]Handler
}

// NewOpcodeTable creates a table with the default instructions registered.
func NewOpcodeTable() (table *OpcodeTable) {
	table = &OpcodeTable{}

	err := RegisterDefaults(table)
	if err != nil {
		panic(err)
	}

	return
}

// Register installs a handler for an unused opcode. Registering an opcode
// twice fails with ErrOpcodeDuplicate and keeps the first handler.
func (table *OpcodeTable) Register(op CodeOp, handler Handler) (err error) {
	if op < 0 || op >= OPCODE_LIMIT {
		err = ErrOpcodeRange
		return
	}

	if handler == nil {
		err = ErrHandlerMissing
		return
	}

	if table.handler[op] != nil {
		err = ErrOpcodeDuplicate(op)
		return
	}

	table.handler[op] = handler

	return
}

// Registered returns true if the opcode has a handler.
func (table *OpcodeTable) Registered(op CodeOp) bool {
	if op < 0 || op >= OPCODE_LIMIT {
		return false
	}
	return table.handler[op] != nil
}

// Lookup returns the handler of an opcode, or ErrInstructionInvalid.
func (table *OpcodeTable) Lookup(op CodeOp) (handler Handler, err error) {
	if !table.Registered(op) {
		err = ErrInstructionInvalid(op)
		return
	}

	handler = table.handler[op]
	return
}
