package cpu

// SymbolTable maps declared names to the address they occupy.
type SymbolTable map[string]uint16

// Instruction is a parsed program slot, encoded into its final word once the
// symbol table is complete. The variants are Empty, Literal and Reference.
type Instruction interface {
	// Resolve encodes the instruction against the symbol table.
	Resolve(symbols SymbolTable) (code Code, err error)

	instruction()
}

// Empty is an unused slot; it encodes as 0x0000.
type Empty struct{}

func (Empty) instruction() {}

func (Empty) Resolve(symbols SymbolTable) (code Code, err error) {
	return
}

// Literal is a fully known word: an instruction with a literal operand, or a
// declared value.
type Literal struct {
	Value Code
}

func (Literal) instruction() {}

func (lit Literal) Resolve(symbols SymbolTable) (code Code, err error) {
	code = lit.Value
	return
}

// Reference is an instruction whose address is a named symbol.
type Reference struct {
	Op   CodeOp
	Name string
}

func (Reference) instruction() {}

func (ref Reference) Resolve(symbols SymbolTable) (code Code, err error) {
	address, ok := symbols[ref.Name]
	if !ok {
		err = ErrSymbolUndefined(ref.Name)
		return
	}

	code = Code((uint16(ref.Op) << OPCODE_SHIFT) + address)
	return
}
