package cpu

import (
	"errors"

	"github.com/ezrec/marie/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrHalted = errors.New(f("cpu halted"))

	// Opcode table errors
	ErrOpcodeRange    = errors.New(f("opcode out of range"))
	ErrHandlerMissing = errors.New(f("handler missing"))

	// Assembler errors
	ErrOriginMissing     = errors.New(f("ORG address missing"))
	ErrOriginRange       = errors.New(f("ORG address out of range"))
	ErrOperandMissing    = errors.New(f("operand missing"))
	ErrOpcodeExtraArgs   = errors.New(f("excessive arguments"))
	ErrDeclarationSyntax = errors.New(f("declaration syntax"))
	ErrDeclarationRadix  = errors.New(f("declaration radix must be HEX or DEC"))
	ErrProgramFull       = errors.New(f("program image full"))
)

// ErrAddress is a memory access outside of the 4095 word store.
type ErrAddress uint32

func (err ErrAddress) Error() string {
	return f("address 0x%03x out of range", uint32(err))
}

// ErrProgramSize is a program image too large to load.
type ErrProgramSize int

func (err ErrProgramSize) Error() string {
	return f("program of %v bytes exceeds %v bytes", int(err), MEMORY_BYTES)
}

// ErrOpcodeDuplicate is a second registration of the same opcode.
type ErrOpcodeDuplicate CodeOp

func (err ErrOpcodeDuplicate) Error() string {
	return f("opcode 0x%x already registered", int(err))
}

// ErrInstructionInvalid is an opcode with no registered handler.
type ErrInstructionInvalid CodeOp

func (err ErrInstructionInvalid) Error() string {
	return f("invalid instruction opcode 0x%x", int(err))
}

// ErrOpcode identifies the word that failed to execute.
type ErrOpcode Code

func (eo ErrOpcode) Error() string {
	return f("bad opcode 0x%04x %v", uint16(eo), Code(eo).String())
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

// ErrSymbolUndefined is a reference to a name that is never declared.
type ErrSymbolUndefined string

func (err ErrSymbolUndefined) Error() string {
	return f("undefined symbol '%v'", string(err))
}

// ErrSymbolDuplicate is a name declared more than once.
type ErrSymbolDuplicate string

func (err ErrSymbolDuplicate) Error() string {
	return f("symbol '%v' duplicated", string(err))
}

// ErrTokenInvalid is a line that starts with an unrecognized token.
type ErrTokenInvalid string

func (err ErrTokenInvalid) Error() string {
	return f("invalid symbol '%v'", string(err))
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
