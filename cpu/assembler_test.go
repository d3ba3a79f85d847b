package cpu

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssembler(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	prog, err := asm.Parse(strings.NewReader(""))
	assert.NoError(err)
	assert.Equal(0, len(prog.Opcodes))
	assert.Equal(0, len(prog.Symbols))
	assert.Equal(MEMORY_WORDS, len(prog.Codes))
	for _, code := range prog.Codes {
		assert.Equal(Code(0), code)
	}
}

func TestAssemblerForwardReference(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	program := []string{
		"LOAD A",
		"HALT",
		"A, DEC, 5",
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
		return
	}

	assert.Equal([]Code{0x1002, 0x7000, 0x0005}, prog.Codes[:3])
	assert.Equal(SymbolTable{"A": 2}, prog.Symbols)

	expected := []Opcode{
		{1, 0, []string{"LOAD", "A"}, Reference{Op: OP_LOAD, Name: "A"}},
		{2, 1, []string{"HALT"}, Literal{Value: 0x7000}},
		{3, 2, []string{"A,", "DEC,", "5"}, Literal{Value: 5}},
	}
	assert.Equal(expected, prog.Opcodes)
}

func TestAssemblerOrigin(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	codes, err := asm.AssembleString("ORG 5\nHALT\n")
	assert.NoError(err)
	assert.Equal(Code(0x7000), codes[5])
	for n, code := range codes {
		if n != 5 {
			assert.Equal(Code(0), code, "address %#x", n)
		}
	}

	codes, err = asm.AssembleString("ORG 0x100\nX, HEX, BEEF\nORG FFE\nJUMP X\n")
	assert.NoError(err)
	assert.Equal(Code(0xbeef), codes[0x100])
	assert.Equal(Code(0x9100), codes[LAST_ADDRESS])
}

func TestAssemblerInstructions(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	table := [](struct {
		source string
		codes  []Code
	}){
		{"LOAD 3", []Code{0x1003}},
		{"load 3", []Code{0x1003}},
		{"STORE 0x10", []Code{0x2010}},
		{"ADD 0FFE", []Code{0x3ffe}},
		{"SUBT 0", []Code{0x4000}},
		{"INPUT", []Code{0x5000}},
		{"OUTPUT", []Code{0x6000}},
		{"Halt", []Code{0x7000}},
		{"SKIPCOND 000", []Code{0x8000}},
		{"SKIPCOND 400", []Code{0x8400}},
		{"SKIPCOND 800", []Code{0x8800}},
		{"JUMP 1", []Code{0x9001}},
		{"HALT\n\n   \nHALT", []Code{0x7000, 0x7000}},
		{"/ full line\nLOAD 1 / trailing\n", []Code{0x1001}},
		{"  / indented\nOUTPUT/no space", []Code{0x6000}},
		{"X, DEC, -1", []Code{0xffff}},
		{"X, DEC, 32767", []Code{0x7fff}},
		{"X, dec -32768", []Code{0x8000}},
		{"X, HEX, FFFF", []Code{0xffff}},
		{"X, hex, 0x0F", []Code{0x000f}},
		{"LOOP, LOAD X\nJUMP LOOP\nX, HEX, 0F", []Code{0x1002, 0x9000, 0x000f}},
		{"JUMP END\nLOAD 0\nEND, HALT", []Code{0x9002, 0x1000, 0x7000}},
		{"a, DEC, 1\nA, DEC, 2\nLOAD a\nLOAD A", []Code{1, 2, 0x1000, 0x1001}},
	}

	for _, entry := range table {
		codes, err := asm.AssembleString(entry.source)
		assert.NoError(err, entry.source)
		if err != nil {
			continue
		}
		assert.Equal(entry.codes, codes[:len(entry.codes)], entry.source)
	}
}

func TestAssemblerReuse(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	first, err := asm.Parse(strings.NewReader("A, DEC, 1\nLOAD A\n"))
	assert.NoError(err)

	second, err := asm.Parse(strings.NewReader("HALT\nA, DEC, 2\n"))
	assert.NoError(err)

	assert.Equal(SymbolTable{"A": 0}, first.Symbols)
	assert.Equal(SymbolTable{"A": 1}, second.Symbols)
	assert.Equal(2, len(first.Opcodes))
	assert.Equal(Code(0x1000), first.Codes[1])
	assert.Equal(Code(0x0002), second.Codes[1])
}

func TestAssemblerErrSyntax(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	// Various syntax errors
	table := [](struct {
		prog string
		line int
		err  error
	}){
		{"LOAD", 1, ErrOperandMissing},
		{"LOAD A B", 1, ErrOpcodeExtraArgs},
		{"HALT 1", 1, ErrOpcodeExtraArgs},
		{"INPUT\nOUTPUT X", 2, ErrOpcodeExtraArgs},
		{"LOAD 1G", 1, ErrParseNumber("1G")},
		{"LOAD 10000", 1, ErrParseNumber("10000")},
		{"ORG", 1, ErrOriginMissing},
		{"ORG 1 2", 1, ErrOpcodeExtraArgs},
		{"ORG ZZ", 1, ErrParseNumber("ZZ")},
		{"ORG FFF", 1, ErrOriginRange},
		{"ORG FFE\nHALT\nHALT", 3, ErrProgramFull},
		{"LOAD A", 1, ErrSymbolUndefined("A")},
		{"HALT\n\nJUMP NOWHERE", 3, ErrSymbolUndefined("NOWHERE")},
		{"a, DEC, 1\nLOAD A", 2, ErrSymbolUndefined("A")},
		{"A, DEC, 1\nA, DEC, 2", 2, ErrSymbolDuplicate("A")},
		{"A, HALT\nA, HALT", 2, ErrSymbolDuplicate("A")},
		{"A, OCT, 7", 1, ErrDeclarationRadix},
		{"A,", 1, ErrDeclarationSyntax},
		{"A, DEC", 1, ErrDeclarationSyntax},
		{"A, DEC, 1 2", 1, ErrDeclarationSyntax},
		{"1A, DEC, 1", 1, ErrDeclarationSyntax},
		{", DEC, 1", 1, ErrDeclarationSyntax},
		{"A, DEC, 99999", 1, ErrParseNumber("99999")},
		{"A, HEX, 10000", 1, ErrParseNumber("10000")},
		{"A, FOO", 1, ErrTokenInvalid("FOO")},
		{"FOO", 1, ErrTokenInvalid("FOO")},
		{"HALT\nLOAD, 1", 2, ErrTokenInvalid("1")},
	}

	for _, entry := range table {
		prog, err := asm.Parse(strings.NewReader(entry.prog))
		assert.Nil(prog, entry.prog)
		assert.ErrorIs(err, entry.err, entry.prog)

		var err_syntax ErrSyntax
		if assert.True(errors.As(err, &err_syntax), entry.prog) {
			assert.Equal(entry.line, err_syntax.LineNo, entry.prog)
		}
	}
}

func TestAssemblerErrSyntaxLine(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	_, err := asm.Parse(strings.NewReader("HALT\n  LOAD   A  / comment\n"))
	assert.Equal(ErrSyntax{LineNo: 2, Line: "LOAD A", Err: ErrSymbolUndefined("A")}, err)

	_, err = asm.Parse(strings.NewReader("  FOO 1 / what\n"))
	assert.Equal(ErrSyntax{LineNo: 1, Line: "FOO 1 / what", Err: ErrTokenInvalid("FOO")}, err)
}
