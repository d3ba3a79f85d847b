// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"io"
	"log"
	"slices"
	"strconv"
	"strings"
)

// Declaration radix keywords.
const (
	RADIX_HEX = "HEX"
	RADIX_DEC = "DEC"
)

// DIRECTIVE_ORG repositions the write cursor.
const DIRECTIVE_ORG = "ORG"

// Assembler is a two pass assembler for the MARIE system.
type Assembler struct {
	Verbose bool        // If set, verbosely logs the assembler actions.
	Opcode  []Opcode    // List of emitted opcodes.
	Symbol  SymbolTable // Map of declared names to addresses.

	image  [MEMORY_WORDS]Instruction
	cursor int
}

// mnemonicMap maps instruction mnemonics to opcodes.
var mnemonicMap = map[string]CodeOp{
	"LOAD":     OP_LOAD,
	"STORE":    OP_STORE,
	"ADD":      OP_ADD,
	"SUBT":     OP_SUBT,
	"INPUT":    OP_INPUT,
	"OUTPUT":   OP_OUTPUT,
	"HALT":     OP_HALT,
	"SKIPCOND": OP_SKIPCOND,
	"JUMP":     OP_JUMP,
}

// parseHex parses a hexadecimal token of up to 16 bits. A leading 0x is
// accepted.
func parseHex(word string) (value uint16, err error) {
	digits := word
	if len(digits) > 2 && (digits[:2] == "0x" || digits[:2] == "0X") {
		digits = digits[2:]
	}

	u64, err := strconv.ParseUint(digits, 16, 16)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	value = uint16(u64)
	return
}

// parseDec parses a signed decimal token, encoded as two's complement.
func parseDec(word string) (value uint16, err error) {
	i64, err := strconv.ParseInt(word, 10, 16)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	value = uint16(int16(i64))
	return
}

// isLiteral returns true if an operand is a hex literal rather than a name.
func isLiteral(word string) bool {
	return len(word) > 0 && word[0] >= '0' && word[0] <= '9'
}

// reset prepares the assembler for a new source.
func (asm *Assembler) reset() {
	for n := range asm.image {
		asm.image[n] = Empty{}
	}
	asm.cursor = 0
	asm.Opcode = asm.Opcode[:0]
	asm.Symbol = SymbolTable{}
}

// emit places an instruction at the write cursor and advances it.
func (asm *Assembler) emit(ins Instruction, words []string, lineno int) (err error) {
	if asm.cursor > LAST_ADDRESS {
		err = ErrProgramFull
		return
	}

	asm.image[asm.cursor] = ins
	asm.Opcode = append(asm.Opcode, Opcode{
		LineNo:      lineno,
		Address:     uint16(asm.cursor),
		Words:       words,
		Instruction: ins,
	})
	asm.cursor++

	return
}

// declare records a name at the current write cursor.
func (asm *Assembler) declare(name string) (err error) {
	if len(name) == 0 || isLiteral(name) {
		err = ErrDeclarationSyntax
		return
	}

	_, ok := asm.Symbol[name]
	if ok {
		err = ErrSymbolDuplicate(name)
		return
	}

	asm.Symbol[name] = uint16(asm.cursor)

	return
}

// Parse parses an input stream into a Program. No program is returned if
// any line fails to assemble, or any symbol is left undefined.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	asm.reset()

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("asm: %v: %v", lineno, text)
		}

		line = strings.TrimSpace(text)

		// Full line comment
		if strings.HasPrefix(line, "/") {
			continue
		}

		// Trailing comment
		text_comment := strings.SplitN(line, "/", 2)
		words := strings.Fields(text_comment[0])

		err = asm.parseWords(words, lineno)
		if err != nil {
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	// Final resolution of every slot.
	codes := make([]Code, len(asm.image))
	for address, ins := range asm.image {
		codes[address], err = ins.Resolve(asm.Symbol)
		if err != nil {
			op := asm.debug(uint16(address))
			if op != nil {
				lineno = op.LineNo
				line = strings.Join(op.Words, " ")
			}
			return
		}
	}

	prog = &Program{
		Opcodes: slices.Clone(asm.Opcode),
		Symbols: asm.Symbol,
		Codes:   codes,
	}

	return
}

// AssembleString assembles source text into a program image.
func (asm *Assembler) AssembleString(source string) (codes []Code, err error) {
	prog, err := asm.Parse(strings.NewReader(source))
	if err != nil {
		return
	}

	codes = prog.Codes
	return
}

// debug returns the opcode that last emitted to an address.
func (asm *Assembler) debug(address uint16) *Opcode {
	prog := Program{Opcodes: asm.Opcode}
	return prog.Debug(address)
}

// parseWords evaluates the words in a line of assembly text.
func (asm *Assembler) parseWords(words []string, lineno int) (err error) {
	// no-op
	if len(words) == 0 {
		return
	}

	first := strings.ToUpper(words[0])

	// ORG ADDRESS
	if first == DIRECTIVE_ORG {
		if len(words) < 2 {
			err = ErrOriginMissing
			return
		}
		if len(words) > 2 {
			err = ErrOpcodeExtraArgs
			return
		}
		var origin uint16
		origin, err = parseHex(words[1])
		if err != nil {
			return
		}
		if origin > LAST_ADDRESS {
			err = ErrOriginRange
			return
		}
		asm.cursor = int(origin)
		return
	}

	_, is_mnemonic := mnemonicMap[first]
	if is_mnemonic {
		err = asm.parseInstruction(words, lineno)
		return
	}

	// NAME, ...
	if strings.HasSuffix(words[0], ",") {
		name := strings.TrimSuffix(words[0], ",")

		// The radix may carry its own trailing comma.
		var second string
		if len(words) > 1 {
			second = strings.TrimSuffix(strings.ToUpper(words[1]), ",")
		}

		switch {
		case second == RADIX_HEX || second == RADIX_DEC:
			// NAME, HEX|DEC[,] VALUE
			if len(words) != 3 {
				err = ErrDeclarationSyntax
				return
			}
			var value uint16
			if second == RADIX_HEX {
				value, err = parseHex(words[2])
			} else {
				value, err = parseDec(words[2])
			}
			if err != nil {
				return
			}
			err = asm.declare(name)
			if err != nil {
				return
			}
			err = asm.emit(Literal{Value: Code(value)}, words, lineno)
		case len(second) > 0 && mnemonicMap[second] != 0:
			// NAME, INSTRUCTION
			err = asm.declare(name)
			if err != nil {
				return
			}
			err = asm.parseInstruction(words[1:], lineno)
		case len(words) == 3:
			err = ErrDeclarationRadix
		case len(words) == 1:
			err = ErrDeclarationSyntax
		default:
			err = ErrTokenInvalid(words[1])
		}
		return
	}

	err = ErrTokenInvalid(words[0])
	return
}

// parseInstruction assembles a mnemonic and its operand.
func (asm *Assembler) parseInstruction(words []string, lineno int) (err error) {
	op := mnemonicMap[strings.ToUpper(words[0])]

	if !op.HasAddress() {
		if len(words) > 1 {
			err = ErrOpcodeExtraArgs
			return
		}
		err = asm.emit(Literal{Value: MakeCode(op, 0)}, words, lineno)
		return
	}

	if len(words) < 2 {
		err = ErrOperandMissing
		return
	}
	if len(words) > 2 {
		err = ErrOpcodeExtraArgs
		return
	}

	operand := words[1]

	var ins Instruction
	if isLiteral(operand) {
		var address uint16
		address, err = parseHex(operand)
		if err != nil {
			return
		}
		ins = Literal{Value: MakeCode(op, address)}
	} else {
		ins = Reference{Op: op, Name: operand}
	}

	err = asm.emit(ins, words, lineno)
	return
}
