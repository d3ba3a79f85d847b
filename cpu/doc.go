// Package cpu implements the processor and assembler for the MARIE system.
//
// The processor is a 16-bit accumulator machine with 4095 words of
// word-addressable memory. Every word is a 4-bit opcode followed by a 12-bit
// address. Registers are the accumulator (AC), instruction register (IR),
// memory buffer register (MBR), the 12-bit program counter (PC) and memory
// address register (MAR), plus the input and output registers that connect
// the processor to an I/O device.
//
// Execution is one Fetch-Decode-Execute cycle per Tick, dispatched through an
// OpcodeTable that is pre-populated with the nine MARIE instructions and may
// be extended with handlers for the unused opcodes.
//
// The assembler translates MARIE mnemonics into a 4095 word program image in
// two passes: a parse pass that emits instructions and records declared
// symbols, and a resolve pass that encodes every slot against the completed
// symbol table.
package cpu
