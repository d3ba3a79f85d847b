package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpcodeTable_Defaults(t *testing.T) {
	assert := assert.New(t)

	table := NewOpcodeTable()

	for op := range CodeOp(OPCODE_LIMIT) {
		expected := op >= OP_LOAD && op <= OP_JUMP
		assert.Equal(expected, table.Registered(op), op.String())

		handler, err := table.Lookup(op)
		if expected {
			assert.NoError(err, op.String())
			assert.NotNil(handler, op.String())
		} else {
			assert.Equal(ErrInstructionInvalid(op), err, op.String())
			assert.Nil(handler, op.String())
		}
	}
}

func TestOpcodeTable_Empty(t *testing.T) {
	assert := assert.New(t)

	table := &OpcodeTable{}
	for op := range CodeOp(OPCODE_LIMIT) {
		assert.False(table.Registered(op))
	}

	assert.NoError(RegisterDefaults(table))
	assert.True(table.Registered(OP_HALT))

	// Defaults cannot be registered twice.
	assert.Equal(ErrOpcodeDuplicate(OP_LOAD), RegisterDefaults(table))
}

func TestOpcodeTable_Duplicate(t *testing.T) {
	assert := assert.New(t)

	table := &OpcodeTable{}

	var called string
	first := func(cpu *Cpu) error { called = "first"; return nil }
	second := func(cpu *Cpu) error { called = "second"; return nil }

	assert.NoError(table.Register(OP_LOAD, first))
	err := table.Register(OP_LOAD, second)
	assert.Equal(ErrOpcodeDuplicate(OP_LOAD), err)

	handler, err := table.Lookup(OP_LOAD)
	assert.NoError(err)
	assert.NoError(handler(nil))
	assert.Equal("first", called)
}

func TestOpcodeTable_Invalid(t *testing.T) {
	assert := assert.New(t)

	table := &OpcodeTable{}
	noop := func(cpu *Cpu) error { return nil }

	assert.ErrorIs(table.Register(CodeOp(16), noop), ErrOpcodeRange)
	assert.ErrorIs(table.Register(CodeOp(-1), noop), ErrOpcodeRange)
	assert.ErrorIs(table.Register(CodeOp(0xa), nil), ErrHandlerMissing)
	assert.False(table.Registered(CodeOp(0xa)))
	assert.False(table.Registered(CodeOp(99)))

	_, err := table.Lookup(CodeOp(99))
	assert.Equal(ErrInstructionInvalid(99), err)
}
