package asm

import (
	"errors"
	"strings"
	"testing"

	"github.com/redlinelabs/tpu/vm"
	"github.com/stretchr/testify/assert"
)

func TestAssembleSkipsBlankAndCommentLines(t *testing.T) {
	assert := assert.New(t)

	src := "\n// a comment\n  \nLDR R0, 1\n// trailing\nHLT\n"
	prog, err := Assemble(strings.NewReader(src))
	assert.NoError(err)
	assert.Equal(2, prog.Len())
	assert.Equal(vm.OpLDR, prog.Instructions[0].Op)
	assert.Equal(4, prog.Instructions[0].Line)
	assert.Equal(vm.OpHLT, prog.Instructions[1].Op)
	assert.Equal(6, prog.Instructions[1].Line)
}

func TestAssembleRegisterOperands(t *testing.T) {
	assert := assert.New(t)

	prog, err := Assemble(strings.NewReader("ADD R0, R1\n"))
	assert.NoError(err)
	assert.Equal(1, prog.Len())

	instr := prog.Instructions[0]
	assert.Equal(vm.OpADD, instr.Op)
	assert.Equal(vm.RegOperand(vm.RegR0), instr.Operands[0])
	assert.Equal(vm.RegOperand(vm.RegR1), instr.Operands[1])
}

func TestAssembleHexAndBinaryLiterals(t *testing.T) {
	assert := assert.New(t)

	prog, err := Assemble(strings.NewReader("LDR R0, 0x10\nLDR R1, 0b101\nLDR R2, 65535\n"))
	assert.NoError(err)
	assert.Equal(uint16(0x10), prog.Instructions[0].Operands[1].Imm)
	assert.Equal(uint16(5), prog.Instructions[1].Operands[1].Imm)
	assert.Equal(uint16(65535), prog.Instructions[2].Operands[1].Imm)
}

func TestAssembleUnknownMnemonic(t *testing.T) {
	assert := assert.New(t)

	_, err := Assemble(strings.NewReader("FROB R0\n"))
	assert.Error(err)
	var perr *ParseError
	assert.True(errors.As(err, &perr))
	assert.Equal(1, perr.Line)
	assert.ErrorIs(err, ErrOpcodeUnknown)
}

func TestAssembleWrongOperandCount(t *testing.T) {
	assert := assert.New(t)

	_, err := Assemble(strings.NewReader("ADD R0\n"))
	assert.ErrorIs(err, ErrOperandCount)
}

func TestAssembleRegisterOnlySlotRejectsImmediate(t *testing.T) {
	assert := assert.New(t)

	_, err := Assemble(strings.NewReader("ADD R0, 5\n"))
	assert.ErrorIs(err, ErrOperandRegister)
}

func TestAssembleNumberOutOfRange(t *testing.T) {
	assert := assert.New(t)

	_, err := Assemble(strings.NewReader("LDR R0, 65536\n"))
	assert.ErrorIs(err, ErrNumberRange)
}

func TestAssembleRejectsTabs(t *testing.T) {
	assert := assert.New(t)

	_, err := Assemble(strings.NewReader("LDR\tR0, 1\n"))
	assert.ErrorIs(err, ErrTabCharacter)
}

func TestAssembleNullaryInstruction(t *testing.T) {
	assert := assert.New(t)

	prog, err := Assemble(strings.NewReader("HLT\n"))
	assert.NoError(err)
	assert.Equal(1, prog.Len())
	assert.Empty(prog.Instructions[0].Operands)
}

func TestAssembleReportsFirstErrorOnly(t *testing.T) {
	assert := assert.New(t)

	_, err := Assemble(strings.NewReader("HLT\nFROB\nBOGUS\n"))
	var perr *ParseError
	assert.True(errors.As(err, &perr))
	assert.Equal(2, perr.Line)
}
