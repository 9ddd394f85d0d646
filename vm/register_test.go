package vm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegLookupAndString(t *testing.T) {
	assert := assert.New(t)

	r, ok := LookupReg("R3")
	assert.True(ok)
	assert.Equal(RegR3, r)
	assert.Equal("R3", r.String())

	_, ok = LookupReg("r3")
	assert.False(ok, "register names are case-sensitive")

	_, ok = LookupReg("SP")
	assert.False(ok, "SP is not an addressable register")
}

func TestOpcodeLookup(t *testing.T) {
	assert := assert.New(t)

	spec, ok := LookupOpcode("DIV")
	assert.True(ok)
	assert.Equal(OpDIV, spec.Op)
	assert.Equal([]OperandCategory{CatRegister, CatRegister}, spec.Slots)

	_, ok = LookupOpcode("PUSHX")
	assert.False(ok, "PUSHX has no opcode table entry")

	_, ok = LookupOpcode("div")
	assert.False(ok, "mnemonics are case-sensitive")
}

func TestOpcodeIsRelative(t *testing.T) {
	assert := assert.New(t)

	assert.True(OpJPR.IsRelative())
	assert.True(OpBREQ.IsRelative())
	assert.False(OpJMP.IsRelative())
	assert.False(OpBEQ.IsRelative())
}

func TestFaultKindString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("divide by zero", FaultDivideByZero.String())
	assert.Equal("stack overflow", FaultStackOverflow.String())
}
