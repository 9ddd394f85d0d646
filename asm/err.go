package asm

import (
	"errors"

	"github.com/redlinelabs/tpu/translate"
)

var f = translate.From

var (
	ErrLineEmpty       = errors.New(f("empty line"))
	ErrTabCharacter    = errors.New(f("tab characters are not permitted"))
	ErrOpcodeUnknown   = errors.New(f("opcode unknown"))
	ErrOperandCount    = errors.New(f("wrong operand count"))
	ErrOperandRegister = errors.New(f("operand must be a register"))
	ErrOperandNumber   = errors.New(f("operand is not a valid number or register"))
	ErrNumberRange     = errors.New(f("number out of range"))
	ErrProgramTooLarge = errors.New(f("program exceeds 65535 lines"))
)

// ParseError reports a single assembly failure, tied to the raw source
// line it occurred on. Assemble fails strictly on the first ParseError:
// there is no partial program image on error.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return f("line %d '%v' %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
