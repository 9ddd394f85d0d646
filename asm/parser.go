package asm

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/redlinelabs/tpu/vm"
)

// maxNumber is the largest value an RGAL numeric literal may hold: the
// full 16-bit word range, with no signed literals.
const maxNumber = 65535

// maxLines is the largest ROM a Program may hold: a line-indexed ROM
// of up to 65535 lines.
const maxLines = 65535

// Assemble reads RGAL source from r and lowers it into a *vm.Program.
// Blank lines and comment-only lines are skipped entirely and do not
// consume a ROM line; every other line becomes exactly one ROM line,
// in source order. Assemble stops at the first malformed line and
// reports it as a *ParseError. There is no partial program on error.
func Assemble(r io.Reader) (*vm.Program, error) {
	scanner := bufio.NewScanner(r)
	prog := &vm.Program{}

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		raw := scanner.Text()

		if strings.ContainsRune(raw, '\t') {
			return nil, &ParseError{Line: lineNo, Text: raw, Err: ErrTabCharacter}
		}

		text := strings.TrimSpace(stripComment(raw))
		if text == "" {
			continue
		}

		instr, err := parseLine(text)
		if err != nil {
			return nil, &ParseError{Line: lineNo, Text: raw, Err: err}
		}
		instr.Line = lineNo

		if len(prog.Instructions) >= maxLines {
			return nil, &ParseError{Line: lineNo, Text: raw, Err: ErrProgramTooLarge}
		}
		prog.Instructions = append(prog.Instructions, instr)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return prog, nil
}

func stripComment(line string) string {
	if idx := strings.Index(line, "//"); idx >= 0 {
		return line[:idx]
	}
	return line
}

// parseLine parses one already-trimmed, comment-free source line into
// an Instruction, validating operand count and category against
// vm.LookupOpcode's OpSpec.
func parseLine(text string) (vm.Instruction, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return vm.Instruction{}, ErrLineEmpty
	}

	mnemonic := fields[0]
	spec, ok := vm.LookupOpcode(mnemonic)
	if !ok {
		return vm.Instruction{}, ErrOpcodeUnknown
	}

	rest := strings.TrimSpace(text[len(mnemonic):])
	operandTexts := splitOperands(rest)
	if len(operandTexts) != len(spec.Slots) {
		return vm.Instruction{}, ErrOperandCount
	}

	operands := make([]vm.Operand, len(operandTexts))
	for i, ot := range operandTexts {
		op, err := parseOperand(ot, spec.Slots[i])
		if err != nil {
			return vm.Instruction{}, err
		}
		operands[i] = op
	}

	return vm.Instruction{Op: spec.Op, Operands: operands}, nil
}

func splitOperands(rest string) []string {
	if rest == "" {
		return nil
	}
	parts := strings.Split(rest, ",")
	texts := make([]string, len(parts))
	for i, p := range parts {
		texts[i] = strings.TrimSpace(p)
	}
	return texts
}

func parseOperand(text string, cat vm.OperandCategory) (vm.Operand, error) {
	if text == "" {
		return vm.Operand{}, ErrOperandNumber
	}
	if r, ok := vm.LookupReg(text); ok {
		return vm.RegOperand(r), nil
	}
	if cat == vm.CatRegister {
		return vm.Operand{}, ErrOperandRegister
	}
	n, err := parseNumber(text)
	if err != nil {
		return vm.Operand{}, err
	}
	return vm.ImmOperand(n), nil
}

// parseNumber accepts decimal, 0x-prefixed hex, and 0b-prefixed binary
// literals in the range 0..65535. There is no signed-literal syntax.
func parseNumber(text string) (uint16, error) {
	base := 10
	digits := text
	switch {
	case strings.HasPrefix(text, "0x"), strings.HasPrefix(text, "0X"):
		base = 16
		digits = text[2:]
	case strings.HasPrefix(text, "0b"), strings.HasPrefix(text, "0B"):
		base = 2
		digits = text[2:]
	}

	v, err := strconv.ParseUint(digits, base, 32)
	if err != nil {
		return 0, ErrOperandNumber
	}
	if v > maxNumber {
		return 0, ErrNumberRange
	}
	return uint16(v), nil
}
