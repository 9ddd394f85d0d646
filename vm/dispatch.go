package vm

import "fmt"

// opReader reads instruction operands and tallies the register penalty:
// every register-valued operand read costs one extra cycle, charged
// once per read, never for a write. This is the single chokepoint
// every opcode handler goes through.
type opReader struct {
	vm      *VM
	penalty uint32
}

func (r *opReader) value(op Operand) uint16 {
	if op.Kind == OperandRegister {
		r.penalty++
		return r.vm.reg[op.Reg]
	}
	return op.Imm
}

// Step executes ROM[PC] to completion, updates VM state, and returns
// the number of cycles the instruction consumed. If the VM is halted,
// Step is a no-op that returns 0.
func (v *VM) Step() uint32 {
	if v.halted {
		return 0
	}

	if int(v.pc) >= v.rom.Len() {
		v.raiseFault(FaultRomOutOfBounds)
		return 0
	}

	instr := v.rom.Instructions[v.pc]
	v.trace(instr)

	cost, jumped := v.execute(instr)
	v.cycles += uint64(cost)

	if !v.halted && !jumped {
		v.pc++
	}

	return cost
}

// resolveTarget turns a branch/jump's raw operand value into a ROM
// line, applying the PC-relative delta for relative branches, and
// reports whether the resulting line actually exists in ROM. The
// relative case is computed full-width, not modulo 65536: a delta
// that would carry the target past the end of ROM must fault, never
// wrap back into a valid-looking line.
func (v *VM) resolveTarget(op Opcode, raw uint16) (target uint16, ok bool) {
	var full uint32
	if op.IsRelative() {
		full = uint32(v.pc) + uint32(raw)
	} else {
		full = uint32(raw)
	}
	if full >= uint32(v.rom.Len()) {
		return 0, false
	}
	return uint16(full), true
}

// execute runs one decoded instruction and reports the cycles it cost
// and whether it already placed PC itself. Step only auto-increments
// PC when jumped is false.
func (v *VM) execute(instr Instruction) (cost uint32, jumped bool) {
	switch instr.Op {
	case OpNOP:
		return 2, false

	case OpHLT:
		v.raiseFault(FaultExplicitHalt)
		return 1, false

	case OpSCR:
		v.stack.reset()
		return 1, false

	case OpRSP:
		v.reg[instr.Operands[0].Reg] = v.stack.sp
		return 1, false

	case OpPOP:
		r := instr.Operands[0].Reg
		if val, ok := v.stack.pop(); ok {
			v.reg[r] = val
		} else {
			v.reg[r] = 0
		}
		return 1, false

	case OpPUSH:
		return v.execPush(instr)
	case OpPEEK:
		return v.execPeek(instr)
	case OpJSR:
		return v.execJSR(instr)
	case OpRTS:
		return v.execRTS(instr)

	case OpJMP, OpJPR:
		return v.execJump(instr)
	case OpBEZ, OpBNZ, OpBREZ, OpBRNZ:
		return v.execBranchZero(instr)
	case OpBEQ, OpBNE, OpBGE, OpBLE, OpBGT, OpBLT,
		OpBREQ, OpBRNE, OpBRGE, OpBRLE, OpBRGT, OpBRLT:
		return v.execBranchCompare(instr)

	case OpADD, OpSUB, OpMUL, OpDIV, OpMOD, OpAND, OpOR, OpXOR:
		return v.execAluRR(instr)
	case OpNOT, OpINC, OpDEC:
		return v.execAluR(instr)
	case OpRCY, OpRMV:
		return v.execMove(instr)
	case OpSLL, OpSLC, OpSLR, OpSRC, OpROL, OpROR:
		return v.execShift(instr)

	case OpLDR:
		return v.execLDR(instr)
	case OpLDM:
		return v.execLDM(instr)
	case OpLDO, OpLDOI:
		return v.execLDO(instr)
	case OpSTM:
		return v.execSTM(instr)
	case OpSTMO, OpSMOI:
		return v.execSTMO(instr)

	case OpDPW:
		return v.execDPW(instr)
	case OpDPR:
		return v.execDPR(instr)
	case OpDPWW:
		return v.execDPWW(instr)
	case OpDPRW:
		return v.execDPRW(instr)
	case OpAPW:
		return v.execAPW(instr)
	case OpAPR:
		return v.execAPR(instr)
	case OpXMIT:
		return v.execXMIT(instr)
	case OpRECV:
		return v.execRECV(instr)
	case OpTXBS:
		return v.execTXBS(instr)
	case OpRXBS:
		return v.execRXBS(instr)
	case OpWRX:
		return v.execWRX(instr)
	case OpSLP:
		return v.execSLP(instr)
	}

	panic(fmt.Sprintf("tpu: unhandled opcode %v", instr.Op))
}
