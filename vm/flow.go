package vm

// execJump handles JMP (absolute) and JPR (PC-relative), faulting
// RomOutOfBounds if the resolved target is not a valid ROM line.
func (v *VM) execJump(instr Instruction) (uint32, bool) {
	reader := &opReader{vm: v}
	raw := reader.value(instr.Operands[0])

	target, ok := v.resolveTarget(instr.Op, raw)
	if !ok {
		v.raiseFault(FaultRomOutOfBounds)
		return 1 + reader.penalty, false
	}
	v.pc = target
	return 1 + reader.penalty, true
}

// execBranchZero handles BEZ/BNZ (absolute) and BREZ/BRNZ (relative):
// branch when a register is, or is not, zero.
func (v *VM) execBranchZero(instr Instruction) (uint32, bool) {
	reader := &opReader{vm: v}
	raw := reader.value(instr.Operands[0])
	regVal := reader.value(instr.Operands[1])

	var taken bool
	switch instr.Op {
	case OpBEZ, OpBREZ:
		taken = regVal == 0
	case OpBNZ, OpBRNZ:
		taken = regVal != 0
	}
	if !taken {
		return 1 + reader.penalty, false
	}

	target, ok := v.resolveTarget(instr.Op, raw)
	if !ok {
		v.raiseFault(FaultRomOutOfBounds)
		return 1 + reader.penalty, false
	}
	v.pc = target
	return 1 + reader.penalty, true
}

// branchCompareTaken evaluates one of the six unsigned comparisons a
// three-operand branch tests a register against, independent of
// whether the branch itself is absolute or PC-relative.
func branchCompareTaken(op Opcode, regVal, cmp uint16) bool {
	switch op {
	case OpBEQ, OpBREQ:
		return regVal == cmp
	case OpBNE, OpBRNE:
		return regVal != cmp
	case OpBGE, OpBRGE:
		return regVal >= cmp
	case OpBLE, OpBRLE:
		return regVal <= cmp
	case OpBGT, OpBRGT:
		return regVal > cmp
	case OpBLT, OpBRLT:
		return regVal < cmp
	}
	return false
}

// execBranchCompare handles the BEQ/BNE/BGE/BLE/BGT/BLT family and
// their PC-relative BR* counterparts: compare a register against a
// third operand and branch on the result.
func (v *VM) execBranchCompare(instr Instruction) (uint32, bool) {
	reader := &opReader{vm: v}
	raw := reader.value(instr.Operands[0])
	regVal := reader.value(instr.Operands[1])
	cmp := reader.value(instr.Operands[2])

	if !branchCompareTaken(instr.Op, regVal, cmp) {
		return 1 + reader.penalty, false
	}

	target, ok := v.resolveTarget(instr.Op, raw)
	if !ok {
		v.raiseFault(FaultRomOutOfBounds)
		return 1 + reader.penalty, false
	}
	v.pc = target
	return 1 + reader.penalty, true
}
