package vm

// ramLimit is the number of addressable RAM cells. Addresses are
// bounds-checked before natural addition can wrap a too-large offset
// back into range.
const ramLimit = 128

// execLDR loads dst from a literal or register source.
func (v *VM) execLDR(instr Instruction) (uint32, bool) {
	dst := instr.Operands[0].Reg
	reader := &opReader{vm: v}
	val := reader.value(instr.Operands[1])
	v.reg[dst] = val
	return 1 + reader.penalty, false
}

// execLDM loads dst from RAM[addr], faulting RamOutOfBounds if addr
// is not a valid RAM cell.
func (v *VM) execLDM(instr Instruction) (uint32, bool) {
	dst := instr.Operands[0].Reg
	reader := &opReader{vm: v}
	addr := reader.value(instr.Operands[1])
	if addr >= ramLimit {
		v.raiseFault(FaultRamOutOfBounds)
		return 1 + reader.penalty, false
	}
	v.reg[dst] = v.ram[addr]
	return 1 + reader.penalty, false
}

// execLDO loads dst from RAM[base+offReg]. LDOI additionally
// increments offReg after the load. base+offReg is computed as a
// natural (non-wrapping) sum before the bounds check.
func (v *VM) execLDO(instr Instruction) (uint32, bool) {
	dst := instr.Operands[0].Reg
	offReg := instr.Operands[2].Reg
	reader := &opReader{vm: v}
	base := reader.value(instr.Operands[1])
	off := reader.value(instr.Operands[2])

	addr := uint32(base) + uint32(off)
	if addr >= ramLimit {
		v.raiseFault(FaultRamOutOfBounds)
		return 1 + reader.penalty, false
	}
	v.reg[dst] = v.ram[addr]
	if instr.Op == OpLDOI {
		v.reg[offReg] = off + 1
	}
	return 1 + reader.penalty, false
}

// execSTM stores val into RAM[addr], faulting RamOutOfBounds if addr
// is not a valid RAM cell.
func (v *VM) execSTM(instr Instruction) (uint32, bool) {
	reader := &opReader{vm: v}
	addr := reader.value(instr.Operands[0])
	val := reader.value(instr.Operands[1])
	if addr >= ramLimit {
		v.raiseFault(FaultRamOutOfBounds)
		return 1 + reader.penalty, false
	}
	v.ram[addr] = val
	return 1 + reader.penalty, false
}

// execSTMO stores val into RAM[addr+offReg]. SMOI additionally
// increments offReg after the store.
func (v *VM) execSTMO(instr Instruction) (uint32, bool) {
	offReg := instr.Operands[2].Reg
	reader := &opReader{vm: v}
	addr := reader.value(instr.Operands[0])
	val := reader.value(instr.Operands[1])
	off := reader.value(instr.Operands[2])

	full := uint32(addr) + uint32(off)
	if full >= ramLimit {
		v.raiseFault(FaultRamOutOfBounds)
		return 1 + reader.penalty, false
	}
	v.ram[full] = val
	if instr.Op == OpSMOI {
		v.reg[offReg] = off + 1
	}
	return 1 + reader.penalty, false
}
