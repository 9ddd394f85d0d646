package vm

// pinLimit is the number of addressable pins in each pin space.
// Bounds-checking pins is the dispatcher's job; the Bus interface may
// assume pin is already in range.
const pinLimit = 16

func (v *VM) execDPW(instr Instruction) (uint32, bool) {
	reader := &opReader{vm: v}
	pin := reader.value(instr.Operands[0])
	val := reader.value(instr.Operands[1])
	if pin >= pinLimit {
		v.raiseFault(FaultPinOutOfBounds)
		return 1 + reader.penalty, false
	}
	v.bus.DigitalWrite(int(pin), val != 0)
	return 1 + reader.penalty, false
}

func (v *VM) execDPR(instr Instruction) (uint32, bool) {
	dst := instr.Operands[0].Reg
	reader := &opReader{vm: v}
	pin := reader.value(instr.Operands[1])
	if pin >= pinLimit {
		v.raiseFault(FaultPinOutOfBounds)
		return 1 + reader.penalty, false
	}
	if v.bus.DigitalRead(int(pin)) {
		v.reg[dst] = 1
	} else {
		v.reg[dst] = 0
	}
	return 1 + reader.penalty, false
}

func (v *VM) execDPWW(instr Instruction) (uint32, bool) {
	reader := &opReader{vm: v}
	mask := reader.value(instr.Operands[0])
	v.bus.DigitalWriteWord(mask)
	return 1 + reader.penalty, false
}

func (v *VM) execDPRW(instr Instruction) (uint32, bool) {
	dst := instr.Operands[0].Reg
	v.reg[dst] = v.bus.DigitalReadWord()
	return 1, false
}

func (v *VM) execAPW(instr Instruction) (uint32, bool) {
	reader := &opReader{vm: v}
	pin := reader.value(instr.Operands[0])
	val := reader.value(instr.Operands[1])
	if pin >= pinLimit {
		v.raiseFault(FaultPinOutOfBounds)
		return 1 + reader.penalty, false
	}
	v.bus.AnalogWrite(int(pin), val)
	return 1 + reader.penalty, false
}

func (v *VM) execAPR(instr Instruction) (uint32, bool) {
	dst := instr.Operands[0].Reg
	reader := &opReader{vm: v}
	pin := reader.value(instr.Operands[1])
	if pin >= pinLimit {
		v.raiseFault(FaultPinOutOfBounds)
		return 1 + reader.penalty, false
	}
	v.reg[dst] = v.bus.AnalogRead(int(pin))
	return 1 + reader.penalty, false
}

// execXMIT enqueues (addr, val) into the transmit FIFO. A full FIFO
// silently drops the packet; TxPush's return value is not surfaced
// as a fault.
func (v *VM) execXMIT(instr Instruction) (uint32, bool) {
	reader := &opReader{vm: v}
	addr := reader.value(instr.Operands[0])
	val := reader.value(instr.Operands[1])
	v.bus.TxPush(addr, val)
	return 1 + reader.penalty, false
}

// execRECV dequeues one packet into X (sender) and Y (payload). An
// empty receive FIFO yields X=0, Y=0 rather than a fault.
func (v *VM) execRECV(instr Instruction) (uint32, bool) {
	addr, data, ok := v.bus.RxPop()
	if !ok {
		v.reg[RegX] = 0
		v.reg[RegY] = 0
		return 1, false
	}
	v.reg[RegX] = addr
	v.reg[RegY] = data
	return 1, false
}

func (v *VM) execTXBS(instr Instruction) (uint32, bool) {
	v.reg[RegX] = v.bus.TxLen()
	return 1, false
}

func (v *VM) execRXBS(instr Instruction) (uint32, bool) {
	v.reg[RegX] = v.bus.RxLen()
	return 1, false
}

// execWRX polls the receive FIFO without consuming anything: PC holds
// in place while it is empty, letting a program spin-wait on WRX, and
// advances normally as soon as a packet is available.
func (v *VM) execWRX(instr Instruction) (uint32, bool) {
	if v.bus.RxLen() == 0 {
		return 1, true
	}
	return 1, false
}

// execSLP charges a complete cycle-cost override of 2+n, clamped to
// SleepClamp, not the base-plus-register-penalty formula every other
// opcode uses.
func (v *VM) execSLP(instr Instruction) (uint32, bool) {
	op := instr.Operands[0]
	var n uint16
	if op.Kind == OperandRegister {
		n = v.reg[op.Reg]
	} else {
		n = op.Imm
	}
	if n > v.SleepClamp {
		n = v.SleepClamp
	}
	return 2 + uint32(n), false
}
