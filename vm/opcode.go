package vm

// Opcode identifies an RGAL instruction. The numeric values are an
// implementation detail; RGAL source refers to instructions by mnemonic
// only, never by opcode number. There is no on-disk binary encoding.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OpSCR  = Opcode(iota) // SCR
	OpRECV                // RECV
	OpTXBS                // TXBS
	OpRXBS                // RXBS
	OpNOP                 // NOP
	OpWRX                 // WRX
	OpHLT                 // HLT
	OpRTS                 // RTS

	OpPOP  // POP
	OpRSP  // RSP
	OpNOT  // NOT
	OpINC  // INC
	OpDEC  // DEC
	OpDPRW // DPRW

	OpPUSH // PUSH
	OpDPWW // DPWW
	OpJMP  // JMP
	OpJPR  // JPR
	OpJSR  // JSR
	OpSLP  // SLP

	OpPEEK // PEEK
	OpXMIT // XMIT
	OpLDR  // LDR
	OpLDM  // LDM
	OpDPR  // DPR
	OpAPR  // APR

	OpBEZ  // BEZ
	OpBNZ  // BNZ
	OpBREZ // BREZ
	OpBRNZ // BRNZ

	OpADD // ADD
	OpSUB // SUB
	OpMUL // MUL
	OpDIV // DIV
	OpMOD // MOD
	OpAND // AND
	OpOR  // OR
	OpXOR // XOR
	OpRCY // RCY
	OpRMV // RMV

	OpSTM // STM
	OpDPW // DPW
	OpAPW // APW

	OpBEQ  // BEQ
	OpBNE  // BNE
	OpBGE  // BGE
	OpBLE  // BLE
	OpBGT  // BGT
	OpBLT  // BLT
	OpBREQ // BREQ
	OpBRNE // BRNE
	OpBRGE // BRGE
	OpBRLE // BRLE
	OpBRGT // BRGT
	OpBRLT // BRLT

	OpSLL // SLL
	OpSLC // SLC
	OpSLR // SLR
	OpSRC // SRC
	OpROL // ROL
	OpROR // ROR

	OpSTMO // STMO
	OpSMOI // SMOI

	OpLDO  // LDO
	OpLDOI // LDOI

	numOpcodes
)

var opcodeNames = [numOpcodes]string{
	OpSCR: "SCR", OpRECV: "RECV", OpTXBS: "TXBS", OpRXBS: "RXBS", OpNOP: "NOP", OpWRX: "WRX", OpHLT: "HLT", OpRTS: "RTS",
	OpPOP: "POP", OpRSP: "RSP", OpNOT: "NOT", OpINC: "INC", OpDEC: "DEC", OpDPRW: "DPRW",
	OpPUSH: "PUSH", OpDPWW: "DPWW", OpJMP: "JMP", OpJPR: "JPR", OpJSR: "JSR", OpSLP: "SLP",
	OpPEEK: "PEEK", OpXMIT: "XMIT", OpLDR: "LDR", OpLDM: "LDM", OpDPR: "DPR", OpAPR: "APR",
	OpBEZ: "BEZ", OpBNZ: "BNZ", OpBREZ: "BREZ", OpBRNZ: "BRNZ",
	OpADD: "ADD", OpSUB: "SUB", OpMUL: "MUL", OpDIV: "DIV", OpMOD: "MOD", OpAND: "AND", OpOR: "OR", OpXOR: "XOR", OpRCY: "RCY", OpRMV: "RMV",
	OpSTM: "STM", OpDPW: "DPW", OpAPW: "APW",
	OpBEQ: "BEQ", OpBNE: "BNE", OpBGE: "BGE", OpBLE: "BLE", OpBGT: "BGT", OpBLT: "BLT",
	OpBREQ: "BREQ", OpBRNE: "BRNE", OpBRGE: "BRGE", OpBRLE: "BRLE", OpBRGT: "BRGT", OpBRLT: "BRLT",
	OpSLL: "SLL", OpSLC: "SLC", OpSLR: "SLR", OpSRC: "SRC", OpROL: "ROL", OpROR: "ROR",
	OpSTMO: "STMO", OpSMOI: "SMOI",
	OpLDO: "LDO", OpLDOI: "LDOI",
}

// String returns the RGAL mnemonic for the opcode.
func (op Opcode) String() string {
	if op < 0 || int(op) >= len(opcodeNames) || opcodeNames[op] == "" {
		return "Opcode(?)"
	}
	return opcodeNames[op]
}

// OperandCategory constrains what an operand slot may hold.
type OperandCategory int

const (
	// CatRegister requires a register name.
	CatRegister = OperandCategory(iota)
	// CatAny accepts a register name or an immediate number.
	CatAny
)

// OpSpec is the fixed arity and per-slot operand category for one
// opcode, the single source of truth the assembler validates operands
// against and the dispatcher trusts when decoding an Instruction.
type OpSpec struct {
	Op    Opcode
	Slots []OperandCategory
}

var opSpecByMnemonic = func() map[string]OpSpec {
	m := make(map[string]OpSpec, numOpcodes)
	add := func(op Opcode, slots ...OperandCategory) {
		m[op.String()] = OpSpec{Op: op, Slots: slots}
	}

	nullary := []Opcode{OpSCR, OpRECV, OpTXBS, OpRXBS, OpNOP, OpWRX, OpHLT, OpRTS}
	for _, op := range nullary {
		add(op)
	}

	unaryReg := []Opcode{OpPOP, OpRSP, OpNOT, OpINC, OpDEC, OpDPRW}
	for _, op := range unaryReg {
		add(op, CatRegister)
	}

	unaryAny := []Opcode{OpPUSH, OpDPWW, OpJMP, OpJPR, OpJSR, OpSLP}
	for _, op := range unaryAny {
		add(op, CatAny)
	}

	regAny := []Opcode{OpPEEK, OpXMIT, OpLDR, OpLDM, OpDPR, OpAPR}
	for _, op := range regAny {
		add(op, CatRegister, CatAny)
	}

	anyReg := []Opcode{OpBEZ, OpBNZ, OpBREZ, OpBRNZ}
	for _, op := range anyReg {
		add(op, CatAny, CatRegister)
	}

	regReg := []Opcode{OpADD, OpSUB, OpMUL, OpDIV, OpMOD, OpAND, OpOR, OpXOR, OpRCY, OpRMV}
	for _, op := range regReg {
		add(op, CatRegister, CatRegister)
	}

	anyAny := []Opcode{OpSTM, OpDPW, OpAPW}
	for _, op := range anyAny {
		add(op, CatAny, CatAny)
	}

	anyRegAny := []Opcode{OpBEQ, OpBNE, OpBGE, OpBLE, OpBGT, OpBLT, OpBREQ, OpBRNE, OpBRGE, OpBRLE, OpBRGT, OpBRLT}
	for _, op := range anyRegAny {
		add(op, CatAny, CatRegister, CatAny)
	}

	regRegAny := []Opcode{OpSLL, OpSLC, OpSLR, OpSRC, OpROL, OpROR}
	for _, op := range regRegAny {
		add(op, CatRegister, CatRegister, CatAny)
	}

	anyAnyReg := []Opcode{OpSTMO, OpSMOI}
	for _, op := range anyAnyReg {
		add(op, CatAny, CatAny, CatRegister)
	}

	regAnyReg := []Opcode{OpLDO, OpLDOI}
	for _, op := range regAnyReg {
		add(op, CatRegister, CatAny, CatRegister)
	}

	return m
}()

// LookupOpcode returns the operand spec for a mnemonic, and whether the
// mnemonic is a recognized RGAL instruction.
func LookupOpcode(mnemonic string) (spec OpSpec, ok bool) {
	spec, ok = opSpecByMnemonic[mnemonic]
	return
}

// relativeBranches names the branch opcodes whose first operand is a
// PC-relative delta rather than an absolute line number.
var relativeBranches = map[Opcode]bool{
	OpBREZ: true, OpBRNZ: true,
	OpBREQ: true, OpBRNE: true, OpBRGE: true, OpBRLE: true, OpBRGT: true, OpBRLT: true,
	OpJPR: true,
}

// IsRelative reports whether op interprets its target operand as a
// PC-relative delta instead of an absolute ROM line.
func (op Opcode) IsRelative() bool {
	return relativeBranches[op]
}
