package vm

import (
	"fmt"
	"log"

	"github.com/redlinelabs/tpu/bus"
)

// DefaultSleepClamp is the maximum number of extra cycles SLP will charge.
const DefaultSleepClamp = 65535

// VM is one Traffic Processing Unit: ten registers, a 16-cell stack,
// 128 cells of RAM, an immutable ROM, and a program counter. A VM is
// always constructed against a bus.Bus and never mutates its ROM.
type VM struct {
	// Verbose enables per-step tracing via the standard log package.
	Verbose bool

	// SleepClamp bounds the extra cycles SLP can charge, so a program
	// cannot sleep forever on a host that treats cycles as wall time.
	SleepClamp uint16

	reg   [numRegisters]uint16
	stack dataStack
	ram   [128]uint16
	pc    uint16
	rom   *Program

	bus bus.Bus

	halted bool
	fault  *Fault

	cycles uint64
}

// New constructs a VM ready to run rom against bus, with all registers,
// RAM, and the stack zeroed.
func New(rom *Program, b bus.Bus) *VM {
	v := &VM{
		SleepClamp: DefaultSleepClamp,
		rom:        rom,
		bus:        b,
	}
	return v
}

// Reset restores the VM to its initial post-construction state:
// registers, RAM, and stack cleared, SP=0, PC=0, halt=false, cycles=0.
// It is legal to call Reset on a running VM as well as a halted one.
func (v *VM) Reset() {
	v.reg = [numRegisters]uint16{}
	v.stack.reset()
	v.ram = [128]uint16{}
	v.pc = 0
	v.halted = false
	v.fault = nil
	v.cycles = 0
}

// IsHalted reports whether the VM has stopped (fault or explicit HLT).
func (v *VM) IsHalted() bool {
	return v.halted
}

// FaultLine returns the ROM line the VM halted at, and true, if the VM
// is halted. It returns (0, false) while running.
func (v *VM) FaultLine() (line uint16, ok bool) {
	if !v.halted {
		return 0, false
	}
	return v.pc, true
}

// LastFault returns the Fault that halted the VM, or nil if the VM is
// still running (or has never run).
func (v *VM) LastFault() *Fault {
	return v.fault
}

// ReadRegister returns a register's current value, for debugger-style
// inspection.
func (v *VM) ReadRegister(r Reg) uint16 {
	return v.reg[r]
}

// ReadRAM returns a RAM cell's value, without bounds-fault semantics.
// Callers are expected to only pass addresses in 0..127.
func (v *VM) ReadRAM(addr uint16) uint16 {
	return v.ram[addr]
}

// ReadStack returns the stack cell at logical depth i below the top
// (i==0 is the top of stack), and whether that depth holds a value.
func (v *VM) ReadStack(i uint16) (uint16, bool) {
	return v.stack.peek(i)
}

// PC returns the current program counter.
func (v *VM) PC() uint16 { return v.pc }

// SP returns the current stack pointer.
func (v *VM) SP() uint16 { return v.stack.sp }

// Cycles returns the total cycles consumed since the last Reset.
func (v *VM) Cycles() uint64 { return v.cycles }

// String renders a compact register/flag dump, useful for -v tracing.
func (v *VM) String() string {
	state := "running"
	if v.halted {
		state = "halted"
		if v.fault != nil {
			state = fmt.Sprintf("halted(%v)", v.fault.Kind)
		}
	}
	return fmt.Sprintf(
		"pc=%04d sp=%02d a=%04x x=%04x y=%04x r0=%04x r1=%04x r2=%04x r3=%04x r4=%04x r5=%04x r6=%04x cycles=%d [%s]",
		v.pc, v.stack.sp,
		v.reg[RegA], v.reg[RegX], v.reg[RegY],
		v.reg[RegR0], v.reg[RegR1], v.reg[RegR2], v.reg[RegR3], v.reg[RegR4], v.reg[RegR5], v.reg[RegR6],
		v.cycles, state,
	)
}

func (v *VM) trace(instr Instruction) {
	if !v.Verbose {
		return
	}
	log.Printf("tpu: %04d: %v %v", v.pc, instr.Op, instr.Operands)
}

// raiseFault halts the VM at the current PC with the given fault kind.
// It never advances PC: the offending line remains observable via
// FaultLine.
func (v *VM) raiseFault(kind FaultKind) {
	v.halted = true
	v.fault = &Fault{Kind: kind, Line: v.pc}
}
