// Package vm implements the Traffic Processing Unit: a deterministic,
// cycle-counted 16-bit virtual machine.
//
// A VM owns ten registers, a 16-cell stack, 128 cells of RAM, and an
// immutable ROM of decoded instructions. It advances one instruction per
// Step call, charges cycles for the work done (including a one-cycle
// penalty for every register-valued operand it reads), and halts on the
// first fault or explicit HLT. All arithmetic is unsigned and wraps
// modulo 2^16.
package vm
