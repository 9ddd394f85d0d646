// Package asm lowers RGAL assembly source into a *vm.Program.
//
// RGAL has no labels, equates, macros, or expressions: one instruction
// per non-blank, non-comment source line, and the line's position in
// the assembled program is its own jump target. Assemble is therefore
// a single pass with no linking step.
package asm
