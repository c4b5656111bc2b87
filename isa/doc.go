// Package isa models the 16-bit instruction set targeted by asm16.
//
// The machine has sixteen general-purpose registers (R0-R15) and four
// addressing modes: direct register, next word, register indirect and
// register indirect with post-increment. Instructions come in six formats,
// each identified by a fixed prefix in the high bits of the opcode word.
// Next-word operands and Format III immediates are carried in extension
// words that follow the opcode word.
//
// Encode packs an Instruction into its words against a SymbolTable, and
// Decode unpacks words back into an Instruction.
package isa
