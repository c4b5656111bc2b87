// Package parser reads assembly source text into instructions and labels.
//
// Each exported parser accepts a whole line or literal, allowing trailing
// blanks only. Failures are *ErrParse values naming the grammar rules that
// were being parsed; a literal of the right shape that does not fit its
// field wraps an ErrRange.
package parser

import (
	"strings"

	"github.com/ezrec/asm16/isa"
)

// ParseLine parses one instruction line. Leading blanks are ignored.
func ParseLine(line string) (inst isa.Instruction, err error) {
	return complete(instruction, strings.TrimLeft(line, " \t"))
}

// ParseLabel parses a '(0xADDR)Name' label line.
func ParseLabel(line string) (lbl Label, err error) {
	return complete[Label](label, line)
}

// ParseOperand parses an operand in any addressing mode.
func ParseOperand(text string) (op isa.Operand, err error) {
	return complete(operand, text)
}

// ParseRegister parses a register name 'R0' through 'R15'.
func ParseRegister(text string) (reg isa.Register, err error) {
	return complete[isa.Register](register, text)
}

// ParseAddress parses an absolute '@name' or '0xADDR' address.
func ParseAddress(text string) (addr isa.Address, err error) {
	return complete(address, text)
}

// ParseRelative parses a signed hex, signed decimal or symbolic offset.
func ParseRelative(text string) (addr isa.Address, err error) {
	return complete(relative, text)
}

// ParseImmediate parses an optionally signed 0x prefixed 16-bit immediate.
func ParseImmediate(text string) (imm uint16, err error) {
	return complete[uint16](signedHex16, text)
}
