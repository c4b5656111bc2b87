package isa

import (
	"errors"

	"github.com/ezrec/asm16/translate"
)

var f = translate.From

var (
	// Operand errors
	ErrRegisterInvalid = errors.New(f("register invalid"))
	ErrModeInvalid     = errors.New(f("addressing mode invalid"))
	ErrAddressMissing  = errors.New(f("address missing"))
	ErrAddressInvalid  = errors.New(f("address is not absolute"))

	// Instruction errors
	ErrShiftInvalid       = errors.New(f("shift amount invalid"))
	ErrInstructionInvalid = errors.New(f("instruction invalid"))
	ErrWordsMissing       = errors.New(f("extension word missing"))
)

// ErrLabelMissing is returned when a symbolic address is not in the symbol table.
type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

// ErrOpcodeUnknown is returned when a mnemonic has no opcode in its format.
type ErrOpcodeUnknown struct {
	Format   Format
	Mnemonic string
}

func (err ErrOpcodeUnknown) Error() string {
	return f("format %v has no mnemonic %v", err.Format.String(), err.Mnemonic)
}

// ErrRelativeUnresolved is returned by ResolveRelative when a displacement
// has no literal 8-bit value. Encode uses a zero field in its place.
type ErrRelativeUnresolved struct {
	Address Address
}

func (err ErrRelativeUnresolved) Error() string {
	if err.Address == nil {
		return f("relative displacement missing")
	}
	return f("relative displacement %v unresolved", err.Address.String())
}

// ErrOpcode is returned by Decode for a word that is not a valid opcode word.
type ErrOpcode uint16

func (eo ErrOpcode) Error() string {
	return f("bad opcode 0x%04x", uint16(eo))
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}
