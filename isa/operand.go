package isa

// Mode is an addressing mode.
type Mode int

//go:generate go tool stringer -linecomment -type=Mode
const (
	MODE_DIRECT             = Mode(0) // direct
	MODE_NEXT_WORD          = Mode(1) // next
	MODE_INDIRECT           = Mode(2) // indirect
	MODE_INDIRECT_INCREMENT = Mode(3) // increment
)

// Valid returns true if the mode fits the 2-bit mode field.
func (mode Mode) Valid() bool {
	return mode >= MODE_DIRECT && mode <= MODE_INDIRECT_INCREMENT
}

// Operand is an addressing-mode tagged source or destination.
type Operand struct {
	Mode     Mode
	Register Register // Register, unused for MODE_NEXT_WORD.
	Address  Address  // Extension word address, only for MODE_NEXT_WORD.
}

// Direct operates on the value held in a register.
func Direct(reg Register) Operand {
	return Operand{Mode: MODE_DIRECT, Register: reg}
}

// NextWord operates on the word following the opcode word.
func NextWord(addr Address) Operand {
	return Operand{Mode: MODE_NEXT_WORD, Address: addr}
}

// Indirect operates on memory pointed to by a register.
func Indirect(reg Register) Operand {
	return Operand{Mode: MODE_INDIRECT, Register: reg}
}

// IndirectIncrement operates on memory pointed to by a register, then
// increments the register.
func IndirectIncrement(reg Register) Operand {
	return Operand{Mode: MODE_INDIRECT_INCREMENT, Register: reg}
}

// ModeBits returns the 2-bit addressing mode field.
func (op Operand) ModeBits() uint16 {
	return uint16(op.Mode) & 0x3
}

// RegisterBits returns the 4-bit register field, zero for next-word operands.
func (op Operand) RegisterBits() uint16 {
	if op.Mode == MODE_NEXT_WORD {
		return 0
	}
	return uint16(op.Register) & 0xf
}

// bits returns the 6-bit mode and register field after checking that both
// fit without truncation.
func (op Operand) bits() (bits uint16, err error) {
	switch {
	case !op.Mode.Valid():
		err = ErrModeInvalid
		return
	case op.Mode == MODE_NEXT_WORD:
		if op.Address == nil {
			err = ErrAddressMissing
			return
		}
	case !op.Register.Valid():
		err = ErrRegisterInvalid
		return
	}

	bits = (op.ModeBits() << 4) | op.RegisterBits()
	return
}

// String returns the assembly language form of the operand.
func (op Operand) String() string {
	switch op.Mode {
	case MODE_NEXT_WORD:
		if op.Address == nil {
			return "@?"
		}
		return op.Address.String()
	case MODE_INDIRECT:
		return "*" + op.Register.String()
	case MODE_INDIRECT_INCREMENT:
		return "*" + op.Register.String() + "+"
	default:
		return op.Register.String()
	}
}
