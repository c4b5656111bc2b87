package isa

// Encode packs an instruction into its opcode word followed by its
// extension words.
//
// Extension words follow the opcode word in a fixed order: the Format I
// source next-word address, then the Format III immediate, then the
// destination next-word address. Symbolic addresses are resolved against
// the symbol table, which is never modified. A Format VI displacement that
// is not a literal RelativeAddress leaves the displacement field zero.
func Encode(inst Instruction, symbols SymbolTable) (words []uint16, err error) {
	if inst == nil {
		err = ErrInstructionInvalid
		return
	}

	format := inst.Format()
	code, err := format.Opcode(inst.Mnemonic())
	if err != nil {
		return
	}

	word := format.opcodeWord(code)

	var src, dst *Operand
	var imms []uint16

	switch in := inst.(type) {
	case InstructionI:
		src = &in.Src
		dst = &in.Dst
	case InstructionII:
		if in.Shift > SHIFT_MAX {
			err = ErrShiftInvalid
			return
		}
		word |= uint16(in.Shift) << 6
		dst = &in.Dst
	case InstructionIII:
		dst = &in.Dst
		imms = append(imms, in.Immediate)
	case InstructionIV:
		dst = &in.Dst
	case InstructionV:
		dst = &in.Dst
	case InstructionVI:
		// An unresolved displacement encodes as zero.
		field, _ := ResolveRelative(in.Displacement)
		word |= uint16(field)
	default:
		err = ErrInstructionInvalid
		return
	}

	if src != nil {
		var bits uint16
		bits, err = src.bits()
		if err != nil {
			return
		}
		word |= bits << 6
	}

	if dst != nil {
		var bits uint16
		bits, err = dst.bits()
		if err != nil {
			return
		}
		word |= bits
	}

	words = append(words, word)

	if src != nil && src.Mode == MODE_NEXT_WORD {
		var value uint16
		value, err = Resolve(src.Address, symbols)
		if err != nil {
			words = nil
			return
		}
		words = append(words, value)
	}

	words = append(words, imms...)

	if dst != nil && dst.Mode == MODE_NEXT_WORD {
		var value uint16
		value, err = Resolve(dst.Address, symbols)
		if err != nil {
			words = nil
			return
		}
		words = append(words, value)
	}

	return
}
