package isa

// Decode unpacks the instruction at the start of words, returning it with
// the number of words it occupies.
//
// Next-word operands decode as RawAddress and Format VI displacements as
// RelativeAddress, so Encode of the result reproduces words[:n].
func Decode(words []uint16) (inst Instruction, n int, err error) {
	if len(words) == 0 {
		err = ErrWordsMissing
		return
	}

	word := words[0]
	n = 1

	format, ok := FormatOf(word)
	if !ok || word&layouts[format].reserve != 0 {
		err = ErrOpcode(word)
		return
	}

	op, ok := format.Mnemonic(format.opcodeOf(word))
	if !ok {
		err = ErrOpcode(word)
		return
	}

	next := func() (value uint16, err error) {
		if n >= len(words) {
			err = ErrWordsMissing
			return
		}
		value = words[n]
		n++
		return
	}

	// operand decodes a 6-bit field; the address of a next-word operand is
	// filled in by the caller, in extension word order.
	operand := func(bits uint16) (opnd Operand, err error) {
		opnd = Operand{Mode: Mode((bits >> 4) & 0x3), Register: Register(bits & 0xf)}
		if opnd.Mode == MODE_NEXT_WORD && opnd.Register != 0 {
			err = ErrOpcode(word)
		}
		return
	}

	address := func(opnd *Operand) (err error) {
		if opnd.Mode != MODE_NEXT_WORD {
			return
		}
		value, err := next()
		if err != nil {
			return
		}
		opnd.Address = RawAddress(value)
		return
	}

	var dst Operand
	if format != FORMAT_VI {
		dst, err = operand(word & 0x3f)
		if err != nil {
			return
		}
	}

	switch format {
	case FORMAT_I:
		var src Operand
		src, err = operand((word >> 6) & 0x3f)
		if err != nil {
			return
		}
		if err = address(&src); err != nil {
			return
		}
		if err = address(&dst); err != nil {
			return
		}
		inst = InstructionI{Op: op, Src: src, Dst: dst}
	case FORMAT_II:
		if err = address(&dst); err != nil {
			return
		}
		inst = InstructionII{Op: op, Shift: uint8((word >> 6) & 0xf), Dst: dst}
	case FORMAT_III:
		var imm uint16
		imm, err = next()
		if err != nil {
			return
		}
		if err = address(&dst); err != nil {
			return
		}
		inst = InstructionIII{Op: op, Dst: dst, Immediate: imm}
	case FORMAT_IV:
		if err = address(&dst); err != nil {
			return
		}
		inst = InstructionIV{Op: op, Dst: dst}
	case FORMAT_V:
		if err = address(&dst); err != nil {
			return
		}
		inst = InstructionV{Op: op, Dst: dst}
	case FORMAT_VI:
		inst = InstructionVI{Op: op, Displacement: RelativeAddress(int8(uint8(word)))}
	}

	return
}
