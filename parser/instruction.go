package parser

import (
	"slices"
	"strconv"
	"strings"

	"github.com/ezrec/asm16/isa"
)

// mnemonics are the mnemonics accepted by each generic format parser,
// ordered so that no mnemonic is shadowed by one of its prefixes.
var mnemonics = func() (table map[isa.Format][]string) {
	table = make(map[isa.Format][]string, len(isa.Formats()))
	for _, format := range isa.Formats() {
		table[format] = slices.DeleteFunc(format.Mnemonics(), func(name string) bool {
			return name == isa.MNEMONIC_ROI
		})
	}
	return
}()

// mnemonic consumes one of the mnemonics of a format, followed by blanks.
func mnemonic(input string, format isa.Format) (rest string, op string, err error) {
	for _, name := range mnemonics[format] {
		if tail, ok := strings.CutPrefix(input, name); ok {
			rest, err = space1(tail)
			if err != nil {
				return input, "", err
			}
			return rest, name, nil
		}
	}

	err = fail(input, ErrExpected("format "+format.String()+" mnemonic"))
	return input, "", err
}

// shift parses a decimal shift count.
func shift(input string) (rest string, count uint8, err error) {
	rest, text, err := digits(input)
	if err != nil {
		return
	}

	n, err := strconv.ParseUint(text, 10, 8)
	if err != nil || n > isa.SHIFT_MAX {
		err = fail(input, ErrRange{What: "shift count", Text: text})
		return input, 0, err
	}

	return rest, uint8(n), nil
}

// formatI parses 'OP src, dst'.
func formatI(input string) (rest string, inst isa.Instruction, err error) {
	defer wrap("format I", input, &rest, &err)

	rest, op, err := mnemonic(input, isa.FORMAT_I)
	if err != nil {
		return
	}
	rest, src, err := operand(rest)
	if err != nil {
		return
	}
	rest, err = comma(rest)
	if err != nil {
		return
	}
	rest, dst, err := operand(rest)
	if err != nil {
		return
	}

	inst = isa.InstructionI{Op: op, Src: src, Dst: dst}
	return
}

// formatII parses 'OP count, dst'.
func formatII(input string) (rest string, inst isa.Instruction, err error) {
	defer wrap("format II", input, &rest, &err)

	rest, op, err := mnemonic(input, isa.FORMAT_II)
	if err != nil {
		return
	}
	rest, count, err := shift(rest)
	if err != nil {
		return
	}
	rest, err = comma(rest)
	if err != nil {
		return
	}
	rest, dst, err := operand(rest)
	if err != nil {
		return
	}

	inst = isa.InstructionII{Op: op, Shift: count, Dst: dst}
	return
}

// formatIII parses 'OP dst, 0xIMM', where the immediate may be signed.
func formatIII(input string) (rest string, inst isa.Instruction, err error) {
	defer wrap("format III", input, &rest, &err)

	rest, op, err := mnemonic(input, isa.FORMAT_III)
	if err != nil {
		return
	}
	rest, dst, err := operand(rest)
	if err != nil {
		return
	}
	rest, err = comma(rest)
	if err != nil {
		return
	}
	rest, imm, err := signedHex16(rest)
	if err != nil {
		return
	}

	inst = isa.InstructionIII{Op: op, Dst: dst, Immediate: imm}
	return
}

// formatIV parses 'OP dst'.
func formatIV(input string) (rest string, inst isa.Instruction, err error) {
	defer wrap("format IV", input, &rest, &err)

	rest, op, err := mnemonic(input, isa.FORMAT_IV)
	if err != nil {
		return
	}
	rest, dst, err := operand(rest)
	if err != nil {
		return
	}

	inst = isa.InstructionIV{Op: op, Dst: dst}
	return
}

// roi parses the operand-less 'ROI', which encodes as Format IV on R0.
func roi(input string) (rest string, inst isa.Instruction, err error) {
	rest, err = tag(input, isa.MNEMONIC_ROI)
	if err != nil {
		return
	}

	inst = isa.InstructionIV{Op: isa.MNEMONIC_ROI, Dst: isa.Direct(0)}
	return
}

// formatV parses 'OP dst'.
func formatV(input string) (rest string, inst isa.Instruction, err error) {
	defer wrap("format V", input, &rest, &err)

	rest, op, err := mnemonic(input, isa.FORMAT_V)
	if err != nil {
		return
	}
	rest, dst, err := operand(rest)
	if err != nil {
		return
	}

	inst = isa.InstructionV{Op: op, Dst: dst}
	return
}

// formatVI parses 'OP offset'.
func formatVI(input string) (rest string, inst isa.Instruction, err error) {
	defer wrap("format VI", input, &rest, &err)

	rest, op, err := mnemonic(input, isa.FORMAT_VI)
	if err != nil {
		return
	}
	rest, disp, err := relative(rest)
	if err != nil {
		return
	}

	inst = isa.InstructionVI{Op: op, Displacement: disp}
	return
}

// instruction tries each format in turn. A mnemonic shared as a prefix
// across formats, such as OR and ORI, fails in the earlier format and
// is retried by the next.
var instruction = alt[isa.Instruction]("instruction",
	formatI,
	formatII,
	formatIII,
	formatIV,
	roi,
	formatV,
	formatVI,
)
