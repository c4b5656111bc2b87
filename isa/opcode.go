package isa

import (
	"cmp"
	"slices"
)

// Format is an instruction format.
type Format int

//go:generate go tool stringer -linecomment -type=Format
const (
	FORMAT_I   = Format(0) // I
	FORMAT_II  = Format(1) // II
	FORMAT_III = Format(2) // III
	FORMAT_IV  = Format(3) // IV
	FORMAT_V   = Format(4) // V
	FORMAT_VI  = Format(5) // VI
)

const (
	SHIFT_MAX    = 15    // Largest Format II shift amount.
	MNEMONIC_ROI = "ROI" // Format IV mnemonic without a source operand.
)

// layout describes the fixed prefix and opcode field of a format.
type layout struct {
	prefix  uint16 // Fixed high bits.
	mask    uint16 // Mask of the fixed high bits.
	shift   uint   // Position of the opcode field.
	opMask  uint16 // Width mask of the opcode field.
	reserve uint16 // Bits that must be zero.
}

var layouts = [...]layout{
	FORMAT_I:   {prefix: 0x0000, mask: 0x8000, shift: 12, opMask: 0x7},
	FORMAT_II:  {prefix: 0x8000, mask: 0xc000, shift: 11, opMask: 0x7, reserve: 0x0400},
	FORMAT_III: {prefix: 0xc000, mask: 0xe000, shift: 9, opMask: 0xf, reserve: 0x01c0},
	FORMAT_IV:  {prefix: 0xe000, mask: 0xf800, shift: 8, opMask: 0x7, reserve: 0x00c0},
	FORMAT_V:   {prefix: 0xe800, mask: 0xf800, shift: 8, opMask: 0x7, reserve: 0x00c0},
	FORMAT_VI:  {prefix: 0xf000, mask: 0xf800, shift: 8, opMask: 0x7},
}

// opcodeTable maps each format's mnemonics to their format-scoped opcode.
var opcodeTable = [...]map[string]uint16{
	FORMAT_I: {
		"OR":  0b000,
		"AND": 0b001,
		"XOR": 0b010,
		"CMP": 0b011,
		"ADD": 0b100, // Provisional: the source table gave ADD and MUL the same code.
		"STR": 0b101,
		"MUL": 0b110,
		"MOV": 0b111,
	},
	FORMAT_II: {
		"SLL": 0b000,
		"SRL": 0b001,
		"SLA": 0b010,
		"SRA": 0b011,
		"ROT": 0b100,
	},
	FORMAT_III: {
		"ORI":  0b0000,
		"ANDI": 0b0001,
		"XORI": 0b0010,
		"CI":   0b0011,
		"ADDI": 0b0100,
		"STRI": 0b0101,
		"MULI": 0b0110,
		"LI":   0b1000,
		"LIMI": 0b1001,
	},
	FORMAT_IV: {
		"NOT":  0b000,
		"INC":  0b001,
		"DEC":  0b010,
		"CLR":  0b011,
		"PUSH": 0b100,
		"PULL": 0b101,
		"ROI":  0b110,
		"TST":  0b111,
		"SET":  0b111,
	},
	FORMAT_V: {
		"B":   0b000,
		"BEQ": 0b001,
		"BNE": 0b010,
		"BC":  0b011,
		"BNC": 0b100,
		"BGT": 0b101,
		"BLT": 0b110,
		"BN":  0b111,
	},
	FORMAT_VI: {
		"JMP": 0b000,
		"JEQ": 0b001,
		"JNE": 0b010,
		"JC":  0b011,
		"JNC": 0b100,
		"JGT": 0b101,
		"JLT": 0b110,
		"JN":  0b111,
	},
}

// opcodeAlias maps alternate spellings to the canonical mnemonic sharing
// their opcode.
var opcodeAlias = map[string]string{
	"SET": "TST",
}

var (
	mnemonicTable [len(opcodeTable)]map[uint16]string // Canonical mnemonic by opcode.
	mnemonicOrder [len(opcodeTable)][]string          // Mnemonics, longest first.
)

func init() {
	for format, table := range opcodeTable {
		mnemonicTable[format] = make(map[uint16]string, len(table))
		for name, code := range table {
			if _, alias := opcodeAlias[name]; !alias {
				mnemonicTable[format][code] = name
			}
			mnemonicOrder[format] = append(mnemonicOrder[format], name)
		}
		slices.SortFunc(mnemonicOrder[format], func(a, b string) int {
			if n := cmp.Compare(len(b), len(a)); n != 0 {
				return n
			}
			return cmp.Compare(a, b)
		})
	}
}

// Formats returns all instruction formats in dispatch order.
func Formats() []Format {
	return []Format{FORMAT_I, FORMAT_II, FORMAT_III, FORMAT_IV, FORMAT_V, FORMAT_VI}
}

// Valid returns true for a defined format.
func (format Format) Valid() bool {
	return format >= FORMAT_I && format <= FORMAT_VI
}

// Opcode returns the format-scoped opcode of a mnemonic.
func (format Format) Opcode(mnemonic string) (code uint16, err error) {
	if !format.Valid() {
		err = ErrOpcodeUnknown{Format: format, Mnemonic: mnemonic}
		return
	}

	code, ok := opcodeTable[format][mnemonic]
	if !ok {
		err = ErrOpcodeUnknown{Format: format, Mnemonic: mnemonic}
	}
	return
}

// Mnemonic returns the canonical mnemonic of an opcode.
func (format Format) Mnemonic(code uint16) (mnemonic string, ok bool) {
	if !format.Valid() {
		return
	}

	mnemonic, ok = mnemonicTable[format][code]
	return
}

// Mnemonics returns every mnemonic of the format, aliases included, ordered
// so that no mnemonic is preceded by one of its own prefixes.
func (format Format) Mnemonics() []string {
	if !format.Valid() {
		return nil
	}

	return slices.Clone(mnemonicOrder[format])
}

// canonical returns the canonical spelling of a mnemonic.
func canonical(mnemonic string) string {
	if name, ok := opcodeAlias[mnemonic]; ok {
		return name
	}
	return mnemonic
}

// FormatOf returns the format selected by the prefix of an opcode word.
func FormatOf(word uint16) (format Format, ok bool) {
	for _, format = range Formats() {
		l := layouts[format]
		if word&l.mask == l.prefix {
			ok = true
			return
		}
	}

	return
}

// opcodeWord returns the opcode word of a format with only the prefix and
// opcode field set.
func (format Format) opcodeWord(code uint16) uint16 {
	l := layouts[format]
	return l.prefix | ((code & l.opMask) << l.shift)
}

// opcodeOf extracts the opcode field of a word.
func (format Format) opcodeOf(word uint16) uint16 {
	l := layouts[format]
	return (word >> l.shift) & l.opMask
}
