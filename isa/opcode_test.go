package isa

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpcodeTableUnique(t *testing.T) {
	assert := assert.New(t)

	for _, format := range Formats() {
		seen := map[uint16]string{}
		for _, name := range format.Mnemonics() {
			code, err := format.Opcode(name)
			assert.NoError(err, name)
			assert.LessOrEqual(code, layouts[format].opMask, name)

			if base := canonical(name); base != name {
				alias, err := format.Opcode(base)
				assert.NoError(err, name)
				assert.Equal(alias, code, name)
				continue
			}

			other, dup := seen[code]
			assert.False(dup, "format %v: %v and %v share opcode %03b", format, name, other, code)
			seen[code] = name

			mnemonic, ok := format.Mnemonic(code)
			assert.True(ok, name)
			assert.Equal(name, mnemonic)
		}
	}
}

func TestOpcodeMnemonicsDisjoint(t *testing.T) {
	assert := assert.New(t)

	owner := map[string]Format{}
	for _, format := range Formats() {
		for _, name := range format.Mnemonics() {
			other, dup := owner[name]
			assert.False(dup, "%v in formats %v and %v", name, other, format)
			owner[name] = format
		}
	}
}

func TestOpcodeMnemonicsOrder(t *testing.T) {
	assert := assert.New(t)

	for _, format := range Formats() {
		names := format.Mnemonics()
		for n, short := range names {
			for _, long := range names[n+1:] {
				assert.False(strings.HasPrefix(long, short),
					"format %v: %v precedes %v", format, short, long)
			}
		}
	}

	assert.Equal("B", FORMAT_V.Mnemonics()[len(FORMAT_V.Mnemonics())-1])
}

func TestOpcodeLookup(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		format Format
		name   string
		code   uint16
	}){
		{FORMAT_I, "ADD", 0b100},
		{FORMAT_I, "MUL", 0b110},
		{FORMAT_I, "MOV", 0b111},
		{FORMAT_II, "ROT", 0b100},
		{FORMAT_III, "LI", 0b1000},
		{FORMAT_III, "LIMI", 0b1001},
		{FORMAT_IV, "TST", 0b111},
		{FORMAT_IV, "SET", 0b111},
		{FORMAT_IV, "ROI", 0b110},
		{FORMAT_V, "B", 0b000},
		{FORMAT_V, "BN", 0b111},
		{FORMAT_VI, "JN", 0b111},
	}

	for _, entry := range table {
		code, err := entry.format.Opcode(entry.name)
		assert.NoError(err, entry.name)
		assert.Equal(entry.code, code, entry.name)
	}

	_, err := FORMAT_IV.Opcode("TEST")
	var unknown ErrOpcodeUnknown
	assert.True(errors.As(err, &unknown))
	assert.Equal(ErrOpcodeUnknown{Format: FORMAT_IV, Mnemonic: "TEST"}, unknown)
	assert.Equal("format IV has no mnemonic TEST", err.Error())

	_, err = FORMAT_I.Opcode("JMP")
	assert.Error(err)

	_, err = Format(9).Opcode("MOV")
	assert.Error(err)

	name, ok := FORMAT_IV.Mnemonic(0b111)
	assert.True(ok)
	assert.Equal("TST", name)

	_, ok = FORMAT_III.Mnemonic(0b0111)
	assert.False(ok)
}

func TestFormatOf(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		word   uint16
		format Format
		ok     bool
	}){
		{0x0000, FORMAT_I, true},
		{0x7fff, FORMAT_I, true},
		{0x8000, FORMAT_II, true},
		{0xbfff, FORMAT_II, true},
		{0xc000, FORMAT_III, true},
		{0xdfff, FORMAT_III, true},
		{0xe000, FORMAT_IV, true},
		{0xe7ff, FORMAT_IV, true},
		{0xe800, FORMAT_V, true},
		{0xefff, FORMAT_V, true},
		{0xf000, FORMAT_VI, true},
		{0xf7ff, FORMAT_VI, true},
		{0xf800, 0, false},
		{0xffff, 0, false},
	}

	for _, entry := range table {
		format, ok := FormatOf(entry.word)
		assert.Equal(entry.ok, ok, "%04x", entry.word)
		if ok {
			assert.Equal(entry.format, format, "%04x", entry.word)
		}
	}

	assert.Equal("III", FORMAT_III.String())
	assert.Equal("VI", FORMAT_VI.String())
}
