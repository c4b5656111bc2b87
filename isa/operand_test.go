package isa

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegister(t *testing.T) {
	assert := assert.New(t)

	for n := range REGISTER_COUNT {
		reg := Register(n)
		assert.True(reg.Valid())
		assert.Equal(fmt.Sprintf("R%d", n), reg.String())
	}

	assert.False(Register(16).Valid())
	assert.False(Register(255).Valid())
}

func TestOperandBits(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		operand Operand
		mode    uint16
		reg     uint16
		text    string
	}){
		{Direct(5), 0b00, 5, "R5"},
		{NextWord(SymbolicAddress("Data")), 0b01, 0, "@Data"},
		{NextWord(RawAddress(0x1102)), 0b01, 0, "0x1102"},
		{Indirect(15), 0b10, 15, "*R15"},
		{IndirectIncrement(15), 0b11, 15, "*R15+"},
	}

	for _, entry := range table {
		assert.Equal(entry.mode, entry.operand.ModeBits(), entry.text)
		assert.Equal(entry.reg, entry.operand.RegisterBits(), entry.text)
		assert.Equal(entry.text, entry.operand.String())

		bits, err := entry.operand.bits()
		assert.NoError(err, entry.text)
		assert.Equal(entry.mode<<4|entry.reg, bits, entry.text)
	}
}

func TestOperandBitsInvalid(t *testing.T) {
	assert := assert.New(t)

	_, err := Direct(16).bits()
	assert.ErrorIs(err, ErrRegisterInvalid)

	_, err = IndirectIncrement(200).bits()
	assert.ErrorIs(err, ErrRegisterInvalid)

	_, err = NextWord(nil).bits()
	assert.ErrorIs(err, ErrAddressMissing)

	_, err = Operand{Mode: Mode(4)}.bits()
	assert.ErrorIs(err, ErrModeInvalid)

	// The register field of a next word operand is never encoded.
	_, err = Operand{Mode: MODE_NEXT_WORD, Register: 99, Address: RawAddress(1)}.bits()
	assert.NoError(err)
}

func TestModeString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("direct", MODE_DIRECT.String())
	assert.Equal("next", MODE_NEXT_WORD.String())
	assert.Equal("indirect", MODE_INDIRECT.String())
	assert.Equal("increment", MODE_INDIRECT_INCREMENT.String())
	assert.Equal("Mode(7)", Mode(7).String())
}
