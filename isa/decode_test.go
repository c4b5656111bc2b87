package isa

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecode(t *testing.T) {
	assert := assert.New(t)

	for _, entry := range encodeTable {
		inst, n, err := Decode(entry.words)
		assert.NoError(err, entry.name)
		assert.Equal(len(entry.words), n, entry.name)

		words, err := Encode(inst, nil)
		assert.NoError(err, entry.name)
		assert.Equal(entry.words, words, entry.name)
	}
}

func TestDecodeStream(t *testing.T) {
	assert := assert.New(t)

	stream := []uint16{0x7050, 0x2000, 0xd003, 0x0007, 0xf0f8, 0xe704}

	var texts []string
	for len(stream) > 0 {
		inst, n, err := Decode(stream)
		assert.NoError(err)
		if err != nil {
			return
		}
		texts = append(texts, inst.String())
		stream = stream[n:]
	}

	assert.Equal([]string{
		"MOV R1, 0x2000",
		"LI R3, 0x7",
		"JMP -8",
		"TST R4",
	}, texts)
}

func TestDecodeErrors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name  string
		words []uint16
		err   error
	}){
		{"empty", nil, ErrWordsMissing},
		{"prefix", []uint16{0xf800}, ErrOpcode(0xf800)},
		{"iii_unused", []uint16{0xce00, 0}, ErrOpcode(0xce00)},
		{"ii_unused", []uint16{0xa800}, ErrOpcode(0xa800)},
		{"ii_reserved", []uint16{0x8400}, ErrOpcode(0x8400)},
		{"iii_reserved", []uint16{0xd043, 0}, ErrOpcode(0xd043)},
		{"iv_reserved", []uint16{0xe440}, ErrOpcode(0xe440)},
		{"next_register", []uint16{0x7051, 0x2000}, ErrOpcode(0x7051)},
		{"missing_next", []uint16{0x7050}, ErrWordsMissing},
		{"missing_imm", []uint16{0xd003}, ErrWordsMissing},
		{"missing_second", []uint16{0x4410, 0x0010}, ErrWordsMissing},
	}

	for _, entry := range table {
		_, _, err := Decode(entry.words)
		assert.True(errors.Is(err, entry.err), "%v: %v", entry.name, err)
	}

	var bad ErrOpcode
	_, _, err := Decode([]uint16{0xffff})
	assert.True(errors.As(err, &bad))
	assert.Equal(ErrOpcode(0xffff), bad)
	assert.Equal("bad opcode 0xffff", err.Error())
}

func FuzzDecode(f *testing.F) {
	for _, entry := range encodeTable {
		words := append(entry.words, 0x5a5a, 0xa5a5)
		f.Add(words[0], words[1], words[2])
	}
	f.Add(uint16(0xffff), uint16(0), uint16(0))

	f.Fuzz(func(t *testing.T, w0, w1, w2 uint16) {
		assert := assert.New(t)

		words := []uint16{w0, w1, w2}
		inst, n, err := Decode(words)
		if err != nil {
			return
		}

		assert.True(n >= 1 && n <= 3)

		encoded, err := Encode(inst, nil)
		assert.NoError(err, inst.String())
		assert.Equal(words[:n], encoded, inst.String())
	})
}
