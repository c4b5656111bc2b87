package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgram_Debug(t *testing.T) {
	assert := assert.New(t)

	asm, _ := quietAssembler()
	prog, err := asm.Assemble(demoSource)
	require.NoError(t, err)

	table := [...]struct {
		offset int
		lineno int
		index  int
	}{
		{0, 3, 0},
		{1, 3, 1},
		{2, 5, 0},
		{3, 5, 1},
		{4, 6, 0},
		{5, 8, 0},
	}

	for _, entry := range table {
		dbg := prog.Debug(entry.offset)
		if assert.NotNil(dbg.Opcode, entry.offset) {
			assert.Equal(entry.lineno, dbg.LineNo, entry.offset)
			assert.Equal(entry.index, dbg.Index, entry.offset)
		}
	}

	dbg := prog.Debug(6)
	assert.Nil(dbg.Opcode)
	assert.Equal(0, dbg.Index)

	dbg = prog.Debug(-1)
	assert.Nil(dbg.Opcode)
}

func TestProgram_Codes(t *testing.T) {
	assert := assert.New(t)

	asm, _ := quietAssembler()
	prog, err := asm.Assemble(demoSource)
	require.NoError(t, err)

	var offsets []int
	for offset := range prog.Codes() {
		offsets = append(offsets, offset)
		if offset == 3 {
			break
		}
	}
	assert.Equal([]int{0, 1, 2, 3}, offsets)

	assert.Equal([]byte{0x70, 0x50, 0x20, 0x00, 0xd0, 0x03, 0x00, 0x07, 0xf0, 0xf8, 0xe6, 0x00}, prog.Binary())

	empty := &Program{}
	assert.Nil(empty.Words())
	assert.Nil(empty.Binary())
}
