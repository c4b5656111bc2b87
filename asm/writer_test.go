package asm

import (
	"bytes"
	"testing"

	"github.com/ezrec/asm16/isa"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter(t *testing.T) {
	assert := assert.New(t)

	asm, _ := quietAssembler()
	prog, err := asm.Assemble(demoSource)
	require.NoError(t, err)

	table := [...]struct {
		format string
		output string
	}{
		{FORMAT_HEX, "7050\n2000\nd003\n0007\nf0f8\ne600\n"},
		{FORMAT_BIN, "\x70\x50\x20\x00\xd0\x03\x00\x07\xf0\xf8\xe6\x00"},
		{FORMAT_LISTING, "" +
			"0000  7050 2000          3  MOV R1, @Data\n" +
			"0002  d003 0007          5  LI R3, 0x7\n" +
			"0004  f0f8               6  JMP -8\n" +
			"0005  e600               8  ROI\n"},
		{FORMAT_DISASM, "" +
			"0000  7050 2000       MOV R1, 0x2000\n" +
			"0002  d003 0007       LI R3, 0x7\n" +
			"0004  f0f8            JMP -8\n" +
			"0005  e600            ROI\n"},
	}

	for _, entry := range table {
		var buf bytes.Buffer
		err := prog.WriteFormat(&buf, entry.format)
		assert.NoError(err, entry.format)
		assert.Equal(entry.output, buf.String(), entry.format)
	}

	var buf bytes.Buffer
	err = prog.WriteSymbols(&buf)
	assert.NoError(err)
	assert.Equal("SYMBOL           VALUE\nData             0x2000\nStart            0x1000\n", buf.String())

	err = prog.WriteFormat(&buf, "srec")
	assert.ErrorIs(err, ErrFormatUnknown)

	assert.Equal([]string{"hex", "bin", "listing", "disasm"}, Formats())
}

func TestWriteDisassemblyTruncated(t *testing.T) {
	prog := &Program{Opcodes: []Opcode{{Codes: []uint16{0x7050}}}}

	var buf bytes.Buffer
	err := prog.WriteDisassembly(&buf)
	assert.ErrorIs(t, err, isa.ErrWordsMissing)
	assert.Contains(t, err.Error(), "0000")
}
