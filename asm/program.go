package asm

import (
	"encoding/binary"
	"iter"
	"slices"

	"github.com/ezrec/asm16/internal"
	"github.com/ezrec/asm16/isa"
)

// Opcode is one assembled source line.
type Opcode struct {
	LineNo      int             // Source line number.
	Line        string          // Source text without its comment.
	Offset      int             // Word offset of the first code in the program.
	Instruction isa.Instruction // Parsed instruction.
	Codes       []uint16        // Opcode word and extension words.
}

// Program is the output of an assembly run, in source order.
type Program struct {
	Symbols isa.SymbolTable
	Opcodes []Opcode
}

// Debug locates the opcode holding a word offset.
type Debug struct {
	*Opcode
	Index int // Index of the word within the opcode's codes.
}

// Debug returns the opcode covering offset, or a zero Debug if none does.
func (prog *Program) Debug(offset int) (dbg Debug) {
	for n, op := range prog.Opcodes {
		if offset >= op.Offset && offset < op.Offset+len(op.Codes) {
			dbg = Debug{
				Opcode: &prog.Opcodes[n],
				Index:  offset - op.Offset,
			}
			break
		}
	}

	return
}

// Codes iterates over every word of the program with its offset.
func (prog *Program) Codes() iter.Seq2[int, uint16] {
	seqs := make([]iter.Seq2[int, uint16], 0, len(prog.Opcodes))
	for _, op := range prog.Opcodes {
		seqs = append(seqs, internal.Offset(op.Offset, slices.All(op.Codes)))
	}
	return internal.Concat2(seqs...)
}

// Words returns the program image.
func (prog *Program) Words() (words []uint16) {
	seqs := make([]iter.Seq[uint16], 0, len(prog.Opcodes))
	for _, op := range prog.Opcodes {
		seqs = append(seqs, slices.Values(op.Codes))
	}
	return slices.Collect(internal.Concat(seqs...))
}

// Binary returns the program image as big-endian bytes.
func (prog *Program) Binary() (bins []byte) {
	for _, word := range prog.Codes() {
		bins = binary.BigEndian.AppendUint16(bins, word)
	}

	return
}
