package asm

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"strings"

	"github.com/ezrec/asm16/isa"
)

// Output formats of WriteFormat.
const (
	FORMAT_HEX     = "hex"
	FORMAT_BIN     = "bin"
	FORMAT_LISTING = "listing"
	FORMAT_DISASM  = "disasm"
)

// Formats lists the output formats of WriteFormat.
func Formats() []string {
	return []string{FORMAT_HEX, FORMAT_BIN, FORMAT_LISTING, FORMAT_DISASM}
}

// WriteFormat writes the program in a named output format.
func (prog *Program) WriteFormat(w io.Writer, format string) (err error) {
	switch format {
	case FORMAT_HEX:
		err = prog.WriteHex(w)
	case FORMAT_BIN:
		err = prog.WriteBinary(w)
	case FORMAT_LISTING:
		err = prog.WriteListing(w)
	case FORMAT_DISASM:
		err = prog.WriteDisassembly(w)
	default:
		err = fmt.Errorf("%w: %v", ErrFormatUnknown, format)
	}
	return
}

// WriteHex writes one four digit hex word per line.
func (prog *Program) WriteHex(w io.Writer) (err error) {
	out := bufio.NewWriter(w)
	for _, word := range prog.Codes() {
		_, err = fmt.Fprintf(out, "%04x\n", word)
		if err != nil {
			return
		}
	}
	return out.Flush()
}

// WriteBinary writes the program image as big-endian words.
func (prog *Program) WriteBinary(w io.Writer) (err error) {
	out := bufio.NewWriter(w)
	err = binary.Write(out, binary.BigEndian, prog.Words())
	if err != nil {
		return
	}
	return out.Flush()
}

// WriteListing writes each opcode's offset, words and source line.
func (prog *Program) WriteListing(w io.Writer) (err error) {
	out := bufio.NewWriter(w)
	for _, op := range prog.Opcodes {
		_, err = fmt.Fprintf(out, "%04x  %-14s  %4d  %v\n", op.Offset, hexWords(op.Codes), op.LineNo, op.Line)
		if err != nil {
			return
		}
	}
	return out.Flush()
}

// hexWords formats words as space separated four digit hex.
func hexWords(codes []uint16) string {
	words := make([]string, len(codes))
	for n, code := range codes {
		words[n] = fmt.Sprintf("%04x", code)
	}
	return strings.Join(words, " ")
}

// WriteDisassembly decodes the program image back into instructions, one
// per line with its offset and words. Addresses show as resolved values.
func (prog *Program) WriteDisassembly(w io.Writer) (err error) {
	out := bufio.NewWriter(w)
	words := prog.Words()
	for offset := 0; offset < len(words); {
		inst, n, err := isa.Decode(words[offset:])
		if err != nil {
			return fmt.Errorf("%04x: %w", offset, err)
		}
		_, err = fmt.Fprintf(out, "%04x  %-14s  %v\n", offset, hexWords(words[offset:offset+n]), inst)
		if err != nil {
			return err
		}
		offset += n
	}
	return out.Flush()
}

// WriteSymbols writes the symbol table sorted by name.
func (prog *Program) WriteSymbols(w io.Writer) (err error) {
	out := bufio.NewWriter(w)
	_, err = fmt.Fprintf(out, "%-16s %s\n", "SYMBOL", "VALUE")
	if err != nil {
		return
	}
	for _, name := range prog.Symbols.Names() {
		_, err = fmt.Fprintf(out, "%-16s 0x%04x\n", name, prog.Symbols[name])
		if err != nil {
			return
		}
	}
	return out.Flush()
}
