// Package asm assembles asm16 source text into a program image.
//
// A source line is blank, a label such as '(0x1000)Start', or one
// instruction. Text after ';' is a comment. Labels carry their address
// literally; there is no location counter.
//
// The assembler makes two passes. The first collects labels into a symbol
// table. The second parses and encodes each instruction line against it,
// on several workers, keeping source order in the output. A '$(expr)' in an
// instruction line is evaluated as a starlark expression over the
// predefines and labels, and replaced by its value in hex. A label in an
// expression is its absolute address; the result is a plain number, so
// '$(Loop)' as a jump operand is not a displacement to Loop.
package asm
