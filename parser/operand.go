package parser

import (
	"strconv"

	"github.com/ezrec/asm16/isa"
)

// register parses 'R' followed by a decimal register number.
func register(input string) (rest string, reg isa.Register, err error) {
	rest, err = tag(input, "R")
	if err != nil {
		return
	}

	rest, text, err := digits(rest)
	if err != nil {
		return input, 0, err
	}

	n, err := strconv.ParseUint(text, 10, 8)
	if err != nil || n >= isa.REGISTER_COUNT {
		err = fail(input, ErrRange{What: "register", Text: "R" + text})
		return input, 0, err
	}

	return rest, isa.Register(n), nil
}

// incrementedPointer parses '*Rn+'.
func incrementedPointer(input string) (rest string, op isa.Operand, err error) {
	defer wrap("indirect increment", input, &rest, &err)

	rest, err = tag(input, "*")
	if err != nil {
		return
	}
	rest, reg, err := register(rest)
	if err != nil {
		return
	}
	rest, err = tag(rest, "+")
	if err != nil {
		return
	}

	op = isa.IndirectIncrement(reg)
	return
}

// pointer parses '*Rn'.
func pointer(input string) (rest string, op isa.Operand, err error) {
	defer wrap("indirect", input, &rest, &err)

	rest, err = tag(input, "*")
	if err != nil {
		return
	}
	rest, reg, err := register(rest)
	if err != nil {
		return
	}

	op = isa.Indirect(reg)
	return
}

// direct parses 'Rn'.
func direct(input string) (rest string, op isa.Operand, err error) {
	rest, reg, err := register(input)
	if err != nil {
		return
	}

	op = isa.Direct(reg)
	return
}

// symbolic parses '@name'.
func symbolic(input string) (rest string, addr isa.Address, err error) {
	rest, err = tag(input, "@")
	if err != nil {
		return
	}
	rest, name, err := letters(rest, "symbol name")
	if err != nil {
		return input, nil, err
	}

	addr = isa.SymbolicAddress(name)
	return
}

// raw parses a 0x prefixed 16-bit address.
func raw(input string) (rest string, addr isa.Address, err error) {
	rest, value, err := prefixedHex16(input)
	if err != nil {
		return
	}

	addr = isa.RawAddress(value)
	return
}

var address = alt[isa.Address]("address", symbolic, raw)

// nextWord parses an absolute address operand.
func nextWord(input string) (rest string, op isa.Operand, err error) {
	rest, addr, err := address(input)
	if err != nil {
		return
	}

	op = isa.NextWord(addr)
	return
}

// operand tries the addressing modes most specific first, so that '*R1+'
// is never read as '*R1' followed by junk.
var operand = alt[isa.Operand]("operand",
	incrementedPointer,
	pointer,
	direct,
	nextWord,
)
