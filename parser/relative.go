package parser

import (
	"math"
	"strconv"

	"github.com/ezrec/asm16/isa"
)

// relativeValue applies a sign to a magnitude, checking it fits a signed byte.
func relativeValue(input string, negative bool, magnitude uint64, text string) (addr isa.Address, err error) {
	value := int64(magnitude)
	if negative {
		value = -value
	}

	if value < math.MinInt8 || value > math.MaxInt8 {
		err = fail(input, ErrRange{What: "relative offset", Text: text})
		return
	}

	addr = isa.RelativeAddress(int8(value))
	return
}

// relativeHex parses an optionally signed 0x prefixed offset.
func relativeHex(input string) (rest string, addr isa.Address, err error) {
	rest, negative := sign(input)
	rest, magnitude, err := prefixedHex8(rest)
	if err != nil {
		return input, nil, err
	}

	addr, err = relativeValue(input, negative, uint64(magnitude), input[:len(input)-len(rest)])
	if err != nil {
		rest = input
	}
	return
}

// relativeDecimal parses an optionally signed decimal offset.
func relativeDecimal(input string) (rest string, addr isa.Address, err error) {
	rest, negative := sign(input)
	rest, text, err := digits(rest)
	if err != nil {
		return input, nil, err
	}

	literal := input[:len(input)-len(rest)]
	magnitude, err := strconv.ParseUint(text, 10, 16)
	if err != nil {
		err = fail(input, ErrRange{What: "relative offset", Text: literal})
		return input, nil, err
	}

	addr, err = relativeValue(input, negative, magnitude, literal)
	if err != nil {
		rest = input
	}
	return
}

// relativeSymbolic parses a bare label name.
func relativeSymbolic(input string) (rest string, addr isa.Address, err error) {
	rest, name, err := letters(input, "label name")
	if err != nil {
		return
	}

	addr = isa.RelativeSymbolicAddress(name)
	return
}

var relative = alt[isa.Address]("relative address",
	relativeHex,
	relativeDecimal,
	relativeSymbolic,
)
