package parser

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// parseFunc consumes a prefix of input, returning the remaining input and
// the parsed value. On failure no input is consumed.
type parseFunc[T any] func(input string) (rest string, value T, err error)

// alt tries each alternative in order and returns the first success.
//
// When every alternative fails, the failure that progressed furthest is
// returned; if none progressed the rule itself is reported as expected.
// A range failure stops the search immediately.
func alt[T any](name string, alts ...parseFunc[T]) parseFunc[T] {
	return func(input string) (rest string, value T, err error) {
		var best *ErrParse
		for _, parse := range alts {
			rest, value, err = parse(input)
			if err == nil {
				return
			}
			if isCut(err) {
				var zero T
				return input, zero, context(name, input, err)
			}
			pe := context(name, input, err)
			if best == nil || len(pe.Input) < len(best.Input) {
				best = pe
			}
		}

		var zero T
		if best == nil || len(best.Input) == len(input) {
			return input, zero, context(name, input, fail(input, ErrExpected(name)))
		}
		return input, zero, best
	}
}

// complete runs a parser over the whole of input, allowing only trailing
// blanks to remain.
func complete[T any](parse parseFunc[T], input string) (value T, err error) {
	rest, value, err := parse(input)
	if err != nil {
		return
	}

	rest = space0(rest)
	if len(rest) != 0 {
		var zero T
		value = zero
		err = fail(rest, ErrExpected("end of line"))
	}
	return
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// space0 skips any blanks.
func space0(input string) (rest string) {
	return strings.TrimLeft(input, " \t")
}

// space1 skips at least one blank.
func space1(input string) (rest string, err error) {
	if len(input) == 0 || !isSpace(input[0]) {
		err = fail(input, ErrExpected("whitespace"))
		return input, err
	}
	return space0(input), nil
}

// tag consumes a literal.
func tag(input string, literal string) (rest string, err error) {
	rest, ok := strings.CutPrefix(input, literal)
	if !ok {
		err = fail(input, ErrExpected("'"+literal+"'"))
		return input, err
	}
	return
}

// comma consumes a comma with optional blanks on either side.
func comma(input string) (rest string, err error) {
	rest, err = tag(space0(input), ",")
	if err != nil {
		return input, err
	}
	return space0(rest), nil
}

// letters consumes a maximal, non-empty run of letters.
func letters(input string, what string) (rest string, word string, err error) {
	n := 0
	for n < len(input) {
		r, size := utf8.DecodeRuneInString(input[n:])
		if !unicode.IsLetter(r) {
			break
		}
		n += size
	}

	if n == 0 {
		err = fail(input, ErrExpected(what))
		return input, "", err
	}
	return input[n:], input[:n], nil
}

// digits consumes a maximal, non-empty run of decimal digits.
func digits(input string) (rest string, text string, err error) {
	n := 0
	for n < len(input) && isDigit(input[n]) {
		n++
	}

	if n == 0 {
		err = fail(input, ErrExpected("decimal digit"))
		return input, "", err
	}
	return input[n:], input[:n], nil
}

// hexValue consumes between 1 and width hex digits. A longer run of digits
// does not fit the field and is a range error.
func hexValue(input string, width int, what string) (rest string, value uint16, err error) {
	n := 0
	for n < len(input) && isHexDigit(input[n]) {
		n++
	}

	switch {
	case n == 0:
		err = fail(input, ErrExpected("hex digit"))
		return input, 0, err
	case n > width:
		err = fail(input, ErrRange{What: what, Text: input[:n]})
		return input, 0, err
	}

	v, err := strconv.ParseUint(input[:n], 16, 16)
	if err != nil {
		err = fail(input, ErrRange{What: what, Text: input[:n]})
		return input, 0, err
	}

	return input[n:], uint16(v), nil
}

// hex8 parses 1 or 2 unprefixed hex digits.
func hex8(input string) (rest string, value uint8, err error) {
	rest, v, err := hexValue(input, 2, "8-bit hex")
	value = uint8(v)
	return
}

// hex16 parses 1 to 4 unprefixed hex digits.
func hex16(input string) (rest string, value uint16, err error) {
	return hexValue(input, 4, "16-bit hex")
}

// prefixedHex8 parses a 0x prefixed 8-bit hex literal. Once the prefix
// matches, missing digits stop any alternation.
func prefixedHex8(input string) (rest string, value uint8, err error) {
	rest, err = tag(input, "0x")
	if err != nil {
		return
	}
	if len(rest) == 0 || !isHexDigit(rest[0]) {
		err = fail(rest, ErrDigitsMissing)
		return input, 0, err
	}
	rest, value, err = hex8(rest)
	if err != nil {
		rest = input
	}
	return
}

// prefixedHex16 parses a 0x prefixed 16-bit hex literal. Once the prefix
// matches, missing digits stop any alternation.
func prefixedHex16(input string) (rest string, value uint16, err error) {
	rest, err = tag(input, "0x")
	if err != nil {
		return
	}
	if len(rest) == 0 || !isHexDigit(rest[0]) {
		err = fail(rest, ErrDigitsMissing)
		return input, 0, err
	}
	rest, value, err = hex16(rest)
	if err != nil {
		rest = input
	}
	return
}

// sign consumes an optional '+' or '-'. No sign is a soft positive.
func sign(input string) (rest string, negative bool) {
	switch {
	case strings.HasPrefix(input, "-"):
		return input[1:], true
	case strings.HasPrefix(input, "+"):
		return input[1:], false
	}
	return input, false
}

// signedHex16 parses an optionally signed 0x prefixed 16-bit hex literal,
// returning the two's complement bit pattern of its value.
func signedHex16(input string) (rest string, value uint16, err error) {
	rest, negative := sign(input)
	rest, magnitude, err := prefixedHex16(rest)
	if err != nil {
		return input, 0, err
	}

	if negative {
		value = uint16(-int32(magnitude))
	} else {
		value = magnitude
	}
	return
}
