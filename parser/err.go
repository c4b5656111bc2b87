package parser

import (
	"errors"
	"strings"

	"github.com/ezrec/asm16/translate"
)

var f = translate.From

var (
	ErrDigitsMissing = errors.New(f("hex digits missing after 0x"))
)

// ErrExpected names the token a parser expected to find.
type ErrExpected string

func (err ErrExpected) Error() string {
	return f("expected %v", string(err))
}

// ErrRange is returned when a literal has the right shape but does not fit
// its field. It is never retried as another alternative.
type ErrRange struct {
	What string // Kind of literal.
	Text string // Literal as written.
}

func (err ErrRange) Error() string {
	return f("%v '%v' out of range", err.What, err.Text)
}

// ErrParse is a parse failure with the trail of grammar rules that led to it.
type ErrParse struct {
	Input   string   // Unparsed input at the point of failure.
	Context []string // Grammar rules, outermost first.
	Err     error
}

func (err *ErrParse) Error() string {
	if len(err.Context) == 0 {
		return f("at '%v': %v", err.Input, err.Err)
	}
	return f("%v at '%v': %v", strings.Join(err.Context, ": "), err.Input, err.Err)
}

func (err *ErrParse) Unwrap() error {
	return err.Err
}

// fail reports a failure at input.
func fail(input string, err error) *ErrParse {
	return &ErrParse{Input: input, Err: err}
}

// context prepends a grammar rule to the trail of a failure.
func context(name string, input string, err error) *ErrParse {
	var pe *ErrParse
	if !errors.As(err, &pe) {
		pe = fail(input, err)
	}
	pe.Context = append([]string{name}, pe.Context...)
	return pe
}

// wrap names the rule of a failed parse and restores the unconsumed input.
func wrap(name string, input string, rest *string, err *error) {
	if *err != nil {
		*rest = input
		*err = context(name, input, *err)
	}
}

// isCut returns true for failures that must stop an alternation.
func isCut(err error) bool {
	var re ErrRange
	return errors.As(err, &re) || errors.Is(err, ErrDigitsMissing)
}
