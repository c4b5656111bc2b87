package asm

import (
	"errors"

	"github.com/ezrec/asm16/translate"
)

var f = translate.From

var (
	ErrLabelDuplicate = errors.New(f("label duplicated"))
	ErrFormatUnknown  = errors.New(f("output format unknown"))
)

// ErrSyntax locates an error at a source line.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrParseExpression is returned for a $(...) expression that does not
// evaluate to an integer.
type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}
