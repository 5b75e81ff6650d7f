package cpu

import (
	"errors"

	"github.com/ezrec/leds/translate"
)

var f = translate.From

var (
	// Assembler errors
	ErrLabelDuplicate     = errors.New(f("label duplicated"))
	ErrLabelSyntax        = errors.New(f("label syntax"))
	ErrInstructionInvalid = errors.New(f("instruction invalid"))
)

// ErrLabelMissing is returned when a djnz refers to an undeclared label.
type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

// ErrParseNumber is returned when a load operand is not a byte value.
type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number in 0..255", string(err))
}

// ErrSyntax is the diagnostic for a rejected source line.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}
