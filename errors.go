package num

import (
	"errors"
	"strconv"
)

var (
	// ErrEmpty is returned when parsing an empty string.
	ErrEmpty = errors.New("empty string")

	// ErrSyntax is returned when a string contains a character that is not a
	// digit in the requested radix.
	ErrSyntax = errors.New("invalid syntax")

	// ErrRange is returned when a parsed value does not fit.
	ErrRange = errors.New("value out of range")

	// ErrRadix is returned for a radix outside [2, 36].
	ErrRadix = errors.New("invalid radix")
)

// ParseError records a failed conversion from a string. Err is one of
// ErrEmpty, ErrSyntax, ErrRange or ErrRadix and can be tested with
// errors.Is.
type ParseError struct {
	Type  string
	Input string
	Radix int
	Err   error
}

func (e *ParseError) Error() string {
	return "num: parsing " + e.Type + " " + strconv.Quote(e.Input) +
		" (radix " + strconv.Itoa(e.Radix) + "): " + e.Err.Error()
}

func (e *ParseError) Unwrap() error { return e.Err }
