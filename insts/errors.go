package insts

import (
	"fmt"

	"golang.org/x/xerrors"
)

var (
	// ErrParse matches every *ParseError with errors.Is.
	ErrParse = xerrors.New("parse error")

	// ErrMissingPrefix is returned for opcode text not starting with 0x.
	ErrMissingPrefix = xerrors.New("opcode must start with 0x")

	// ErrUnknownField is returned for a field name or tag that does not exist.
	ErrUnknownField = xerrors.New("unknown field")
)

// ParseError reports text in a form field that could not be interpreted.
type ParseError struct {
	Field Field
	Text  string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: cannot parse %q: %v", e.Field, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is makes every ParseError match ErrParse.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}
