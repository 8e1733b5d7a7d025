package domain

import (
	"errors"
	"fmt"
)

// Errors reported while parsing a command string. They are always wrapped in
// a *ParseError.
var (
	ErrUnknownCommandLetter = errors.New("unknown command letter")
	ErrMalformedNumber      = errors.New("malformed number")
	ErrOperandArityMismatch = errors.New("operand arity mismatch")
	ErrTrailingOperands     = errors.New("trailing operands")
)

// ParseError locates a parse failure inside a command string.
type ParseError struct {
	Token string // offending token text
	Index int    // token position, -1 when not tied to a token
	Err   error
}

func (e *ParseError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("path data: %v", e.Err)
	}

	return fmt.Sprintf("path data: token %d %q: %v", e.Index, e.Token, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func newParseError(err error, token string, index int) *ParseError {
	return &ParseError{Token: token, Index: index, Err: err}
}
