package parser

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a parse error.
type ErrorKind string

const (
	KindParse     ErrorKind = "parsererror"
	KindDuplicate ErrorKind = "duplicateerror"
)

var (
	// ErrUnknownSyntax is returned when a resource id has no supported file extension.
	ErrUnknownSyntax = errors.New("unknown resource file type")

	// ErrParse is matched by every *ParseError via errors.Is.
	ErrParse = errors.New("parse error")
)

// ParseError describes a single recoverable failure inside a resource.
// Pos is the byte offset in the source where the failure was detected.
type ParseError struct {
	Message string
	Pos     int
	Kind    ErrorKind
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Is makes every ParseError match ErrParse.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// ErrorSink receives recoverable parse errors. When a parser is called
// without a sink the first error aborts parsing and is returned instead.
type ErrorSink func(err *ParseError)
