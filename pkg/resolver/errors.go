package resolver

import "errors"

var (
	ErrCyclicReference       = errors.New("cyclic reference detected")
	ErrUnknownReference      = errors.New("unknown reference")
	ErrIllegalID             = errors.New("illegal id")
	ErrInvalidArg            = errors.New("arg must be a string or a number")
	ErrPlaceableTooLong      = errors.New("too many characters in placeable")
	ErrUnresolvableValue     = errors.New("unresolvable value")
	ErrUnsupportedExpression = errors.New("unsupported expression")
)
