package transform

import "errors"

var (
	// ErrInvalidArgument is returned for wrong matrix or vector shapes and
	// for a zero-length rotation axis.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrDivideByZero is returned when a transformed point has a zero
	// homogeneous scale coordinate.
	ErrDivideByZero = errors.New("divide by zero")
)
