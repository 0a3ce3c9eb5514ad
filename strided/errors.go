package strided

import (
	"errors"

	"github.com/cwbudde/algo-strided/accessor"
)

var (
	// ErrInvalidArgumentType indicates an operand that is not array-like, or
	// a scalar or callback argument of the wrong type.
	ErrInvalidArgumentType = errors.New("strided: invalid argument type")
	// ErrTypeMismatch indicates operands with different element types.
	ErrTypeMismatch = accessor.ErrTypeMismatch
	// ErrUnsupportedOperand indicates an array-like operand whose element
	// type has no kernel for the requested operation.
	ErrUnsupportedOperand = errors.New("strided: unsupported operand")
)
