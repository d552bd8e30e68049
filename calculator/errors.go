package calculator

import (
	"errors"
	"fmt"
)

var ErrInvalidParameter = errors.New("invalid parameter")

// InvalidParameterError names the rejected input field and the constraint it broke.
type InvalidParameterError struct {
	Field      string
	Constraint string
	Value      float64
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("%s: %s must be %s, got %v", ErrInvalidParameter, e.Field, e.Constraint, e.Value)
}

func (e *InvalidParameterError) Is(target error) bool {
	return target == ErrInvalidParameter
}
