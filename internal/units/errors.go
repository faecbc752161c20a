package units

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidQuantity = errors.New("invalid quantity")
	ErrRangeViolation  = errors.New("value out of range")
)

// InvalidQuantityError reports an input that could not be parsed or
// converted into a quantity.
type InvalidQuantityError struct {
	Field  string
	Input  string
	Reason string
}

func (e *InvalidQuantityError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid quantity %q: %s", e.Input, e.Reason)
	}
	return fmt.Sprintf("%s: invalid quantity %q: %s", e.Field, e.Input, e.Reason)
}

func (e *InvalidQuantityError) Is(target error) bool { return target == ErrInvalidQuantity }

// RangeViolationError reports a value outside of [Min, Max].
type RangeViolationError struct {
	Field string
	Value float64
	Min   float64
	Max   float64
}

func (e *RangeViolationError) Error() string {
	return fmt.Sprintf("%s: value %g outside of [%g, %g]", e.Field, e.Value, e.Min, e.Max)
}

func (e *RangeViolationError) Is(target error) bool { return target == ErrRangeViolation }
