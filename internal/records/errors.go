package records

import (
	"errors"
	"fmt"
)

var (
	ErrSchema = errors.New("invalid datatype entry")
	ErrCoerce = errors.New("cannot coerce cell")
)

// CellError names the row and column of a cell that did not coerce. Row is
// 1-based and counts the header row.
type CellError struct {
	Row    int
	Column string
	Value  string
	Kind   Kind
}

func (e *CellError) Error() string {
	return fmt.Sprintf("row %d, column %s: cannot read %q as %s", e.Row, e.Column, e.Value, e.Kind)
}

func (e *CellError) Is(target error) bool { return target == ErrCoerce }
