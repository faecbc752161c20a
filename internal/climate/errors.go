package climate

import (
	"errors"
	"fmt"
)

var ErrClimateParse = errors.New("climate parse error")

// ParseError reports a malformed climate file.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("climate file line %d: %s", e.Line, e.Msg)
	}
	return "climate file: " + e.Msg
}

func (e *ParseError) Is(target error) bool { return target == ErrClimateParse }
