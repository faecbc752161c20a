package window

import "errors"

var (
	ErrApertureEdges = errors.New("aperture face does not decompose into top, right, bottom and left edges")
	ErrMissingTop    = errors.New("window frame requires a top element")
	ErrTooSmall      = errors.New("window is smaller than its frame")
)
