package geometry

import "errors"

var (
	ErrUnsupportedCurve = errors.New("unsupported curve type")
	ErrDegenerateCurve  = errors.New("curve has fewer than two distinct points")
)
