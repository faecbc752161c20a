package dhw

import "errors"

var (
	ErrUnknownMaterial = errors.New("unknown pipe material")
	ErrUnknownQuality  = errors.New("unknown insulation quality")
	ErrNoGeometry      = errors.New("pipe element has no geometry")
	ErrBadMultiplier   = errors.New("trunk multiplier must be at least 1")
)
