package space

import "errors"

var (
	ErrNoFloorSegments = errors.New("floor has no segments")
	ErrNotPlanarFloor  = errors.New("floor segment face has no area")
	ErrNotClosed       = errors.New("volume geometry is not a closed solid")
)
