package model

import "errors"

var (
	ErrPeopleLocked  = errors.New("people load is locked")
	ErrMissingPeople = errors.New("room has no energy people load")
	ErrDuplicate     = errors.New("cannot duplicate model object")
	ErrUnknownRoom   = errors.New("unknown room")
	ErrRoomGeometry  = errors.New("room needs either a box or a list of faces")
)
