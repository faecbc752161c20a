package hvac

import "errors"

var (
	ErrUnknownDuctType   = errors.New("unknown duct type")
	ErrDuctShape         = errors.New("rectangular ducts need both height and width")
	ErrUnknownDeviceType = errors.New("unknown device type")
)
