package window

import (
	"strings"

	"github.com/alexiusacademia/gophb/internal/units"
)

// BlindPosition is where a blind is mounted relative to the glazing.
type BlindPosition int

const (
	BlindExterior BlindPosition = iota
	BlindInterior
)

func (p BlindPosition) String() string {
	if p == BlindInterior {
		return "interior"
	}
	return "exterior"
}

// ParseBlindPosition accepts "exterior" or "interior" (and "ext"/"int").
func ParseBlindPosition(s string) (BlindPosition, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "exterior", "ext", "outside":
		return BlindExterior, nil
	case "interior", "int", "inside":
		return BlindInterior, nil
	}
	return 0, &units.InvalidQuantityError{Field: "blind_position", Input: s, Reason: "expected exterior or interior"}
}

// Blind is a Phius shading blind's effective optical properties.
type Blind struct {
	Position      BlindPosition
	Transmittance float64 // effective
	Reflectance   float64 // effective
}

// PhiusBlind returns the effective transmittance and reflectance of a blind
// with material transmittance z.
func PhiusBlind(z float64, pos BlindPosition) (Blind, error) {
	z, err := units.FloatPercentage("transmittance", z)
	if err != nil {
		return Blind{}, err
	}
	var eff float64
	switch pos {
	case BlindInterior:
		eff = 1 - (1-z)*(1-0.6)
	default:
		eff = 0.3 + 0.7*z
	}
	return Blind{Position: pos, Transmittance: eff, Reflectance: 1 - eff}, nil
}
