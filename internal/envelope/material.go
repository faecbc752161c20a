package envelope

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexiusacademia/gophb/internal/units"
)

// Color is an RGB display colour for a material.
type Color struct {
	R, G, B uint8
}

func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// ParseColor accepts "#RRGGBB", "RRGGBB" or "r,g,b".
func ParseColor(s string) (Color, error) {
	in := strings.TrimSpace(s)
	bad := func(reason string) (Color, error) {
		return Color{}, &units.InvalidQuantityError{Field: "color", Input: s, Reason: reason}
	}

	if strings.Contains(in, ",") {
		parts := strings.Split(in, ",")
		if len(parts) != 3 {
			return bad("expected three comma-separated channels")
		}
		var ch [3]uint8
		for i, p := range parts {
			v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
			if err != nil {
				return bad("channel out of range 0-255")
			}
			ch[i] = uint8(v)
		}
		return Color{R: ch[0], G: ch[1], B: ch[2]}, nil
	}

	hex := strings.TrimPrefix(in, "#")
	if len(hex) != 6 {
		return bad("expected #RRGGBB")
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return bad("invalid hex colour")
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// OpaqueMaterial is an envelope material layer with optional display
// colour and free-form metadata.
type OpaqueMaterial struct {
	Identifier   string            `json:"identifier" yaml:"identifier"`
	DisplayName  string            `json:"display_name" yaml:"display_name"`
	Thickness    float64           `json:"thickness" yaml:"thickness"`
	Conductivity float64           `json:"conductivity" yaml:"conductivity"`
	Density      float64           `json:"density" yaml:"density"`
	SpecificHeat float64           `json:"specific_heat" yaml:"specific_heat"`
	Color        *Color            `json:"color,omitempty" yaml:"color,omitempty"`
	Metadata     map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// RValue returns the thermal resistance of the layer (m²K/W).
func (m OpaqueMaterial) RValue() float64 {
	if m.Conductivity == 0 {
		return 0
	}
	return m.Thickness / m.Conductivity
}

// WithColor returns a copy of m carrying the parsed colour.
func (m OpaqueMaterial) WithColor(s string) (OpaqueMaterial, error) {
	c, err := ParseColor(s)
	if err != nil {
		return m, err
	}
	m.Color = &c
	return m, nil
}

// WithMetadata returns a copy of m with key set to value.
func (m OpaqueMaterial) WithMetadata(key, value string) OpaqueMaterial {
	md := make(map[string]string, len(m.Metadata)+1)
	for k, v := range m.Metadata {
		md[k] = v
	}
	md[key] = value
	m.Metadata = md
	return m
}
