package hvac

import (
	"fmt"
	"strings"

	"github.com/alexiusacademia/gophb/internal/geometry"
	"github.com/alexiusacademia/gophb/internal/ports"
	"github.com/alexiusacademia/gophb/internal/units"
	"github.com/alexiusacademia/gophb/internal/validate"
)

// DuctType is supply or exhaust.
type DuctType int

const (
	DuctSupply DuctType = iota + 1
	DuctExhaust
)

func (d DuctType) String() string {
	switch d {
	case DuctSupply:
		return "supply"
	case DuctExhaust:
		return "exhaust"
	default:
		return "unknown"
	}
}

func ParseDuctType(s string) (DuctType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "supply", "1", "1-supply", "sup":
		return DuctSupply, nil
	case "exhaust", "2", "2-exhaust", "extract", "eta":
		return DuctExhaust, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDuctType, s)
}

func (d DuctType) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

func (d *DuctType) UnmarshalText(b []byte) error {
	v, err := ParseDuctType(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// DuctInsulation is in mm and W/mK.
type DuctInsulation struct {
	Thickness    float64 `json:"insulation_thickness" yaml:"thickness" validate:"gte=0"`
	Conductivity float64 `json:"insulation_conductivity" yaml:"conductivity" validate:"gte=0"`
	Reflective   bool    `json:"insulation_reflective" yaml:"reflective"`
}

// DuctSegment is one straight run. A segment is round unless both Height
// and Width are set. Sizes are in mm.
type DuctSegment struct {
	Identifier string             `json:"identifier" yaml:"identifier"`
	Geometry   geometry.Segment3D `json:"geometry" yaml:"geometry"`
	Insulation DuctInsulation     `json:"insulation" yaml:"insulation"`
	Diameter   float64            `json:"diameter" yaml:"diameter" validate:"gt=0"`
	Height     *float64           `json:"height,omitempty" yaml:"height,omitempty" validate:"omitnil,gt=0"`
	Width      *float64           `json:"width,omitempty" yaml:"width,omitempty" validate:"omitnil,gt=0"`
}

// IsRound reports whether the segment has a circular section.
func (s DuctSegment) IsRound() bool {
	return s.Height == nil || s.Width == nil
}

// HydraulicDiameter is the diameter for round sections and 2hw/(h+w) for
// rectangular ones (mm).
func (s DuctSegment) HydraulicDiameter() float64 {
	if s.IsRound() {
		return s.Diameter
	}
	h, w := *s.Height, *s.Width
	return 2 * h * w / (h + w)
}

func (s DuctSegment) Length(doc units.Document) float64 {
	return doc.ToMeters(s.Geometry.Length())
}

// Duct is a ventilation duct made of one or more segments.
type Duct struct {
	Identifier  string        `json:"identifier" yaml:"identifier"`
	DisplayName string        `json:"display_name" yaml:"display_name"`
	DuctType    DuctType      `json:"duct_type" yaml:"duct_type"`
	Segments    []DuctSegment `json:"segments" yaml:"segments"`
}

// DuctInputs are user values; nil fields keep the defaults.
type DuctInputs struct {
	Name         string
	Thickness    any // mm
	Conductivity any
	Reflective   *bool
	Diameter     any // mm
	Height       any // mm
	Width        any // mm
}

const (
	DefaultDuctInsulationThickness    = 25.4
	DefaultDuctInsulationConductivity = 0.04
	DefaultDuctDiameter               = 160.0
)

// NewDuct builds a duct from curves. With no curves it returns nil and no
// error.
func NewDuct(g ports.GeometryAdapter, ductType DuctType, curves []any, in DuctInputs) (*Duct, error) {
	if len(curves) == 0 {
		return nil, nil
	}
	if ductType != DuctSupply && ductType != DuctExhaust {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDuctType, int(ductType))
	}

	tmpl := DuctSegment{
		Insulation: DuctInsulation{
			Thickness:    DefaultDuctInsulationThickness,
			Conductivity: DefaultDuctInsulationConductivity,
			Reflective:   true,
		},
		Diameter: DefaultDuctDiameter,
	}
	var err error
	if in.Thickness != nil {
		if tmpl.Insulation.Thickness, err = units.UnitMM("insulation_thickness", in.Thickness, units.MM); err != nil {
			return nil, err
		}
	}
	if in.Conductivity != nil {
		if tmpl.Insulation.Conductivity, err = units.UnitW_MK("insulation_conductivity", in.Conductivity); err != nil {
			return nil, err
		}
	}
	if in.Reflective != nil {
		tmpl.Insulation.Reflective = *in.Reflective
	}
	if in.Diameter != nil {
		if tmpl.Diameter, err = units.UnitMM("diameter", in.Diameter, units.MM); err != nil {
			return nil, err
		}
	}
	if (in.Height == nil) != (in.Width == nil) {
		return nil, ErrDuctShape
	}
	if in.Height != nil {
		h, err := units.UnitMM("height", in.Height, units.MM)
		if err != nil {
			return nil, err
		}
		w, err := units.UnitMM("width", in.Width, units.MM)
		if err != nil {
			return nil, err
		}
		tmpl.Height, tmpl.Width = &h, &w
	}
	if err := validate.Struct(tmpl); err != nil {
		return nil, err
	}

	d := &Duct{Identifier: units.HBName(in.Name, "Duct"), DuctType: ductType}
	d.DisplayName = d.Identifier
	for i, c := range curves {
		pl, err := g.PolylineFrom(c)
		if err != nil {
			return nil, fmt.Errorf("duct %s curve %d: %w", d.DisplayName, i, err)
		}
		for _, seg := range pl.Segments() {
			s := tmpl
			s.Identifier = units.HBName("", "DuctSegment")
			s.Geometry = seg
			d.Segments = append(d.Segments, s)
		}
	}
	return d, nil
}

// Length is the duct length in metres.
func (d Duct) Length(doc units.Document) float64 {
	var sum float64
	for _, s := range d.Segments {
		sum += s.Length(doc)
	}
	return sum
}
