package dhw

import (
	"fmt"

	"github.com/alexiusacademia/gophb/internal/ports"
	"github.com/alexiusacademia/gophb/internal/units"
)

// DefaultRecirculationProps are the properties of recirculation pipes
// when the caller gives none.
func DefaultRecirculationProps() SegmentProps {
	return SegmentProps{
		Diameter: 25.4,
		Insulation: Insulation{
			Thickness:    25.4,
			Conductivity: 0.04,
			Reflective:   true,
			Quality:      QualityModerate,
		},
		DailyPeriod: 24,
		WaterTemp:   60,
		Material:    CopperL,
	}
}

// RecirculationInputs are per-curve overrides. Each list is matched to the
// curves by index; a list shorter than the curves falls back to its first
// value, and an empty list keeps the default.
type RecirculationInputs struct {
	Names        []string
	Diameters    []float64 // mm
	Thicknesses  []float64 // mm
	Conductivity []float64 // W/mK
	Reflective   []bool
	Quality      []Quality
	DailyPeriod  []float64 // h
	WaterTemp    []float64 // °C
	Material     []Material
}

func pick[T any](values []T, i int, def T) T {
	switch {
	case len(values) == 0:
		return def
	case i < len(values):
		return values[i]
	default:
		return values[0]
	}
}

// NewRecirculationPipes builds one recirculation element per curve.
func NewRecirculationPipes(g ports.GeometryAdapter, curves []any, in RecirculationInputs) ([]PipeElement, error) {
	def := DefaultRecirculationProps()
	out := make([]PipeElement, 0, len(curves))
	for i, c := range curves {
		props := SegmentProps{
			Diameter: pick(in.Diameters, i, def.Diameter),
			Insulation: Insulation{
				Thickness:    pick(in.Thicknesses, i, def.Insulation.Thickness),
				Conductivity: pick(in.Conductivity, i, def.Insulation.Conductivity),
				Reflective:   pick(in.Reflective, i, def.Insulation.Reflective),
				Quality:      pick(in.Quality, i, def.Insulation.Quality),
			},
			DailyPeriod: pick(in.DailyPeriod, i, def.DailyPeriod),
			WaterTemp:   pick(in.WaterTemp, i, def.WaterTemp),
			Material:    pick(in.Material, i, def.Material),
		}
		name := pick(in.Names, i, "")
		if name == "" {
			name = units.HBName("", "Recirc")
		}
		el, err := NewPipeElement(g, name, []any{c}, props)
		if err != nil {
			return nil, fmt.Errorf("recirculation pipe %d: %w", i, err)
		}
		out = append(out, *el)
	}
	return out, nil
}

// System is a hot-water system: distribution trunks and recirculation.
type System struct {
	Identifier    string        `json:"identifier" yaml:"identifier"`
	DisplayName   string        `json:"display_name" yaml:"display_name"`
	Trunks        []Trunk       `json:"distribution_piping" yaml:"trunks"`
	Recirculation []PipeElement `json:"recirc_piping" yaml:"recirculation"`
}

// NewSystem returns an empty named system.
func NewSystem(name string) *System {
	s := &System{Identifier: units.HBName(name, "HotWaterSystem")}
	s.DisplayName = s.Identifier
	return s
}

// DistributionLength sums trunk lengths including multipliers (m).
func (s System) DistributionLength(doc units.Document) float64 {
	var sum float64
	for _, t := range s.Trunks {
		sum += t.TotalLength(doc)
	}
	return sum
}

// RecirculationLength sums recirculation pipe lengths (m).
func (s System) RecirculationLength(doc units.Document) float64 {
	var sum float64
	for _, p := range s.Recirculation {
		sum += p.Length(doc)
	}
	return sum
}
