// Package dhw models hot-water distribution piping as a trunk, branch and
// fixture tree, plus recirculation loops.
package dhw

import (
	"fmt"

	"github.com/alexiusacademia/gophb/internal/geometry"
	"github.com/alexiusacademia/gophb/internal/ports"
	"github.com/alexiusacademia/gophb/internal/units"
	"github.com/alexiusacademia/gophb/internal/validate"
)

// Insulation describes the insulation around a pipe.
type Insulation struct {
	Thickness    float64 `json:"thickness" yaml:"thickness" validate:"gte=0"`       // mm
	Conductivity float64 `json:"conductivity" yaml:"conductivity" validate:"gte=0"` // W/mK
	Reflective   bool    `json:"reflective" yaml:"reflective"`
	Quality      Quality `json:"quality" yaml:"quality"`
}

// SegmentProps are the thermal properties shared by the segments built
// from one input curve. Diameter is in mm, daily period in hours and water
// temperature in °C.
type SegmentProps struct {
	Diameter    float64    `json:"diameter" yaml:"diameter" validate:"gt=0"`
	Insulation  Insulation `json:"insulation" yaml:"insulation"`
	DailyPeriod float64    `json:"daily_period" yaml:"daily_period" validate:"gte=0,lte=24"`
	WaterTemp   float64    `json:"water_temp" yaml:"water_temp"`
	Material    Material   `json:"material" yaml:"material"`
}

// DefaultSegmentProps are used for trunk, branch and fixture pipes.
func DefaultSegmentProps() SegmentProps {
	return SegmentProps{
		Diameter:    12.7,
		Insulation:  Insulation{Thickness: 0, Conductivity: 0.04, Quality: QualityNone},
		DailyPeriod: 24,
		WaterTemp:   60,
		Material:    CopperL,
	}
}

// Validate checks the property ranges.
func (p SegmentProps) Validate() error {
	if err := validate.Struct(p); err != nil {
		return err
	}
	_, err := units.FloatMax24("daily_period", p.DailyPeriod)
	return err
}

// PipeSegment is one straight run of pipe.
type PipeSegment struct {
	Identifier string             `json:"identifier" yaml:"identifier"`
	Geometry   geometry.Segment3D `json:"geometry" yaml:"geometry"`
	Props      SegmentProps       `json:"properties" yaml:"properties"`
}

// Length is the segment length in metres.
func (s PipeSegment) Length(doc units.Document) float64 {
	return doc.ToMeters(s.Geometry.Length())
}

// PipeElement is an ordered run of segments with a display name.
type PipeElement struct {
	Identifier  string        `json:"identifier" yaml:"identifier"`
	DisplayName string        `json:"display_name" yaml:"display_name"`
	Segments    []PipeSegment `json:"segments" yaml:"segments"`
}

// NewPipeElement converts each curve through the geometry adapter. A
// polyline contributes one segment per linear piece; a line contributes
// one segment.
func NewPipeElement(g ports.GeometryAdapter, name string, curves []any, props SegmentProps) (*PipeElement, error) {
	if err := props.Validate(); err != nil {
		return nil, err
	}
	el := &PipeElement{Identifier: units.HBName(name, "Pipe")}
	el.DisplayName = el.Identifier
	for i, c := range curves {
		pl, err := g.PolylineFrom(c)
		if err != nil {
			return nil, fmt.Errorf("pipe %s curve %d: %w", el.DisplayName, i, err)
		}
		for _, seg := range pl.Segments() {
			el.Segments = append(el.Segments, PipeSegment{
				Identifier: units.HBName("", "PipeSegment"),
				Geometry:   seg,
				Props:      props,
			})
		}
	}
	return el, nil
}

// Length is the total pipe length in metres.
func (e PipeElement) Length(doc units.Document) float64 {
	var sum float64
	for _, s := range e.Segments {
		sum += s.Length(doc)
	}
	return sum
}

// WeightedDiameter is the length-weighted mean diameter (mm).
func (e PipeElement) WeightedDiameter() float64 {
	var total, acc float64
	for _, s := range e.Segments {
		l := s.Geometry.Length()
		total += l
		acc += l * s.Props.Diameter
	}
	if total == 0 {
		return 0
	}
	return acc / total
}
