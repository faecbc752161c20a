// Package space models Passive House spaces: weighted floor segments,
// floors, volumes and the spaces that group them inside a room.
package space

import (
	"fmt"

	"github.com/alexiusacademia/gophb/internal/geometry"
	"github.com/alexiusacademia/gophb/internal/ports"
	"github.com/alexiusacademia/gophb/internal/units"
	"github.com/alexiusacademia/gophb/internal/validate"
)

// ReferenceOffset is how far (document units) a pulled centroid is pushed
// past the face boundary, back onto the face.
const ReferenceOffset = 0.01

// FloorSegment is one weighted piece of a floor.
type FloorSegment struct {
	Identifier      string           `json:"identifier" yaml:"identifier"`
	DisplayName     string           `json:"display_name" yaml:"display_name"`
	Geometry        geometry.Face3D  `json:"geometry" yaml:"geometry"`
	WeightingFactor float64          `json:"weighting_factor" yaml:"weighting_factor" validate:"gte=0,lte=1"`
	NetAreaM2       *float64         `json:"net_area,omitempty" yaml:"net_area,omitempty" validate:"omitnil,gte=0"`
	ReferencePoint  geometry.Point3D `json:"reference_point" yaml:"reference_point"`
}

// NewFloorSegment builds a segment from a face and computes its
// reference point. netArea, when non-nil, is the explicit net area in m².
func NewFloorSegment(g ports.GeometryAdapter, name string, face geometry.Face3D, weighting float64, netArea *float64) (*FloorSegment, error) {
	if face.Area() <= 0 {
		return nil, ErrNotPlanarFloor
	}
	wf, err := units.FloatPercentage("weighting_factor", weighting)
	if err != nil {
		return nil, err
	}
	s := &FloorSegment{
		Identifier:      units.HBName(name, "FloorSegment"),
		Geometry:        face,
		WeightingFactor: wf,
	}
	s.DisplayName = s.Identifier
	if netArea != nil {
		na := *netArea
		s.NetAreaM2 = &na
	}
	if err := validate.Struct(s); err != nil {
		return nil, err
	}
	s.ReferencePoint = ReferencePoint(g, face)
	return s, nil
}

// ReferencePoint returns a point guaranteed to lie on the face. The
// centroid is pulled to the nearest point of the face; when that moves it
// (non-convex faces), the point is pushed a further ReferenceOffset along
// the pull so it sits inside the boundary.
func ReferencePoint(g ports.GeometryAdapter, face geometry.Face3D) geometry.Point3D {
	c := g.FaceCentroid(face)
	pulled := g.PullPointToFace(face, c)
	pull := g.VectorBetween(c, pulled)
	if pull.Length() <= g.Tolerance()*1e-3 {
		return pulled
	}
	return g.Move(pulled, g.Amplitude(pull, ReferenceOffset))
}

// GrossArea is the face area in m².
func (s FloorSegment) GrossArea(doc units.Document) float64 {
	return doc.AreaToM2(s.Geometry.Area())
}

// NetAreaFactor is the explicit net area divided by the gross area, or 1.
func (s FloorSegment) NetAreaFactor(doc units.Document) float64 {
	gross := s.GrossArea(doc)
	if s.NetAreaM2 == nil || gross == 0 {
		return 1.0
	}
	return *s.NetAreaM2 / gross
}

// NetArea is the explicit net area when set, else the gross area (m²).
func (s FloorSegment) NetArea(doc units.Document) float64 {
	if s.NetAreaM2 != nil {
		return *s.NetAreaM2
	}
	return s.GrossArea(doc)
}

// WeightedArea is the gross area times the weighting factor (m²).
func (s FloorSegment) WeightedArea(doc units.Document) float64 {
	return s.GrossArea(doc) * s.WeightingFactor
}

// WeightedNetArea is the net area times the weighting factor (m²).
func (s FloorSegment) WeightedNetArea(doc units.Document) float64 {
	return s.NetArea(doc) * s.WeightingFactor
}

// Floor is an ordered set of floor segments.
type Floor struct {
	Identifier  string         `json:"identifier" yaml:"identifier"`
	DisplayName string         `json:"display_name" yaml:"display_name"`
	Segments    []FloorSegment `json:"floor_segments" yaml:"floor_segments"`
}

// NewFloor groups segments into a floor.
func NewFloor(name string, segments ...FloorSegment) (*Floor, error) {
	if len(segments) == 0 {
		return nil, ErrNoFloorSegments
	}
	f := &Floor{Identifier: units.HBName(name, "Floor")}
	f.DisplayName = f.Identifier
	f.Segments = append(f.Segments, segments...)
	return f, nil
}

// SplitFloor cuts a face with the cutter segments and returns one floor
// segment per piece, all with the same weighting factor.
func SplitFloor(g ports.GeometryAdapter, name string, face geometry.Face3D, cutters []geometry.Segment3D, weighting float64) (*Floor, error) {
	pieces := g.SurfaceSplit(face, cutters)
	segs := make([]FloorSegment, 0, len(pieces))
	for i, p := range pieces {
		s, err := NewFloorSegment(g, fmt.Sprintf("%s_%d", units.HBName(name, "FloorSegment"), i), p, weighting, nil)
		if err != nil {
			return nil, fmt.Errorf("floor piece %d: %w", i, err)
		}
		segs = append(segs, *s)
	}
	return NewFloor(name, segs...)
}

func (f Floor) GrossArea(doc units.Document) float64 {
	var sum float64
	for _, s := range f.Segments {
		sum += s.GrossArea(doc)
	}
	return sum
}

func (f Floor) NetArea(doc units.Document) float64 {
	var sum float64
	for _, s := range f.Segments {
		sum += s.NetArea(doc)
	}
	return sum
}

func (f Floor) WeightedArea(doc units.Document) float64 {
	var sum float64
	for _, s := range f.Segments {
		sum += s.WeightedArea(doc)
	}
	return sum
}

func (f Floor) WeightedNetArea(doc units.Document) float64 {
	var sum float64
	for _, s := range f.Segments {
		sum += s.WeightedNetArea(doc)
	}
	return sum
}
