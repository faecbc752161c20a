package space

import (
	"github.com/alexiusacademia/gophb/internal/geometry"
	"github.com/alexiusacademia/gophb/internal/ports"
	"github.com/alexiusacademia/gophb/internal/units"
)

// DefaultHeightM is the extrusion height of a volume built from a floor.
const DefaultHeightM = 2.5

// Volume is a floor with either an extrusion height or explicit faces.
type Volume struct {
	Identifier  string             `json:"identifier" yaml:"identifier"`
	DisplayName string             `json:"display_name" yaml:"display_name"`
	Floor       Floor              `json:"floor" yaml:"floor"`
	Height      float64            `json:"height" yaml:"height"` // document units
	Faces       []geometry.Face3D  `json:"faces,omitempty" yaml:"faces,omitempty"`
	Geometry    []geometry.Solid3D `json:"geometry" yaml:"geometry"`
}

// NewVolume extrudes each floor segment upward by height (document units).
// A height <= 0 uses DefaultHeightM converted to the document unit.
func NewVolume(g ports.GeometryAdapter, name string, floor Floor, height float64) (*Volume, error) {
	if len(floor.Segments) == 0 {
		return nil, ErrNoFloorSegments
	}
	if height <= 0 {
		height = g.Document().FromMeters(DefaultHeightM)
	}
	v := &Volume{Identifier: units.HBName(name, "Volume"), Floor: floor, Height: height}
	v.DisplayName = v.Identifier
	up := g.Amplitude(g.UnitZ(), height)
	for _, s := range floor.Segments {
		v.Geometry = append(v.Geometry, g.Extrude(s.Geometry, up))
	}
	return v, nil
}

// NewVolumeFromFaces builds a volume from caller-supplied faces that
// must close into a solid.
func NewVolumeFromFaces(g ports.GeometryAdapter, name string, floor Floor, faces []geometry.Face3D) (*Volume, error) {
	if len(floor.Segments) == 0 {
		return nil, ErrNoFloorSegments
	}
	solid := geometry.Solid3D{Faces: append([]geometry.Face3D(nil), faces...)}
	if !g.SolidIsClosed(solid) {
		return nil, ErrNotClosed
	}
	min, max := solid.BoundingBox()
	v := &Volume{
		Identifier: units.HBName(name, "Volume"),
		Floor:      floor,
		Height:     max.Z - min.Z,
		Faces:      solid.Faces,
		Geometry:   []geometry.Solid3D{solid},
	}
	v.DisplayName = v.Identifier
	return v, nil
}

// GrossVolume is the volume of the geometry in m³.
func (v Volume) GrossVolume(doc units.Document) float64 {
	var sum float64
	for _, s := range v.Geometry {
		sum += s.Volume()
	}
	return doc.VolumeToM3(sum)
}

// NetVolume is the net floor area times the height (m³) for extruded
// volumes, and the gross volume for face-built ones.
func (v Volume) NetVolume(doc units.Document) float64 {
	if len(v.Faces) > 0 {
		return v.GrossVolume(doc)
	}
	return v.Floor.NetArea(doc) * doc.ToMeters(v.Height)
}

// Contains reports whether p lies in any of the volume's solids.
func (v Volume) Contains(g ports.GeometryAdapter, p geometry.Point3D) bool {
	for _, s := range v.Geometry {
		if g.PointInsideSolid(s, p) {
			return true
		}
	}
	return false
}
