// Package model holds the room and aperture objects the Passive House
// components read and extend. Extensions live in a capability registry on
// each room.
package model

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mitchellh/copystructure"

	"github.com/alexiusacademia/gophb/internal/geometry"
	"github.com/alexiusacademia/gophb/internal/ports"
	"github.com/alexiusacademia/gophb/internal/units"
	"github.com/alexiusacademia/gophb/internal/window"
)

// Aperture is a window or door opening in a room face.
type Aperture struct {
	Identifier  string               `json:"identifier" yaml:"identifier"`
	DisplayName string               `json:"display_name" yaml:"display_name"`
	Geometry    geometry.Face3D      `json:"geometry" yaml:"geometry"`
	Ph          window.ApertureProps `json:"ph" yaml:"ph"`
}

// NewAperture returns an aperture with default Passive House properties.
func NewAperture(name string, face geometry.Face3D) *Aperture {
	a := &Aperture{Identifier: units.HBName(name, "Aperture"), Geometry: face, Ph: window.NewApertureProps()}
	a.DisplayName = a.Identifier
	return a
}

// Duplicate returns a deep copy.
func (a *Aperture) Duplicate() (*Aperture, error) {
	return Duplicate(a)
}

// Room is a closed thermal zone.
type Room struct {
	Identifier  string           `json:"identifier" yaml:"identifier"`
	DisplayName string           `json:"display_name" yaml:"display_name"`
	Story       string           `json:"story,omitempty" yaml:"story,omitempty"`
	Geometry    geometry.Solid3D `json:"geometry" yaml:"geometry"`
	Apertures   []*Aperture      `json:"apertures,omitempty" yaml:"apertures,omitempty"`
	Properties  Capabilities     `json:"properties" yaml:"-"`
}

// NewRoom returns a room with an empty capability registry.
func NewRoom(name, story string, solid geometry.Solid3D) *Room {
	r := &Room{
		Identifier: units.HBName(name, "Room"),
		Story:      story,
		Geometry:   solid,
		Properties: Capabilities{},
	}
	r.DisplayName = r.Identifier
	return r
}

// Caps returns the registry, creating it for rooms built as literals.
func (r *Room) Caps() Capabilities {
	if r.Properties == nil {
		r.Properties = Capabilities{}
	}
	return r.Properties
}

// Duplicate returns a deep copy; the original is never aliased.
func (r *Room) Duplicate() (*Room, error) {
	return Duplicate(r)
}

// IsClosed reports whether the room geometry is a closed solid.
func (r *Room) IsClosed(g ports.GeometryAdapter) bool {
	return g.SolidIsClosed(r.Geometry)
}

// FloorArea is the weighted net floor area of the room's spaces (m²). A
// room without spaces reports the area of its downward-facing faces.
func (r *Room) FloorArea(g ports.GeometryAdapter) float64 {
	doc := g.Document()
	if ph, ok := r.Properties[CapabilityPh].(*PhRoom); ok && len(ph.Spaces) > 0 {
		var sum float64
		for _, s := range ph.Spaces {
			sum += s.WeightedNetFloorArea(doc)
		}
		return sum
	}
	var sum float64
	for _, f := range r.Geometry.FloorFaces(g.Tolerance()) {
		sum += doc.AreaToM2(f.Area())
	}
	return sum
}

// Model is a set of rooms in one document.
type Model struct {
	Identifier  string     `json:"identifier" yaml:"identifier"`
	DisplayName string     `json:"display_name" yaml:"display_name"`
	Units       units.Unit `json:"units" yaml:"units"`
	Tolerance   float64    `json:"tolerance" yaml:"tolerance"`
	Rooms       []*Room    `json:"rooms" yaml:"rooms"`
}

// Room finds a room by identifier or display name.
func (m *Model) Room(name string) (*Room, error) {
	for _, r := range m.Rooms {
		if r.Identifier == name || r.DisplayName == name {
			return r, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownRoom, name)
}

// Duplicate returns a deep copy of the model.
func (m *Model) Duplicate() (*Model, error) {
	return Duplicate(m)
}

// WriteJSON writes the model as indented JSON.
func (m *Model) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(m)
}

// Duplicate deep-copies v. Systems attached to rooms go through it so no
// two rooms share slices or pointers.
func Duplicate[T any](v *T) (*T, error) {
	if v == nil {
		return nil, nil
	}
	c, err := copystructure.Copy(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDuplicate, err)
	}
	out, ok := c.(*T)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected copy type %T", ErrDuplicate, c)
	}
	return out, nil
}
