package model

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/alexiusacademia/gophb/internal/geometry"
	"github.com/alexiusacademia/gophb/internal/ports"
	"github.com/alexiusacademia/gophb/internal/space"
	"github.com/alexiusacademia/gophb/internal/units"
)

// File is the YAML description of a building model: rooms as boxes or
// face lists, the spaces still to be hosted and the systems applied to
// every room.
type File struct {
	Name      string       `yaml:"name"`
	Units     string       `yaml:"units"`
	Tolerance float64      `yaml:"tolerance"`
	Rooms     []RoomSpec   `yaml:"rooms"`
	Spaces    []SpaceSpec  `yaml:"spaces"`
	Systems   *SystemsSpec `yaml:"systems"`
}

type BoxSpec struct {
	Min [3]float64 `yaml:"min"`
	Max [3]float64 `yaml:"max"`
}

type PeopleSpec struct {
	PeoplePerArea    float64   `yaml:"people_per_area"`
	Schedule         []float64 `yaml:"occupancy_schedule"`
	Dwelling         string    `yaml:"dwelling"`
	Bedrooms         int       `yaml:"bedrooms"`
	AverageOccupancy float64   `yaml:"average_occupancy"`
}

type ApertureSpec struct {
	Name     string       `yaml:"name"`
	Vertices [][3]float64 `yaml:"vertices"`
}

type RoomSpec struct {
	Name                string         `yaml:"name"`
	Story               string         `yaml:"story"`
	Box                 *BoxSpec       `yaml:"box"`
	Faces               [][][3]float64 `yaml:"faces"`
	People              *PeopleSpec    `yaml:"people"`
	Apertures           []ApertureSpec `yaml:"apertures"`
	AbsoluteVentilation *float64       `yaml:"absolute_ventilation"`
	AboluteVentilation  *float64       `yaml:"abolute_ventilation"`
	Team                *Team          `yaml:"team"`
	Certification       *Certification `yaml:"certification"`
}

type SegmentSpec struct {
	Vertices        [][3]float64 `yaml:"vertices"`
	WeightingFactor *float64     `yaml:"weighting_factor"`
	NetArea         *float64     `yaml:"net_area"`
}

type SpaceSpec struct {
	Number    string           `yaml:"number"`
	Name      string           `yaml:"name"`
	Height    float64          `yaml:"height"`
	Segments  []SegmentSpec    `yaml:"floor_segments"`
	FlowRates *space.FlowRates `yaml:"flow_rates"`
}

// Read decodes a model file, rejecting unknown keys.
func Read(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var f File
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode model file: %w", err)
	}
	return &f, nil
}

// ReadFile opens and decodes a model file.
func ReadFile(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open model file: %w", err)
	}
	defer fh.Close()
	return Read(fh)
}

// Document returns the file's document unit, or def when it has none.
func (f *File) Document(def units.Document) (units.Document, error) {
	if f.Units == "" {
		return def, nil
	}
	u, ok := units.LookupUnit(f.Units)
	if !ok {
		return def, &units.InvalidQuantityError{Field: "units", Input: f.Units, Reason: "unrecognised unit"}
	}
	doc := units.Document{Unit: u}
	return doc, doc.Validate()
}

func points(raw [][3]float64) []geometry.Point3D {
	out := make([]geometry.Point3D, len(raw))
	for i, p := range raw {
		out[i] = geometry.Pt(p[0], p[1], p[2])
	}
	return out
}

// Build turns the file into a model and its unhosted spaces.
func (f *File) Build(g ports.GeometryAdapter) (*Model, []*space.Space, error) {
	m := &Model{
		Identifier: units.HBName(f.Name, "Model"),
		Units:      g.Document().Unit,
		Tolerance:  g.Tolerance(),
	}
	m.DisplayName = m.Identifier

	for i, rs := range f.Rooms {
		r, err := rs.build(g)
		if err != nil {
			return nil, nil, fmt.Errorf("room %d (%s): %w", i, rs.Name, err)
		}
		m.Rooms = append(m.Rooms, r)
	}

	spaces := make([]*space.Space, 0, len(f.Spaces))
	for i, ss := range f.Spaces {
		s, err := ss.build(g)
		if err != nil {
			return nil, nil, fmt.Errorf("space %d (%s): %w", i, ss.Name, err)
		}
		spaces = append(spaces, s)
	}
	return m, spaces, nil
}

func (rs RoomSpec) build(g ports.GeometryAdapter) (*Room, error) {
	var solid geometry.Solid3D
	switch {
	case rs.Box != nil:
		solid = geometry.Box(geometry.Pt(rs.Box.Min[0], rs.Box.Min[1], rs.Box.Min[2]),
			geometry.Pt(rs.Box.Max[0], rs.Box.Max[1], rs.Box.Max[2]))
	case len(rs.Faces) > 0:
		for _, fc := range rs.Faces {
			solid.Faces = append(solid.Faces, geometry.NewFace(points(fc)...))
		}
	default:
		return nil, ErrRoomGeometry
	}

	r := NewRoom(rs.Name, rs.Story, solid)
	for _, as := range rs.Apertures {
		r.Apertures = append(r.Apertures, NewAperture(as.Name, geometry.NewFace(points(as.Vertices)...)))
	}

	caps := r.Caps()
	if rs.Team != nil || rs.Certification != nil {
		ph := caps.Ph()
		ph.Team, ph.Certification = rs.Team, rs.Certification
	}
	if rs.People != nil || rs.AbsoluteVentilation != nil || rs.AboluteVentilation != nil {
		en := caps.Energy()
		if p := rs.People; p != nil {
			en.People = NewPeople(rs.Name+"_People", p.PeoplePerArea, p.Schedule, PeoplePh{
				DwellingID:       p.Dwelling,
				NumberBedrooms:   p.Bedrooms,
				AverageOccupancy: p.AverageOccupancy,
			})
		}
		if rs.AbsoluteVentilation != nil || rs.AboluteVentilation != nil {
			en.Ventilation = &Ventilation{
				AbsoluteVentilation: rs.AbsoluteVentilation,
				AboluteVentilation:  rs.AboluteVentilation,
			}
		}
	}
	return r, nil
}

func (ss SpaceSpec) build(g ports.GeometryAdapter) (*space.Space, error) {
	segs := make([]space.FloorSegment, 0, len(ss.Segments))
	for i, seg := range ss.Segments {
		wf := 1.0
		if seg.WeightingFactor != nil {
			wf = *seg.WeightingFactor
		}
		fs, err := space.NewFloorSegment(g, fmt.Sprintf("%s_%d", ss.Name, i), geometry.NewFace(points(seg.Vertices)...), wf, seg.NetArea)
		if err != nil {
			return nil, fmt.Errorf("floor segment %d: %w", i, err)
		}
		segs = append(segs, *fs)
	}
	floor, err := space.NewFloor(ss.Name, segs...)
	if err != nil {
		return nil, err
	}
	vol, err := space.NewVolume(g, ss.Name, *floor, ss.Height)
	if err != nil {
		return nil, err
	}
	s := space.New(ss.Number, ss.Name, *vol)
	if ss.FlowRates != nil {
		if err := s.SetFlowRates(*ss.FlowRates); err != nil {
			return nil, err
		}
	}
	return s, nil
}
