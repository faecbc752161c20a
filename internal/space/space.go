package space

import (
	"github.com/alexiusacademia/gophb/internal/geometry"
	"github.com/alexiusacademia/gophb/internal/ports"
	"github.com/alexiusacademia/gophb/internal/units"
	"github.com/alexiusacademia/gophb/internal/validate"
)

// FlowRates are the Passive House ventilation airflows of a space (m³/h).
type FlowRates struct {
	Supply   float64 `json:"v_sup" yaml:"supply" validate:"gte=0"`
	Extract  float64 `json:"v_eta" yaml:"extract" validate:"gte=0"`
	Transfer float64 `json:"v_tran" yaml:"transfer" validate:"gte=0"`
}

// Space is a numbered, named set of volumes hosted by a room.
type Space struct {
	Identifier             string     `json:"identifier" yaml:"identifier"`
	Number                 string     `json:"number" yaml:"number"`
	Name                   string     `json:"name" yaml:"name"`
	HostRef                string     `json:"host,omitempty" yaml:"host,omitempty"`
	Volumes                []Volume   `json:"volumes" yaml:"volumes"`
	PhVentilationFlowRates *FlowRates `json:"ph_vent_flow_rates,omitempty" yaml:"ph_vent_flow_rates,omitempty"`
}

// New returns an unhosted space.
func New(number, name string, volumes ...Volume) *Space {
	return &Space{
		Identifier: units.HBName("", "Space"),
		Number:     number,
		Name:       units.HBName(name, "Space"),
		Volumes:    append([]Volume(nil), volumes...),
	}
}

// SetFlowRates validates and stores the ventilation flow rates.
func (s *Space) SetFlowRates(fr FlowRates) error {
	if err := validate.Struct(fr); err != nil {
		return err
	}
	s.PhVentilationFlowRates = &fr
	return nil
}

// Hosted reports whether the space has been bound to a room.
func (s *Space) Hosted() bool { return s.HostRef != "" }

// HoneybeeFlowRate is the balanced airflow of the space in m³/s: the
// larger of supply and extract. Supply and extract move the same outdoor
// air through a balanced ventilator, so adding them would count that air
// twice; the larger stream is the fresh-air rate the energy model needs.
// Zero without flow rates.
func (s *Space) HoneybeeFlowRate() float64 {
	if s.PhVentilationFlowRates == nil {
		return 0
	}
	fr := s.PhVentilationFlowRates
	return max(fr.Supply, fr.Extract) / 3600
}

// FloorSegments returns every floor segment of every volume in order.
func (s *Space) FloorSegments() []FloorSegment {
	var out []FloorSegment
	for _, v := range s.Volumes {
		out = append(out, v.Floor.Segments...)
	}
	return out
}

// ReferencePoints returns the segment reference points lifted by dz
// document units.
func (s *Space) ReferencePoints(g ports.GeometryAdapter, dz float64) []geometry.Point3D {
	segs := s.FloorSegments()
	out := make([]geometry.Point3D, 0, len(segs))
	lift := g.Amplitude(g.UnitZ(), dz)
	for _, seg := range segs {
		p := seg.ReferencePoint
		if dz != 0 {
			p = g.Move(p, lift)
		}
		out = append(out, p)
	}
	return out
}

func (s *Space) WeightedFloorArea(doc units.Document) float64 {
	var sum float64
	for _, v := range s.Volumes {
		sum += v.Floor.WeightedArea(doc)
	}
	return sum
}

func (s *Space) WeightedNetFloorArea(doc units.Document) float64 {
	var sum float64
	for _, v := range s.Volumes {
		sum += v.Floor.WeightedNetArea(doc)
	}
	return sum
}

func (s *Space) NetFloorArea(doc units.Document) float64 {
	var sum float64
	for _, v := range s.Volumes {
		sum += v.Floor.NetArea(doc)
	}
	return sum
}

func (s *Space) NetVolume(doc units.Document) float64 {
	var sum float64
	for _, v := range s.Volumes {
		sum += v.NetVolume(doc)
	}
	return sum
}

// Merge returns a single space named name holding the volumes of all
// spaces in order. Flow rates are summed when any space has them.
func Merge(number, name string, spaces ...*Space) *Space {
	out := New(number, name)
	var fr *FlowRates
	for _, s := range spaces {
		out.Volumes = append(out.Volumes, s.Volumes...)
		if s.PhVentilationFlowRates != nil {
			if fr == nil {
				fr = &FlowRates{}
			}
			fr.Supply += s.PhVentilationFlowRates.Supply
			fr.Extract += s.PhVentilationFlowRates.Extract
			fr.Transfer += s.PhVentilationFlowRates.Transfer
		}
		if out.HostRef == "" {
			out.HostRef = s.HostRef
		}
	}
	out.PhVentilationFlowRates = fr
	return out
}
