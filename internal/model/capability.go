package model

import (
	"github.com/alexiusacademia/gophb/internal/dhw"
	"github.com/alexiusacademia/gophb/internal/hvac"
	"github.com/alexiusacademia/gophb/internal/space"
)

// CapabilityTag names an extension a room can carry.
type CapabilityTag string

const (
	CapabilityPh     CapabilityTag = "ph"
	CapabilityEnergy CapabilityTag = "energy"
)

// Capability is one extension of a room.
type Capability interface {
	Tag() CapabilityTag
}

// Capabilities is the registry of a room's extensions keyed by tag.
type Capabilities map[CapabilityTag]Capability

// Ph returns the Passive House capability, registering an empty one on
// first use.
func (c Capabilities) Ph() *PhRoom {
	if v, ok := c[CapabilityPh].(*PhRoom); ok {
		return v
	}
	v := &PhRoom{}
	c[CapabilityPh] = v
	return v
}

// Energy returns the energy capability, registering an empty one on first
// use.
func (c Capabilities) Energy() *EnergyRoom {
	if v, ok := c[CapabilityEnergy].(*EnergyRoom); ok {
		return v
	}
	v := &EnergyRoom{}
	c[CapabilityEnergy] = v
	return v
}

// Team is the project team recorded for certification.
type Team struct {
	Designer   string `json:"designer,omitempty" yaml:"designer,omitempty"`
	Owner      string `json:"owner,omitempty" yaml:"owner,omitempty"`
	Verifier   string `json:"verifier,omitempty" yaml:"verifier,omitempty"`
	Contractor string `json:"contractor,omitempty" yaml:"contractor,omitempty"`
}

// Certification is the program a room is certified under.
type Certification struct {
	Program  string `json:"program,omitempty" yaml:"program,omitempty"`
	Building string `json:"building_status,omitempty" yaml:"building_status,omitempty"`
}

// PhRoom carries the Passive House extension of a room.
type PhRoom struct {
	Spaces        []*space.Space `json:"spaces" yaml:"spaces"`
	Team          *Team          `json:"team,omitempty" yaml:"team,omitempty"`
	Certification *Certification `json:"certification,omitempty" yaml:"certification,omitempty"`
}

func (*PhRoom) Tag() CapabilityTag { return CapabilityPh }

// AddSpace appends a space.
func (p *PhRoom) AddSpace(s *space.Space) {
	p.Spaces = append(p.Spaces, s)
}

// RoomHvac holds the mechanical systems serving a room.
type RoomHvac struct {
	Ventilator *hvac.Ventilator        `json:"ventilator,omitempty" yaml:"ventilator,omitempty"`
	Ducts      []hvac.Duct             `json:"ducts,omitempty" yaml:"ducts,omitempty"`
	Supportive []hvac.SupportiveDevice `json:"supportive_devices,omitempty" yaml:"supportive_devices,omitempty"`
	Renewable  []hvac.RenewableDevice  `json:"renewable_devices,omitempty" yaml:"renewable_devices,omitempty"`
	HotWater   *dhw.System             `json:"hot_water,omitempty" yaml:"hot_water,omitempty"`
}

// Ventilation is the outdoor-air load of a room. The energy extension
// used two spellings for the absolute flow; both are read, and the
// corrected one wins.
type Ventilation struct {
	AbsoluteVentilation *float64 `json:"flow_per_zone,omitempty" yaml:"absolute_ventilation,omitempty"`
	AboluteVentilation  *float64 `json:"-" yaml:"abolute_ventilation,omitempty"`
}

// Absolute returns the absolute flow (m³/s), preferring the corrected
// spelling.
func (v *Ventilation) Absolute() float64 {
	switch {
	case v == nil:
		return 0
	case v.AbsoluteVentilation != nil:
		return *v.AbsoluteVentilation
	case v.AboluteVentilation != nil:
		return *v.AboluteVentilation
	}
	return 0
}

// AddAbsolute adds flow (m³/s) to whichever spelling is in use; a load with
// neither starts the corrected one.
func (v *Ventilation) AddAbsolute(flow float64) {
	if v.AbsoluteVentilation == nil && v.AboluteVentilation != nil {
		*v.AboluteVentilation += flow
		return
	}
	total := v.Absolute() + flow
	v.AbsoluteVentilation = &total
}

// EnergyRoom carries the energy-simulation extension of a room.
type EnergyRoom struct {
	People      *People      `json:"people,omitempty" yaml:"people,omitempty"`
	Ventilation *Ventilation `json:"ventilation,omitempty" yaml:"ventilation,omitempty"`
	Hvac        RoomHvac     `json:"hvac" yaml:"hvac"`
}

func (*EnergyRoom) Tag() CapabilityTag { return CapabilityEnergy }

// VentilationLoad returns the ventilation load, creating it on first use.
func (e *EnergyRoom) VentilationLoad() *Ventilation {
	if e.Ventilation == nil {
		e.Ventilation = &Ventilation{}
	}
	return e.Ventilation
}
