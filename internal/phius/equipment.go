package phius

import (
	"fmt"
	"strings"
)

// Program is the certification program whose defaults apply.
type Program int

const (
	PHIUS Program = iota
	PHI
)

func (p Program) String() string {
	if p == PHI {
		return "PHI"
	}
	return "PHIUS"
}

func ParseProgram(s string) (Program, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "PHIUS", "":
		return PHIUS, nil
	case "PHI", "PHPP":
		return PHI, nil
	}
	return PHIUS, fmt.Errorf("unknown program %q", s)
}

// EquipmentKind identifies one appliance or load type.
type EquipmentKind int

const (
	Dishwasher EquipmentKind = iota + 1
	ClothesWasher
	ClothesDryer
	Fridge
	Freezer
	FridgeFreezer
	Cooktop
	ConsumerElectronics
	MEL
	LightingInteriorLoad
	LightingExteriorLoad
	LightingGarageLoad
)

var kindNames = map[EquipmentKind]string{
	Dishwasher:           "dishwasher",
	ClothesWasher:        "clothes_washer",
	ClothesDryer:         "clothes_dryer",
	Fridge:               "fridge",
	Freezer:              "freezer",
	FridgeFreezer:        "fridge_freezer",
	Cooktop:              "cooktop",
	ConsumerElectronics:  "consumer_electronics",
	MEL:                  "mel",
	LightingInteriorLoad: "lighting_interior",
	LightingExteriorLoad: "lighting_exterior",
	LightingGarageLoad:   "lighting_garage",
}

func (k EquipmentKind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("EquipmentKind(%d)", int(k))
}

func ParseEquipmentKind(s string) (EquipmentKind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, n := range kindNames {
		if n == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown equipment kind %q", s)
}

func (k EquipmentKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (k *EquipmentKind) UnmarshalText(b []byte) error {
	v, err := ParseEquipmentKind(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// EnergyNorm is the basis EnergyDemand is expressed on: kWh per year, per
// use or per day, or a continuous draw in W.
type EnergyNorm int

const (
	PerYear EnergyNorm = iota
	PerUse
	PerDay
	Watts
)

func (n EnergyNorm) String() string {
	switch n {
	case PerUse:
		return "kWh/use"
	case PerDay:
		return "kWh/day"
	case Watts:
		return "W"
	}
	return "kWh/yr"
}

// EquipmentConfig is the default configuration of one appliance. Capacity
// is in place settings for dishwashers and m³ for washers; Efficiency is the
// MEF of washers or the CEF of dryers.
type EquipmentConfig struct {
	DisplayName       string     `json:"display_name" yaml:"display_name"`
	InConditioned     bool       `json:"in_conditioned_space" yaml:"in_conditioned_space"`
	ReferenceQuantity int        `json:"reference_quantity" yaml:"reference_quantity"`
	EnergyDemand      float64    `json:"energy_demand" yaml:"energy_demand"`
	Norm              EnergyNorm `json:"energy_demand_norm" yaml:"energy_demand_norm"`
	Capacity          float64    `json:"capacity,omitempty" yaml:"capacity,omitempty"`
	Efficiency        float64    `json:"efficiency,omitempty" yaml:"efficiency,omitempty"`
	DHWConnected      bool       `json:"dhw_connected,omitempty" yaml:"dhw_connected,omitempty"`
}

// Phius appliance defaults, Energy Star reference models. MEL and lighting
// carry no demand here; the residential calculator fills them per story.
var PhiusEquipment = map[EquipmentKind]EquipmentConfig{
	Dishwasher:           {DisplayName: "Dishwasher", InConditioned: true, ReferenceQuantity: 1, EnergyDemand: 269, Norm: PerYear, Capacity: 12, DHWConnected: true},
	ClothesWasher:        {DisplayName: "Clothes Washer", InConditioned: true, ReferenceQuantity: 1, EnergyDemand: 120, Norm: PerYear, Capacity: 0.1274, Efficiency: 2.38, DHWConnected: true},
	ClothesDryer:         {DisplayName: "Clothes Dryer", InConditioned: true, ReferenceQuantity: 1, Norm: PerYear, Efficiency: 3.93},
	FridgeFreezer:        {DisplayName: "Fridge/Freezer", InConditioned: true, ReferenceQuantity: 1, EnergyDemand: 445, Norm: PerYear},
	Cooktop:              {DisplayName: "Cooktop", InConditioned: true, ReferenceQuantity: 1, EnergyDemand: 0.2, Norm: PerUse},
	MEL:                  {DisplayName: "Phius MEL", InConditioned: true, ReferenceQuantity: 1, Norm: PerYear},
	LightingInteriorLoad: {DisplayName: "Phius Interior Lighting", InConditioned: true, ReferenceQuantity: 1, Norm: PerYear},
	LightingExteriorLoad: {DisplayName: "Phius Exterior Lighting", ReferenceQuantity: 1, Norm: PerYear},
	LightingGarageLoad:   {DisplayName: "Phius Garage Lighting", ReferenceQuantity: 1, Norm: PerYear},
}

// PHI (PHPP) appliance defaults.
var PhiEquipment = map[EquipmentKind]EquipmentConfig{
	Dishwasher:          {DisplayName: "Dishwasher", InConditioned: true, ReferenceQuantity: 1, EnergyDemand: 1.1, Norm: PerUse, Capacity: 12, DHWConnected: true},
	ClothesWasher:       {DisplayName: "Clothes Washer", InConditioned: true, ReferenceQuantity: 1, EnergyDemand: 1.1, Norm: PerUse, Capacity: 0.1274, DHWConnected: true},
	ClothesDryer:        {DisplayName: "Clothes Dryer", InConditioned: true, ReferenceQuantity: 1, EnergyDemand: 3.5, Norm: PerUse},
	Fridge:              {DisplayName: "Fridge", InConditioned: true, ReferenceQuantity: 1, EnergyDemand: 0.78, Norm: PerDay},
	Freezer:             {DisplayName: "Freezer", InConditioned: true, ReferenceQuantity: 1, EnergyDemand: 0.88, Norm: PerDay},
	FridgeFreezer:       {DisplayName: "Fridge/Freezer", InConditioned: true, ReferenceQuantity: 1, EnergyDemand: 1.0, Norm: PerDay},
	Cooktop:             {DisplayName: "Cooktop", InConditioned: true, ReferenceQuantity: 1, EnergyDemand: 0.25, Norm: PerUse},
	ConsumerElectronics: {DisplayName: "Consumer Electronics", InConditioned: true, ReferenceQuantity: 1, EnergyDemand: 80, Norm: Watts},
}

// Defaults returns a copy of the default set of a program, so callers may
// change entries freely.
func Defaults(p Program) map[EquipmentKind]EquipmentConfig {
	src := PhiusEquipment
	if p == PHI {
		src = PhiEquipment
	}
	out := make(map[EquipmentKind]EquipmentConfig, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

// Config looks up one kind in a program's defaults.
func Config(p Program, k EquipmentKind) (EquipmentConfig, bool) {
	c, ok := Defaults(p)[k]
	return c, ok
}

// Select returns the configs for the requested kinds. Kinds the program has
// no default for are returned in missing.
func Select(p Program, kinds ...EquipmentKind) (set map[EquipmentKind]EquipmentConfig, missing []EquipmentKind) {
	all := Defaults(p)
	set = make(map[EquipmentKind]EquipmentConfig, len(kinds))
	for _, k := range kinds {
		c, ok := all[k]
		if !ok {
			missing = append(missing, k)
			continue
		}
		set[k] = c
	}
	return set, missing
}
