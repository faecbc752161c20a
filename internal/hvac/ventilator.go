// Package hvac models ventilation units, ducts and the supportive and
// renewable devices attached to rooms.
package hvac

import (
	"github.com/alexiusacademia/gophb/internal/units"
	"github.com/alexiusacademia/gophb/internal/validate"
)

// Ventilator is a heat- or energy-recovery ventilation unit.
type Ventilator struct {
	Identifier           string  `json:"identifier" yaml:"identifier"`
	DisplayName          string  `json:"display_name" yaml:"display_name"`
	SensibleHeatRecovery float64 `json:"sensible_heat_recovery" yaml:"sensible_heat_recovery" validate:"gte=0,lte=1"`
	LatentHeatRecovery   float64 `json:"latent_heat_recovery" yaml:"latent_heat_recovery" validate:"gte=0,lte=1"`
	ElectricEfficiency   float64 `json:"electric_efficiency" yaml:"electric_efficiency" validate:"gte=0"` // Wh/m³
	FrostProtection      bool    `json:"frost_protection_reqd" yaml:"frost_protection"`
	FrostTemp            float64 `json:"temperature_below_defrost_used" yaml:"frost_temp"` // °C
	InConditionedSpace   bool    `json:"in_conditioned_space" yaml:"in_conditioned_space"`
}

// VentilatorInputs are user values; nil fields keep the defaults.
type VentilatorInputs struct {
	Name               string
	SensibleHR         any
	LatentHR           any
	ElectricEfficiency any
	FrostProtection    *bool
	FrostTemp          any
	InConditionedSpace *bool
}

// DefaultVentilator returns a unit with the standard defaults.
func DefaultVentilator(name string) *Ventilator {
	v := &Ventilator{
		Identifier:           units.HBName(name, "Ventilator"),
		SensibleHeatRecovery: 0.75,
		LatentHeatRecovery:   0,
		ElectricEfficiency:   0.45,
		FrostProtection:      true,
		FrostTemp:            -5,
		InConditionedSpace:   true,
	}
	v.DisplayName = v.Identifier
	return v
}

// NewVentilator applies in over the defaults.
func NewVentilator(in VentilatorInputs) (*Ventilator, error) {
	v := DefaultVentilator(in.Name)
	var err error
	if in.SensibleHR != nil {
		if v.SensibleHeatRecovery, err = percentage("sensible_heat_recovery", in.SensibleHR); err != nil {
			return nil, err
		}
	}
	if in.LatentHR != nil {
		if v.LatentHeatRecovery, err = percentage("latent_heat_recovery", in.LatentHR); err != nil {
			return nil, err
		}
	}
	if in.ElectricEfficiency != nil {
		if v.ElectricEfficiency, err = units.UnitWH_M3("electric_efficiency", in.ElectricEfficiency); err != nil {
			return nil, err
		}
	}
	if in.FrostTemp != nil {
		if v.FrostTemp, err = units.UnitDegreeC("frost_temp", in.FrostTemp); err != nil {
			return nil, err
		}
	}
	if in.FrostProtection != nil {
		v.FrostProtection = *in.FrostProtection
	}
	if in.InConditionedSpace != nil {
		v.InConditionedSpace = *in.InConditionedSpace
	}
	if err := validate.Struct(v); err != nil {
		return nil, err
	}
	return v, nil
}

func percentage(field string, in any) (float64, error) {
	f, err := units.ToUnit(field, in, units.Percent, units.Percent)
	if err != nil {
		return 0, err
	}
	return units.FloatPercentage(field, f)
}
