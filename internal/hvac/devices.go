package hvac

import (
	"fmt"
	"strings"

	"github.com/alexiusacademia/gophb/internal/units"
	"github.com/alexiusacademia/gophb/internal/validate"
)

const hoursPerYear = 8760

// SupportiveDevice is an auxiliary electric device such as a pump or fan.
type SupportiveDevice struct {
	Identifier         string  `json:"identifier" yaml:"identifier"`
	DisplayName        string  `json:"display_name" yaml:"display_name"`
	DeviceType         string  `json:"device_type" yaml:"device_type" validate:"required"`
	Quantity           int     `json:"quantity" yaml:"quantity" validate:"gte=1"`
	InConditionedSpace bool    `json:"in_conditioned_space" yaml:"in_conditioned_space"`
	NormEnergyDemandW  float64 `json:"norm_energy_demand_W" yaml:"norm_energy_demand_w" validate:"gte=0"`
	AnnualPeriodHours  float64 `json:"annual_period" yaml:"annual_period" validate:"gte=0,lte=8760"`
}

// NewSupportiveDevice validates a device. An annual period of 0 means the
// device runs all year.
func NewSupportiveDevice(name, deviceType string, quantity int, watts, hours float64, inConditioned bool) (*SupportiveDevice, error) {
	if hours == 0 {
		hours = hoursPerYear
	}
	d := &SupportiveDevice{
		Identifier:         units.HBName(name, "SupportiveDevice"),
		DeviceType:         strings.ToLower(strings.TrimSpace(deviceType)),
		Quantity:           quantity,
		InConditionedSpace: inConditioned,
		NormEnergyDemandW:  watts,
		AnnualPeriodHours:  hours,
	}
	d.DisplayName = d.Identifier
	if err := validate.Struct(d); err != nil {
		return nil, err
	}
	return d, nil
}

// AnnualEnergyKWH is quantity × power × hours.
func (d SupportiveDevice) AnnualEnergyKWH() float64 {
	return float64(d.Quantity) * d.NormEnergyDemandW * d.AnnualPeriodHours / 1000
}

// RenewableKind enumerates on-site generation.
type RenewableKind string

const (
	RenewablePV   RenewableKind = "photovoltaic"
	RenewableWind RenewableKind = "wind"
	RenewableCHP  RenewableKind = "chp"
)

func ParseRenewableKind(s string) (RenewableKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pv", "photovoltaic", "solar":
		return RenewablePV, nil
	case "wind":
		return RenewableWind, nil
	case "chp":
		return RenewableCHP, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDeviceType, s)
}

// RenewableDevice is an on-site generator.
type RenewableDevice struct {
	Identifier          string        `json:"identifier" yaml:"identifier"`
	DisplayName         string        `json:"display_name" yaml:"display_name"`
	Kind                RenewableKind `json:"device_type" yaml:"kind"`
	AnnualGenerationKWH float64       `json:"photovoltaic_renewable_energy" yaml:"annual_generation_kwh" validate:"gte=0"`
	OnsiteUtilization   float64       `json:"percent_onsite_utilization" yaml:"onsite_utilization" validate:"gte=0,lte=1"`
}

// NewRenewableDevice parses generation (kWh, any energy unit) and the
// on-site utilisation fraction.
func NewRenewableDevice(name string, kind RenewableKind, generation any, utilization float64) (*RenewableDevice, error) {
	kwh, err := units.UnitKWH("annual_generation_kwh", generation)
	if err != nil {
		return nil, err
	}
	u, err := units.FloatPercentage("onsite_utilization", utilization)
	if err != nil {
		return nil, err
	}
	d := &RenewableDevice{
		Identifier:          units.HBName(name, "RenewableDevice"),
		Kind:                kind,
		AnnualGenerationKWH: kwh,
		OnsiteUtilization:   u,
	}
	d.DisplayName = d.Identifier
	if err := validate.Struct(d); err != nil {
		return nil, err
	}
	return d, nil
}

// OnsiteKWH is the generation used on site.
func (d RenewableDevice) OnsiteKWH() float64 {
	return d.AnnualGenerationKWH * d.OnsiteUtilization
}
