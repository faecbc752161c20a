// Package trf computes the temperature reduction factor of a thermal
// boundary against an unconditioned attached zone such as a garage.
package trf

import (
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/alexiusacademia/gophb/internal/climate"
	"github.com/alexiusacademia/gophb/internal/units"
)

const (
	InteriorTemp   = 20.0
	FactorInterior = 0.0
	FactorExterior = 1.0
)

// Inputs are the user-facing values. ZoneTemp accepts a number in °C or a
// string with a temperature unit.
type Inputs struct {
	Name         string
	ZoneTemp     any
	OutdoorTemps []float64
}

// Factor is a computed reduction factor.
type Factor struct {
	Identifier   string         `json:"identifier" yaml:"identifier"`
	ZoneTemp     float64        `json:"zone_temp" yaml:"zone_temp"`
	OutdoorTemps climate.Months `json:"outdoor_temps" yaml:"outdoor_temps"`
	ColdMonths   int            `json:"cold_months" yaml:"cold_months"`
	MeanOutdoor  float64        `json:"mean_outdoor" yaml:"mean_outdoor"`
	Value        float64        `json:"factor" yaml:"factor"`
}

// Compute returns the reduction factor for a zone at tz against the monthly
// outdoor temperatures. Only months at or below tz count toward the mean;
// with no such month the factor is 0. The factor is clamped to [0, 1].
func Compute(tz float64, outdoor climate.Months) (value, meanOutdoor float64, n int) {
	var sum float64
	for _, t := range outdoor {
		if t <= tz {
			sum += t
			n++
		}
	}
	if n == 0 {
		return 0, tz, 0
	}
	meanOutdoor = sum / float64(n)
	slope := (InteriorTemp - meanOutdoor) / (FactorInterior - FactorExterior)
	if slope == 0 {
		return 0, meanOutdoor, n
	}
	v := (tz - InteriorTemp) / slope
	return math.Min(math.Max(v, FactorInterior), FactorExterior), meanOutdoor, n
}

// New builds a Factor. Missing name, zone temperature or monthly values is
// not an error: New logs the gap and returns nil.
func New(in Inputs, log *zap.Logger) (*Factor, error) {
	if log == nil {
		log = zap.NewNop()
	}
	name := strings.TrimSpace(in.Name)
	switch {
	case name == "":
		log.Warn("trf: name is required")
		return nil, nil
	case in.ZoneTemp == nil:
		log.Warn("trf: zone temperature is required", zap.String("name", name))
		return nil, nil
	case len(in.OutdoorTemps) == 0:
		log.Warn("trf: monthly outdoor temperatures are required", zap.String("name", name))
		return nil, nil
	}

	tz, err := units.UnitDegreeC("zone_temp", in.ZoneTemp)
	if err != nil {
		return nil, err
	}
	months, err := climate.MonthsFrom(in.OutdoorTemps)
	if err != nil {
		return nil, &units.InvalidQuantityError{Field: "outdoor_temps", Input: err.Error(), Reason: "need 12 monthly values"}
	}
	v, mean, n := Compute(tz, months)
	return &Factor{
		Identifier:   name,
		ZoneTemp:     tz,
		OutdoorTemps: months,
		ColdMonths:   n,
		MeanOutdoor:  mean,
		Value:        v,
	}, nil
}

// FromSite takes the outdoor temperatures from a parsed climate site.
func FromSite(name string, zoneTemp any, site *climate.Site, log *zap.Logger) (*Factor, error) {
	in := Inputs{Name: name, ZoneTemp: zoneTemp}
	if site != nil {
		in.OutdoorTemps = site.Climate.MonthlyTemps.AirTemps.Slice()
	}
	return New(in, log)
}
