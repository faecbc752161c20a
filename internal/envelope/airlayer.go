// Package envelope computes opaque envelope material properties: closed
// air-layer equivalent conductivity and material metadata.
package envelope

import (
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/alexiusacademia/gophb/internal/units"
	"github.com/alexiusacademia/gophb/internal/validate"
)

// HeatFlow is the direction of heat flow across an air layer.
type HeatFlow int

const (
	HeatFlowUpwards HeatFlow = iota
	HeatFlowHorizontal
	HeatFlowDownwards
)

func (h HeatFlow) String() string {
	switch h {
	case HeatFlowUpwards:
		return "upwards"
	case HeatFlowHorizontal:
		return "horizontal"
	case HeatFlowDownwards:
		return "downwards"
	default:
		return "unknown"
	}
}

// Angle returns the heat-flow angle in degrees (0 up, 90 horizontal, 180 down).
func (h HeatFlow) Angle() float64 {
	switch h {
	case HeatFlowHorizontal:
		return 90
	case HeatFlowDownwards:
		return 180
	}
	return 0
}

// ParseHeatFlow accepts names (up, horizontal, down) or angles (0, 90, 180).
func ParseHeatFlow(s string) (HeatFlow, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "upwards", "upward", "0":
		return HeatFlowUpwards, nil
	case "horizontal", "side", "sideways", "90":
		return HeatFlowHorizontal, nil
	case "down", "downwards", "downward", "180":
		return HeatFlowDownwards, nil
	}
	return 0, &units.InvalidQuantityError{Field: "heat_flow", Input: s, Reason: "expected upwards, horizontal or downwards"}
}

const (
	// PlaceholderDensity and PlaceholderSpecificHeat stand in for the mass of
	// a closed air cavity; energy engines reject zero values.
	PlaceholderDensity      = 999.999
	PlaceholderSpecificHeat = 999.999

	radiativeCoefficient = 5.1
	conductionFloor      = 0.025

	maxThickness       = 0.3
	minAspect          = 10.0
	maxTemperatureDrop = 5.0
)

// AirLayerInput describes a closed air layer. Length, Width and
// TemperatureDrop are optional and only feed the applicability advisories.
type AirLayerInput struct {
	Name            string   `yaml:"name"`
	Thickness       float64  `yaml:"thickness" validate:"gt=0"`
	HeatFlow        HeatFlow `yaml:"heat_flow"`
	Emissivity1     float64  `yaml:"emissivity_1" validate:"gte=0,lte=1"`
	Emissivity2     float64  `yaml:"emissivity_2" validate:"gte=0,lte=1"`
	Length          float64  `yaml:"length" validate:"gte=0"`
	Width           float64  `yaml:"width" validate:"gte=0"`
	TemperatureDrop float64  `yaml:"temperature_drop" validate:"gte=0"`
}

// Validate checks the input ranges.
func (in AirLayerInput) Validate() error {
	return validate.Struct(in)
}

// AirLayerResult holds the coefficients and the resulting material.
type AirLayerResult struct {
	Hr           float64 // radiative coefficient (W/m²K)
	Ha           float64 // convective/conductive coefficient (W/m²K)
	Conductivity float64 // equivalent conductivity (W/mK)
	Material     OpaqueMaterial
	Advisories   []string
}

// RadiativeCoefficient returns h_r for two surface emissivities.
func RadiativeCoefficient(e1, e2 float64) float64 {
	return radiativeCoefficient / (1/e1 + 1/e2 - 1)
}

// ConvectiveCoefficient returns h_a for a heat-flow direction and thickness.
func ConvectiveCoefficient(dir HeatFlow, d float64) float64 {
	var table float64
	switch dir {
	case HeatFlowUpwards:
		table = 1.95
	case HeatFlowHorizontal:
		table = 1.25
	case HeatFlowDownwards:
		table = 0.12 * math.Pow(d, -0.44)
	}
	return math.Max(table, conductionFloor/d)
}

// AirLayer computes the equivalent conductivity of a closed air layer. The
// applicability limits are reported as advisories and logged; the
// calculation always runs.
func AirLayer(in AirLayerInput, log *zap.Logger) (*AirLayerResult, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	hr := RadiativeCoefficient(in.Emissivity1, in.Emissivity2)
	ha := ConvectiveCoefficient(in.HeatFlow, in.Thickness)
	lambda := in.Thickness * (ha + hr)

	name := units.HBName(in.Name, "AirLayer")
	res := &AirLayerResult{
		Hr:           hr,
		Ha:           ha,
		Conductivity: lambda,
		Material: OpaqueMaterial{
			Identifier:   name,
			DisplayName:  name,
			Thickness:    in.Thickness,
			Conductivity: lambda,
			Density:      PlaceholderDensity,
			SpecificHeat: PlaceholderSpecificHeat,
		},
	}

	if in.Thickness > maxThickness {
		res.Advisories = append(res.Advisories,
			fmt.Sprintf("air layer thickness %.3f m exceeds %.3f m", in.Thickness, maxThickness))
	}
	if in.Length > 0 && in.Length < minAspect*in.Thickness {
		res.Advisories = append(res.Advisories,
			fmt.Sprintf("air layer length %.3f m is less than 10x its thickness", in.Length))
	}
	if in.Width > 0 && in.Width < minAspect*in.Thickness {
		res.Advisories = append(res.Advisories,
			fmt.Sprintf("air layer width %.3f m is less than 10x its thickness", in.Width))
	}
	if in.TemperatureDrop > maxTemperatureDrop {
		res.Advisories = append(res.Advisories,
			fmt.Sprintf("temperature drop %.1f K across the layer exceeds %.1f K", in.TemperatureDrop, maxTemperatureDrop))
	}
	for _, a := range res.Advisories {
		log.Warn("air layer outside the simplified method limits", zap.String("layer", name), zap.String("advisory", a))
	}
	return res, nil
}
