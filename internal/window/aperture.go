package window

import (
	"github.com/alexiusacademia/gophb/internal/units"
)

// DefaultInstallDepth is the install depth (m) of a newly created aperture.
const DefaultInstallDepth = 0.1

// ShadingDimensions are the reveal distances used by the shading
// calculation.
type ShadingDimensions struct {
	DReveal *float64 `json:"d_reveal,omitempty" yaml:"d_reveal,omitempty"`
	OReveal *float64 `json:"o_reveal,omitempty" yaml:"o_reveal,omitempty"`
}

// ApertureProps are the Passive House properties carried by an aperture.
// Shading factors are exposed fractions: 1.0 is fully exposed.
type ApertureProps struct {
	InstallDepth                   float64           `json:"install_depth" yaml:"install_depth"`
	WinterShadingFactor            float64           `json:"winter_shading_factor" yaml:"winter_shading_factor"`
	SummerShadingFactor            float64           `json:"summer_shading_factor" yaml:"summer_shading_factor"`
	MonthlyShadingCorrectionFactor float64           `json:"monthly_shading_correction_factor" yaml:"monthly_shading_correction_factor"`
	ShadingDimensions              ShadingDimensions `json:"shading_dimensions" yaml:"shading_dimensions"`
	Frame                          *Frame            `json:"frame,omitempty" yaml:"frame,omitempty"`
	Glazing                        *Glazing          `json:"glazing,omitempty" yaml:"glazing,omitempty"`
}

// NewApertureProps returns fully exposed properties with the default
// install depth.
func NewApertureProps() ApertureProps {
	return ApertureProps{
		InstallDepth:                   DefaultInstallDepth,
		WinterShadingFactor:            1,
		SummerShadingFactor:            1,
		MonthlyShadingCorrectionFactor: 1,
	}
}

// SetInstallDepth returns a copy with the install depth, in metres, parsed
// from in using the ambient unit for bare numbers.
func (p ApertureProps) SetInstallDepth(in any, ambient units.Unit) (ApertureProps, error) {
	d, err := units.UnitM("install_depth", in, ambient)
	if err != nil {
		return p, err
	}
	if d < 0 {
		return p, &units.RangeViolationError{Field: "install_depth", Value: d, Min: 0, Max: posInf}
	}
	p.InstallDepth = d
	return p, nil
}

// SetRevealDistance sets both reveal distances.
func (p ApertureProps) SetRevealDistance(in any, ambient units.Unit) (ApertureProps, error) {
	d, err := units.UnitM("reveal_distance", in, ambient)
	if err != nil {
		return p, err
	}
	dr, or := d, d
	p.ShadingDimensions = ShadingDimensions{DReveal: &dr, OReveal: &or}
	return p, nil
}

// SetShadingFactors stores winter and summer exposed fractions. Values in
// (1, 100] are read as percentages; anything still outside [0, 1] is
// clamped.
func (p ApertureProps) SetShadingFactors(winter, summer float64) ApertureProps {
	p.WinterShadingFactor = units.ClampPercentage(winter)
	p.SummerShadingFactor = units.ClampPercentage(summer)
	return p
}

// SetMonthlyShadingCorrection stores the monthly correction factor.
func (p ApertureProps) SetMonthlyShadingCorrection(f float64) ApertureProps {
	p.MonthlyShadingCorrectionFactor = units.ClampPercentage(f)
	return p
}

// WithAssembly assigns a frame and glazing.
func (p ApertureProps) WithAssembly(frame *Frame, glazing *Glazing) ApertureProps {
	if frame != nil {
		f := *frame
		p.Frame = &f
	}
	if glazing != nil {
		g := *glazing
		p.Glazing = &g
	}
	return p
}

// FactorFor picks the per-aperture value from a user list: the i-th value
// when the list matches the aperture count, otherwise the first value. An
// empty list yields def.
func FactorFor(values []float64, i, count int, def float64) float64 {
	if len(values) == 0 {
		return def
	}
	if len(values) == count && i < len(values) {
		return values[i]
	}
	return values[0]
}
