// Package phius holds the reference values used by the Phius and PHI
// residential calculators: RESNET 301-2014 plug-load and lighting
// coefficients and the default appliance sets of each certifier.
package phius

// RESNET 301-2014 Table 4.2.2(1) coefficients. Areas are conditioned floor
// area in ft², results in kWh per year.
const (
	MelBase       = 413.0
	MelPerBedroom = 69.0
	MelPerFt2     = 0.91

	LightingIntBase   = 455.0
	LightingIntPerFt2 = 0.8
	LightingExtBase   = 100.0
	LightingExtPerFt2 = 0.05
	LightingGarage    = 100.0
)

// Fraction of fixtures in each location counted as high-efficacy. Phius
// assumes an all-LED dwelling.
const (
	DefaultFractionInterior = 1.0
	DefaultFractionExterior = 1.0
	DefaultFractionGarage   = 1.0
)

// MiscElectricLoads is the annual MEL of one dwelling.
func MiscElectricLoads(bedrooms int, cfaFt2 float64) float64 {
	return MelBase + MelPerBedroom*float64(bedrooms) + MelPerFt2*cfaFt2
}

// LightingInterior is the annual interior lighting of one dwelling with a
// high-efficacy fraction q.
func LightingInterior(cfaFt2, q float64) float64 {
	ref := LightingIntBase + LightingIntPerFt2*cfaFt2
	return 0.8*((4-3*q)/3.7)*ref + 0.2*ref
}

// LightingExterior is the annual exterior lighting of one dwelling with a
// high-efficacy fraction f.
func LightingExterior(cfaFt2, f float64) float64 {
	ref := LightingExtBase + LightingExtPerFt2*cfaFt2
	return ref*(1-f) + 0.25*ref*f
}

// LightingGarageKWH is the annual garage lighting of one dwelling with a
// high-efficacy fraction f.
func LightingGarageKWH(f float64) float64 {
	return LightingGarage*(1-f) + 0.25*LightingGarage*f
}

// DesignOccupancy is the Phius design occupancy of a dwelling.
func DesignOccupancy(bedrooms int) int {
	return bedrooms + 1
}
