package units

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/ctessum/unit"
)

// Unit is a canonical unit tag, e.g. "M" or "W/M2K".
type Unit string

const (
	M  Unit = "M"
	MM Unit = "MM"
	CM Unit = "CM"
	IN Unit = "IN"
	FT Unit = "FT"

	M2  Unit = "M2"
	FT2 Unit = "FT2"
	M3  Unit = "M3"
	FT3 Unit = "FT3"

	W_MK       Unit = "W/MK"
	BTU_HRFTF  Unit = "BTU/HR-FT-F"
	BTUIN_HRF  Unit = "BTU-IN/HR-FT2-F"
	W_M2K      Unit = "W/M2K"
	BTU_HRFT2F Unit = "BTU/HR-FT2-F"
	W_K        Unit = "W/K"
	BTU_HRF    Unit = "BTU/HR-F"

	WH_M3 Unit = "WH/M3"
	W_CFM Unit = "W/CFM"

	KWH  Unit = "KWH"
	KBTU Unit = "KBTU"
	BTU  Unit = "BTU"
	MJ   Unit = "MJ"

	KWH_M2   Unit = "KWH/M2"
	KWH_FT2  Unit = "KWH/FT2"
	KBTU_FT2 Unit = "KBTU/FT2"

	C Unit = "C"
	F Unit = "F"
	K Unit = "K"

	M3_H Unit = "M3/H"
	CFM  Unit = "CFM"

	Percent Unit = "%"
)

type family int

const (
	familyLength family = iota
	familyArea
	familyVolume
	familyConductivity
	familyUValue
	familyChi
	familySpecificPower
	familyEnergy
	familyEnergyIntensity
	familyTemperature
	familyAirflow
	familyFraction
)

// scale converts a value in a unit to its family base: base = v*factor + offset.
type scale struct {
	family family
	factor float64
	offset float64
}

var scales = map[Unit]scale{
	M:  {familyLength, 1, 0},
	MM: {familyLength, 0.001, 0},
	CM: {familyLength, 0.01, 0},
	IN: {familyLength, 0.0254, 0},
	FT: {familyLength, 0.3048, 0},

	M2:  {familyArea, 1, 0},
	FT2: {familyArea, 0.09290304, 0},
	M3:  {familyVolume, 1, 0},
	FT3: {familyVolume, 0.028316846592, 0},

	W_MK:       {familyConductivity, 1, 0},
	BTU_HRFTF:  {familyConductivity, 1.730734666, 0},
	BTUIN_HRF:  {familyConductivity, 0.144227889, 0},
	W_M2K:      {familyUValue, 1, 0},
	BTU_HRFT2F: {familyUValue, 5.678263341, 0},
	W_K:        {familyChi, 1, 0},
	BTU_HRF:    {familyChi, 0.527526527, 0},

	WH_M3: {familySpecificPower, 1, 0},
	W_CFM: {familySpecificPower, 0.588577779, 0},

	KWH:  {familyEnergy, 1, 0},
	KBTU: {familyEnergy, 0.293071070, 0},
	BTU:  {familyEnergy, 0.000293071070, 0},
	MJ:   {familyEnergy, 1 / 3.6, 0},

	KWH_M2:   {familyEnergyIntensity, 1, 0},
	KWH_FT2:  {familyEnergyIntensity, 10.763910417, 0},
	KBTU_FT2: {familyEnergyIntensity, 3.154591186, 0},

	C: {familyTemperature, 1, 0},
	F: {familyTemperature, 5.0 / 9.0, -32 * 5.0 / 9.0},
	K: {familyTemperature, 1, -273.15},

	M3_H: {familyAirflow, 1, 0},
	CFM:  {familyAirflow, 1.699010796, 0},

	Percent: {familyFraction, 0.01, 0},
}

// si describes how a family base value maps onto a dimensioned SI unit.
type si struct {
	factor float64
	offset float64
	dims   unit.Dimensions
}

var siOf = map[family]si{
	familyLength:          {1, 0, unit.Meter},
	familyArea:            {1, 0, unit.Meter2},
	familyVolume:          {1, 0, unit.Meter3},
	familyConductivity:    {1, 0, unit.Dimensions{unit.MassDim: 1, unit.LengthDim: 1, unit.TimeDim: -3, unit.TemperatureDim: -1}},
	familyUValue:          {1, 0, unit.Dimensions{unit.MassDim: 1, unit.TimeDim: -3, unit.TemperatureDim: -1}},
	familyChi:             {1, 0, unit.Dimensions{unit.MassDim: 1, unit.LengthDim: 2, unit.TimeDim: -3, unit.TemperatureDim: -1}},
	familySpecificPower:   {3600, 0, unit.Dimensions{unit.MassDim: 1, unit.LengthDim: -1, unit.TimeDim: -2}},
	familyEnergy:          {3.6e6, 0, unit.Joule},
	familyEnergyIntensity: {3.6e6, 0, unit.Dimensions{unit.MassDim: 1, unit.TimeDim: -2}},
	familyTemperature:     {1, 273.15, unit.Kelvin},
	familyAirflow:         {1.0 / 3600, 0, unit.Meter3PerSecond},
	familyFraction:        {1, 0, unit.Dimless},
}

// aliases maps a normalised spelling onto its canonical unit.
var aliases = map[string]Unit{
	"M": M, "METER": M, "METERS": M, "METRE": M,
	"MM": MM, "MILLIMETER": MM, "MILLIMETERS": MM,
	"CM": CM,
	"IN": IN, "INCH": IN, "INCHES": IN, `"`: IN,
	"FT": FT, "FOOT": FT, "FEET": FT, "'": FT,
	"M2": M2, "SQM": M2,
	"FT2": FT2, "SF": FT2, "SQFT": FT2,
	"M3": M3, "FT3": FT3, "CF": FT3,
	"W/MK": W_MK,
	"BTU/HRFTF": BTU_HRFTF,
	"BTUIN/HRFT2F": BTUIN_HRF,
	"W/M2K": W_M2K,
	"BTU/HRFT2F": BTU_HRFT2F, "BTU/FT2HRF": BTU_HRFT2F, "IPU": BTU_HRFT2F,
	"W/K": W_K, "BTU/HRF": BTU_HRF,
	"WH/M3": WH_M3, "W/CFM": W_CFM,
	"KWH": KWH, "KBTU": KBTU, "BTU": BTU, "MJ": MJ,
	"KWH/M2": KWH_M2, "KWH/FT2": KWH_FT2, "KBTU/FT2": KBTU_FT2,
	"C": C, "DEGC": C, "CELSIUS": C,
	"F": F, "DEGF": F, "FAHRENHEIT": F,
	"K": K, "KELVIN": K,
	"M3/H": M3_H, "M3/HR": M3_H, "CMH": M3_H,
	"CFM": CFM, "FT3/MIN": CFM,
	"%": Percent,
}

var unitStripper = strings.NewReplacer(
	" ", "", "-", "", "(", "", ")", "", "·", "", "*", "", "°", "", "²", "2", "³", "3", "⋅", "",
)

// LookupUnit resolves any recognised spelling to its canonical unit.
func LookupUnit(s string) (Unit, bool) {
	key := unitStripper.Replace(strings.ToUpper(strings.TrimSpace(s)))
	u, ok := aliases[key]
	return u, ok
}

// Quantity is a magnitude with a unit tag.
type Quantity struct {
	Value float64
	Unit  Unit
}

func (q Quantity) String() string { return Format(q) }

var quantityPattern = regexp.MustCompile(`^\s*([-+]?(?:\d+\.?\d*|\.\d+)(?:[eE][-+]?\d+)?)\s*(.*?)\s*$`)

// Parse splits a "value unit" string. When the unit is absent the ambient
// unit is used.
func Parse(field, s string, ambient Unit) (Quantity, error) {
	m := quantityPattern.FindStringSubmatch(s)
	if m == nil {
		return Quantity{}, &InvalidQuantityError{Field: field, Input: s, Reason: "no numeric value"}
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return Quantity{}, &InvalidQuantityError{Field: field, Input: s, Reason: err.Error()}
	}
	if m[2] == "" {
		if ambient == "" {
			return Quantity{}, &InvalidQuantityError{Field: field, Input: s, Reason: "no unit given"}
		}
		return Quantity{Value: v, Unit: ambient}, nil
	}
	u, ok := LookupUnit(m[2])
	if !ok {
		return Quantity{}, &InvalidQuantityError{Field: field, Input: s, Reason: fmt.Sprintf("unrecognised unit %q", m[2])}
	}
	return Quantity{Value: v, Unit: u}, nil
}

// Format renders q so that Parse(Format(q)) == q.
func Format(q Quantity) string {
	return strconv.FormatFloat(q.Value, 'g', -1, 64) + " " + string(q.Unit)
}

// SI returns q as a dimensioned SI value.
func (q Quantity) SI() (*unit.Unit, error) {
	sc, ok := scales[q.Unit]
	if !ok {
		return nil, &InvalidQuantityError{Input: Format(q), Reason: "unknown unit"}
	}
	base := q.Value*sc.factor + sc.offset
	s := siOf[sc.family]
	return unit.New(base*s.factor+s.offset, s.dims), nil
}

// Convert returns q expressed in target. Conversions across dimensions fail.
func Convert(field string, q Quantity, target Unit) (Quantity, error) {
	src, ok := scales[q.Unit]
	if !ok {
		return Quantity{}, &InvalidQuantityError{Field: field, Input: Format(q), Reason: "unknown unit"}
	}
	dst, ok := scales[target]
	if !ok {
		return Quantity{}, &InvalidQuantityError{Field: field, Input: string(target), Reason: "unknown target unit"}
	}
	v, err := q.SI()
	if err != nil {
		return Quantity{}, err
	}
	if err := v.Check(siOf[dst.family].dims); err != nil {
		return Quantity{}, &InvalidQuantityError{Field: field, Input: Format(q), Reason: err.Error()}
	}
	if src.family == dst.family && q.Unit == target {
		return q, nil
	}
	base := q.Value*src.factor + src.offset
	return Quantity{Value: (base - dst.offset) / dst.factor, Unit: target}, nil
}

// ParseAs parses s and converts it to target in one step.
func ParseAs(field, s string, ambient, target Unit) (float64, error) {
	q, err := Parse(field, s, ambient)
	if err != nil {
		return 0, err
	}
	out, err := Convert(field, q, target)
	if err != nil {
		return 0, err
	}
	return out.Value, nil
}
