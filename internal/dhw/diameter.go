package dhw

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/alexiusacademia/gophb/internal/units"
)

var nominalPattern = regexp.MustCompile(`^\s*(?:(\d+)[\s-]+)?(\d+)\s*/\s*(\d+)\s*(.*?)\s*$`)

// ParseDiameter returns a pipe diameter in mm. Nominal fractions such as
// `1/2"` or `1-1/4 IN` are read in inches unless another unit follows;
// other strings and bare numbers go through the unit parser with ambient
// as the fallback unit.
func ParseDiameter(field string, in any, ambient units.Unit) (float64, error) {
	s, ok := in.(string)
	if !ok {
		return units.UnitMM(field, in, ambient)
	}
	m := nominalPattern.FindStringSubmatch(s)
	if m == nil {
		return units.UnitMM(field, s, ambient)
	}

	num, _ := strconv.ParseFloat(m[2], 64)
	den, _ := strconv.ParseFloat(m[3], 64)
	if den == 0 {
		return 0, &units.InvalidQuantityError{Field: field, Input: s, Reason: "zero denominator"}
	}
	v := num / den
	if m[1] != "" {
		whole, _ := strconv.ParseFloat(m[1], 64)
		v += whole
	}

	u := units.IN
	if rest := strings.TrimSpace(m[4]); rest != "" {
		lu, ok := units.LookupUnit(rest)
		if !ok {
			return 0, &units.InvalidQuantityError{Field: field, Input: s, Reason: "unrecognised unit " + strconv.Quote(rest)}
		}
		u = lu
	}
	q, err := units.Convert(field, units.Quantity{Value: v, Unit: u}, units.MM)
	if err != nil {
		return 0, err
	}
	return q.Value, nil
}
