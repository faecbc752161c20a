package units

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// HBName returns the stripped name, or prefix plus a short unique id when
// the name is blank.
func HBName(name, prefix string) string {
	name = strings.TrimSpace(name)
	if name != "" {
		return name
	}
	if prefix == "" {
		prefix = "Unnamed"
	}
	return prefix + "_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

// FloatPercentage accepts a fraction in [0,1]. Values above 1 are retried
// once as a percentage.
func FloatPercentage(field string, v float64) (float64, error) {
	if v >= 0 && v <= 1 {
		return v, nil
	}
	if v > 1 {
		if r := v / 100; r <= 1 {
			return r, nil
		}
	}
	return 0, &RangeViolationError{Field: field, Value: v, Min: 0, Max: 1}
}

// ClampPercentage behaves like FloatPercentage but clamps to the nearest
// bound instead of failing.
func ClampPercentage(v float64) float64 {
	if v > 1 && v <= 100 {
		v /= 100
	}
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

// FloatMax24 validates a daily period in hours.
func FloatMax24(field string, v float64) (float64, error) {
	if v < 0 || v > 24 {
		return 0, &RangeViolationError{Field: field, Value: v, Min: 0, Max: 24}
	}
	return v, nil
}

// ToUnit converts an input to target. Strings are parsed with the ambient
// unit as fallback; bare numbers are taken to be in the ambient unit.
func ToUnit(field string, in any, ambient, target Unit) (float64, error) {
	switch v := in.(type) {
	case string:
		return ParseAs(field, v, ambient, target)
	case float64:
		return numberAs(field, v, ambient, target)
	case float32:
		return numberAs(field, float64(v), ambient, target)
	case int:
		return numberAs(field, float64(v), ambient, target)
	case int64:
		return numberAs(field, float64(v), ambient, target)
	case Quantity:
		q, err := Convert(field, v, target)
		return q.Value, err
	case nil:
		return 0, &InvalidQuantityError{Field: field, Input: "<nil>", Reason: "no value"}
	}
	return 0, &InvalidQuantityError{Field: field, Input: fmt.Sprint(in), Reason: fmt.Sprintf("unsupported input type %T", in)}
}

func numberAs(field string, v float64, ambient, target Unit) (float64, error) {
	if ambient == "" {
		ambient = target
	}
	q, err := Convert(field, Quantity{Value: v, Unit: ambient}, target)
	return q.Value, err
}

func UnitM(field string, in any, ambient Unit) (float64, error) {
	return ToUnit(field, in, ambient, M)
}

func UnitMM(field string, in any, ambient Unit) (float64, error) {
	return ToUnit(field, in, ambient, MM)
}

func UnitM2(field string, in any, ambient Unit) (float64, error) {
	return ToUnit(field, in, ambient, M2)
}

func UnitW_MK(field string, in any) (float64, error) {
	return ToUnit(field, in, W_MK, W_MK)
}

func UnitW_M2K(field string, in any) (float64, error) {
	return ToUnit(field, in, W_M2K, W_M2K)
}

func UnitWH_M3(field string, in any) (float64, error) {
	return ToUnit(field, in, WH_M3, WH_M3)
}

func UnitKWH(field string, in any) (float64, error) {
	return ToUnit(field, in, KWH, KWH)
}

func UnitKWH_M2(field string, in any) (float64, error) {
	return ToUnit(field, in, KWH_M2, KWH_M2)
}

func UnitDegreeC(field string, in any) (float64, error) {
	return ToUnit(field, in, C, C)
}
