// Package validate runs struct-tag validation for component inputs and
// reports failures as unit range/quantity errors naming the offending field.
package validate

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/alexiusacademia/gophb/internal/units"
)

var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New(validator.WithRequiredStructEnabled())
	val.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return val
}

// Struct validates s and returns the first failure as a typed error.
func Struct(s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	return translate(verrs[0])
}

func translate(fe validator.FieldError) error {
	value, isNumber := toFloat(fe.Value())
	param, _ := strconv.ParseFloat(fe.Param(), 64)
	if !isNumber {
		return &units.InvalidQuantityError{
			Field:  fe.Field(),
			Input:  fmt.Sprint(fe.Value()),
			Reason: fmt.Sprintf("failed %q validation", fe.Tag()),
		}
	}

	rv := &units.RangeViolationError{Field: fe.Field(), Value: value, Min: math.Inf(-1), Max: math.Inf(1)}
	switch fe.Tag() {
	case "gte", "min":
		rv.Min = param
	case "gt":
		rv.Min = param
	case "lte", "max":
		rv.Max = param
	case "lt":
		rv.Max = param
	default:
		return &units.InvalidQuantityError{
			Field:  fe.Field(),
			Input:  fmt.Sprint(fe.Value()),
			Reason: fmt.Sprintf("failed %q validation", fe.Tag()),
		}
	}
	return rv
}

func toFloat(x any) (float64, bool) {
	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	}
	return 0, false
}
