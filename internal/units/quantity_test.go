package units

import (
	"errors"
	"math"
	"testing"
)

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) < tol
}

func TestParse_Table(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		ambient Unit
		want    Quantity
	}{
		{"meters", "2.5 m", "", Quantity{2.5, M}},
		{"no space", "120mm", "", Quantity{120, MM}},
		{"ambient", "3", FT, Quantity{3, FT}},
		{"inch mark", `6"`, "", Quantity{6, IN}},
		{"exponent", "1e-3 M", "", Quantity{0.001, M}},
		{"ip u-value", "0.2 BTU/HR-FT²-F", "", Quantity{0.2, BTU_HRFT2F}},
		{"conductivity", "0.04 W/M-K", "", Quantity{0.04, W_MK}},
		{"degree sign", "68 °F", "", Quantity{68, F}},
		{"square feet", "100 sf", "", Quantity{100, FT2}},
		{"percent", "45 %", "", Quantity{45, Percent}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse("field", tc.in, tc.ambient)
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tc.in, err)
			}
			if got != tc.want {
				t.Fatalf("Parse(%q)=%v want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"no number", "abc"},
		{"unknown unit", "3 furlongs"},
		{"no ambient", "3"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse("thickness", tc.in, "")
			if !errors.Is(err, ErrInvalidQuantity) {
				t.Fatalf("Parse(%q) err=%v want ErrInvalidQuantity", tc.in, err)
			}
			var qe *InvalidQuantityError
			if !errors.As(err, &qe) || qe.Field != "thickness" {
				t.Fatalf("Parse(%q) err=%v want field 'thickness'", tc.in, err)
			}
		})
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	canonical := []Quantity{
		{2.5, M}, {0.1 + 0.2, MM}, {12.75, M2}, {0.036, W_MK}, {0.7, W_M2K},
		{0.45, WH_M3}, {1234.5, KWH}, {15, KWH_M2}, {-12.3, C}, {33, Percent},
		{1e-9, M}, {math.Pi, W_K},
	}
	for _, q := range canonical {
		got, err := Parse("q", Format(q), "")
		if err != nil {
			t.Fatalf("Parse(Format(%v)) unexpected error: %v", q, err)
		}
		if got != q {
			t.Fatalf("Parse(Format(%v))=%v", q, got)
		}
	}
}

func TestConvert_Table(t *testing.T) {
	cases := []struct {
		name   string
		in     Quantity
		target Unit
		want   float64
	}{
		{"ft to m", Quantity{1, FT}, M, 0.3048},
		{"in to mm", Quantity{1, IN}, MM, 25.4},
		{"m to mm", Quantity{2.5, M}, MM, 2500},
		{"ft2 to m2", Quantity{10.7639, FT2}, M2, 1.0},
		{"f to c", Quantity{68, F}, C, 20},
		{"k to c", Quantity{293.15, K}, C, 20},
		{"c to f", Quantity{100, C}, F, 212},
		{"ip u to si", Quantity{1, BTU_HRFT2F}, W_M2K, 5.678263},
		{"kbtu to kwh", Quantity{1, KBTU}, KWH, 0.293071},
		{"cfm to m3h", Quantity{100, CFM}, M3_H, 169.901},
		{"percent to fraction", Quantity{50, Percent}, Percent, 50},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Convert("x", tc.in, tc.target)
			if err != nil {
				t.Fatalf("Convert(%v, %s) unexpected error: %v", tc.in, tc.target, err)
			}
			if got.Unit != tc.target || !approxEqual(got.Value, tc.want, 1e-3) {
				t.Fatalf("Convert(%v, %s)=%v want %g", tc.in, tc.target, got, tc.want)
			}
		})
	}
}

func TestConvert_AcrossDimensions(t *testing.T) {
	_, err := Convert("width", Quantity{1, M}, W_MK)
	if !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("Convert(M -> W/MK) err=%v want ErrInvalidQuantity", err)
	}
	_, err = Convert("width", Quantity{1, M}, Unit("PARSEC"))
	if !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("Convert(unknown target) err=%v want ErrInvalidQuantity", err)
	}
}

func TestQuantitySI(t *testing.T) {
	v, err := Quantity{20, C}.SI()
	if err != nil {
		t.Fatalf("SI unexpected error: %v", err)
	}
	if !approxEqual(v.Value(), 293.15, 1e-9) {
		t.Fatalf("20 C in K = %g", v.Value())
	}
	e, err := Quantity{1, KWH}.SI()
	if err != nil {
		t.Fatalf("SI unexpected error: %v", err)
	}
	if !approxEqual(e.Value(), 3.6e6, 1e-6) {
		t.Fatalf("1 kWh in J = %g", e.Value())
	}
}

func TestDocument(t *testing.T) {
	mm := Document{Unit: MM}
	if got := mm.FromMeters(2.5); !approxEqual(got, 2500, 1e-9) {
		t.Fatalf("FromMeters(2.5) in MM document = %g", got)
	}
	if got := mm.AreaToM2(1e6); !approxEqual(got, 1, 1e-9) {
		t.Fatalf("AreaToM2(1e6 mm²) = %g", got)
	}
	if err := (Document{Unit: KWH}).Validate(); err == nil {
		t.Fatalf("Validate() for energy document unit expected error")
	}
	if got := (Document{}).MetersPerUnit(); got != 1 {
		t.Fatalf("zero Document MetersPerUnit = %g, want 1", got)
	}
}
