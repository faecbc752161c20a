package trf

import (
	"errors"
	"math"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/alexiusacademia/gophb/internal/climate"
	"github.com/alexiusacademia/gophb/internal/units"
)

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

var garageMonths = []float64{-2.8, -1.1, 3.3, 8.9, 14.4, 20.0, 22.8, 22.2, 17.8, 11.7, 6.1, 0.0}

func TestNew_AttachedGarage(t *testing.T) {
	f, err := New(Inputs{Name: "Garage", ZoneTemp: 4.444, OutdoorTemps: garageMonths}, nil)
	if err != nil || f == nil {
		t.Fatalf("New = %v, %v", f, err)
	}
	if f.ColdMonths != 4 {
		t.Errorf("cold months = %d, want 4", f.ColdMonths)
	}
	if !approxEqual(f.MeanOutdoor, -0.15, 1e-9) {
		t.Errorf("mean outdoor = %v, want -0.15", f.MeanOutdoor)
	}
	if !approxEqual(f.Value, 0.772, 0.002) {
		t.Errorf("trf = %v, want 0.772", f.Value)
	}
}

func TestNew_FahrenheitZone(t *testing.T) {
	f, err := New(Inputs{Name: "Garage", ZoneTemp: "40 F", OutdoorTemps: garageMonths}, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !approxEqual(f.ZoneTemp, 4.444, 0.001) || !approxEqual(f.Value, 0.772, 0.002) {
		t.Fatalf("got %+v", f)
	}
}

func TestCompute_Boundaries(t *testing.T) {
	months, _ := climate.MonthsFrom(garageMonths)
	var warm climate.Months
	for i := range warm {
		warm[i] = 25
	}
	tests := []struct {
		name   string
		tz     float64
		months climate.Months
		want   float64
	}{
		{"interior temperature", 20, months, 0},
		{"below every month", -10, months, 0},
		{"warmer than interior", 25, months, 0},
		{"hot zone in a warm climate", 30, warm, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, _, _ := Compute(tt.tz, tt.months)
			if !approxEqual(v, tt.want, 1e-12) {
				t.Fatalf("Compute(%v) = %v, want %v", tt.tz, v, tt.want)
			}
		})
	}
}

func TestNew_MissingInputs(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	log := zap.New(core)
	for _, in := range []Inputs{
		{ZoneTemp: 5.0, OutdoorTemps: garageMonths},
		{Name: "G", OutdoorTemps: garageMonths},
		{Name: "G", ZoneTemp: 5.0},
	} {
		f, err := New(in, log)
		if f != nil || err != nil {
			t.Fatalf("New(%+v) = %v, %v; want nil, nil", in, f, err)
		}
	}
	if logs.Len() != 3 {
		t.Fatalf("warnings = %d, want 3", logs.Len())
	}
}

func TestNew_BadInputs(t *testing.T) {
	if _, err := New(Inputs{Name: "G", ZoneTemp: "warm", OutdoorTemps: garageMonths}, nil); !errors.Is(err, units.ErrInvalidQuantity) {
		t.Fatalf("bad zone temp err = %v", err)
	}
	if _, err := New(Inputs{Name: "G", ZoneTemp: 5.0, OutdoorTemps: garageMonths[:6]}, nil); !errors.Is(err, units.ErrInvalidQuantity) {
		t.Fatalf("short months err = %v", err)
	}
}

func TestFromSite(t *testing.T) {
	months, _ := climate.MonthsFrom(garageMonths)
	site := &climate.Site{}
	site.Climate.MonthlyTemps.AirTemps = months
	f, err := FromSite("Garage", 4.444, site, nil)
	if err != nil || f == nil || !approxEqual(f.Value, 0.772, 0.002) {
		t.Fatalf("FromSite = %+v, %v", f, err)
	}
	if f, _ := FromSite("Garage", 4.444, nil, nil); f != nil {
		t.Fatalf("nil site produced %+v", f)
	}
}
