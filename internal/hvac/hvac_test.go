package hvac

import (
	"errors"
	"math"
	"testing"

	"github.com/alexiusacademia/gophb/internal/geometry"
	"github.com/alexiusacademia/gophb/internal/units"
)

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

var headless = geometry.NewHeadless(0.001, units.MetricDocument)

func TestDefaultVentilator(t *testing.T) {
	v := DefaultVentilator("")
	if v.SensibleHeatRecovery != 0.75 || v.LatentHeatRecovery != 0 || v.ElectricEfficiency != 0.45 {
		t.Fatalf("defaults = %+v", v)
	}
	if !v.FrostProtection || v.FrostTemp != -5 || !v.InConditionedSpace {
		t.Fatalf("frost/location defaults = %+v", v)
	}
}

func TestNewVentilator(t *testing.T) {
	off := false
	v, err := NewVentilator(VentilatorInputs{
		Name:               "ERV-1",
		SensibleHR:         "84 %",
		LatentHR:           0.6,
		ElectricEfficiency: "0.3 WH/M3",
		FrostTemp:          "23 F",
		InConditionedSpace: &off,
	})
	if err != nil {
		t.Fatalf("NewVentilator: %v", err)
	}
	if !approxEqual(v.SensibleHeatRecovery, 0.84, 1e-12) || v.LatentHeatRecovery != 0.6 {
		t.Fatalf("recovery = %v/%v", v.SensibleHeatRecovery, v.LatentHeatRecovery)
	}
	if !approxEqual(v.FrostTemp, -5, 1e-9) {
		t.Fatalf("FrostTemp = %v", v.FrostTemp)
	}
	if v.InConditionedSpace || v.DisplayName != "ERV-1" {
		t.Fatalf("ventilator = %+v", v)
	}

	if _, err := NewVentilator(VentilatorInputs{SensibleHR: 180.0}); !errors.Is(err, units.ErrRangeViolation) {
		t.Fatalf("expected range violation, got %v", err)
	}
	if _, err := NewVentilator(VentilatorInputs{ElectricEfficiency: "0.3 KWH"}); !errors.Is(err, units.ErrInvalidQuantity) {
		t.Fatalf("expected invalid quantity, got %v", err)
	}
}

func TestNewDuct_Defaults(t *testing.T) {
	pl := geometry.Polyline3D{Vertices: []geometry.Point3D{geometry.Pt(0, 0, 0), geometry.Pt(2, 0, 0), geometry.Pt(2, 1, 0)}}
	d, err := NewDuct(headless, DuctSupply, []any{pl}, DuctInputs{})
	if err != nil {
		t.Fatalf("NewDuct: %v", err)
	}
	if len(d.Segments) != 2 {
		t.Fatalf("segments = %d", len(d.Segments))
	}
	s := d.Segments[0]
	if s.Insulation.Thickness != 25.4 || s.Insulation.Conductivity != 0.04 || !s.Insulation.Reflective || s.Diameter != 160 {
		t.Fatalf("segment defaults = %+v", s)
	}
	if !s.IsRound() || s.HydraulicDiameter() != 160 {
		t.Fatalf("round duct hydraulic diameter = %v", s.HydraulicDiameter())
	}
	if d.Length(units.MetricDocument) != 3 {
		t.Fatalf("Length = %v", d.Length(units.MetricDocument))
	}
}

func TestNewDuct_NoGeometry(t *testing.T) {
	d, err := NewDuct(headless, DuctSupply, nil, DuctInputs{})
	if err != nil || d != nil {
		t.Fatalf("NewDuct without curves = %v, %v", d, err)
	}
}

func TestNewDuct_Rectangular(t *testing.T) {
	line := geometry.LineCurve{Start: geometry.Pt(0, 0, 0), End: geometry.Pt(0, 0, 1)}
	d, err := NewDuct(headless, DuctExhaust, []any{line}, DuctInputs{Height: "4 IN", Width: 200.0})
	if err != nil {
		t.Fatalf("NewDuct: %v", err)
	}
	s := d.Segments[0]
	if s.IsRound() {
		t.Fatalf("segment should be rectangular")
	}
	h := 101.6
	want := 2 * h * 200 / (h + 200)
	if !approxEqual(s.HydraulicDiameter(), want, 1e-9) {
		t.Fatalf("HydraulicDiameter = %v, want %v", s.HydraulicDiameter(), want)
	}
	if _, err := NewDuct(headless, DuctExhaust, []any{line}, DuctInputs{Height: 100.0}); !errors.Is(err, ErrDuctShape) {
		t.Fatalf("expected ErrDuctShape, got %v", err)
	}
	if _, err := NewDuct(headless, DuctType(9), []any{line}, DuctInputs{}); !errors.Is(err, ErrUnknownDuctType) {
		t.Fatalf("expected ErrUnknownDuctType, got %v", err)
	}
}

func TestSupportiveDevice(t *testing.T) {
	d, err := NewSupportiveDevice("DHW pump", " Pump ", 2, 45, 0, true)
	if err != nil {
		t.Fatalf("NewSupportiveDevice: %v", err)
	}
	if d.DeviceType != "pump" || d.AnnualPeriodHours != 8760 {
		t.Fatalf("device = %+v", d)
	}
	if !approxEqual(d.AnnualEnergyKWH(), 2*45*8760/1000.0, 1e-9) {
		t.Fatalf("AnnualEnergyKWH = %v", d.AnnualEnergyKWH())
	}
	if _, err := NewSupportiveDevice("x", "fan", 0, 10, 100, true); !errors.Is(err, units.ErrRangeViolation) {
		t.Fatalf("expected range violation, got %v", err)
	}
	if _, err := NewSupportiveDevice("x", "", 1, 10, 100, true); !errors.Is(err, units.ErrInvalidQuantity) {
		t.Fatalf("expected invalid quantity for missing type, got %v", err)
	}
}

func TestRenewableDevice(t *testing.T) {
	kind, err := ParseRenewableKind("PV")
	if err != nil {
		t.Fatalf("ParseRenewableKind: %v", err)
	}
	d, err := NewRenewableDevice("Roof PV", kind, "3412.14 KBTU", 80)
	if err != nil {
		t.Fatalf("NewRenewableDevice: %v", err)
	}
	if !approxEqual(d.AnnualGenerationKWH, 1000, 0.01) {
		t.Fatalf("AnnualGenerationKWH = %v", d.AnnualGenerationKWH)
	}
	if !approxEqual(d.OnsiteKWH(), 800, 0.01) {
		t.Fatalf("OnsiteKWH = %v", d.OnsiteKWH())
	}
	if _, err := ParseRenewableKind("nuclear"); !errors.Is(err, ErrUnknownDeviceType) {
		t.Fatalf("expected ErrUnknownDeviceType, got %v", err)
	}
}
