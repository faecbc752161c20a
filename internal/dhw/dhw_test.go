package dhw

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

func fixture(t *testing.T, name string, x float64) PipeElement {
	t.Helper()
	el, err := NewPipeElement(headless, name, []any{
		geometry.LineCurve{Start: geometry.Pt(x, 0, 0), End: geometry.Pt(x, 1, 0)},
	}, DefaultSegmentProps())
	if err != nil {
		t.Fatalf("NewPipeElement: %v", err)
	}
	return *el
}

func TestTrunk_FixturesWithoutBranches(t *testing.T) {
	trunk := NewTrunk("Main", PipeElement{})
	for i, name := range []string{"Sink", "Shower", "Tub"} {
		trunk.AddFixture(fixture(t, name, float64(i)))
	}
	if len(trunk.Branches) != 1 {
		t.Fatalf("branches = %d, want 1", len(trunk.Branches))
	}
	b := trunk.Branches[0]
	if !b.Synthetic {
		t.Fatalf("branch should be marked synthetic")
	}
	if len(b.Fixtures) != 3 {
		t.Fatalf("fixtures = %d, want 3", len(b.Fixtures))
	}
	for i, want := range []string{"Sink", "Shower", "Tub"} {
		if b.Fixtures[i].DisplayName != want {
			t.Fatalf("fixture %d = %q, want %q", i, b.Fixtures[i].DisplayName, want)
		}
	}
}

func TestTrunk_SyntheticBranchKeptAfterRealBranch(t *testing.T) {
	trunk := NewTrunk("Main", PipeElement{})
	trunk.AddFixture(fixture(t, "A", 0))
	trunk.AddBranch(*NewBranch("Real", fixture(t, "stub", 5)))
	trunk.AddFixture(fixture(t, "B", 1))
	if len(trunk.Branches) != 2 {
		t.Fatalf("branches = %d, want 2", len(trunk.Branches))
	}
	if n := len(trunk.Branches[0].Fixtures); n != 2 {
		t.Fatalf("synthetic branch fixtures = %d, want 2", n)
	}
	if len(trunk.Fixtures()) != 2 {
		t.Fatalf("Fixtures() = %d", len(trunk.Fixtures()))
	}
}

func TestTrunk_Lengths(t *testing.T) {
	main, err := NewPipeElement(headless, "Main", []any{
		geometry.Polyline3D{Vertices: []geometry.Point3D{geometry.Pt(0, 0, 0), geometry.Pt(3, 0, 0), geometry.Pt(3, 4, 0)}},
	}, DefaultSegmentProps())
	if err != nil {
		t.Fatalf("NewPipeElement: %v", err)
	}
	if len(main.Segments) != 2 {
		t.Fatalf("polyline should give 2 segments, got %d", len(main.Segments))
	}
	trunk := NewTrunk("Main", *main)
	trunk.AddFixture(fixture(t, "Sink", 0))
	if err := trunk.SetMultiplier(3); err != nil {
		t.Fatalf("SetMultiplier: %v", err)
	}
	doc := units.MetricDocument
	if trunk.Length(doc) != 8 || trunk.TotalLength(doc) != 24 {
		t.Fatalf("lengths = %v / %v", trunk.Length(doc), trunk.TotalLength(doc))
	}
	if err := trunk.SetMultiplier(0); !errors.Is(err, ErrBadMultiplier) {
		t.Fatalf("expected ErrBadMultiplier, got %v", err)
	}
	if trunk.Multiplier != 3 {
		t.Fatalf("failed SetMultiplier changed the value")
	}
}

func TestNewPipeElement_Errors(t *testing.T) {
	props := DefaultSegmentProps()
	if _, err := NewPipeElement(headless, "", []any{"not a curve"}, props); !errors.Is(err, geometry.ErrUnsupportedCurve) {
		t.Fatalf("expected ErrUnsupportedCurve, got %v", err)
	}
	props.DailyPeriod = 30
	if _, err := NewPipeElement(headless, "", nil, props); !errors.Is(err, units.ErrRangeViolation) {
		t.Fatalf("expected range violation, got %v", err)
	}
}

func TestRecirculation_DefaultsAndFanout(t *testing.T) {
	curves := []any{
		geometry.LineCurve{Start: geometry.Pt(0, 0, 0), End: geometry.Pt(1, 0, 0)},
		geometry.LineCurve{Start: geometry.Pt(0, 1, 0), End: geometry.Pt(1, 1, 0)},
		geometry.LineCurve{Start: geometry.Pt(0, 2, 0), End: geometry.Pt(1, 2, 0)},
	}
	pipes, err := NewRecirculationPipes(headless, curves, RecirculationInputs{Diameters: []float64{19.05, 12.7}})
	if err != nil {
		t.Fatalf("NewRecirculationPipes: %v", err)
	}
	if len(pipes) != 3 {
		t.Fatalf("pipes = %d", len(pipes))
	}
	wantDiam := []float64{19.05, 12.7, 19.05}
	for i, p := range pipes {
		props := p.Segments[0].Props
		if props.Diameter != wantDiam[i] {
			t.Fatalf("pipe %d diameter = %v, want %v", i, props.Diameter, wantDiam[i])
		}
		ins := props.Insulation
		if ins.Thickness != 25.4 || ins.Conductivity != 0.04 || !ins.Reflective || ins.Quality != QualityModerate {
			t.Fatalf("pipe %d insulation defaults = %+v", i, ins)
		}
		if props.DailyPeriod != 24 || props.WaterTemp != 60 {
			t.Fatalf("pipe %d period/temp = %v/%v", i, props.DailyPeriod, props.WaterTemp)
		}
	}

	sys := NewSystem("")
	sys.Recirculation = pipes
	if sys.RecirculationLength(units.MetricDocument) != 3 {
		t.Fatalf("recirculation length = %v", sys.RecirculationLength(units.MetricDocument))
	}
}

func TestParseDiameter(t *testing.T) {
	cases := []struct {
		in      any
		want    float64
		wantErr bool
	}{
		{`1/2"`, 12.7, false},
		{`3/4"`, 19.05, false},
		{"1-1/4 IN", 31.75, false},
		{"1/2 in", 12.7, false},
		{"25 MM", 25, false},
		{"0.5 IN", 12.7, false},
		{20.0, 20, false},
		{"1/0", 0, true},
		{"1/2 parsecs", 0, true},
	}
	for _, tc := range cases {
		got, err := ParseDiameter("diameter", tc.in, units.MM)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("ParseDiameter(%v) expected error", tc.in)
			}
			continue
		}
		if err != nil || !approxEqual(got, tc.want, 1e-9) {
			t.Fatalf("ParseDiameter(%v) = %v, %v; want %v", tc.in, got, err, tc.want)
		}
	}
}

func TestParseMaterialAndQuality(t *testing.T) {
	for in, want := range map[string]Material{
		"copper_l":     CopperL,
		"PEX":          Pex,
		"1-COPPER_M":   CopperM,
		"cpvc sch 40":  CpvcSch40,
		"PEX_CTS_SDR":  PexCtsSdr,
		"CPVC-CTS-SDR": CpvcCtsSdr,
	} {
		got, err := ParseMaterial(in)
		if err != nil || got != want {
			t.Fatalf("ParseMaterial(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseMaterial("lead"); !errors.Is(err, ErrUnknownMaterial) {
		t.Fatalf("expected ErrUnknownMaterial, got %v", err)
	}
	if q, err := ParseQuality("Good"); err != nil || q != QualityGood {
		t.Fatalf("ParseQuality = %v, %v", q, err)
	}
	var m Material
	if err := m.UnmarshalText([]byte("pe")); err != nil || m != Pe {
		t.Fatalf("UnmarshalText = %v, %v", m, err)
	}
}
