package window

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

func TestNewFrame_InheritsTop(t *testing.T) {
	top := &FrameElement{Width: 0.12, UFactor: 0.9, PsiGlazing: 0.03, PsiInstall: 0.04, Chi: 0}
	f, err := NewFrame("Frame A", top, nil, nil, nil)
	if err != nil {
		t.Fatalf("NewFrame: %v", err)
	}
	for _, e := range Edges {
		if f.Element(e) != *top {
			t.Fatalf("%s element = %+v, want top", e, f.Element(e))
		}
	}
}

func TestNewFrame_Sides(t *testing.T) {
	top := &FrameElement{Width: 0.1, UFactor: 1}
	bottom := &FrameElement{Width: 0.15, UFactor: 1.2}
	f, err := NewFrame("", top, nil, bottom, nil)
	if err != nil {
		t.Fatalf("NewFrame: %v", err)
	}
	if f.Element(EdgeBottom).Width != 0.15 || f.Element(EdgeLeft).Width != 0.1 {
		t.Fatalf("elements = %+v", f.Elements)
	}
	if f.Identifier == "" {
		t.Fatalf("blank name should get an identifier")
	}
}

func TestNewFrame_Errors(t *testing.T) {
	if _, err := NewFrame("x", nil, &FrameElement{}, nil, nil); !errors.Is(err, ErrMissingTop) {
		t.Fatalf("expected ErrMissingTop, got %v", err)
	}
	_, err := NewFrame("x", &FrameElement{Width: -0.1}, nil, nil, nil)
	var rv *units.RangeViolationError
	if !errors.As(err, &rv) || rv.Field != "width" {
		t.Fatalf("expected width range violation, got %v", err)
	}
}

func TestFrame_WithPsiInstallCopies(t *testing.T) {
	f, _ := NewFrame("x", &FrameElement{Width: 0.1}, nil, nil, nil)
	g, err := f.WithPsiInstall([4]float64{0.01, 0.02, 0.03, 0.04})
	if err != nil {
		t.Fatalf("WithPsiInstall: %v", err)
	}
	if f.Element(EdgeLeft).PsiInstall != 0 {
		t.Fatalf("original frame mutated")
	}
	if g.Element(EdgeLeft).PsiInstall != 0.04 || g.Element(EdgeTop).PsiInstall != 0.01 {
		t.Fatalf("psi values = %+v", g.Elements)
	}
	if _, err := f.WithPsiInstall([4]float64{0, -1, 0, 0}); !errors.Is(err, units.ErrRangeViolation) {
		t.Fatalf("expected range violation, got %v", err)
	}
}

func TestFillPsiInstallTable(t *testing.T) {
	cases := []struct {
		name  string
		table [][]float64
		n     int
		want  [][4]float64
	}{
		{"empty", nil, 3, nil},
		{"single value", [][]float64{{0.04}}, 2, [][4]float64{{0.04, 0.04, 0.04, 0.04}, {0.04, 0.04, 0.04, 0.04}}},
		{"short row", [][]float64{{0.01, 0.02}}, 1, [][4]float64{{0.01, 0.02, 0.02, 0.02}}},
		{"row repeat", [][]float64{{0.01, 0.02, 0.03, 0.04}, {}, {0.05}}, 4, [][4]float64{
			{0.01, 0.02, 0.03, 0.04},
			{0.01, 0.02, 0.03, 0.04},
			{0.05, 0.05, 0.05, 0.05},
			{0.05, 0.05, 0.05, 0.05},
		}},
		{"leading empty", [][]float64{{}, {0.02}}, 2, [][4]float64{{0.02, 0.02, 0.02, 0.02}, {0.02, 0.02, 0.02, 0.02}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FillPsiInstallTable(tc.table, tc.n)
			if len(got) != len(tc.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tc.want))
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("row %d = %v, want %v", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestApertureProps(t *testing.T) {
	p := NewApertureProps()
	p2, err := p.SetInstallDepth(0.15, units.M)
	if err != nil {
		t.Fatalf("SetInstallDepth: %v", err)
	}
	if !approxEqual(p2.InstallDepth, 0.15, 1e-12) || p.InstallDepth != DefaultInstallDepth {
		t.Fatalf("install depth = %v (original %v)", p2.InstallDepth, p.InstallDepth)
	}
	p3, err := p2.SetInstallDepth("100 mm", units.M)
	if err != nil || !approxEqual(p3.InstallDepth, 0.1, 1e-12) {
		t.Fatalf("install depth from mm = %v, %v", p3.InstallDepth, err)
	}

	p4, err := p3.SetRevealDistance("4 IN", units.M)
	if err != nil {
		t.Fatalf("SetRevealDistance: %v", err)
	}
	if !approxEqual(*p4.ShadingDimensions.DReveal, 0.1016, 1e-9) || !approxEqual(*p4.ShadingDimensions.OReveal, 0.1016, 1e-9) {
		t.Fatalf("reveal = %+v", p4.ShadingDimensions)
	}
}

func TestSetShadingFactors(t *testing.T) {
	cases := []struct {
		name           string
		winter, summer float64
		wantW, wantS   float64
	}{
		{"fractions", 0.6, 0.8, 0.6, 0.8},
		{"percentages", 75, 40, 0.75, 0.4},
		{"clamped", -0.2, 250, 0, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewApertureProps().SetShadingFactors(tc.winter, tc.summer)
			if !approxEqual(p.WinterShadingFactor, tc.wantW, 1e-12) || !approxEqual(p.SummerShadingFactor, tc.wantS, 1e-12) {
				t.Fatalf("factors = %v/%v", p.WinterShadingFactor, p.SummerShadingFactor)
			}
			again := p.SetShadingFactors(p.WinterShadingFactor, p.SummerShadingFactor)
			if again.WinterShadingFactor != p.WinterShadingFactor || again.SummerShadingFactor != p.SummerShadingFactor {
				t.Fatalf("second pass changed the factors")
			}
		})
	}
}

func TestFactorFor(t *testing.T) {
	if got := FactorFor([]float64{0.5, 0.6, 0.7}, 1, 3, 1); got != 0.6 {
		t.Fatalf("matching length = %v", got)
	}
	if got := FactorFor([]float64{0.5, 0.6}, 2, 3, 1); got != 0.5 {
		t.Fatalf("mismatched length should fall back to first, got %v", got)
	}
	if got := FactorFor(nil, 0, 3, 1); got != 1 {
		t.Fatalf("empty list = %v", got)
	}
}

func TestDecomposeEdges(t *testing.T) {
	// wall at y=0 facing -y
	f := geometry.NewFace(
		geometry.Pt(0, 0, 0),
		geometry.Pt(2, 0, 0),
		geometry.Pt(2, 0, 1),
		geometry.Pt(0, 0, 1),
	)
	edges, err := DecomposeEdges(f, 0.001)
	if err != nil {
		t.Fatalf("DecomposeEdges: %v", err)
	}
	if edges.Top.Midpoint().Z != 1 || edges.Bottom.Midpoint().Z != 0 {
		t.Fatalf("top/bottom = %+v / %+v", edges.Top, edges.Bottom)
	}
	if edges.Right.Midpoint().X != 2 || edges.Left.Midpoint().X != 0 {
		t.Fatalf("right/left = %+v / %+v", edges.Right, edges.Left)
	}
	if l := edges.Lengths(); l != [4]float64{2, 1, 2, 1} {
		t.Fatalf("lengths = %v", l)
	}
}

func TestDecomposeEdges_Fails(t *testing.T) {
	tri := geometry.NewFace(geometry.Pt(0, 0, 0), geometry.Pt(2, 0, 0), geometry.Pt(1, 0, 2))
	if _, err := DecomposeEdges(tri, 0.001); !errors.Is(err, ErrApertureEdges) {
		t.Fatalf("triangle should fail, got %v", err)
	}
	pent := geometry.NewFace(
		geometry.Pt(0, 0, 0), geometry.Pt(2, 0, 0), geometry.Pt(2, 0, 1),
		geometry.Pt(1, 0, 1.2), geometry.Pt(0, 0, 1),
	)
	if _, err := DecomposeEdges(pent, 0.001); !errors.Is(err, ErrApertureEdges) {
		t.Fatalf("pentagon should fail, got %v", err)
	}
}

func TestPhiusBlind(t *testing.T) {
	cases := []struct {
		name     string
		z        float64
		pos      BlindPosition
		wantT    float64
		wantRefl float64
	}{
		{"interior", 0.46, BlindInterior, 0.784, 0.216},
		{"exterior", 0.46, BlindExterior, 0.622, 0.378},
		{"interior opaque-free", 1, BlindInterior, 1, 0},
		{"exterior opaque-free", 1, BlindExterior, 1, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := PhiusBlind(tc.z, tc.pos)
			if err != nil {
				t.Fatalf("PhiusBlind: %v", err)
			}
			if !approxEqual(b.Transmittance, tc.wantT, 1e-9) || !approxEqual(b.Reflectance, tc.wantRefl, 1e-9) {
				t.Fatalf("blind = %+v", b)
			}
		})
	}
	if _, err := PhiusBlind(250, BlindInterior); !errors.Is(err, units.ErrRangeViolation) {
		t.Fatalf("expected range violation, got %v", err)
	}
}

func TestWholeWindowUValue(t *testing.T) {
	f, _ := NewFrame("f", &FrameElement{Width: 0.1, UFactor: 1, PsiGlazing: 0.04, PsiInstall: 0.02}, nil, nil, nil)
	g, err := NewGlazing("g", 0.7, 0.5)
	if err != nil {
		t.Fatalf("NewGlazing: %v", err)
	}
	u, err := WholeWindowUValue(1, 1, *f, *g)
	if err != nil {
		t.Fatalf("WholeWindowUValue: %v", err)
	}
	if !approxEqual(u.GlazingArea, 0.64, 1e-9) || !approxEqual(u.FrameArea, 0.36, 1e-9) {
		t.Fatalf("areas = %+v", u)
	}
	if !approxEqual(u.UWindow, 0.936, 1e-9) {
		t.Fatalf("UWindow = %v, want 0.936", u.UWindow)
	}
	if !approxEqual(u.UWindowInstall, 0.936+0.08, 1e-9) {
		t.Fatalf("UWindowInstall = %v", u.UWindowInstall)
	}
	if _, err := WholeWindowUValue(0.15, 1, *f, *g); !errors.Is(err, ErrTooSmall) {
		t.Fatalf("expected ErrTooSmall, got %v", err)
	}
}
