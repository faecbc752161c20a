package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/alexiusacademia/gophb/internal/units"
)

const tolerance = 1e-6

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) < tol
}

func TestFaceAreaNormalCentroid(t *testing.T) {
	f := Rect(0, 0, 4, 2, 1)
	if !approxEqual(f.Area(), 8, tolerance) {
		t.Errorf("expected area 8, got %f", f.Area())
	}
	if n := f.Normal(); !approxEqual(n.Z, 1, tolerance) {
		t.Errorf("expected up normal, got %+v", n)
	}
	c := f.Centroid()
	if !approxEqual(c.X, 2, tolerance) || !approxEqual(c.Y, 1, tolerance) || !approxEqual(c.Z, 1, tolerance) {
		t.Errorf("expected centroid (2,1,1), got %+v", c)
	}
	if r := f.Reversed().Normal(); !approxEqual(r.Z, -1, tolerance) {
		t.Errorf("expected reversed normal down, got %+v", r)
	}
}

func TestLShapeCentroidOutside(t *testing.T) {
	// Thin L whose centroid falls outside the polygon.
	l := NewFace(Pt(0, 0, 0), Pt(10, 0, 0), Pt(10, 1, 0), Pt(1, 1, 0), Pt(1, 10, 0), Pt(0, 10, 0))
	c := l.Centroid()
	if l.Contains(c, tolerance) {
		t.Fatalf("expected centroid %+v outside the L", c)
	}
	pulled := l.ClosestPoint(c)
	if !l.Contains(pulled, 1e-9) {
		t.Fatalf("pulled point %+v should lie on the face", pulled)
	}
}

func TestFaceClosestPoint(t *testing.T) {
	f := Rect(0, 0, 1, 1, 0)
	got := f.ClosestPoint(Pt(0.5, 0.5, 3))
	if !got.Near(Pt(0.5, 0.5, 0), tolerance) {
		t.Errorf("expected projection (0.5,0.5,0), got %+v", got)
	}
	got = f.ClosestPoint(Pt(2, 0.5, 0))
	if !got.Near(Pt(1, 0.5, 0), tolerance) {
		t.Errorf("expected edge point (1,0.5,0), got %+v", got)
	}
}

func TestBoxClosedAndContains(t *testing.T) {
	b := Box(Pt(0, 0, 0), Pt(5, 5, 3))
	if !b.IsClosed(0.001) {
		t.Fatal("expected box to be closed")
	}
	if !approxEqual(b.Volume(), 75, 1e-6) {
		t.Errorf("expected volume 75, got %f", b.Volume())
	}
	for _, f := range b.Faces {
		c := f.Centroid()
		outside := c.Add(f.Normal().Scale(0.1))
		if b.Contains(outside, 0.001) {
			t.Errorf("normal of face at %+v points inward", c)
		}
	}

	cases := []struct {
		name string
		p    Point3D
		want bool
	}{
		{"center", Pt(2.5, 2.5, 1.5), true},
		{"near corner", Pt(0.01, 0.01, 0.01), true},
		{"on floor", Pt(3, 3, 0), true},
		{"outside x", Pt(5.5, 2, 1), false},
		{"above", Pt(2, 2, 3.2), false},
		{"below", Pt(2, 2, -0.1), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.Contains(tc.p, 0.001); got != tc.want {
				t.Fatalf("Contains(%+v)=%v want %v", tc.p, got, tc.want)
			}
		})
	}
}

func TestOpenSolid(t *testing.T) {
	b := Box(Pt(0, 0, 0), Pt(1, 1, 1))
	open := Solid3D{Faces: b.Faces[1:]}
	if open.IsClosed(0.001) {
		t.Fatal("expected solid without floor to be open")
	}
}

func TestExtrudeDownwardFace(t *testing.T) {
	// A face wound downward extrudes the same as one wound upward.
	s := Extrude(Rect(0, 0, 2, 2, 0).Reversed(), Vec(0, 0, 1))
	if !s.IsClosed(0.001) || !approxEqual(s.Volume(), 4, 1e-9) {
		t.Fatalf("unexpected extrusion closed=%v volume=%f", s.IsClosed(0.001), s.Volume())
	}
	if len(s.FloorFaces(1e-6)) != 1 {
		t.Fatalf("expected one floor face, got %d", len(s.FloorFaces(1e-6)))
	}
}

func TestSplitFace(t *testing.T) {
	f := Rect(0, 0, 4, 2, 0)
	pieces := SplitFace(f, []Segment3D{Seg(Pt(1, -1, 0), Pt(1, 3, 0))}, 1e-6)
	if len(pieces) != 2 {
		t.Fatalf("expected 2 pieces, got %d", len(pieces))
	}
	var total float64
	for _, p := range pieces {
		total += p.Area()
	}
	if !approxEqual(total, 8, 1e-9) {
		t.Errorf("expected split areas to sum to 8, got %f", total)
	}

	// A cutter that misses the face leaves it whole.
	pieces = SplitFace(f, []Segment3D{Seg(Pt(10, 0, 0), Pt(10, 1, 0))}, 1e-6)
	if len(pieces) != 1 {
		t.Fatalf("expected 1 piece, got %d", len(pieces))
	}
}

func TestPolylineFrom(t *testing.T) {
	h := NewHeadless(0, units.MetricDocument)
	if h.Tolerance() != DefaultTolerance {
		t.Fatalf("expected default tolerance, got %g", h.Tolerance())
	}

	cases := []struct {
		name string
		raw  any
		segs int
	}{
		{"line", LineCurve{Pt(0, 0, 0), Pt(1, 0, 0)}, 1},
		{"nurbs", NurbsCurve{ControlPoints: []Point3D{Pt(0, 0, 0), Pt(1, 0, 0), Pt(1, 1, 0)}, Degree: 1}, 2},
		{"polyline", Polyline3D{Vertices: []Point3D{Pt(0, 0, 0), Pt(1, 0, 0), Pt(1, 0, 0), Pt(2, 0, 0)}}, 2},
		{"points", []Point3D{Pt(0, 0, 0), Pt(0, 0, 2)}, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pl, err := h.PolylineFrom(tc.raw)
			if err != nil {
				t.Fatalf("PolylineFrom unexpected error: %v", err)
			}
			if got := len(pl.Segments()); got != tc.segs {
				t.Fatalf("segments=%d want %d", got, tc.segs)
			}
		})
	}

	if _, err := h.PolylineFrom(42); !errors.Is(err, ErrUnsupportedCurve) {
		t.Fatalf("PolylineFrom(int) err=%v want ErrUnsupportedCurve", err)
	}
	if _, err := h.PolylineFrom(LineCurve{Pt(1, 1, 1), Pt(1, 1, 1)}); !errors.Is(err, ErrDegenerateCurve) {
		t.Fatalf("PolylineFrom(zero line) err=%v want ErrDegenerateCurve", err)
	}
}

func TestHeadlessVectorOps(t *testing.T) {
	h := NewHeadless(0.01, units.MetricDocument)
	v := h.VectorBetween(Pt(1, 1, 1), Pt(4, 5, 1))
	if !approxEqual(v.Length(), 5, tolerance) {
		t.Errorf("expected length 5, got %f", v.Length())
	}
	a := h.Amplitude(v, 10)
	if !approxEqual(a.Length(), 10, tolerance) {
		t.Errorf("expected amplitude 10, got %f", a.Length())
	}
	p := h.Move(Pt(0, 0, 0), h.UnitZ())
	if !p.Near(Pt(0, 0, 1), tolerance) {
		t.Errorf("expected (0,0,1), got %+v", p)
	}
}
