package geometry

import (
	"fmt"

	"github.com/alexiusacademia/gophb/internal/units"
)

// DefaultTolerance is the model tolerance used when none is configured.
const DefaultTolerance = 0.001

// Headless is a CAD-free geometry adapter working on the neutral shapes
// of this package.
type Headless struct {
	Tol float64
	Doc units.Document
}

// NewHeadless returns an adapter with the given tolerance and document.
func NewHeadless(tol float64, doc units.Document) Headless {
	if tol <= 0 {
		tol = DefaultTolerance
	}
	return Headless{Tol: tol, Doc: doc}
}

func (h Headless) Tolerance() float64 {
	if h.Tol <= 0 {
		return DefaultTolerance
	}
	return h.Tol
}

func (h Headless) Document() units.Document { return h.Doc }

// PolylineFrom converts line curves, nurbs curves, polylines and raw point
// lists into a polyline.
func (h Headless) PolylineFrom(raw any) (Polyline3D, error) {
	var pl Polyline3D
	switch c := raw.(type) {
	case Polyline3D:
		pl = c
	case *Polyline3D:
		pl = *c
	case Segment3D:
		pl = Polyline3D{Vertices: []Point3D{c.Start, c.End}}
	case LineCurve:
		pl = Polyline3D{Vertices: []Point3D{c.Start, c.End}}
	case NurbsCurve:
		pl = Polyline3D{Vertices: c.ControlPoints}
	case []Point3D:
		pl = Polyline3D{Vertices: c}
	default:
		return Polyline3D{}, fmt.Errorf("%w: %T", ErrUnsupportedCurve, raw)
	}
	if len(pl.Segments()) == 0 {
		return Polyline3D{}, ErrDegenerateCurve
	}
	return pl, nil
}

func (h Headless) SolidIsClosed(s Solid3D) bool {
	return s.IsClosed(h.Tolerance())
}

func (h Headless) PointInsideSolid(s Solid3D, p Point3D) bool {
	return s.Contains(p, h.Tolerance())
}

func (h Headless) PullPointToFace(f Face3D, p Point3D) Point3D {
	return f.ClosestPoint(p)
}

func (h Headless) FaceCentroid(f Face3D) Point3D {
	return f.Centroid()
}

func (h Headless) Move(p Point3D, v Vector3D) Point3D {
	return p.Add(v)
}

func (h Headless) UnitZ() Vector3D { return UnitZ }

func (h Headless) Amplitude(v Vector3D, mag float64) Vector3D {
	return v.Amplitude(mag)
}

func (h Headless) VectorBetween(a, b Point3D) Vector3D {
	return b.Sub(a)
}

func (h Headless) Extrude(f Face3D, v Vector3D) Solid3D {
	return Extrude(f, v)
}

func (h Headless) SurfaceSplit(f Face3D, curves []Segment3D) []Face3D {
	return SplitFace(f, curves, h.Tolerance())
}

func (h Headless) ClosestPointOnSurface(p Point3D, f Face3D) Point3D {
	return f.ClosestPoint(p)
}
