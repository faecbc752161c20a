package geometry

import "math"

// Segment3D is a straight line between two points.
type Segment3D struct {
	Start Point3D `json:"start" yaml:"start"`
	End   Point3D `json:"end" yaml:"end"`
}

// Seg is a shorthand constructor for Segment3D.
func Seg(a, b Point3D) Segment3D {
	return Segment3D{Start: a, End: b}
}

func (s Segment3D) Vector() Vector3D {
	return s.End.Sub(s.Start)
}

func (s Segment3D) Length() float64 {
	return s.Vector().Length()
}

func (s Segment3D) Midpoint() Point3D {
	return s.Start.Add(s.Vector().Scale(0.5))
}

// IsDegenerate reports a segment shorter than tol.
func (s Segment3D) IsDegenerate(tol float64) bool {
	return s.Length() <= tol
}

// ClosestPoint returns the point on the segment nearest to p.
func (s Segment3D) ClosestPoint(p Point3D) Point3D {
	d := s.Vector()
	l2 := d.Dot(d)
	if l2 < 1e-24 {
		return s.Start
	}
	t := p.Sub(s.Start).Dot(d) / l2
	t = math.Max(0, math.Min(1, t))
	return s.Start.Add(d.Scale(t))
}

// Polyline3D is an ordered chain of points.
type Polyline3D struct {
	Vertices []Point3D `json:"vertices" yaml:"vertices"`
}

// Segments returns one segment per linear span, skipping zero-length spans.
func (p Polyline3D) Segments() []Segment3D {
	var out []Segment3D
	for i := 0; i+1 < len(p.Vertices); i++ {
		s := Seg(p.Vertices[i], p.Vertices[i+1])
		if s.Length() < 1e-12 {
			continue
		}
		out = append(out, s)
	}
	return out
}

func (p Polyline3D) Length() float64 {
	var l float64
	for _, s := range p.Segments() {
		l += s.Length()
	}
	return l
}

// LineCurve is a CAD line curve.
type LineCurve struct {
	Start Point3D
	End   Point3D
}

// NurbsCurve is a CAD nurbs curve. Degree 1 curves are exact polylines
// through their control points; higher degrees fall back to the control
// polygon.
type NurbsCurve struct {
	ControlPoints []Point3D
	Degree        int
}
