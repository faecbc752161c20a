package geometry

import "math"

// Face3D is a planar polygon. The vertex order defines the normal by the
// right-hand rule.
type Face3D struct {
	Boundary []Point3D `json:"boundary" yaml:"boundary"`
}

// NewFace builds a face from its boundary vertices.
func NewFace(pts ...Point3D) Face3D {
	return Face3D{Boundary: pts}
}

// Rect builds an axis-aligned horizontal rectangle at height z, wound
// counter-clockwise so the normal points up.
func Rect(x0, y0, x1, y1, z float64) Face3D {
	return NewFace(Pt(x0, y0, z), Pt(x1, y0, z), Pt(x1, y1, z), Pt(x0, y1, z))
}

// newell returns the (unnormalised) Newell normal, whose length is twice
// the polygon area.
func (f Face3D) newell() Vector3D {
	var n Vector3D
	pts := f.Boundary
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		n.X += (a.Y - b.Y) * (a.Z + b.Z)
		n.Y += (a.Z - b.Z) * (a.X + b.X)
		n.Z += (a.X - b.X) * (a.Y + b.Y)
	}
	return n
}

// Normal returns the unit normal of the face.
func (f Face3D) Normal() Vector3D {
	return f.newell().Normalize()
}

// Area returns the polygon area.
func (f Face3D) Area() float64 {
	if len(f.Boundary) < 3 {
		return 0
	}
	return f.newell().Length() / 2
}

// Centroid returns the area centroid of the polygon.
func (f Face3D) Centroid() Point3D {
	pts := f.Boundary
	if len(pts) == 0 {
		return Point3D{}
	}
	n := f.Normal()
	var total float64
	var acc Vector3D
	for i := 1; i+1 < len(pts); i++ {
		a := pts[i].Sub(pts[0]).Cross(pts[i+1].Sub(pts[0])).Dot(n) / 2
		c := Vector3D{
			X: (pts[0].X + pts[i].X + pts[i+1].X) / 3,
			Y: (pts[0].Y + pts[i].Y + pts[i+1].Y) / 3,
			Z: (pts[0].Z + pts[i].Z + pts[i+1].Z) / 3,
		}
		acc = acc.Add(c.Scale(a))
		total += a
	}
	if math.Abs(total) < 1e-18 {
		var sum Vector3D
		for _, p := range pts {
			sum = sum.Add(Vector3D(p))
		}
		return Point3D(sum.Scale(1 / float64(len(pts))))
	}
	return Point3D(acc.Scale(1 / total))
}

// Edges returns the closed boundary as segments.
func (f Face3D) Edges() []Segment3D {
	n := len(f.Boundary)
	out := make([]Segment3D, 0, n)
	for i := range f.Boundary {
		out = append(out, Seg(f.Boundary[i], f.Boundary[(i+1)%n]))
	}
	return out
}

// Reversed returns the face with the opposite winding.
func (f Face3D) Reversed() Face3D {
	n := len(f.Boundary)
	rev := make([]Point3D, n)
	for i, p := range f.Boundary {
		rev[n-1-i] = p
	}
	return Face3D{Boundary: rev}
}

// Translate returns the face moved by v.
func (f Face3D) Translate(v Vector3D) Face3D {
	out := make([]Point3D, len(f.Boundary))
	for i, p := range f.Boundary {
		out[i] = p.Add(v)
	}
	return Face3D{Boundary: out}
}

// basis returns two orthonormal in-plane axes.
func (f Face3D) basis() (u, v, n Vector3D) {
	n = f.Normal()
	for i := 1; i < len(f.Boundary); i++ {
		u = f.Boundary[i].Sub(f.Boundary[0])
		u = u.Sub(n.Scale(u.Dot(n)))
		if !u.IsZero() {
			break
		}
	}
	u = u.Normalize()
	v = n.Cross(u)
	return u, v, n
}

// PlaneDistance returns the signed distance of p from the face plane.
func (f Face3D) PlaneDistance(p Point3D) float64 {
	if len(f.Boundary) == 0 {
		return 0
	}
	return p.Sub(f.Boundary[0]).Dot(f.Normal())
}

// ProjectToPlane drops p onto the face plane along the normal.
func (f Face3D) ProjectToPlane(p Point3D) Point3D {
	return p.Add(f.Normal().Scale(-f.PlaneDistance(p)))
}

// containsInPlane tests a point already in the plane against the polygon
// with the even-odd rule.
func (f Face3D) containsInPlane(p Point3D) bool {
	u, v, _ := f.basis()
	o := f.Boundary[0]
	px, py := p.Sub(o).Dot(u), p.Sub(o).Dot(v)
	inside := false
	n := len(f.Boundary)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		xi, yi := f.Boundary[i].Sub(o).Dot(u), f.Boundary[i].Sub(o).Dot(v)
		xj, yj := f.Boundary[j].Sub(o).Dot(u), f.Boundary[j].Sub(o).Dot(v)
		if (yi > py) != (yj > py) && px < (xj-xi)*(py-yi)/(yj-yi)+xi {
			inside = !inside
		}
	}
	return inside
}

// onBoundary reports whether p lies within tol of any edge.
func (f Face3D) onBoundary(p Point3D, tol float64) bool {
	for _, e := range f.Edges() {
		if e.ClosestPoint(p).Near(p, tol) {
			return true
		}
	}
	return false
}

// Contains reports whether p lies on the face (boundary included) within tol.
func (f Face3D) Contains(p Point3D, tol float64) bool {
	if len(f.Boundary) < 3 || math.Abs(f.PlaneDistance(p)) > tol {
		return false
	}
	q := f.ProjectToPlane(p)
	return f.containsInPlane(q) || f.onBoundary(q, tol)
}

// ClosestPoint returns the point of the face nearest to p.
func (f Face3D) ClosestPoint(p Point3D) Point3D {
	if len(f.Boundary) == 0 {
		return p
	}
	q := f.ProjectToPlane(p)
	if len(f.Boundary) >= 3 && f.containsInPlane(q) {
		return q
	}
	best := f.Boundary[0]
	bestD := math.Inf(1)
	for _, e := range f.Edges() {
		c := e.ClosestPoint(q)
		if d := c.Distance(q); d < bestD {
			best, bestD = c, d
		}
	}
	return best
}

// IsHorizontal reports whether the face normal is parallel to world Z.
func (f Face3D) IsHorizontal(tol float64) bool {
	return math.Abs(math.Abs(f.Normal().Z)-1) <= tol
}
