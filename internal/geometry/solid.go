package geometry

import (
	"fmt"
	"math"
)

// Solid3D is a polyhedron described by its faces. Closed solids have
// outward-pointing face normals.
type Solid3D struct {
	Faces []Face3D `json:"faces" yaml:"faces"`
}

// Box returns the axis-aligned box between min and max.
func Box(min, max Point3D) Solid3D {
	base := Rect(min.X, min.Y, max.X, max.Y, min.Z)
	return Extrude(base, Vec(0, 0, max.Z-min.Z))
}

// Extrude sweeps a planar face along v into a closed solid.
func Extrude(f Face3D, v Vector3D) Solid3D {
	base := f
	if base.Normal().Dot(v) > 0 {
		base = base.Reversed()
	}
	top := base.Reversed().Translate(v)
	faces := []Face3D{base, top}
	n := len(base.Boundary)
	for i := range base.Boundary {
		a, b := base.Boundary[i], base.Boundary[(i+1)%n]
		faces = append(faces, NewFace(b, a, a.Add(v), b.Add(v)))
	}
	return Solid3D{Faces: faces}
}

func edgeKey(a, b Point3D, tol float64) string {
	q := func(p Point3D) string {
		return fmt.Sprintf("%d,%d,%d", int64(math.Round(p.X/tol)), int64(math.Round(p.Y/tol)), int64(math.Round(p.Z/tol)))
	}
	ka, kb := q(a), q(b)
	if ka > kb {
		ka, kb = kb, ka
	}
	return ka + "|" + kb
}

// IsClosed reports whether every edge is shared by exactly two faces.
func (s Solid3D) IsClosed(tol float64) bool {
	if len(s.Faces) < 4 {
		return false
	}
	counts := make(map[string]int)
	for _, f := range s.Faces {
		if len(f.Boundary) < 3 {
			return false
		}
		for _, e := range f.Edges() {
			if e.IsDegenerate(tol) {
				continue
			}
			counts[edgeKey(e.Start, e.End, tol)]++
		}
	}
	for _, c := range counts {
		if c != 2 {
			return false
		}
	}
	return true
}

// rayDir is deliberately skewed so rays rarely graze edges or vertices.
var rayDir = Vec(0.5773502691896258, 0.3217505543966422, 0.7504915783575616).Normalize()

// Contains reports whether p is inside the solid. Points within tol of the
// boundary count as inside.
func (s Solid3D) Contains(p Point3D, tol float64) bool {
	for _, f := range s.Faces {
		if f.Contains(p, tol) {
			return true
		}
	}
	crossings := 0
	for _, f := range s.Faces {
		if len(f.Boundary) < 3 {
			continue
		}
		n := f.Normal()
		denom := n.Dot(rayDir)
		if math.Abs(denom) < 1e-12 {
			continue
		}
		t := f.Boundary[0].Sub(p).Dot(n) / denom
		if t <= 0 {
			continue
		}
		hit := p.Add(rayDir.Scale(t))
		if f.containsInPlane(hit) {
			crossings++
		}
	}
	return crossings%2 == 1
}

// Volume returns the enclosed volume using the divergence theorem.
func (s Solid3D) Volume() float64 {
	var v float64
	for _, f := range s.Faces {
		c := f.Centroid()
		v += Vector3D(c).Dot(f.Normal()) * f.Area()
	}
	return math.Abs(v) / 3
}

// BoundingBox returns the min and max corners of the solid.
func (s Solid3D) BoundingBox() (Point3D, Point3D) {
	min := Pt(math.Inf(1), math.Inf(1), math.Inf(1))
	max := Pt(math.Inf(-1), math.Inf(-1), math.Inf(-1))
	for _, f := range s.Faces {
		for _, p := range f.Boundary {
			min = Pt(math.Min(min.X, p.X), math.Min(min.Y, p.Y), math.Min(min.Z, p.Z))
			max = Pt(math.Max(max.X, p.X), math.Max(max.Y, p.Y), math.Max(max.Z, p.Z))
		}
	}
	return min, max
}

// FloorFaces returns the faces whose normal points straight down.
func (s Solid3D) FloorFaces(tol float64) []Face3D {
	var out []Face3D
	for _, f := range s.Faces {
		if f.Normal().Z < -1+tol {
			out = append(out, f)
		}
	}
	return out
}
