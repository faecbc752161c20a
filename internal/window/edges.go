package window

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gophb/internal/geometry"
)

// ApertureEdges are the four sides of an aperture face.
type ApertureEdges struct {
	Top    geometry.Segment3D
	Right  geometry.Segment3D
	Bottom geometry.Segment3D
	Left   geometry.Segment3D
}

// Get returns the edge segment for e.
func (a ApertureEdges) Get(e Edge) geometry.Segment3D {
	switch e {
	case EdgeRight:
		return a.Right
	case EdgeBottom:
		return a.Bottom
	case EdgeLeft:
		return a.Left
	}
	return a.Top
}

// Lengths returns the edge lengths in frame order.
func (a ApertureEdges) Lengths() [4]float64 {
	return [4]float64{a.Top.Length(), a.Right.Length(), a.Bottom.Length(), a.Left.Length()}
}

// FaceAxes returns the surface "up" and "right" directions of a face seen
// from outside. Up is world Z projected into the face plane; horizontal
// faces use world Y.
func FaceAxes(f geometry.Face3D) (up, right geometry.Vector3D) {
	n := f.Normal()
	up = geometry.UnitZ.Sub(n.Scale(geometry.UnitZ.Dot(n)))
	if up.Length() < 1e-9 {
		y := geometry.Vec(0, 1, 0)
		up = y.Sub(n.Scale(y.Dot(n)))
	}
	up = up.Normalize()
	right = up.Cross(n).Normalize()
	return up, right
}

// DecomposeEdges splits an aperture face into exactly one top, right,
// bottom and left edge.
func DecomposeEdges(f geometry.Face3D, tol float64) (ApertureEdges, error) {
	var out ApertureEdges
	if f.Area() <= tol*tol {
		return out, fmt.Errorf("%w: degenerate face", ErrApertureEdges)
	}
	up, right := FaceAxes(f)
	c := f.Centroid()

	var tops, bottoms, lefts, rights []geometry.Segment3D
	for _, e := range f.Edges() {
		if e.IsDegenerate(tol) {
			continue
		}
		dir := e.Vector().Normalize()
		offset := e.Midpoint().Sub(c)
		if math.Abs(dir.Dot(up)) > math.Sqrt2/2 {
			if offset.Dot(right) >= 0 {
				rights = append(rights, e)
			} else {
				lefts = append(lefts, e)
			}
			continue
		}
		if offset.Dot(up) >= 0 {
			tops = append(tops, e)
		} else {
			bottoms = append(bottoms, e)
		}
	}
	if len(tops) != 1 || len(rights) != 1 || len(bottoms) != 1 || len(lefts) != 1 {
		return out, fmt.Errorf("%w: found %d top, %d right, %d bottom, %d left",
			ErrApertureEdges, len(tops), len(rights), len(bottoms), len(lefts))
	}
	out.Top, out.Right, out.Bottom, out.Left = tops[0], rights[0], bottoms[0], lefts[0]
	return out, nil
}
