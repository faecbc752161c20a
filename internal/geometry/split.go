package geometry

// SplitFace cuts a planar face by each cutter. A cutter acts along its
// full line within the face plane.
func SplitFace(f Face3D, cutters []Segment3D, tol float64) []Face3D {
	pieces := []Face3D{f}
	n := f.Normal()
	for _, c := range cutters {
		dir := c.Vector()
		planeN := dir.Cross(n).Normalize()
		if planeN.IsZero() {
			continue
		}
		var next []Face3D
		for _, p := range pieces {
			front := clipPolygon(p.Boundary, c.Start, planeN, tol)
			back := clipPolygon(p.Boundary, c.Start, planeN.Scale(-1), tol)
			if len(front) < 3 || len(back) < 3 {
				next = append(next, p)
				continue
			}
			for _, side := range [][]Point3D{front, back} {
				piece := Face3D{Boundary: side}
				if piece.Area() > tol*tol {
					next = append(next, piece)
				}
			}
		}
		pieces = next
	}
	return pieces
}

// clipPolygon keeps the part of a polygon on the positive side of the plane
// (origin, normal).
func clipPolygon(pts []Point3D, origin Point3D, normal Vector3D, tol float64) []Point3D {
	var out []Point3D
	n := len(pts)
	dist := func(p Point3D) float64 { return p.Sub(origin).Dot(normal) }
	for i := 0; i < n; i++ {
		a, b := pts[i], pts[(i+1)%n]
		da, db := dist(a), dist(b)
		if da >= -tol {
			out = append(out, a)
		}
		if (da > tol && db < -tol) || (da < -tol && db > tol) {
			t := da / (da - db)
			out = append(out, a.Add(b.Sub(a).Scale(t)))
		}
	}
	return dedupe(out, tol)
}

func dedupe(pts []Point3D, tol float64) []Point3D {
	var out []Point3D
	for _, p := range pts {
		if len(out) > 0 && out[len(out)-1].Near(p, tol) {
			continue
		}
		out = append(out, p)
	}
	if len(out) > 1 && out[0].Near(out[len(out)-1], tol) {
		out = out[:len(out)-1]
	}
	return out
}
