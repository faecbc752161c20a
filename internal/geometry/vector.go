// Package geometry holds the neutral 3-D shapes the core works with and a
// headless implementation of the geometry port.
package geometry

import "math"

// Point3D is a location in document units.
type Point3D struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

// Vector3D is a displacement in document units.
type Vector3D struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

// Pt is a shorthand constructor for Point3D.
func Pt(x, y, z float64) Point3D {
	return Point3D{X: x, Y: y, Z: z}
}

// Vec is a shorthand constructor for Vector3D.
func Vec(x, y, z float64) Vector3D {
	return Vector3D{X: x, Y: y, Z: z}
}

// UnitZ is the world up vector.
var UnitZ = Vector3D{0, 0, 1}

// Add returns p moved by v.
func (p Point3D) Add(v Vector3D) Point3D {
	return Point3D{p.X + v.X, p.Y + v.Y, p.Z + v.Z}
}

// Sub returns the vector from q to p.
func (p Point3D) Sub(q Point3D) Vector3D {
	return Vector3D{p.X - q.X, p.Y - q.Y, p.Z - q.Z}
}

// Distance returns the Euclidean distance from p to q.
func (p Point3D) Distance(q Point3D) float64 {
	return p.Sub(q).Length()
}

// Near reports whether p and q are within tol of each other.
func (p Point3D) Near(q Point3D, tol float64) bool {
	return p.Distance(q) <= tol
}

func (v Vector3D) Add(w Vector3D) Vector3D {
	return Vector3D{v.X + w.X, v.Y + w.Y, v.Z + w.Z}
}

func (v Vector3D) Sub(w Vector3D) Vector3D {
	return Vector3D{v.X - w.X, v.Y - w.Y, v.Z - w.Z}
}

func (v Vector3D) Scale(s float64) Vector3D {
	return Vector3D{v.X * s, v.Y * s, v.Z * s}
}

func (v Vector3D) Dot(w Vector3D) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

func (v Vector3D) Cross(w Vector3D) Vector3D {
	return Vector3D{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

func (v Vector3D) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize returns the unit vector in the same direction.
// Returns zero vector if length is zero.
func (v Vector3D) Normalize() Vector3D {
	l := v.Length()
	if l < 1e-12 {
		return Vector3D{}
	}
	return v.Scale(1 / l)
}

// Amplitude returns v rescaled to length mag.
func (v Vector3D) Amplitude(mag float64) Vector3D {
	return v.Normalize().Scale(mag)
}

// IsZero reports whether v has no length.
func (v Vector3D) IsZero() bool {
	return v.Length() < 1e-12
}
