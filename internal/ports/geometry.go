package ports

import (
	"github.com/alexiusacademia/gophb/internal/geometry"
	"github.com/alexiusacademia/gophb/internal/units"
)

// GeometryAdapter is the only way the core talks to CAD geometry. Hosts
// plug in their own implementation; geometry.Headless serves tests and the CLI.
type GeometryAdapter interface {
	Tolerance() float64
	Document() units.Document

	PolylineFrom(raw any) (geometry.Polyline3D, error)
	SolidIsClosed(s geometry.Solid3D) bool
	PointInsideSolid(s geometry.Solid3D, p geometry.Point3D) bool
	PullPointToFace(f geometry.Face3D, p geometry.Point3D) geometry.Point3D
	FaceCentroid(f geometry.Face3D) geometry.Point3D

	Move(p geometry.Point3D, v geometry.Vector3D) geometry.Point3D
	UnitZ() geometry.Vector3D
	Amplitude(v geometry.Vector3D, mag float64) geometry.Vector3D
	VectorBetween(a, b geometry.Point3D) geometry.Vector3D
	Extrude(f geometry.Face3D, v geometry.Vector3D) geometry.Solid3D
	SurfaceSplit(f geometry.Face3D, curves []geometry.Segment3D) []geometry.Face3D
	ClosestPointOnSurface(p geometry.Point3D, f geometry.Face3D) geometry.Point3D
}

var _ GeometryAdapter = geometry.Headless{}
