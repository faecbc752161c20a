// Package hosting assigns unhosted spaces to the rooms that contain their
// floor-segment reference points.
package hosting

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/alexiusacademia/gophb/internal/geometry"
	"github.com/alexiusacademia/gophb/internal/model"
	"github.com/alexiusacademia/gophb/internal/ports"
	"github.com/alexiusacademia/gophb/internal/space"
)

// DefaultZOffset lifts reference points off the floor plane (document units).
const DefaultZOffset = 0.1

// Options control hosting.
type Options struct {
	// ZOffset lifts every reference point before testing.
	ZOffset float64
	// InheritRoomNames merges all spaces hosted by a room into a single
	// space named after the room.
	InheritRoomNames bool
}

// DefaultOptions returns the standard lift and no name inheritance.
func DefaultOptions() Options {
	return Options{ZOffset: DefaultZOffset}
}

// Unhosted is a space no room accepted, with the points that were tested.
type Unhosted struct {
	Space  *space.Space
	Points []geometry.Point3D
}

// Result holds the duplicated rooms and the hosting diagnostics.
type Result struct {
	Rooms     []*model.Room
	Unhosted  []Unhosted
	OpenRooms []string
}

type entry struct {
	space  *space.Space
	points []geometry.Point3D
}

// HostSpaces binds each space to the first room, in input order, that
// contains any of its reference points. Rooms are duplicated before they
// are changed. Rooms that are not closed solids are skipped and reported.
func HostSpaces(g ports.GeometryAdapter, rooms []*model.Room, spaces []*space.Space, opts Options, log *zap.Logger) (*Result, error) {
	if log == nil {
		log = zap.NewNop()
	}

	index := make([]*entry, 0, len(spaces))
	for _, s := range spaces {
		index = append(index, &entry{space: s, points: s.ReferencePoints(g, opts.ZOffset)})
	}

	res := &Result{Rooms: make([]*model.Room, 0, len(rooms))}
	for _, room := range rooms {
		dup, err := room.Duplicate()
		if err != nil {
			return nil, fmt.Errorf("room %s: %w", room.DisplayName, err)
		}
		res.Rooms = append(res.Rooms, dup)

		if !dup.IsClosed(g) {
			res.OpenRooms = append(res.OpenRooms, dup.Identifier)
			log.Warn("room is not a closed solid, skipping", zap.String("room", dup.DisplayName))
			continue
		}

		var hosted []*space.Space
		remaining := index[:0]
		for _, e := range index {
			if !containsAny(g, dup.Geometry, e.points) {
				remaining = append(remaining, e)
				continue
			}
			s := *e.space
			s.HostRef = dup.Identifier
			hosted = append(hosted, &s)
		}
		index = remaining
		if len(hosted) == 0 {
			continue
		}

		attach(dup, hosted, opts.InheritRoomNames)
		log.Debug("hosted spaces",
			zap.String("room", dup.DisplayName),
			zap.Int("spaces", len(hosted)),
		)
	}

	for _, e := range index {
		res.Unhosted = append(res.Unhosted, Unhosted{Space: e.space, Points: e.points})
		log.Warn("space is not inside any room",
			zap.String("space", e.space.Name),
			zap.String("number", e.space.Number),
			zap.Any("reference_points", e.points),
		)
	}
	return res, nil
}

func containsAny(g ports.GeometryAdapter, solid geometry.Solid3D, pts []geometry.Point3D) bool {
	for _, p := range pts {
		if g.PointInsideSolid(solid, p) {
			return true
		}
	}
	return false
}

func attach(room *model.Room, hosted []*space.Space, inheritNames bool) {
	caps := room.Caps()
	ph := caps.Ph()
	if inheritNames {
		merged := space.Merge(hosted[0].Number, room.DisplayName, hosted...)
		merged.HostRef = room.Identifier
		ph.AddSpace(merged)
	} else {
		for _, s := range hosted {
			ph.AddSpace(s)
		}
	}

	for _, s := range hosted {
		if s.PhVentilationFlowRates == nil {
			continue
		}
		caps.Energy().VentilationLoad().AddAbsolute(s.HoneybeeFlowRate())
	}
}
