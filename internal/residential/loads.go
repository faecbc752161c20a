package residential

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/alexiusacademia/gophb/internal/model"
	"github.com/alexiusacademia/gophb/internal/phius"
	"github.com/alexiusacademia/gophb/internal/ports"
	"github.com/alexiusacademia/gophb/internal/validate"
)

// extend repeats the last value until v has n entries.
func extend[T any](v []T, n int) []T {
	out := append([]T(nil), v...)
	for len(out) < n {
		out = append(out, out[len(out)-1])
	}
	return out
}

func duplicateRooms(rooms []*model.Room) ([]*model.Room, error) {
	out := make([]*model.Room, 0, len(rooms))
	for _, r := range rooms {
		dup, err := r.Duplicate()
		if err != nil {
			return nil, fmt.Errorf("room %s: %w", r.DisplayName, err)
		}
		out = append(out, dup)
	}
	return out, nil
}

// SetOccupancy writes bedroom and occupant counts to the people load of
// each room. Both lists are required; with only one of them the rooms are
// returned unchanged and a warning is logged. The shorter list is extended
// by repeating its last value, and rooms past the end of both use the last
// entry.
func SetOccupancy(rooms []*model.Room, bedrooms []int, people []float64, log *zap.Logger) ([]*model.Room, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if len(bedrooms) == 0 || len(people) == 0 {
		if len(bedrooms) != 0 || len(people) != 0 {
			log.Warn("both number of bedrooms and number of people are required; occupancy not set",
				zap.Int("bedrooms", len(bedrooms)), zap.Int("people", len(people)))
		}
		return rooms, nil
	}
	n := max(len(bedrooms), len(people))
	bedrooms, people = extend(bedrooms, n), extend(people, n)

	out, err := duplicateRooms(rooms)
	if err != nil {
		return nil, err
	}
	for i, r := range out {
		p, err := energyPeople(r)
		if err != nil {
			return nil, err
		}
		k := min(i, n-1)
		p.Ph.NumberBedrooms = bedrooms[k]
		p.Ph.AverageOccupancy = people[k]
	}
	return out, nil
}

// SetPeoplePerArea derives each dwelling's peak occupancy (average occupancy
// over the mean schedule value) and writes peak / floor area to the people
// load of every room in it.
func SetPeoplePerArea(g ports.GeometryAdapter, rooms []*model.Room, log *zap.Logger) ([]*model.Room, error) {
	if log == nil {
		log = zap.NewNop()
	}
	out, err := duplicateRooms(rooms)
	if err != nil {
		return nil, err
	}
	dwellings, err := Dwellings(g, out)
	if err != nil {
		return nil, err
	}
	for _, d := range dwellings {
		var sched float64
		for _, r := range d.Rooms {
			p, _ := energyPeople(r)
			sched += p.MeanSchedule()
		}
		sched /= float64(len(d.Rooms))
		if sched <= 0 || d.FloorArea <= 0 {
			log.Warn("dwelling has no occupancy schedule or floor area; people per area not set",
				zap.String("dwelling", d.Identifier), zap.Float64("schedule_mean", sched), zap.Float64("floor_area", d.FloorArea))
			continue
		}
		ppa := d.Occupancy / sched / d.FloorArea
		for _, r := range d.Rooms {
			p, _ := energyPeople(r)
			if err := model.WithUnlocked(p, func(p *model.People) error { return p.SetPeoplePerArea(ppa) }); err != nil {
				return nil, fmt.Errorf("room %s: %w", r.DisplayName, err)
			}
		}
	}
	return out, nil
}

// Calculate summarises the residential loads story by story.
func Calculate(g ports.GeometryAdapter, rooms []*model.Room, opts Options, log *zap.Logger) ([]Story, error) {
	if err := validate.Struct(opts); err != nil {
		return nil, err
	}
	order, byStory := GroupByStory(rooms, log)
	stories := make([]Story, 0, len(order))
	for _, tag := range order {
		dwellings, err := Dwellings(g, byStory[tag])
		if err != nil {
			return nil, err
		}
		s := Story{Number: tag, Dwellings: len(dwellings)}
		for _, d := range dwellings {
			cfa := d.FloorAreaFt2()
			s.FloorAreaFt2 += cfa
			s.Bedrooms += d.Bedrooms
			s.DesignOccupancy += phius.DesignOccupancy(d.Bedrooms)
			s.MelKWH += phius.MiscElectricLoads(d.Bedrooms, cfa)
			s.LightingIntKWH += phius.LightingInterior(cfa, opts.FractionInterior)
			s.LightingExtKWH += phius.LightingExterior(cfa, opts.FractionExterior)
			if opts.Garage {
				s.LightingGarKWH += phius.LightingGarageKWH(opts.FractionGarage)
			}
		}
		s.Equipment = storyEquipment(s, opts.Garage)
		stories = append(stories, s)
	}
	return stories, nil
}

func storyEquipment(s Story, garage bool) map[phius.EquipmentKind]phius.EquipmentConfig {
	kinds := []phius.EquipmentKind{phius.MEL, phius.LightingInteriorLoad, phius.LightingExteriorLoad}
	if garage {
		kinds = append(kinds, phius.LightingGarageLoad)
	}
	set, _ := phius.Select(phius.PHIUS, kinds...)
	demand := map[phius.EquipmentKind]float64{
		phius.MEL:                  s.MelKWH,
		phius.LightingInteriorLoad: s.LightingIntKWH,
		phius.LightingExteriorLoad: s.LightingExtKWH,
		phius.LightingGarageLoad:   s.LightingGarKWH,
	}
	for k, c := range set {
		c.EnergyDemand = demand[k]
		c.DisplayName = fmt.Sprintf("%s %s", c.DisplayName, s.Number)
		set[k] = c
	}
	return set
}
