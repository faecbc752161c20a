// Package residential derives per-story residential loads for Phius
// multifamily projects: dwellings and bedrooms, design occupancy, plug loads
// and lighting, plus the people density written back to each room.
package residential

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/alexiusacademia/gophb/internal/model"
	"github.com/alexiusacademia/gophb/internal/phius"
	"github.com/alexiusacademia/gophb/internal/ports"
	"github.com/alexiusacademia/gophb/internal/units"
)

// Options are the high-efficacy lighting fractions. Garage lighting is only
// counted when Garage is set.
type Options struct {
	FractionInterior float64 `yaml:"fraction_interior" validate:"gte=0,lte=1"`
	FractionExterior float64 `yaml:"fraction_exterior" validate:"gte=0,lte=1"`
	FractionGarage   float64 `yaml:"fraction_garage" validate:"gte=0,lte=1"`
	Garage           bool    `yaml:"garage"`
}

func DefaultOptions() Options {
	return Options{
		FractionInterior: phius.DefaultFractionInterior,
		FractionExterior: phius.DefaultFractionExterior,
		FractionGarage:   phius.DefaultFractionGarage,
	}
}

// Dwelling is a set of rooms sharing a dwelling identifier.
type Dwelling struct {
	Identifier string
	Rooms      []*model.Room
	FloorArea  float64
	Bedrooms   int
	Occupancy  float64
}

// FloorAreaFt2 is the dwelling floor area in ft².
func (d Dwelling) FloorAreaFt2() float64 {
	return m2ToFt2(d.FloorArea)
}

// Story is the load summary of one story.
type Story struct {
	Number          string                                        `json:"story_number"`
	FloorAreaFt2    float64                                       `json:"total_floor_area_ft2"`
	Dwellings       int                                           `json:"total_number_dwellings"`
	Bedrooms        int                                           `json:"total_number_bedrooms"`
	DesignOccupancy int                                           `json:"design_occupancy"`
	MelKWH          float64                                       `json:"mel"`
	LightingIntKWH  float64                                       `json:"lighting_int"`
	LightingExtKWH  float64                                       `json:"lighting_ext"`
	LightingGarKWH  float64                                       `json:"lighting_garage"`
	Equipment       map[phius.EquipmentKind]phius.EquipmentConfig `json:"equipment"`
}

func m2ToFt2(v float64) float64 {
	q, _ := units.Convert("floor_area", units.Quantity{Value: v, Unit: units.M2}, units.FT2)
	return q.Value
}

func energyPeople(r *model.Room) (*model.People, error) {
	p := r.Caps().Energy().People
	if p == nil {
		return nil, fmt.Errorf("room %s: %w", r.DisplayName, model.ErrMissingPeople)
	}
	return p, nil
}

// GroupByStory buckets rooms by their literal story tag, in order of first
// appearance. A single story is logged: it usually means the rooms were
// never tagged.
func GroupByStory(rooms []*model.Room, log *zap.Logger) (order []string, stories map[string][]*model.Room) {
	if log == nil {
		log = zap.NewNop()
	}
	stories = make(map[string][]*model.Room)
	for _, r := range rooms {
		if _, ok := stories[r.Story]; !ok {
			order = append(order, r.Story)
		}
		stories[r.Story] = append(stories[r.Story], r)
	}
	if len(order) == 1 && len(rooms) > 1 {
		log.Warn("only one story found; check the story tags of the rooms", zap.String("story", order[0]), zap.Int("rooms", len(rooms)))
	}
	return order, stories
}

// Dwellings groups rooms by the dwelling identifier of their people load.
// Rooms without one are each their own dwelling.
func Dwellings(g ports.GeometryAdapter, rooms []*model.Room) ([]*Dwelling, error) {
	var out []*Dwelling
	byID := make(map[string]*Dwelling)
	for _, r := range rooms {
		p, err := energyPeople(r)
		if err != nil {
			return nil, err
		}
		id := p.Ph.DwellingID
		if id == "" {
			id = r.Identifier
		}
		d, ok := byID[id]
		if !ok {
			d = &Dwelling{Identifier: id}
			byID[id] = d
			out = append(out, d)
		}
		d.Rooms = append(d.Rooms, r)
		d.FloorArea += r.FloorArea(g)
		d.Bedrooms += p.Ph.NumberBedrooms
		d.Occupancy += p.Ph.AverageOccupancy
	}
	return out, nil
}
