package model

import (
	"math"

	"github.com/alexiusacademia/gophb/internal/units"
)

var posInf = math.Inf(1)

// PeoplePh are the Passive House occupancy inputs of a people load.
type PeoplePh struct {
	DwellingID       string  `json:"dwelling_identifier" yaml:"dwelling"`
	NumberBedrooms   int     `json:"number_bedrooms" yaml:"bedrooms"`
	AverageOccupancy float64 `json:"number_people" yaml:"average_occupancy"`
}

// People is an occupancy load. It is locked once created; changes go
// through WithUnlocked.
type People struct {
	Identifier        string    `json:"identifier" yaml:"identifier"`
	PeoplePerArea     float64   `json:"people_per_area" yaml:"people_per_area"`
	OccupancySchedule []float64 `json:"occupancy_schedule" yaml:"occupancy_schedule"`
	Ph                PeoplePh  `json:"ph" yaml:"ph"`

	unlocked bool
}

// NewPeople returns a locked people load.
func NewPeople(name string, perArea float64, schedule []float64, ph PeoplePh) *People {
	return &People{
		Identifier:        units.HBName(name, "People"),
		PeoplePerArea:     perArea,
		OccupancySchedule: append([]float64(nil), schedule...),
		Ph:                ph,
	}
}

// Locked reports whether the load rejects changes.
func (p *People) Locked() bool { return !p.unlocked }

// SetPeoplePerArea changes the density; it fails while locked.
func (p *People) SetPeoplePerArea(v float64) error {
	if !p.unlocked {
		return ErrPeopleLocked
	}
	if v < 0 {
		return &units.RangeViolationError{Field: "people_per_area", Value: v, Min: 0, Max: posInf}
	}
	p.PeoplePerArea = v
	return nil
}

// MeanSchedule is the mean of the occupancy schedule values, or 1 with no
// schedule.
func (p *People) MeanSchedule() float64 {
	if len(p.OccupancySchedule) == 0 {
		return 1
	}
	var sum float64
	for _, v := range p.OccupancySchedule {
		sum += v
	}
	return sum / float64(len(p.OccupancySchedule))
}

// WithUnlocked runs fn with p unlocked and relocks it on every exit path,
// panics included.
func WithUnlocked(p *People, fn func(*People) error) error {
	if p == nil {
		return ErrMissingPeople
	}
	p.unlocked = true
	defer func() { p.unlocked = false }()
	return fn(p)
}
