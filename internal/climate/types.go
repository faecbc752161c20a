// Package climate reads monthly Passive House climate files into a Site.
package climate

import (
	"fmt"

	"github.com/alexiusacademia/gophb/internal/validate"
)

const (
	// DefaultDailyTemperatureSwing is used when the file has no daily ΔT (K).
	DefaultDailyTemperatureSwing = 8.0
	// DefaultAverageWindSpeed is used for every parsed climate (m/s).
	DefaultAverageWindSpeed = 4.0
)

// Months is a set of exactly twelve monthly values, January first.
type Months [12]float64

// Mean returns the arithmetic mean of the twelve values.
func (m Months) Mean() float64 {
	var sum float64
	for _, v := range m {
		sum += v
	}
	return sum / 12
}

// Slice returns the values as a slice.
func (m Months) Slice() []float64 {
	out := make([]float64, 12)
	copy(out, m[:])
	return out
}

// MonthsFrom copies a twelve-value slice into Months.
func MonthsFrom(v []float64) (Months, error) {
	var m Months
	if len(v) != 12 {
		return m, fmt.Errorf("monthly values: got %d values, want 12", len(v))
	}
	copy(m[:], v)
	return m, nil
}

// MonthlyTemps holds monthly temperatures (°C).
type MonthlyTemps struct {
	AirTemps      Months `json:"air_temps" yaml:"air_temps"`
	DewPointTemps Months `json:"dewpoints" yaml:"dewpoints"`
	SkyTemps      Months `json:"sky_temps" yaml:"sky_temps"`
}

// MonthlyRadiation holds monthly radiation totals per orientation (kWh/m²).
type MonthlyRadiation struct {
	North  Months `json:"north" yaml:"north"`
	East   Months `json:"east" yaml:"east"`
	South  Months `json:"south" yaml:"south"`
	West   Months `json:"west" yaml:"west"`
	Global Months `json:"glob" yaml:"glob"`
}

// PeakLoadValueSet is one design-day condition. Values absent from the
// file stay nil.
type PeakLoadValueSet struct {
	Temperature *float64 `json:"temp" yaml:"temp"`
	DewPoint    *float64 `json:"dewpoint" yaml:"dewpoint"`
	SkyTemp     *float64 `json:"sky_temp" yaml:"sky_temp"`
	GroundTemp  *float64 `json:"ground_temp" yaml:"ground_temp"`
	RadNorth    *float64 `json:"rad_north" yaml:"rad_north"`
	RadEast     *float64 `json:"rad_east" yaml:"rad_east"`
	RadSouth    *float64 `json:"rad_south" yaml:"rad_south"`
	RadWest     *float64 `json:"rad_west" yaml:"rad_west"`
	RadGlobal   *float64 `json:"rad_global" yaml:"rad_global"`
}

// Location is the geographic part of a Site.
type Location struct {
	Latitude      float64 `json:"latitude" yaml:"latitude" validate:"gte=-90,lte=90"`
	Longitude     float64 `json:"longitude" yaml:"longitude" validate:"gte=-180,lte=180"`
	SiteElevation float64 `json:"site_elevation" yaml:"site_elevation"`
	ClimateZone   int     `json:"climate_zone" yaml:"climate_zone" validate:"gte=0"`
	HoursFromUTC  int     `json:"hours_from_UTC" yaml:"hours_from_utc" validate:"gte=-12,lte=14"`
}

// Climate is the monthly and peak-load data of a Site.
type Climate struct {
	DisplayName           string           `json:"display_name" yaml:"display_name"`
	StationElevation      float64          `json:"station_elevation" yaml:"station_elevation"`
	DailyTemperatureSwing float64          `json:"daily_temp_swing" yaml:"daily_temp_swing" validate:"gte=0"`
	AverageWindSpeed      float64          `json:"avg_wind_speed" yaml:"avg_wind_speed" validate:"gte=0"`
	MonthlyTemps          MonthlyTemps     `json:"monthly_temps" yaml:"monthly_temps"`
	MonthlyRadiation      MonthlyRadiation `json:"monthly_radiation" yaml:"monthly_radiation"`
	PeakHeating1          PeakLoadValueSet `json:"peak_heat_load_1" yaml:"peak_heat_load_1"`
	PeakHeating2          PeakLoadValueSet `json:"peak_heat_load_2" yaml:"peak_heat_load_2"`
	PeakCooling1          PeakLoadValueSet `json:"peak_cooling_load_1" yaml:"peak_cooling_load_1"`
	PeakCooling2          PeakLoadValueSet `json:"peak_cooling_load_2" yaml:"peak_cooling_load_2"`
}

// Site couples a location with its climate.
type Site struct {
	Location Location `json:"location" yaml:"location"`
	Climate  Climate  `json:"climate" yaml:"climate"`
}

// Validate checks the location and climate scalars.
func (s *Site) Validate() error {
	if err := validate.Struct(s.Location); err != nil {
		return err
	}
	return validate.Struct(s.Climate)
}

// PeakLoads returns the four peak-load sets in file order.
func (c *Climate) PeakLoads() [4]*PeakLoadValueSet {
	return [4]*PeakLoadValueSet{&c.PeakHeating1, &c.PeakHeating2, &c.PeakCooling1, &c.PeakCooling2}
}
