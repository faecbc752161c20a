package climate

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const (
	rowCount      = 10
	monthCols     = 12
	minRowWidth   = 1 + monthCols
	maxRowWidth   = 1 + monthCols + 4
	firstValueRow = 3
)

// Options carry location values the climate file does not contain.
type Options struct {
	ClimateZone  int
	HoursFromUTC int
}

// LoadFile reads a climate file. Files without a .txt extension produce a
// warning and no Site.
func LoadFile(path string, opts Options, log *zap.Logger) (*Site, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if !strings.EqualFold(filepath.Ext(path), ".txt") {
		log.Warn("climate file must be a .txt file, skipping", zap.String("path", path))
		return nil, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open climate file: %w", err)
	}
	defer f.Close()

	site, err := Parse(f, opts)
	if err != nil {
		return nil, err
	}
	log.Debug("climate file loaded",
		zap.String("path", path),
		zap.String("station", site.Climate.DisplayName),
		zap.Float64("latitude", site.Location.Latitude),
		zap.Float64("longitude", site.Location.Longitude),
	)
	return site, nil
}

// Parse reads the tab-separated climate table. A UTF-8 byte order mark is
// tolerated.
func Parse(r io.Reader, opts Options) (*Site, error) {
	dec := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	sc := bufio.NewScanner(dec)

	var rows [][]string
	var lineNos []int
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r\n")
		if strings.TrimSpace(text) == "" {
			continue
		}
		cells := strings.Split(text, "\t")
		for i := range cells {
			cells[i] = strings.TrimSpace(cells[i])
		}
		rows = append(rows, cells)
		lineNos = append(lineNos, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read climate file: %w", err)
	}
	if len(rows) != rowCount {
		return nil, &ParseError{Msg: fmt.Sprintf("expected %d rows, found %d", rowCount, len(rows))}
	}

	site := &Site{}
	site.Location.ClimateZone = opts.ClimateZone
	site.Location.HoursFromUTC = opts.HoursFromUTC
	site.Climate.AverageWindSpeed = DefaultAverageWindSpeed

	if err := parseLocationRow(site, rows[1], lineNos[1]); err != nil {
		return nil, err
	}

	var values [rowCount - 2]Months
	var peaks [rowCount - 2][4]*float64
	for i := 0; i < rowCount-2; i++ {
		cells := rows[i+2]
		ln := lineNos[i+2]
		if len(cells) < minRowWidth || len(cells) > maxRowWidth {
			return nil, &ParseError{Line: ln, Msg: fmt.Sprintf("expected %d to %d columns, found %d", minRowWidth, maxRowWidth, len(cells))}
		}
		for m := 0; m < monthCols; m++ {
			v, err := strconv.ParseFloat(cells[1+m], 64)
			if err != nil {
				return nil, &ParseError{Line: ln, Msg: fmt.Sprintf("month %d: %v", m+1, err)}
			}
			values[i][m] = v
		}
		for p := 0; p < 4; p++ {
			col := 1 + monthCols + p
			if col >= len(cells) || cells[col] == "" {
				continue
			}
			v, err := strconv.ParseFloat(cells[col], 64)
			if err != nil {
				return nil, &ParseError{Line: ln, Msg: fmt.Sprintf("peak load column %d: %v", p+1, err)}
			}
			peaks[i][p] = &v
		}
	}

	c := &site.Climate
	c.MonthlyTemps = MonthlyTemps{AirTemps: values[0], DewPointTemps: values[1], SkyTemps: values[2]}
	c.MonthlyRadiation = MonthlyRadiation{
		North:  values[3],
		East:   values[4],
		South:  values[5],
		West:   values[6],
		Global: values[7],
	}
	for p, set := range c.PeakLoads() {
		*set = PeakLoadValueSet{
			Temperature: peaks[0][p],
			DewPoint:    peaks[1][p],
			SkyTemp:     peaks[2][p],
			RadNorth:    peaks[3][p],
			RadEast:     peaks[4][p],
			RadSouth:    peaks[5][p],
			RadWest:     peaks[6][p],
			RadGlobal:   peaks[7][p],
		}
	}

	if err := site.Validate(); err != nil {
		return nil, &ParseError{Line: lineNos[1], Msg: err.Error()}
	}
	return site, nil
}

func parseLocationRow(site *Site, cells []string, ln int) error {
	if len(cells) < 4 {
		return &ParseError{Line: ln, Msg: fmt.Sprintf("location row needs name, latitude, longitude and elevation, found %d columns", len(cells))}
	}
	site.Climate.DisplayName = cells[0]
	nums := make([]float64, 3)
	for i, name := range []string{"latitude", "longitude", "station elevation"} {
		v, err := strconv.ParseFloat(cells[1+i], 64)
		if err != nil {
			return &ParseError{Line: ln, Msg: fmt.Sprintf("%s: %v", name, err)}
		}
		nums[i] = v
	}
	site.Location.Latitude = nums[0]
	site.Location.Longitude = nums[1]
	site.Location.SiteElevation = nums[2]
	site.Climate.StationElevation = nums[2]

	site.Climate.DailyTemperatureSwing = DefaultDailyTemperatureSwing
	if len(cells) > 4 && cells[4] != "" {
		v, err := strconv.ParseFloat(cells[4], 64)
		if err != nil {
			return &ParseError{Line: ln, Msg: fmt.Sprintf("daily temperature swing: %v", err)}
		}
		site.Climate.DailyTemperatureSwing = v
	}
	return nil
}
