package climate

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const sampleClimate = "\ufeffPHIUS climate data\n" +
	"Chicago O'Hare\t41.98\t-87.9\t201\t9.5\n" +
	"Ambient\t-4.6\t-2.6\t3.1\t9.6\t15.5\t21\t23.8\t22.8\t18.5\t11.6\t4.9\t-1.6\t-20.1\t-15\t31.9\t28.5\n" +
	"Dewpoint\t-9.4\t-7.8\t-3.3\t2.2\t8.3\t14.4\t17.2\t16.7\t12.2\t5.6\t-0.6\t-6.1\t-24\t-20\t22\t21\n" +
	"Sky\t-15.2\t-13.9\t-8.8\t-3.4\t3.5\t9.9\t13.3\t12.6\t7.5\t0.1\t-6.6\t-12.3\t\t\t\t\n" +
	"North\t15\t20\t30\t38\t50\t55\t54\t43\t32\t23\t15\t12\t5\t5\t40\t42\n" +
	"East\t35\t45\t66\t80\t96\t101\t105\t92\t70\t52\t34\t27\t10\t12\t110\t90\n" +
	"South\t85\t90\t95\t82\t78\t72\t78\t86\t92\t95\t80\t72\t48\t40\t60\t58\n" +
	"West\t35\t45\t66\t80\t96\t101\t105\t92\t70\t52\t34\t27\t10\t12\t100\t98\n" +
	"Global\t55\t75\t110\t140\t175\t190\t195\t168\t128\t92\t55\t44\t20\t22\t250\t240\n"

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func replaceLine(lines []string, i int, with string) string {
	out := append([]string(nil), lines...)
	out[i] = with
	return strings.Join(out, "\n")
}

func TestParse_Sample(t *testing.T) {
	site, err := Parse(strings.NewReader(sampleClimate), Options{ClimateZone: 5, HoursFromUTC: -6})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if site.Climate.DisplayName != "Chicago O'Hare" {
		t.Fatalf("DisplayName = %q", site.Climate.DisplayName)
	}
	if site.Location.Latitude != 41.98 || site.Location.Longitude != -87.9 {
		t.Fatalf("lat/lon = %v/%v", site.Location.Latitude, site.Location.Longitude)
	}
	if site.Location.ClimateZone != 5 || site.Location.HoursFromUTC != -6 {
		t.Fatalf("options not applied: %+v", site.Location)
	}
	if site.Climate.StationElevation != 201 {
		t.Fatalf("StationElevation = %v", site.Climate.StationElevation)
	}
	if site.Climate.DailyTemperatureSwing != 9.5 {
		t.Fatalf("DailyTemperatureSwing = %v", site.Climate.DailyTemperatureSwing)
	}
	if site.Climate.AverageWindSpeed != DefaultAverageWindSpeed {
		t.Fatalf("AverageWindSpeed = %v", site.Climate.AverageWindSpeed)
	}
	if got := site.Climate.MonthlyTemps.AirTemps[0]; got != -4.6 {
		t.Fatalf("January air temp = %v", got)
	}
	if got := site.Climate.MonthlyRadiation.South[11]; got != 72 {
		t.Fatalf("December south radiation = %v", got)
	}
	if len(site.Climate.MonthlyRadiation.Global.Slice()) != 12 {
		t.Fatalf("monthly set must have 12 values")
	}

	h1 := site.Climate.PeakHeating1
	if h1.Temperature == nil || *h1.Temperature != -20.1 {
		t.Fatalf("peak heating 1 temp = %v", h1.Temperature)
	}
	if h1.SkyTemp != nil {
		t.Fatalf("empty sky peak should be nil, got %v", *h1.SkyTemp)
	}
	if h1.GroundTemp != nil {
		t.Fatalf("ground temp is not in the file and should be nil")
	}
	c2 := site.Climate.PeakCooling2
	if c2.RadGlobal == nil || *c2.RadGlobal != 240 {
		t.Fatalf("peak cooling 2 global radiation = %v", c2.RadGlobal)
	}
}

func TestParse_DefaultsWithoutSwing(t *testing.T) {
	lines := strings.Split(sampleClimate, "\n")
	lines[1] = "Somewhere\t40\t-80\t100"
	site, err := Parse(strings.NewReader(strings.Join(lines, "\n")), Options{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if site.Climate.DailyTemperatureSwing != DefaultDailyTemperatureSwing {
		t.Fatalf("DailyTemperatureSwing = %v, want %v", site.Climate.DailyTemperatureSwing, DefaultDailyTemperatureSwing)
	}
}

func TestParse_NoPeakColumns(t *testing.T) {
	lines := strings.Split(sampleClimate, "\n")
	for i := 2; i < 10; i++ {
		cells := strings.Split(lines[i], "\t")
		lines[i] = strings.Join(cells[:13], "\t")
	}
	site, err := Parse(strings.NewReader(strings.Join(lines, "\n")), Options{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	for i, set := range site.Climate.PeakLoads() {
		if set.Temperature != nil || set.RadGlobal != nil {
			t.Fatalf("peak set %d should be empty: %+v", i, set)
		}
	}
}

func TestParse_Errors(t *testing.T) {
	lines := strings.Split(sampleClimate, "\n")
	cases := []struct {
		name string
		in   string
	}{
		{"missing row", strings.Join(lines[:9], "\n")},
		{"extra row", sampleClimate + "Extra\t1\n"},
		{"short row", replaceLine(lines, 4, "Sky\t1\t2\t3")},
		{"wide row", strings.Replace(sampleClimate, "\t240\n", "\t240\t1\t2\n", 1)},
		{"bad number", strings.Replace(sampleClimate, "\t-4.6\t", "\tcold\t", 1)},
		{"bad latitude", strings.Replace(sampleClimate, "\t41.98\t", "\t141.98\t", 1)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tc.in), Options{})
			if err == nil {
				t.Fatalf("expected error")
			}
			if !errors.Is(err, ErrClimateParse) {
				t.Fatalf("error %v should be a climate parse error", err)
			}
		})
	}
}

func TestLoadFile_Extension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "climate.csv")
	if err := os.WriteFile(path, []byte(sampleClimate), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	core, logs := observer.New(zapcore.WarnLevel)
	site, err := LoadFile(path, Options{}, zap.New(core))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if site != nil {
		t.Fatalf("non-.txt file should give no site")
	}
	if logs.Len() != 1 {
		t.Fatalf("expected one warning, got %d", logs.Len())
	}
}

func TestLoadFile_Txt(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "CHICAGO.TXT")
	if err := os.WriteFile(path, []byte(sampleClimate), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	site, err := LoadFile(path, Options{}, nil)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if site == nil || !approxEqual(site.Climate.MonthlyTemps.AirTemps.Mean(), 122.0/12, 1e-9) {
		t.Fatalf("unexpected site: %+v", site)
	}
}
