package diagram

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/alexiusacademia/gophb/internal/climate"
	"github.com/alexiusacademia/gophb/internal/trf"
)

func testSite() *climate.Site {
	s := &climate.Site{}
	s.Climate.DisplayName = "Chicago"
	for i := range 12 {
		v := float64(i)
		s.Climate.MonthlyTemps.AirTemps[i] = v*2 - 5
		s.Climate.MonthlyTemps.DewPointTemps[i] = v*2 - 9
		s.Climate.MonthlyTemps.SkyTemps[i] = v*2 - 20
		s.Climate.MonthlyRadiation.South[i] = 40 + v*5
		s.Climate.MonthlyRadiation.Global[i] = 30 + v*8
	}
	return s
}

func TestDrawTemperatureChart(t *testing.T) {
	out := DrawTemperatureChart(testSite(), 10)
	if !strings.Contains(out, "Chicago, monthly temperatures") || !strings.Contains(out, "dew point") {
		t.Fatalf("chart missing caption or legend:\n%s", out)
	}
	if !strings.Contains(DrawRadiationChart(testSite(), 8), "global") {
		t.Fatalf("radiation chart missing legend")
	}
}

func TestDrawTRFChart(t *testing.T) {
	f, _ := trf.New(trf.Inputs{Name: "Garage", ZoneTemp: 4.444, OutdoorTemps: testSite().Climate.MonthlyTemps.AirTemps.Slice()}, nil)
	if out := DrawTRFChart(f, 6); !strings.Contains(out, "Garage: trf =") {
		t.Fatalf("caption missing:\n%s", out)
	}
}

func TestDrawSummaryBox_RuneWidth(t *testing.T) {
	out := DrawSummaryBox("Floor area", []string{"Net 12.5 m²", "Weighted 10.0 m²"})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	want := utf8.RuneCountInString(lines[0])
	for _, l := range lines {
		if n := utf8.RuneCountInString(l); n != want {
			t.Fatalf("line %q is %d runes wide, want %d", l, n, want)
		}
	}
}

func TestDrawMonthlyTable(t *testing.T) {
	s := testSite()
	out := DrawMonthlyTable("Temperatures", map[string]climate.Months{"Air": s.Climate.MonthlyTemps.AirTemps}, []string{"Air"}, "%.1f")
	if !strings.Contains(out, "Jan") || !strings.Contains(out, "-5.0") || !strings.Contains(out, "17.0") {
		t.Fatalf("table:\n%s", out)
	}
}

func TestExportCharts(t *testing.T) {
	dir := t.TempDir()
	site := testSite()
	f, _ := trf.New(trf.Inputs{Name: "Garage", ZoneTemp: 4.444, OutdoorTemps: site.Climate.MonthlyTemps.AirTemps.Slice()}, nil)

	tests := []struct {
		name   string
		export func(string) error
		file   string
		want   string
	}{
		{"temperatures png", func(p string) error { return ExportTemperatureChart(site, p) }, "charts/temp.png", "charts/temp.png"},
		{"radiation svg", func(p string) error { return ExportRadiationChart(site, p) }, "rad.svg", "rad.svg"},
		{"trf no extension", func(p string) error { return ExportTRFChart(f, p) }, "trf", "trf.png"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.export(filepath.Join(dir, tt.file)); err != nil {
				t.Fatalf("export: %v", err)
			}
			info, err := os.Stat(filepath.Join(dir, tt.want))
			if err != nil || info.Size() == 0 {
				t.Fatalf("output %s: %v", tt.want, err)
			}
		})
	}
}
