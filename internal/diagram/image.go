// Package diagram draws climate and reduction-factor charts, in the terminal
// with asciigraph and as image files with gonum/plot.
package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/alexiusacademia/gophb/internal/climate"
	"github.com/alexiusacademia/gophb/internal/trf"
)

type series struct {
	name   string
	values climate.Months
	color  color.Color
	dashed bool
}

func monthXYs(m climate.Months) plotter.XYs {
	pts := make(plotter.XYs, len(m))
	for i, v := range m {
		pts[i] = plotter.XY{X: float64(i), Y: v}
	}
	return pts
}

func monthlyPlot(title, yLabel string, lines []series) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = yLabel
	p.NominalX(MonthLabels[:]...)
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	for _, s := range lines {
		l, pts, err := plotter.NewLinePoints(monthXYs(s.values))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.name, err)
		}
		l.LineStyle.Width = vg.Points(2)
		l.LineStyle.Color = s.color
		if s.dashed {
			l.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
		}
		pts.GlyphStyle.Color = s.color
		pts.GlyphStyle.Shape = draw.CircleGlyph{}
		pts.GlyphStyle.Radius = vg.Points(2.5)
		p.Add(l, pts)
		p.Legend.Add(s.name, l, pts)
	}
	return p, nil
}

// save writes p in the format given by the file extension; names without a
// known extension get ".png".
func save(p *plot.Plot, filename string) error {
	width := 8 * vg.Inch
	height := 5 * vg.Inch

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create chart folder: %w", err)
		}
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".svg", ".pdf", ".jpg", ".jpeg":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}

var (
	red    = color.RGBA{R: 214, G: 39, B: 40, A: 255}
	blue   = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	green  = color.RGBA{R: 44, G: 160, B: 44, A: 255}
	orange = color.RGBA{R: 255, G: 127, B: 14, A: 255}
	gray   = color.Gray{Y: 110}
)

// ExportTemperatureChart saves the monthly air, dew point and sky
// temperatures of a site.
func ExportTemperatureChart(site *climate.Site, filename string) error {
	t := site.Climate.MonthlyTemps
	p, err := monthlyPlot(site.Climate.DisplayName+" - Monthly Temperatures", "Temperature (°C)", []series{
		{name: "Air", values: t.AirTemps, color: red},
		{name: "Dew point", values: t.DewPointTemps, color: blue},
		{name: "Sky", values: t.SkyTemps, color: gray, dashed: true},
	})
	if err != nil {
		return err
	}
	return save(p, filename)
}

// ExportRadiationChart saves the monthly radiation per orientation.
func ExportRadiationChart(site *climate.Site, filename string) error {
	r := site.Climate.MonthlyRadiation
	p, err := monthlyPlot(site.Climate.DisplayName+" - Monthly Radiation", "Radiation (kWh/m²)", []series{
		{name: "North", values: r.North, color: blue},
		{name: "East", values: r.East, color: green},
		{name: "South", values: r.South, color: red},
		{name: "West", values: r.West, color: orange},
		{name: "Global", values: r.Global, color: gray, dashed: true},
	})
	if err != nil {
		return err
	}
	return save(p, filename)
}

// ExportTRFChart saves the outdoor temperatures with the zone and interior
// temperatures of a reduction factor.
func ExportTRFChart(f *trf.Factor, filename string) error {
	var zone, interior climate.Months
	for i := range zone {
		zone[i] = f.ZoneTemp
		interior[i] = trf.InteriorTemp
	}
	p, err := monthlyPlot(fmt.Sprintf("%s - TRF %.3f", f.Identifier, f.Value), "Temperature (°C)", []series{
		{name: "Outdoor", values: f.OutdoorTemps, color: blue},
		{name: "Zone", values: zone, color: red, dashed: true},
		{name: "Interior", values: interior, color: gray, dashed: true},
	})
	if err != nil {
		return err
	}
	return save(p, filename)
}
