package diagram

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/guptarohit/asciigraph"

	"github.com/alexiusacademia/gophb/internal/climate"
	"github.com/alexiusacademia/gophb/internal/trf"
)

// MonthLabels are the x-axis labels of every monthly chart.
var MonthLabels = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// DrawTemperatureChart plots the monthly air, dew point and sky
// temperatures of a site in the terminal.
func DrawTemperatureChart(site *climate.Site, height int) string {
	t := site.Climate.MonthlyTemps
	return asciigraph.PlotMany(
		[][]float64{t.AirTemps.Slice(), t.DewPointTemps.Slice(), t.SkyTemps.Slice()},
		asciigraph.Height(height),
		asciigraph.Width(48),
		asciigraph.Precision(1),
		asciigraph.SeriesColors(asciigraph.Red, asciigraph.Blue, asciigraph.Gray),
		asciigraph.SeriesLegends("air", "dew point", "sky"),
		asciigraph.Caption(fmt.Sprintf("%s, monthly temperatures (°C), Jan to Dec", site.Climate.DisplayName)),
	)
}

// DrawRadiationChart plots the monthly radiation per orientation.
func DrawRadiationChart(site *climate.Site, height int) string {
	r := site.Climate.MonthlyRadiation
	return asciigraph.PlotMany(
		[][]float64{r.North.Slice(), r.East.Slice(), r.South.Slice(), r.West.Slice(), r.Global.Slice()},
		asciigraph.Height(height),
		asciigraph.Width(48),
		asciigraph.Precision(0),
		asciigraph.SeriesColors(asciigraph.Blue, asciigraph.Green, asciigraph.Red, asciigraph.Yellow, asciigraph.Default),
		asciigraph.SeriesLegends("N", "E", "S", "W", "global"),
		asciigraph.Caption(fmt.Sprintf("%s, monthly radiation (kWh/m²), Jan to Dec", site.Climate.DisplayName)),
	)
}

// DrawTRFChart plots the outdoor temperatures against the zone temperature
// used for a reduction factor.
func DrawTRFChart(f *trf.Factor, height int) string {
	zone := make([]float64, 12)
	for i := range zone {
		zone[i] = f.ZoneTemp
	}
	return asciigraph.PlotMany(
		[][]float64{f.OutdoorTemps.Slice(), zone},
		asciigraph.Height(height),
		asciigraph.Width(48),
		asciigraph.Precision(1),
		asciigraph.SeriesColors(asciigraph.Blue, asciigraph.Red),
		asciigraph.SeriesLegends("outdoor", "zone"),
		asciigraph.Caption(fmt.Sprintf("%s: trf = %.3f over %d months", f.Identifier, f.Value, f.ColdMonths)),
	)
}

// DrawMonthlyTable renders labelled monthly rows under a month header.
func DrawMonthlyTable(title string, rows map[string]climate.Months, order []string, format string) string {
	var sb strings.Builder
	sb.WriteString("\n  " + title + "\n")
	sb.WriteString("  " + strings.Repeat("─", utf8.RuneCountInString(title)) + "\n")
	sb.WriteString(fmt.Sprintf("  %-10s", ""))
	for _, m := range MonthLabels {
		sb.WriteString(fmt.Sprintf("%8s", m))
	}
	sb.WriteString("\n")
	for _, name := range order {
		sb.WriteString(fmt.Sprintf("  %-10s", name))
		for _, v := range rows[name] {
			sb.WriteString(fmt.Sprintf("%8s", fmt.Sprintf(format, v)))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	width := utf8.RuneCountInString(title)
	for _, line := range lines {
		width = max(width, utf8.RuneCountInString(line))
	}
	width += 4

	pad := func(s string) string {
		return s + strings.Repeat(" ", width-2-utf8.RuneCountInString(s))
	}
	border := strings.Repeat("═", width)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s║\n", pad(title)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s║\n", pad(line)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
