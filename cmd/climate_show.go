package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gophb/internal/climate"
	"github.com/alexiusacademia/gophb/internal/diagram"
)

var (
	climateChartHeight int
	climateChartFile   string
)

var climateShowCmd = &cobra.Command{
	Use:   "show <file.txt>",
	Short: "Print a climate file",
	Long: `Print the location, monthly temperatures, monthly radiation and
peak-load conditions of a climate file.

Examples:
  # Print a site with terminal charts
  gophb climate show denver.txt

  # Also save the charts as images (temperature and radiation)
  gophb climate show denver.txt --chart out/denver.png`,
	Args: cobra.ExactArgs(1),
	RunE: runClimateShow,
}

func init() {
	climateCmd.AddCommand(climateShowCmd)

	climateShowCmd.Flags().IntVar(&climateChartHeight, "height", 10, "Terminal chart height (rows)")
	climateShowCmd.Flags().StringVar(&climateChartFile, "chart", "", "Save charts to this image file (.png, .svg or .pdf)")
}

func runClimateShow(cmd *cobra.Command, args []string) error {
	site, err := climate.LoadFile(args[0], cfg.ClimateOptions(), log)
	if err != nil {
		return err
	}
	if site == nil {
		return fmt.Errorf("%s: not a climate file", args[0])
	}
	c := site.Climate

	banner("CLIMATE - " + c.DisplayName)

	section("LOCATION:")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Latitude:\t%.3f°\n", site.Location.Latitude)
	fmt.Fprintf(w, "  Longitude:\t%.3f°\n", site.Location.Longitude)
	fmt.Fprintf(w, "  Site elevation:\t%.1f m\n", site.Location.SiteElevation)
	fmt.Fprintf(w, "  Station elevation:\t%.1f m\n", c.StationElevation)
	fmt.Fprintf(w, "  Climate zone:\t%d\n", site.Location.ClimateZone)
	fmt.Fprintf(w, "  Hours from UTC:\t%+d\n", site.Location.HoursFromUTC)
	fmt.Fprintf(w, "  Daily temperature swing:\t%.1f K\n", c.DailyTemperatureSwing)
	fmt.Fprintf(w, "  Average wind speed:\t%.1f m/s\n", c.AverageWindSpeed)
	w.Flush()

	t := c.MonthlyTemps
	fmt.Print(diagram.DrawMonthlyTable("MONTHLY TEMPERATURES (°C)", map[string]climate.Months{
		"Air":       t.AirTemps,
		"Dew point": t.DewPointTemps,
		"Sky":       t.SkyTemps,
	}, []string{"Air", "Dew point", "Sky"}, "%.1f"))

	r := c.MonthlyRadiation
	fmt.Print(diagram.DrawMonthlyTable("MONTHLY RADIATION (kWh/m²)", map[string]climate.Months{
		"North":  r.North,
		"East":   r.East,
		"South":  r.South,
		"West":   r.West,
		"Global": r.Global,
	}, []string{"North", "East", "South", "West", "Global"}, "%.0f"))
	fmt.Println()

	section("PEAK LOADS:")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  \tTemp\tDew point\tSky\tGround\tN\tE\tS\tW\tGlobal")
	names := [4]string{"Heating 1", "Heating 2", "Cooling 1", "Cooling 2"}
	for i, p := range c.PeakLoads() {
		fmt.Fprintf(w, "  %s:", names[i])
		for _, v := range []*float64{p.Temperature, p.DewPoint, p.SkyTemp, p.GroundTemp, p.RadNorth, p.RadEast, p.RadSouth, p.RadWest, p.RadGlobal} {
			fmt.Fprintf(w, "\t%s", optional(v))
		}
		fmt.Fprintln(w)
	}
	w.Flush()
	fmt.Println()

	fmt.Println(diagram.DrawTemperatureChart(site, climateChartHeight))
	fmt.Println()
	fmt.Println(diagram.DrawRadiationChart(site, climateChartHeight))
	fmt.Println()

	if climateChartFile != "" {
		ext := filepath.Ext(climateChartFile)
		base := strings.TrimSuffix(climateChartFile, ext)
		tempFile, radFile := base+"_temperature"+ext, base+"_radiation"+ext
		if err := diagram.ExportTemperatureChart(site, tempFile); err != nil {
			return err
		}
		if err := diagram.ExportRadiationChart(site, radFile); err != nil {
			return err
		}
		fmt.Printf("  Charts saved: %s, %s\n\n", tempFile, radFile)
	}
	return nil
}

func optional(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f", *v)
}
