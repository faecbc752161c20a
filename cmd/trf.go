package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gophb/internal/climate"
	"github.com/alexiusacademia/gophb/internal/diagram"
	"github.com/alexiusacademia/gophb/internal/trf"
)

var (
	trfName        string
	trfZoneTemp    string
	trfClimateFile string
	trfTemps       []float64
	trfChartFile   string
)

var trfCmd = &cobra.Command{
	Use:   "trf",
	Short: "Temperature reduction factor of an unconditioned zone",
	Long: `Calculate the temperature reduction factor (fT) of a thermal
boundary against an attached unconditioned zone such as a garage.

Only months with an outdoor temperature at or below the zone
temperature count toward the mean outdoor temperature:

  fT = (Tzone - 20) / ((20 - Tout,mean) / (0 - 1))

Examples:
  # Garage held at 10 °C, outdoor temperatures from a climate file
  gophb trf --name Garage --zone-temp 10 --climate denver.txt

  # Zone temperature in Fahrenheit with monthly values given directly
  gophb trf --name Garage --zone-temp "50 F" \
    --temps -1,1,5,9,14,19,22,21,16,10,4,0`,
	RunE: runTRF,
}

func init() {
	rootCmd.AddCommand(trfCmd)

	trfCmd.Flags().StringVarP(&trfName, "name", "n", "", "Reduction factor name [required]")
	trfCmd.Flags().StringVarP(&trfZoneTemp, "zone-temp", "t", "", "Zone temperature, °C or with a unit (\"50 F\") [required]")
	trfCmd.Flags().StringVar(&trfClimateFile, "climate", "", "Climate file to take the monthly air temperatures from")
	trfCmd.Flags().Float64SliceVar(&trfTemps, "temps", nil, "Twelve monthly outdoor temperatures (°C)")
	trfCmd.Flags().StringVar(&trfChartFile, "chart", "", "Save a chart to this image file")

	trfCmd.MarkFlagsMutuallyExclusive("climate", "temps")
}

func runTRF(cmd *cobra.Command, args []string) error {
	var zone any
	if trfZoneTemp != "" {
		zone = trfZoneTemp
	}

	var (
		f   *trf.Factor
		err error
	)
	if trfClimateFile != "" {
		site, lerr := climate.LoadFile(trfClimateFile, cfg.ClimateOptions(), log)
		if lerr != nil {
			return lerr
		}
		f, err = trf.FromSite(trfName, zone, site, log)
	} else {
		f, err = trf.New(trf.Inputs{Name: trfName, ZoneTemp: zone, OutdoorTemps: trfTemps}, log)
	}
	if err != nil {
		return err
	}
	if f == nil {
		fmt.Println("  Nothing calculated: name, zone temperature and monthly temperatures are required.")
		return nil
	}

	banner("TEMPERATURE REDUCTION FACTOR")

	section("INPUT DATA:")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Name:\t%s\n", f.Identifier)
	fmt.Fprintf(w, "  Zone temperature:\t%.2f °C\n", f.ZoneTemp)
	fmt.Fprintf(w, "  Interior temperature:\t%.1f °C\n", trf.InteriorTemp)
	w.Flush()
	fmt.Print(diagram.DrawMonthlyTable("OUTDOOR TEMPERATURES (°C)", map[string]climate.Months{
		"Outdoor": f.OutdoorTemps,
	}, []string{"Outdoor"}, "%.1f"))
	fmt.Println()

	fmt.Println(diagram.DrawTRFChart(f, 10))
	fmt.Println()

	fmt.Print(diagram.DrawSummaryBox("RESULT", []string{
		fmt.Sprintf("Months at or below zone temperature: %d", f.ColdMonths),
		fmt.Sprintf("Mean outdoor temperature: %.2f °C", f.MeanOutdoor),
		fmt.Sprintf("fT = %.3f", f.Value),
	}))
	fmt.Println()

	if trfChartFile != "" {
		if err := diagram.ExportTRFChart(f, trfChartFile); err != nil {
			return err
		}
		fmt.Printf("  Chart saved: %s\n\n", trfChartFile)
	}
	return nil
}
