package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gophb/internal/diagram"
	"github.com/alexiusacademia/gophb/internal/envelope"
	"github.com/alexiusacademia/gophb/internal/units"
)

var (
	airName      string
	airThickness string
	airHeatFlow  string
	airE1        float64
	airE2        float64
	airLength    float64
	airWidth     float64
	airDeltaT    float64
	airColor     string
)

var airLayerCmd = &cobra.Command{
	Use:   "airlayer",
	Short: "Equivalent conductivity of a closed air layer",
	Long: `Calculate the equivalent thermal conductivity of a closed,
unventilated air layer (ISO 6946 simplified method).

  hr = 5.1 / (1/ε1 + 1/ε2 - 1)
  ha = max(table value for the heat-flow direction, 0.025 / d)
  λ  = d · (ha + hr)

Layers thicker than 0.3 m, shorter or narrower than ten times their
thickness or with more than 5 K across them are reported as outside
the method limits; the result is still calculated.

Examples:
  # 25 mm horizontal air layer between two ordinary surfaces
  gophb airlayer --thickness 25 --heat-flow horizontal

  # 2 in. layer against a foil, heat flowing down
  gophb airlayer --thickness "2 IN" --heat-flow down --e2 0.05`,
	RunE: runAirLayer,
}

func init() {
	rootCmd.AddCommand(airLayerCmd)

	airLayerCmd.Flags().StringVarP(&airName, "name", "n", "", "Material name")
	airLayerCmd.Flags().StringVarP(&airThickness, "thickness", "d", "", "Layer thickness, mm or with a unit [required]")
	airLayerCmd.Flags().StringVar(&airHeatFlow, "heat-flow", "horizontal", "Heat-flow direction: up, horizontal or down")
	airLayerCmd.Flags().Float64Var(&airE1, "e1", 0.9, "Emissivity of the first surface")
	airLayerCmd.Flags().Float64Var(&airE2, "e2", 0.9, "Emissivity of the second surface")
	airLayerCmd.Flags().Float64Var(&airLength, "length", 0, "Layer length (m), for the limit check")
	airLayerCmd.Flags().Float64Var(&airWidth, "width", 0, "Layer width (m), for the limit check")
	airLayerCmd.Flags().Float64Var(&airDeltaT, "delta-t", 0, "Temperature drop across the layer (K), for the limit check")
	airLayerCmd.Flags().StringVar(&airColor, "color", "", "Display colour, #RRGGBB or r,g,b")

	airLayerCmd.MarkFlagRequired("thickness")
}

func runAirLayer(cmd *cobra.Command, args []string) error {
	d, err := units.UnitM("thickness", airThickness, units.MM)
	if err != nil {
		return err
	}
	dir, err := envelope.ParseHeatFlow(airHeatFlow)
	if err != nil {
		return err
	}

	res, err := envelope.AirLayer(envelope.AirLayerInput{
		Name:            airName,
		Thickness:       d,
		HeatFlow:        dir,
		Emissivity1:     airE1,
		Emissivity2:     airE2,
		Length:          airLength,
		Width:           airWidth,
		TemperatureDrop: airDeltaT,
	}, log)
	if err != nil {
		return err
	}
	mat := res.Material
	if airColor != "" {
		if mat, err = mat.WithColor(airColor); err != nil {
			return err
		}
	}

	banner("CLOSED AIR LAYER - ISO 6946")

	section("INPUT DATA:")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Thickness (d):\t%.1f mm\n", d*1000)
	fmt.Fprintf(w, "  Heat flow:\t%s (%.0f°)\n", dir, dir.Angle())
	fmt.Fprintf(w, "  Emissivities (ε1, ε2):\t%.2f, %.2f\n", airE1, airE2)
	w.Flush()
	fmt.Println()

	section("COEFFICIENTS:")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Radiative (hr):\t%.3f W/m²K\n", res.Hr)
	fmt.Fprintf(w, "  Convective (ha):\t%.3f W/m²K\n", res.Ha)
	w.Flush()
	fmt.Println()

	lines := []string{
		fmt.Sprintf("Material: %s", mat.DisplayName),
		fmt.Sprintf("λ = %.4f W/mK", res.Conductivity),
		fmt.Sprintf("R = %.3f m²K/W", mat.RValue()),
	}
	if mat.Color != nil {
		lines = append(lines, "Colour: "+mat.Color.Hex())
	}
	fmt.Print(diagram.DrawSummaryBox("EQUIVALENT MATERIAL", lines))
	fmt.Println()

	if len(res.Advisories) > 0 {
		section("OUTSIDE METHOD LIMITS:")
		for _, a := range res.Advisories {
			fmt.Printf("  ⚠ %s\n", a)
		}
		fmt.Println()
	}
	return nil
}
