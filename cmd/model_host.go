package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gophb/internal/assembly"
	"github.com/alexiusacademia/gophb/internal/export"
	"github.com/alexiusacademia/gophb/internal/window"
)

var hostOutput string

var modelHostCmd = &cobra.Command{
	Use:   "host <model.yaml>",
	Short: "Host spaces in rooms and apply the model systems",
	Long: `Assign every space to the first room containing one of its
floor reference points, then apply the window assembly, shading, install
depths, ventilator, ducts, devices and hot-water piping to every room.

Spaces no room accepts and rooms that are not closed solids are reported.

Examples:
  gophb model host house.yaml
  gophb model host house.yaml --out build/house.json`,
	Args: cobra.ExactArgs(1),
	RunE: runModelHost,
}

func init() {
	modelCmd.AddCommand(modelHostCmd)

	modelHostCmd.Flags().StringVarP(&hostOutput, "out", "o", "", "Write the prepared model as JSON to this file")
}

func runModelHost(cmd *cobra.Command, args []string) error {
	pm, err := prepareModel(args[0])
	if err != nil {
		return err
	}
	doc := pm.geom.Document()

	banner("MODEL - " + pm.model.DisplayName)

	section("ROOMS:")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  Room\tStory\tFloor area\tNet volume\tSpaces\tApertures\tVentilation")
	for _, r := range pm.model.Rooms {
		var volume float64
		spaces := r.Caps().Ph().Spaces
		for _, s := range spaces {
			volume += s.NetVolume(doc)
		}
		vent := r.Caps().Energy().Ventilation.Absolute() * 3600
		fmt.Fprintf(w, "  %s\t%s\t%.2f m²\t%.2f m³\t%d\t%d\t%.1f m³/h\n",
			r.DisplayName, r.Story, r.FloorArea(pm.geom), volume, len(spaces), len(r.Apertures), vent)
	}
	w.Flush()
	fmt.Println()

	printApertures(pm)
	printSystems(pm)

	if len(pm.hosting.Unhosted) > 0 || len(pm.hosting.OpenRooms) > 0 || len(pm.diagnostics) > 0 {
		section("WARNINGS:")
		for _, u := range pm.hosting.Unhosted {
			fmt.Printf("  ⚠ space %s %s is not inside any room\n", u.Space.Number, u.Space.Name)
		}
		for _, r := range pm.hosting.OpenRooms {
			fmt.Printf("  ⚠ room %s is not a closed solid\n", r)
		}
		for _, d := range pm.diagnostics {
			fmt.Printf("  ⚠ %s\n", d)
		}
		fmt.Println()
	}

	if hostOutput != "" {
		if err := export.WriteModel(pm.model, hostOutput); err != nil {
			return err
		}
		fmt.Printf("  Model saved: %s\n\n", hostOutput)
	}
	return nil
}

func printApertures(pm *preparedModel) {
	doc := pm.geom.Document()
	var rows []string
	for _, r := range pm.model.Rooms {
		edges, diags := assembly.ApertureEdges(pm.geom, r.Apertures, log)
		pm.diagnostics = append(pm.diagnostics, diags...)
		for _, a := range r.Apertures {
			e, ok := edges[a.Identifier]
			if !ok {
				continue
			}
			width := doc.ToMeters(e.Top.Length())
			height := doc.ToMeters(e.Left.Length())
			uw := "-"
			if a.Ph.Frame != nil && a.Ph.Glazing != nil {
				if u, err := window.WholeWindowUValue(width, height, *a.Ph.Frame, *a.Ph.Glazing); err == nil {
					uw = fmt.Sprintf("%.3f W/m²K", u.UWindowInstall)
				}
			}
			rows = append(rows, fmt.Sprintf("  %s\t%s\t%.3f m\t%.3f m\t%.3f m\t%.2f / %.2f\t%s",
				r.DisplayName, a.DisplayName, width, height, a.Ph.InstallDepth,
				a.Ph.WinterShadingFactor, a.Ph.SummerShadingFactor, uw))
		}
	}
	if len(rows) == 0 {
		return
	}

	section("APERTURES:")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  Room\tAperture\tWidth\tHeight\tInstall depth\tShading (w/s)\tUw,installed")
	for _, row := range rows {
		fmt.Fprintln(w, row)
	}
	w.Flush()
	fmt.Println()
}

func printSystems(pm *preparedModel) {
	if len(pm.model.Rooms) == 0 {
		return
	}
	doc := pm.geom.Document()
	h := pm.model.Rooms[0].Caps().Energy().Hvac

	section("SYSTEMS:")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if v := h.Ventilator; v != nil {
		fmt.Fprintf(w, "  Ventilator:\t%s (HR %.0f %%, %.2f Wh/m³)\n", v.DisplayName, 100*v.SensibleHeatRecovery, v.ElectricEfficiency)
	} else {
		fmt.Fprintln(w, "  Ventilator:\t-")
	}
	for _, d := range h.Ducts {
		fmt.Fprintf(w, "  Duct %s:\t%s, %.2f m\n", d.DisplayName, d.DuctType, d.Length(doc))
	}
	for _, d := range h.Supportive {
		fmt.Fprintf(w, "  Device %s:\t%d × %.0f W, %.0f h/yr\n", d.DisplayName, d.Quantity, d.NormEnergyDemandW, d.AnnualPeriodHours)
	}
	for _, d := range h.Renewable {
		fmt.Fprintf(w, "  Generation %s:\t%s, %.0f kWh/yr\n", d.DisplayName, d.Kind, d.AnnualGenerationKWH)
	}
	if hw := h.HotWater; hw != nil {
		fmt.Fprintf(w, "  Hot water %s:\t%d trunks\n", hw.DisplayName, len(hw.Trunks))
		fmt.Fprintf(w, "  Distribution length:\t%.2f m\n", hw.DistributionLength(doc))
		fmt.Fprintf(w, "  Recirculation length:\t%.2f m\n", hw.RecirculationLength(doc))
	}
	w.Flush()
	fmt.Println()
}
