package cmd

import (
	"fmt"
	"maps"
	"os"
	"slices"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gophb/internal/diagram"
	"github.com/alexiusacademia/gophb/internal/phius"
	"github.com/alexiusacademia/gophb/internal/residential"
)

var (
	resBedrooms   []int
	resPeople     []float64
	resOptions    = residential.DefaultOptions()
	resAppliances string
)

var modelResidentialCmd = &cobra.Command{
	Use:   "residential <model.yaml>",
	Short: "RESNET / Phius residential loads per story",
	Long: `Summarise the residential loads of a model story by story.

Rooms sharing a dwelling identifier form one dwelling; a room without
one is its own dwelling. Per dwelling (floor area in ft²):

  MEL               = 413 + 69·Nbr + 0.91·CFA
  Interior lighting = 0.8·((455 + 0.8·CFA)·(1 - 0.75·f) + 0.25·(455 + 0.8·CFA)·f·0.34)
  Exterior lighting = (100 + 0.05·CFA)·(1 - f) + 0.25·(100 + 0.05·CFA)·f
  Garage lighting   = 100·(1 - f) + 25·f

Bedrooms and occupancy may be set per room (the last value repeats),
after which people-per-area is derived from the occupancy.

Examples:
  gophb model residential house.yaml
  gophb model residential house.yaml --bedrooms 2,3 --people 2.5,3.2 --garage
  gophb model residential house.yaml --appliances phi`,
	Args: cobra.ExactArgs(1),
	RunE: runModelResidential,
}

func init() {
	modelCmd.AddCommand(modelResidentialCmd)

	modelResidentialCmd.Flags().IntSliceVar(&resBedrooms, "bedrooms", nil, "Bedrooms per room")
	modelResidentialCmd.Flags().Float64SliceVar(&resPeople, "people", nil, "Average occupancy per room")

	modelResidentialCmd.Flags().Float64Var(&resOptions.FractionInterior, "fraction-interior", resOptions.FractionInterior, "High-efficacy fraction, interior lighting")
	modelResidentialCmd.Flags().Float64Var(&resOptions.FractionExterior, "fraction-exterior", resOptions.FractionExterior, "High-efficacy fraction, exterior lighting")
	modelResidentialCmd.Flags().Float64Var(&resOptions.FractionGarage, "fraction-garage", resOptions.FractionGarage, "High-efficacy fraction, garage lighting")
	modelResidentialCmd.Flags().BoolVar(&resOptions.Garage, "garage", false, "Count garage lighting")

	modelResidentialCmd.Flags().StringVar(&resAppliances, "appliances", "", "Also list default appliances of a program: phius or phi")
}

func runModelResidential(cmd *cobra.Command, args []string) error {
	pm, err := prepareModel(args[0])
	if err != nil {
		return err
	}

	rooms := pm.model.Rooms
	if len(resBedrooms) > 0 || len(resPeople) > 0 {
		if rooms, err = residential.SetOccupancy(rooms, resBedrooms, resPeople, log); err != nil {
			return err
		}
	}
	if rooms, err = residential.SetPeoplePerArea(pm.geom, rooms, log); err != nil {
		return err
	}
	stories, err := residential.Calculate(pm.geom, rooms, resOptions, log)
	if err != nil {
		return err
	}

	banner("RESIDENTIAL LOADS - RESNET 301 / PHIUS")

	section("STORIES:")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  Story\tFloor area\tDwellings\tBedrooms\tOccupancy\tMEL\tLighting int\tLighting ext\tLighting garage")
	var total residential.Story
	for _, s := range stories {
		fmt.Fprintf(w, "  %s\t%.0f ft²\t%d\t%d\t%d\t%.0f kWh\t%.0f kWh\t%.0f kWh\t%.0f kWh\n",
			s.Number, s.FloorAreaFt2, s.Dwellings, s.Bedrooms, s.DesignOccupancy,
			s.MelKWH, s.LightingIntKWH, s.LightingExtKWH, s.LightingGarKWH)
		total.MelKWH += s.MelKWH
		total.LightingIntKWH += s.LightingIntKWH
		total.LightingExtKWH += s.LightingExtKWH
		total.LightingGarKWH += s.LightingGarKWH
	}
	w.Flush()
	fmt.Println()

	fmt.Print(diagram.DrawSummaryBox("ANNUAL TOTALS", []string{
		fmt.Sprintf("Miscellaneous electric loads: %.0f kWh/yr", total.MelKWH),
		fmt.Sprintf("Interior lighting:            %.0f kWh/yr", total.LightingIntKWH),
		fmt.Sprintf("Exterior lighting:            %.0f kWh/yr", total.LightingExtKWH),
		fmt.Sprintf("Garage lighting:              %.0f kWh/yr", total.LightingGarKWH),
	}))
	fmt.Println()

	if resAppliances != "" {
		program, err := phius.ParseProgram(resAppliances)
		if err != nil {
			return err
		}
		printAppliances(program)
	}
	return nil
}

func printAppliances(p phius.Program) {
	defaults := phius.Defaults(p)
	section(fmt.Sprintf("DEFAULT APPLIANCES (%s):", p))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, k := range slices.Sorted(maps.Keys(defaults)) {
		c := defaults[k]
		if c.EnergyDemand == 0 {
			continue
		}
		fmt.Fprintf(w, "  %s:\t%g %s\n", c.DisplayName, c.EnergyDemand, c.Norm)
	}
	w.Flush()
	fmt.Println()
}
