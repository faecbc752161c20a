package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gophb/internal/diagram"
	"github.com/alexiusacademia/gophb/internal/window"
)

var (
	blindTransmittance float64
	blindPosition      string
)

var blindCmd = &cobra.Command{
	Use:   "blind",
	Short: "Effective optical properties of a Phius window blind",
	Long: `Calculate the effective transmittance and reflectance of a
window blind from its material transmittance z.

  exterior: τ = 0.3 + 0.7·z
  interior: τ = 1 - (1 - z)·0.4

Transmittance may be given as a fraction or a percentage.

Examples:
  gophb blind --transmittance 0.2
  gophb blind --transmittance 15 --position interior`,
	RunE: runBlind,
}

func init() {
	rootCmd.AddCommand(blindCmd)

	blindCmd.Flags().Float64VarP(&blindTransmittance, "transmittance", "z", 0, "Material transmittance, fraction or % [required]")
	blindCmd.Flags().StringVarP(&blindPosition, "position", "p", "exterior", "Blind position: exterior or interior")

	blindCmd.MarkFlagRequired("transmittance")
}

func runBlind(cmd *cobra.Command, args []string) error {
	pos, err := window.ParseBlindPosition(blindPosition)
	if err != nil {
		return err
	}
	b, err := window.PhiusBlind(blindTransmittance, pos)
	if err != nil {
		return err
	}

	banner("PHIUS WINDOW BLIND")
	fmt.Print(diagram.DrawSummaryBox("BLIND - "+b.Position.String(), []string{
		fmt.Sprintf("Effective transmittance: %.3f", b.Transmittance),
		fmt.Sprintf("Effective reflectance:   %.3f", b.Reflectance),
	}))
	fmt.Println()
	return nil
}
