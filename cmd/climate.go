package cmd

import (
	"github.com/spf13/cobra"
)

var climateCmd = &cobra.Command{
	Use:   "climate",
	Short: "Monthly Passive House climate data",
	Long: `Read monthly climate files (tab-separated .txt exports with
ten rows of monthly temperatures and radiation plus peak-load columns).

Subcommands:
  show   - Print the site, monthly tables and terminal charts`,
}

func init() {
	rootCmd.AddCommand(climateCmd)
}
