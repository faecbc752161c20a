package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gophb/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gophb",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gophb v%s\n", version.Version)
		fmt.Println("Passive House building-physics toolkit")
		fmt.Println(version.Info())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
