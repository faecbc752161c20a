package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alexiusacademia/gophb/internal/config"
	"github.com/alexiusacademia/gophb/internal/logger"
	"github.com/alexiusacademia/gophb/internal/version"
)

var (
	configPath string
	logLevel   string
	logFormat  string

	cfg = config.Default()
	log = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "gophb",
	Short: "Passive House building-physics toolkit",
	Long: `gophb - Go Passive House Building Physics

A CLI tool for preparing Passive House energy models:
  - Monthly climate files and temperature reduction factors
  - Closed air layers and Phius window blinds
  - Space hosting, window assemblies and mechanical systems
  - RESNET / Phius residential loads per story
  - Export of the model to the PHPP / WUFI XML writer

Settings are read from an optional YAML or JSON file and from
GOPHB_ environment variables (for example GOPHB_LOG_LEVEL=debug).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(configPath, nil)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("log-level") {
			c.Log.Level = logLevel
		}
		if cmd.Flags().Changed("log-format") {
			c.Log.Format = logFormat
		}
		l, err := logger.New(c.Log.Level, c.Log.Format)
		if err != nil {
			return err
		}
		cfg, log = c, l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = log.Sync()
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gophb v%-49s║\n", version.Version)
		fmt.Println("  ║   Go Passive House Building Physics                       ║")
		fmt.Printf("  ║   %s ©  %-36s║\n", version.Author, version.Year)
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Climate file reader with terminal and image charts")
		fmt.Println("    • Temperature reduction factors for unheated zones")
		fmt.Println("    • Air layer conductivity and Phius blind properties")
		fmt.Println("    • Space hosting, windows, ventilation, ducts and hot water")
		fmt.Println("    • Residential MEL, lighting and appliance loads")
		fmt.Println()
		fmt.Println("  Use 'gophb --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Settings file (.yaml, .yml or .json)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "console", "Log format: console or json")
}

// section prints a report heading in the boxed layout.
func section(title string) {
	fmt.Println(title)
	fmt.Println("───────────────────────────────────────────────────────────────")
}

func banner(title string) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     %s\n", title)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
}
