package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gophb/internal/export"
)

var (
	exportFilename string
	exportFolder   string
	exportDryRun   bool
)

var modelExportCmd = &cobra.Command{
	Use:   "export <model.yaml>",
	Short: "Write the prepared model and run the XML writer",
	Long: `Prepare a model (hosting and systems), save it as the JSON
input file and invoke the external PHPP / WUFI XML writer on it.

The writer executable, its prefix arguments and the writer settings
(group components, merge faces, merge spaces by ERV, merge exhaust
devices, log level) come from the export section of the settings.

Examples:
  gophb model export house.yaml --folder build
  GOPHB_EXPORT_MERGE_FACES=0.01 gophb model export house.yaml --folder build
  gophb model export house.yaml --folder build --dry-run`,
	Args: cobra.ExactArgs(1),
	RunE: runModelExport,
}

func init() {
	modelCmd.AddCommand(modelExportCmd)

	modelExportCmd.Flags().StringVarP(&exportFilename, "filename", "f", "", "XML file name (defaults to the model file name)")
	modelExportCmd.Flags().StringVar(&exportFolder, "folder", ".", "Folder for the model JSON and the XML")
	modelExportCmd.Flags().BoolVar(&exportDryRun, "dry-run", false, "Write the model JSON and print the writer command only")
}

func runModelExport(cmd *cobra.Command, args []string) error {
	settings, err := cfg.ExportSettings()
	if err != nil {
		return err
	}
	pm, err := prepareModel(args[0])
	if err != nil {
		return err
	}

	name := exportFilename
	if name == "" {
		base := filepath.Base(args[0])
		name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	modelFile := filepath.Join(exportFolder, strings.TrimSuffix(name, filepath.Ext(name))+".json")
	if err := export.WriteModel(pm.model, modelFile); err != nil {
		return err
	}

	job := export.Job{
		Filename:   name,
		SaveFolder: exportFolder,
		ModelFile:  modelFile,
		Settings:   settings,
	}
	if err := job.Validate(); err != nil {
		return err
	}
	runner := cfg.Runner(log)

	banner("EXPORT - " + pm.model.DisplayName)
	fmt.Printf("  Model file: %s\n", modelFile)
	fmt.Printf("  Writer:     %s %s\n", runner.Executable, strings.Join(append(append([]string{}, runner.Prefix...), job.Args()...), " "))
	fmt.Println()

	if exportDryRun {
		return nil
	}
	res, err := runner.Run(cmd.Context(), job)
	if err != nil {
		return err
	}
	if out := strings.TrimSpace(res.Stdout); out != "" {
		section("WRITER OUTPUT:")
		fmt.Println(out)
		fmt.Println()
	}
	fmt.Printf("  XML saved: %s\n\n", res.OutputPath)
	return nil
}
