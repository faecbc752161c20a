package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alexiusacademia/gophb/internal/assembly"
	"github.com/alexiusacademia/gophb/internal/geometry"
	"github.com/alexiusacademia/gophb/internal/hosting"
	"github.com/alexiusacademia/gophb/internal/model"
)

var modelCmd = &cobra.Command{
	Use:   "model",
	Short: "Building model preparation",
	Long: `Read a YAML building model (rooms as boxes or face lists, the
spaces to host and the window and mechanical systems), host the spaces
in their rooms and apply the systems to every room.

Subcommands:
  host         - Host spaces, apply systems and report the result
  residential  - RESNET / Phius residential loads per story
  export       - Write the model and run the XML writer`,
}

func init() {
	rootCmd.AddCommand(modelCmd)
}

// preparedModel is a model file after hosting and system assembly.
type preparedModel struct {
	geom        geometry.Headless
	model       *model.Model
	hosting     *hosting.Result
	diagnostics []assembly.Diagnostic
}

func prepareModel(path string) (*preparedModel, error) {
	f, err := model.ReadFile(path)
	if err != nil {
		return nil, err
	}
	def, err := cfg.Document()
	if err != nil {
		return nil, err
	}
	doc, err := f.Document(def)
	if err != nil {
		return nil, err
	}
	tol := cfg.Tolerance
	if f.Tolerance > 0 {
		tol = f.Tolerance
	}
	g := geometry.NewHeadless(tol, doc)

	m, spaces, err := f.Build(g)
	if err != nil {
		return nil, err
	}
	res, err := hosting.HostSpaces(g, m.Rooms, spaces, cfg.HostingOptions(), log)
	if err != nil {
		return nil, err
	}
	sys, err := f.Systems.Build(g)
	if err != nil {
		return nil, fmt.Errorf("systems: %w", err)
	}
	rooms, diags, err := assembly.ApplySystems(g, res.Rooms, sys, log)
	if err != nil {
		return nil, err
	}
	for _, d := range diags {
		log.Warn("aperture not updated", zap.String("aperture", d.Object), zap.Error(d.Err))
	}
	m.Rooms = rooms

	log.Debug("model prepared",
		zap.String("model", m.Identifier),
		zap.Int("rooms", len(rooms)),
		zap.Int("unhosted", len(res.Unhosted)),
	)
	return &preparedModel{geom: g, model: m, hosting: res, diagnostics: diags}, nil
}
