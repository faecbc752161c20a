package assembly

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/alexiusacademia/gophb/internal/model"
	"github.com/alexiusacademia/gophb/internal/ports"
	"github.com/alexiusacademia/gophb/internal/units"
	"github.com/alexiusacademia/gophb/internal/window"
)

type labelFunc func(i int, a *model.Aperture) string

func byName(_ int, a *model.Aperture) string { return a.DisplayName }

func eachAperture(aps []*model.Aperture, label labelFunc, fn func(i int, a *model.Aperture) error) ([]*model.Aperture, []Diagnostic, error) {
	out := make([]*model.Aperture, 0, len(aps))
	var diags []Diagnostic
	for i, a := range aps {
		dup, err := a.Duplicate()
		if err != nil {
			return nil, nil, fmt.Errorf("aperture %s: %w", a.DisplayName, err)
		}
		if err := fn(i, dup); err != nil {
			diags = append(diags, Diagnostic{Object: label(i, dup), Err: err})
		}
		out = append(out, dup)
	}
	return out, diags, nil
}

// ApplyWindowAssembly sets frame and glazing on every aperture.
func ApplyWindowAssembly(aps []*model.Aperture, frame *window.Frame, glazing *window.Glazing) ([]*model.Aperture, error) {
	out, _, err := eachAperture(aps, byName, func(_ int, a *model.Aperture) error {
		a.Ph = a.Ph.WithAssembly(frame, glazing)
		return nil
	})
	return out, err
}

// ApplyPsiInstall fills the psi-install table to one row per aperture and
// writes each row to the aperture's frame. Apertures without a frame are
// reported and left unchanged.
func ApplyPsiInstall(aps []*model.Aperture, table [][]float64, log *zap.Logger) ([]*model.Aperture, []Diagnostic, error) {
	return applyPsiInstall(aps, table, byName, log)
}

func applyPsiInstall(aps []*model.Aperture, table [][]float64, label labelFunc, log *zap.Logger) ([]*model.Aperture, []Diagnostic, error) {
	if log == nil {
		log = zap.NewNop()
	}
	rows := window.FillPsiInstallTable(table, len(aps))
	out, diags, err := eachAperture(aps, label, func(i int, a *model.Aperture) error {
		if rows == nil {
			return nil
		}
		if a.Ph.Frame == nil {
			return fmt.Errorf("aperture has no frame")
		}
		f, err := a.Ph.Frame.WithPsiInstall(rows[i])
		if err != nil {
			return err
		}
		a.Ph.Frame = &f
		return nil
	})
	for _, d := range diags {
		log.Warn("psi-install not applied", zap.String("aperture", d.Object), zap.Error(d.Err))
	}
	return out, diags, err
}

// ShadingInputs are per-aperture lists; see window.FactorFor for how
// lists shorter than the apertures are matched.
type ShadingInputs struct {
	Winter  []float64
	Summer  []float64
	Monthly []float64
}

// ApplyShading sets seasonal and monthly shading factors.
func ApplyShading(aps []*model.Aperture, in ShadingInputs) ([]*model.Aperture, error) {
	n := len(aps)
	out, _, err := eachAperture(aps, byName, func(i int, a *model.Aperture) error {
		w := window.FactorFor(in.Winter, i, n, a.Ph.WinterShadingFactor)
		s := window.FactorFor(in.Summer, i, n, a.Ph.SummerShadingFactor)
		a.Ph = a.Ph.SetShadingFactors(w, s)
		a.Ph = a.Ph.SetMonthlyShadingCorrection(window.FactorFor(in.Monthly, i, n, a.Ph.MonthlyShadingCorrectionFactor))
		return nil
	})
	return out, err
}

// ApplyInstallDepth sets install depths and reveal distances. Values are
// matched to apertures like shading factors; nil entries keep the current
// value. A bad depth does not stop the reveal of the same aperture.
func ApplyInstallDepth(aps []*model.Aperture, depths []any, reveals []any, ambient units.Unit) ([]*model.Aperture, []Diagnostic, error) {
	return applyInstallDepth(aps, depths, reveals, ambient, byName)
}

func applyInstallDepth(aps []*model.Aperture, depths []any, reveals []any, ambient units.Unit, label labelFunc) ([]*model.Aperture, []Diagnostic, error) {
	n := len(aps)
	return eachAperture(aps, label, func(i int, a *model.Aperture) error {
		var depthErr, revealErr error
		if d := pickAny(depths, i, n); d != nil {
			if p, err := a.Ph.SetInstallDepth(d, ambient); err != nil {
				depthErr = fmt.Errorf("install depth: %w", err)
			} else {
				a.Ph = p
			}
		}
		if r := pickAny(reveals, i, n); r != nil {
			if p, err := a.Ph.SetRevealDistance(r, ambient); err != nil {
				revealErr = fmt.Errorf("reveal distance: %w", err)
			} else {
				a.Ph = p
			}
		}
		return errors.Join(depthErr, revealErr)
	})
}

func pickAny(values []any, i, n int) any {
	if len(values) == 0 {
		return nil
	}
	if len(values) == n {
		return values[i]
	}
	return values[0]
}

// ApertureEdges decomposes each aperture into its four edges. Apertures
// that do not decompose are reported and get no entry in the map.
func ApertureEdges(g ports.GeometryAdapter, aps []*model.Aperture, log *zap.Logger) (map[string]window.ApertureEdges, []Diagnostic) {
	if log == nil {
		log = zap.NewNop()
	}
	out := make(map[string]window.ApertureEdges, len(aps))
	var diags []Diagnostic
	for _, a := range aps {
		e, err := window.DecomposeEdges(a.Geometry, g.Tolerance())
		if err != nil {
			diags = append(diags, Diagnostic{Object: a.Identifier, Err: err})
			log.Warn("aperture edges", zap.String("aperture", a.Identifier), zap.Error(err))
			continue
		}
		out[a.Identifier] = e
	}
	return out, diags
}
