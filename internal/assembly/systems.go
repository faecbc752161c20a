package assembly

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/alexiusacademia/gophb/internal/model"
	"github.com/alexiusacademia/gophb/internal/ports"
	"github.com/alexiusacademia/gophb/internal/units"
)

// ApplySystems runs every window and mechanical step a model file
// describes, in a fixed order: frame and glazing, psi-install, shading,
// install depth, then ventilator, ducts, devices and hot water. The window
// lists are matched against all apertures of the model in room order, so
// entry i belongs to the i-th aperture overall. Aperture diagnostics name
// the room and aperture. Bare install depths are read in the document unit
// of g.
func ApplySystems(g ports.GeometryAdapter, rooms []*model.Room, sys *model.Systems, log *zap.Logger) ([]*model.Room, []Diagnostic, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if sys == nil {
		return rooms, nil, nil
	}

	var flat []*model.Aperture
	var owner []string
	for _, r := range rooms {
		flat = append(flat, r.Apertures...)
		for range r.Apertures {
			owner = append(owner, r.DisplayName)
		}
	}
	label := func(i int, a *model.Aperture) string {
		return owner[i] + "/" + a.DisplayName
	}
	aps, diags, err := applyWindows(flat, sys, g.Document().Unit, label, log)
	if err != nil {
		return nil, nil, err
	}

	out := make([]*model.Room, 0, len(rooms))
	next := 0
	for _, r := range rooms {
		dup, err := r.Duplicate()
		if err != nil {
			return nil, nil, fmt.Errorf("room %s: %w", r.DisplayName, err)
		}
		if n := len(r.Apertures); n > 0 {
			dup.Apertures = aps[next : next+n : next+n]
			next += n
		}
		out = append(out, dup)
	}

	if sys.Ventilator != nil {
		if out, err = AddVentilator(out, sys.Ventilator); err != nil {
			return nil, nil, err
		}
	}
	if len(sys.Ducts) > 0 {
		if out, err = AddDucts(out, sys.Ducts...); err != nil {
			return nil, nil, err
		}
	}
	if len(sys.Supportive) > 0 {
		if out, err = AddSupportiveDevices(out, sys.Supportive...); err != nil {
			return nil, nil, err
		}
	}
	if len(sys.Renewable) > 0 {
		if out, err = AddRenewableDevices(out, sys.Renewable...); err != nil {
			return nil, nil, err
		}
	}
	if sys.HotWater != nil {
		if out, err = AddHotWaterSystem(out, sys.HotWater, log); err != nil {
			return nil, nil, err
		}
	}
	return out, diags, nil
}

func applyWindows(aps []*model.Aperture, sys *model.Systems, ambient units.Unit, label labelFunc, log *zap.Logger) ([]*model.Aperture, []Diagnostic, error) {
	var diags []Diagnostic
	var err error
	if len(aps) == 0 {
		return aps, nil, nil
	}
	if sys.Frame != nil || sys.Glazing != nil {
		if aps, err = ApplyWindowAssembly(aps, sys.Frame, sys.Glazing); err != nil {
			return nil, nil, err
		}
	}
	if len(sys.PsiInstall) > 0 {
		var d []Diagnostic
		if aps, d, err = applyPsiInstall(aps, sys.PsiInstall, label, log); err != nil {
			return nil, nil, err
		}
		diags = append(diags, d...)
	}
	if len(sys.Winter)+len(sys.Summer)+len(sys.Monthly) > 0 {
		in := ShadingInputs{Winter: sys.Winter, Summer: sys.Summer, Monthly: sys.Monthly}
		if aps, err = ApplyShading(aps, in); err != nil {
			return nil, nil, err
		}
	}
	if len(sys.Depths)+len(sys.Reveals) > 0 {
		var d []Diagnostic
		if aps, d, err = applyInstallDepth(aps, sys.Depths, sys.Reveals, ambient, label); err != nil {
			return nil, nil, err
		}
		diags = append(diags, d...)
	}
	return aps, diags, nil
}
