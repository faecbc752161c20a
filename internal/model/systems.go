package model

import (
	"fmt"

	"github.com/alexiusacademia/gophb/internal/dhw"
	"github.com/alexiusacademia/gophb/internal/geometry"
	"github.com/alexiusacademia/gophb/internal/hvac"
	"github.com/alexiusacademia/gophb/internal/ports"
	"github.com/alexiusacademia/gophb/internal/units"
	"github.com/alexiusacademia/gophb/internal/window"
)

// SystemsSpec describes the window assembly and mechanical systems applied
// to every room of a model file.
type SystemsSpec struct {
	Windows    *WindowsSpec     `yaml:"windows"`
	Ventilator *VentilatorSpec  `yaml:"ventilator"`
	Ducts      []DuctSpec       `yaml:"ducts"`
	Supportive []SupportiveSpec `yaml:"supportive_devices"`
	Renewable  []RenewableSpec  `yaml:"renewable_devices"`
	HotWater   *HotWaterSpec    `yaml:"hot_water"`
}

type FrameSpec struct {
	Name   string               `yaml:"name"`
	Top    *window.FrameElement `yaml:"top"`
	Right  *window.FrameElement `yaml:"right"`
	Bottom *window.FrameElement `yaml:"bottom"`
	Left   *window.FrameElement `yaml:"left"`
}

type GlazingSpec struct {
	Name    string  `yaml:"name"`
	UFactor float64 `yaml:"u_factor"`
	GValue  float64 `yaml:"g_value"`
}

type WindowsSpec struct {
	Frame          *FrameSpec   `yaml:"frame"`
	Glazing        *GlazingSpec `yaml:"glazing"`
	PsiInstall     [][]float64  `yaml:"psi_install"`
	WinterShading  []float64    `yaml:"winter_shading"`
	SummerShading  []float64    `yaml:"summer_shading"`
	MonthlyShading []float64    `yaml:"monthly_shading"`
	InstallDepth   []any        `yaml:"install_depth"`
	RevealDistance []any        `yaml:"reveal_distance"`
}

type VentilatorSpec struct {
	Name               string `yaml:"name"`
	SensibleHR         any    `yaml:"sensible_heat_recovery"`
	LatentHR           any    `yaml:"latent_heat_recovery"`
	ElectricEfficiency any    `yaml:"electric_efficiency"`
	FrostProtection    *bool  `yaml:"frost_protection"`
	FrostTemp          any    `yaml:"frost_temp"`
	InConditionedSpace *bool  `yaml:"in_conditioned_space"`
}

type DuctSpec struct {
	Name         string         `yaml:"name"`
	Type         string         `yaml:"type"`
	Polylines    [][][3]float64 `yaml:"polylines"`
	Thickness    any            `yaml:"insulation_thickness"`
	Conductivity any            `yaml:"insulation_conductivity"`
	Reflective   *bool          `yaml:"insulation_reflective"`
	Diameter     any            `yaml:"diameter"`
	Height       any            `yaml:"height"`
	Width        any            `yaml:"width"`
}

type SupportiveSpec struct {
	Name          string  `yaml:"name"`
	Type          string  `yaml:"type"`
	Quantity      int     `yaml:"quantity"`
	Watts         float64 `yaml:"watts"`
	Hours         float64 `yaml:"annual_hours"`
	InConditioned *bool   `yaml:"in_conditioned_space"`
}

type RenewableSpec struct {
	Name        string  `yaml:"name"`
	Kind        string  `yaml:"kind"`
	Generation  any     `yaml:"annual_generation"`
	Utilization float64 `yaml:"onsite_utilization"`
}

type PipeSpec struct {
	Name     string       `yaml:"name"`
	Vertices [][3]float64 `yaml:"vertices"`
	Diameter any          `yaml:"diameter"`
	Material string       `yaml:"material"`
}

type BranchSpec struct {
	PipeSpec `yaml:",inline"`
	Fixtures []PipeSpec `yaml:"fixtures"`
}

type TrunkSpec struct {
	PipeSpec   `yaml:",inline"`
	Multiplier int          `yaml:"multiplier"`
	Branches   []BranchSpec `yaml:"branches"`
	Fixtures   []PipeSpec   `yaml:"fixtures"`
}

type HotWaterSpec struct {
	Name          string         `yaml:"name"`
	Trunks        []TrunkSpec    `yaml:"trunks"`
	Recirculation [][][3]float64 `yaml:"recirculation"`
}

// Systems are the built components of a SystemsSpec. Nil fields were not
// described.
type Systems struct {
	Frame      *window.Frame
	Glazing    *window.Glazing
	PsiInstall [][]float64
	Winter     []float64
	Summer     []float64
	Monthly    []float64
	Depths     []any
	Reveals    []any
	Ventilator *hvac.Ventilator
	Ducts      []*hvac.Duct
	Supportive []*hvac.SupportiveDevice
	Renewable  []*hvac.RenewableDevice
	HotWater   *dhw.System
}

func (s *SystemsSpec) Build(g ports.GeometryAdapter) (*Systems, error) {
	out := &Systems{}
	if s == nil {
		return out, nil
	}
	if err := s.Windows.build(out); err != nil {
		return nil, fmt.Errorf("windows: %w", err)
	}
	if v := s.Ventilator; v != nil {
		vent, err := hvac.NewVentilator(hvac.VentilatorInputs{
			Name:               v.Name,
			SensibleHR:         v.SensibleHR,
			LatentHR:           v.LatentHR,
			ElectricEfficiency: v.ElectricEfficiency,
			FrostProtection:    v.FrostProtection,
			FrostTemp:          v.FrostTemp,
			InConditionedSpace: v.InConditionedSpace,
		})
		if err != nil {
			return nil, fmt.Errorf("ventilator: %w", err)
		}
		out.Ventilator = vent
	}
	for i, d := range s.Ducts {
		dt, err := hvac.ParseDuctType(d.Type)
		if err != nil {
			return nil, fmt.Errorf("duct %d: %w", i, err)
		}
		curves := make([]any, len(d.Polylines))
		for j, pl := range d.Polylines {
			curves[j] = geometry.Polyline3D{Vertices: points(pl)}
		}
		duct, err := hvac.NewDuct(g, dt, curves, hvac.DuctInputs{
			Name:         d.Name,
			Thickness:    d.Thickness,
			Conductivity: d.Conductivity,
			Reflective:   d.Reflective,
			Diameter:     d.Diameter,
			Height:       d.Height,
			Width:        d.Width,
		})
		if err != nil {
			return nil, fmt.Errorf("duct %d: %w", i, err)
		}
		out.Ducts = append(out.Ducts, duct)
	}
	for i, d := range s.Supportive {
		inCond := true
		if d.InConditioned != nil {
			inCond = *d.InConditioned
		}
		qty := d.Quantity
		if qty == 0 {
			qty = 1
		}
		dev, err := hvac.NewSupportiveDevice(d.Name, d.Type, qty, d.Watts, d.Hours, inCond)
		if err != nil {
			return nil, fmt.Errorf("supportive device %d: %w", i, err)
		}
		out.Supportive = append(out.Supportive, dev)
	}
	for i, d := range s.Renewable {
		kind, err := hvac.ParseRenewableKind(d.Kind)
		if err != nil {
			return nil, fmt.Errorf("renewable device %d: %w", i, err)
		}
		dev, err := hvac.NewRenewableDevice(d.Name, kind, d.Generation, d.Utilization)
		if err != nil {
			return nil, fmt.Errorf("renewable device %d: %w", i, err)
		}
		out.Renewable = append(out.Renewable, dev)
	}
	if s.HotWater != nil {
		sys, err := s.HotWater.build(g)
		if err != nil {
			return nil, fmt.Errorf("hot water: %w", err)
		}
		out.HotWater = sys
	}
	return out, nil
}

func (w *WindowsSpec) build(out *Systems) error {
	if w == nil {
		return nil
	}
	if f := w.Frame; f != nil {
		frame, err := window.NewFrame(f.Name, f.Top, f.Right, f.Bottom, f.Left)
		if err != nil {
			return err
		}
		out.Frame = frame
	}
	if gl := w.Glazing; gl != nil {
		glazing, err := window.NewGlazing(gl.Name, gl.UFactor, gl.GValue)
		if err != nil {
			return err
		}
		out.Glazing = glazing
	}
	out.PsiInstall = w.PsiInstall
	out.Winter, out.Summer, out.Monthly = w.WinterShading, w.SummerShading, w.MonthlyShading
	out.Depths, out.Reveals = w.InstallDepth, w.RevealDistance
	return nil
}

func (p PipeSpec) build(g ports.GeometryAdapter, def dhw.SegmentProps) (*dhw.PipeElement, error) {
	props := def
	if p.Diameter != nil {
		d, err := dhw.ParseDiameter("diameter", p.Diameter, units.MM)
		if err != nil {
			return nil, err
		}
		props.Diameter = d
	}
	if p.Material != "" {
		m, err := dhw.ParseMaterial(p.Material)
		if err != nil {
			return nil, err
		}
		props.Material = m
	}
	return dhw.NewPipeElement(g, p.Name, []any{geometry.Polyline3D{Vertices: points(p.Vertices)}}, props)
}

func (h *HotWaterSpec) build(g ports.GeometryAdapter) (*dhw.System, error) {
	sys := dhw.NewSystem(h.Name)
	def := dhw.DefaultSegmentProps()
	for i, ts := range h.Trunks {
		pipe, err := ts.build(g, def)
		if err != nil {
			return nil, fmt.Errorf("trunk %d: %w", i, err)
		}
		trunk := dhw.NewTrunk(ts.Name, *pipe)
		if ts.Multiplier != 0 {
			if err := trunk.SetMultiplier(ts.Multiplier); err != nil {
				return nil, fmt.Errorf("trunk %d: %w", i, err)
			}
		}
		for j, bs := range ts.Branches {
			bp, err := bs.build(g, def)
			if err != nil {
				return nil, fmt.Errorf("trunk %d branch %d: %w", i, j, err)
			}
			branch := dhw.NewBranch(bs.Name, *bp)
			for k, fs := range bs.Fixtures {
				fp, err := fs.build(g, def)
				if err != nil {
					return nil, fmt.Errorf("trunk %d branch %d fixture %d: %w", i, j, k, err)
				}
				branch.AddFixture(*fp)
			}
			trunk.AddBranch(*branch)
		}
		for k, fs := range ts.Fixtures {
			fp, err := fs.build(g, def)
			if err != nil {
				return nil, fmt.Errorf("trunk %d fixture %d: %w", i, k, err)
			}
			trunk.AddFixture(*fp)
		}
		sys.Trunks = append(sys.Trunks, *trunk)
	}
	if len(h.Recirculation) > 0 {
		curves := make([]any, len(h.Recirculation))
		for i, pl := range h.Recirculation {
			curves[i] = geometry.Polyline3D{Vertices: points(pl)}
		}
		pipes, err := dhw.NewRecirculationPipes(g, curves, dhw.RecirculationInputs{})
		if err != nil {
			return nil, fmt.Errorf("recirculation: %w", err)
		}
		sys.Recirculation = pipes
	}
	return sys, nil
}
