// Package window models window frames, glazing and the Passive House
// properties of apertures: install depth, reveals, shading factors and
// per-edge psi-install values.
package window

import (
	"fmt"

	"github.com/alexiusacademia/gophb/internal/units"
	"github.com/alexiusacademia/gophb/internal/validate"
)

// Edge indexes the four sides of a window.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeRight
	EdgeBottom
	EdgeLeft
)

// Edges lists the sides in frame order.
var Edges = [4]Edge{EdgeTop, EdgeRight, EdgeBottom, EdgeLeft}

func (e Edge) String() string {
	switch e {
	case EdgeTop:
		return "top"
	case EdgeRight:
		return "right"
	case EdgeBottom:
		return "bottom"
	case EdgeLeft:
		return "left"
	default:
		return fmt.Sprintf("edge(%d)", int(e))
	}
}

// FrameElement is one side of a window frame.
type FrameElement struct {
	Width      float64 `json:"width" yaml:"width" validate:"gte=0"`             // m
	UFactor    float64 `json:"u_factor" yaml:"u_factor" validate:"gte=0"`       // W/m²K
	PsiGlazing float64 `json:"psi_glazing" yaml:"psi_glazing" validate:"gte=0"` // W/mK
	PsiInstall float64 `json:"psi_install" yaml:"psi_install" validate:"gte=0"` // W/mK
	Chi        float64 `json:"chi_value" yaml:"chi_value" validate:"gte=0"`     // W/K
}

// Frame is a four-sided window frame. Every side always resolves to an
// element.
type Frame struct {
	Identifier  string          `json:"identifier" yaml:"identifier"`
	DisplayName string          `json:"display_name" yaml:"display_name"`
	Elements    [4]FrameElement `json:"elements" yaml:"elements"`
}

// NewFrame builds a frame from a required top element; nil sides inherit
// the top element.
func NewFrame(name string, top, right, bottom, left *FrameElement) (*Frame, error) {
	if top == nil {
		return nil, ErrMissingTop
	}
	f := &Frame{Identifier: units.HBName(name, "Frame")}
	f.DisplayName = f.Identifier
	for i, el := range []*FrameElement{top, right, bottom, left} {
		if el == nil {
			el = top
		}
		if err := validate.Struct(el); err != nil {
			return nil, fmt.Errorf("%s frame element: %w", Edges[i], err)
		}
		f.Elements[i] = *el
	}
	return f, nil
}

// Element returns the frame element on edge e.
func (f Frame) Element(e Edge) FrameElement {
	return f.Elements[e]
}

// WithPsiInstall returns a copy of the frame with the four psi-install
// values set in frame order.
func (f Frame) WithPsiInstall(psi [4]float64) (Frame, error) {
	for i, v := range psi {
		if v < 0 {
			return f, &units.RangeViolationError{Field: Edges[i].String() + ".psi_install", Value: v, Min: 0, Max: posInf}
		}
		f.Elements[i].PsiInstall = v
	}
	return f, nil
}

// Glazing is the glass pane of a window.
type Glazing struct {
	Identifier  string  `json:"identifier" yaml:"identifier"`
	DisplayName string  `json:"display_name" yaml:"display_name"`
	UFactor     float64 `json:"u_factor" yaml:"u_factor" validate:"gte=0"`
	GValue      float64 `json:"g_value" yaml:"g_value" validate:"gte=0,lte=1"`
}

// NewGlazing validates and names a glazing.
func NewGlazing(name string, uFactor, gValue float64) (*Glazing, error) {
	g := &Glazing{Identifier: units.HBName(name, "Glazing"), UFactor: uFactor, GValue: gValue}
	g.DisplayName = g.Identifier
	if err := validate.Struct(g); err != nil {
		return nil, err
	}
	return g, nil
}
