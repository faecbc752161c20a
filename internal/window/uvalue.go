package window

import "fmt"

// UValue is the area-weighted whole-window heat transfer result.
type UValue struct {
	WindowArea     float64 // m²
	GlazingArea    float64 // m²
	FrameArea      float64 // m²
	GlazingEdge    float64 // psi-glazing loss, W/K
	InstallEdge    float64 // psi-install loss, W/K
	Corners        float64 // chi loss, W/K
	UWindow        float64 // W/m²K, uninstalled
	UWindowInstall float64 // W/m²K, installed
}

// WholeWindowUValue combines frame and glazing of a rectangular window of
// the given outer width and height (m). Each frame side occupies a
// trapezoid so corner areas are shared between neighbours.
func WholeWindowUValue(width, height float64, frame Frame, glazing Glazing) (UValue, error) {
	top, right := frame.Element(EdgeTop), frame.Element(EdgeRight)
	bottom, left := frame.Element(EdgeBottom), frame.Element(EdgeLeft)

	wg := width - left.Width - right.Width
	hg := height - top.Width - bottom.Width
	if wg <= 0 || hg <= 0 {
		return UValue{}, fmt.Errorf("%w: %.3f x %.3f m", ErrTooSmall, width, height)
	}

	var r UValue
	r.WindowArea = width * height
	r.GlazingArea = wg * hg

	frameAreas := [4]float64{
		(width + wg) / 2 * top.Width,
		(height + hg) / 2 * right.Width,
		(width + wg) / 2 * bottom.Width,
		(height + hg) / 2 * left.Width,
	}
	glassEdges := [4]float64{wg, hg, wg, hg}
	outerEdges := [4]float64{width, height, width, height}

	heat := r.GlazingArea * glazing.UFactor
	for i, el := range frame.Elements {
		r.FrameArea += frameAreas[i]
		heat += frameAreas[i] * el.UFactor
		r.GlazingEdge += glassEdges[i] * el.PsiGlazing
		r.InstallEdge += outerEdges[i] * el.PsiInstall
		r.Corners += el.Chi
	}
	heat += r.GlazingEdge

	r.UWindow = heat / r.WindowArea
	r.UWindowInstall = (heat + r.InstallEdge + r.Corners) / r.WindowArea
	return r, nil
}
