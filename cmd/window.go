package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gophb/internal/diagram"
	"github.com/alexiusacademia/gophb/internal/window"
)

var (
	winWidth    float64
	winHeight   float64
	winFrame    window.FrameElement
	winGlazingU float64
	winGlazingG float64
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Whole-window U-value of a rectangular window",
	Long: `Calculate the area-weighted U-value of a rectangular window
(ISO 10077) with the same frame element on all four sides.

  Uw = (Ag·Ug + Σ Af·Uf + Σ lg·Ψg) / Aw
  Uw,installed = Uw + (Σ l·Ψinstall + Σ χ) / Aw

Examples:
  gophb window --width 1.2 --height 1.5 --frame-width 0.12 --frame-u 0.9 \
    --psi-glazing 0.03 --psi-install 0.04 --glazing-u 0.6 --g-value 0.5`,
	RunE: runWindow,
}

func init() {
	rootCmd.AddCommand(windowCmd)

	windowCmd.Flags().Float64Var(&winWidth, "width", 0, "Window outer width (m) [required]")
	windowCmd.Flags().Float64Var(&winHeight, "height", 0, "Window outer height (m) [required]")

	windowCmd.Flags().Float64Var(&winFrame.Width, "frame-width", 0.1, "Frame width (m)")
	windowCmd.Flags().Float64Var(&winFrame.UFactor, "frame-u", 1.0, "Frame U-value (W/m²K)")
	windowCmd.Flags().Float64Var(&winFrame.PsiGlazing, "psi-glazing", 0.04, "Glazing edge psi (W/mK)")
	windowCmd.Flags().Float64Var(&winFrame.PsiInstall, "psi-install", 0.04, "Installation psi (W/mK)")
	windowCmd.Flags().Float64Var(&winFrame.Chi, "chi", 0, "Corner chi (W/K)")

	windowCmd.Flags().Float64Var(&winGlazingU, "glazing-u", 0.6, "Glazing U-value (W/m²K)")
	windowCmd.Flags().Float64Var(&winGlazingG, "g-value", 0.5, "Glazing g-value")

	windowCmd.MarkFlagRequired("width")
	windowCmd.MarkFlagRequired("height")
}

func runWindow(cmd *cobra.Command, args []string) error {
	el := winFrame
	frame, err := window.NewFrame("", &el, nil, nil, nil)
	if err != nil {
		return err
	}
	glazing, err := window.NewGlazing("", winGlazingU, winGlazingG)
	if err != nil {
		return err
	}
	u, err := window.WholeWindowUValue(winWidth, winHeight, *frame, *glazing)
	if err != nil {
		return err
	}

	banner("WHOLE-WINDOW U-VALUE - ISO 10077")

	section("AREAS:")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Window (Aw):\t%.3f m²\n", u.WindowArea)
	fmt.Fprintf(w, "  Glazing (Ag):\t%.3f m²\n", u.GlazingArea)
	fmt.Fprintf(w, "  Frame (Af):\t%.3f m²\n", u.FrameArea)
	fmt.Fprintf(w, "  Glazing fraction:\t%.1f %%\n", 100*u.GlazingArea/u.WindowArea)
	w.Flush()
	fmt.Println()

	section("EDGE LOSSES:")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Glazing edge (Σ lg·Ψg):\t%.4f W/K\n", u.GlazingEdge)
	fmt.Fprintf(w, "  Installation (Σ l·Ψinstall):\t%.4f W/K\n", u.InstallEdge)
	fmt.Fprintf(w, "  Corners (Σ χ):\t%.4f W/K\n", u.Corners)
	w.Flush()
	fmt.Println()

	fmt.Print(diagram.DrawSummaryBox("RESULT", []string{
		fmt.Sprintf("Uw           = %.3f W/m²K", u.UWindow),
		fmt.Sprintf("Uw,installed = %.3f W/m²K", u.UWindowInstall),
	}))
	fmt.Println()
	return nil
}
