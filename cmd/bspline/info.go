package main

import (
	"fmt"
	"io"

	"github.com/cwbudde/algo-bspline/dsp/filter/bspline"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	headingColor = color.New(color.FgCyan, color.Bold)
	labelColor   = color.New(color.Bold)
	goodColor    = color.New(color.FgGreen)
)

func printHeading(w io.Writer, title string) {
	_, _ = headingColor.Fprintln(w, title)
}

// printLabel pads the plain label before styling so columns line up.
func printLabel(w io.Writer, width int, label, value string) {
	padded := fmt.Sprintf("%-*s", width, label)
	_, _ = fmt.Fprintf(w, "  %s %s\n", labelColor.Sprint(padded), value)
}

func printDomain(w io.Writer, s *bspline.Smoother) {
	d := s.Domain()
	const width = 12
	printHeading(w, "DOMAIN")
	printLabel(w, width, "Samples:", fmt.Sprintf("%d", d.NX))
	printLabel(w, width, "Range:", fmt.Sprintf("[%g, %g]", d.XMin, d.XMax))
	printLabel(w, width, "Intervals:", fmt.Sprintf("%d", d.M))
	printLabel(w, width, "Spacing:", fmt.Sprintf("%g", d.DX))
	printLabel(w, width, "Wavelength:", fmt.Sprintf("%g (%.2f intervals)", d.Wavelength, d.Wavelength/d.DX))

	printHeading(w, "PENALTY")
	printLabel(w, width, "Order:", fmt.Sprintf("%d", s.DerivativeOrder()))
	printLabel(w, width, "Alpha:", fmt.Sprintf("%.6g", s.Alpha()))
	printLabel(w, width, "Boundary:", s.BoundaryCondition().String())
	printLabel(w, width, "Status:", goodColor.Sprint("factored"))
}

func infoCmd(flags *fitFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "info [file]",
		Short:   "Print the node grid and penalty derived for the input abscissas",
		Example: "bspline info -w 20 data.csv",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadTable(cmd, args)
			if err != nil {
				return err
			}
			s, err := flags.newSmoother(cmd, t.x)
			if err != nil {
				return err
			}
			printDomain(cmd.OutOrStdout(), s)
			return nil
		},
	}
}
