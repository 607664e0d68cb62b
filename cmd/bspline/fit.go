package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/cwbudde/algo-bspline/dsp/filter/bspline"
	"github.com/spf13/cobra"
)

func fitCmd(flags *fitFlags) *cobra.Command {
	var atSamples bool
	cmd := &cobra.Command{
		Use:   "fit [file]",
		Short: "Fit every y column and write the smoothed curves as CSV",
		Long: `Fit every y column against the shared x column.

By default one row is written per node. With --at-samples the curves are
evaluated at the input abscissas instead, in input order.`,
		Example: "bspline fit -w 20 -k 2 data.csv > curve.csv",
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
			return writeFit(cmd.OutOrStdout(), s, t, atSamples)
		},
	}
	cmd.Flags().BoolVar(&atSamples, "at-samples", false, "evaluate at the input abscissas instead of the nodes")
	return cmd
}

func writeFit(w io.Writer, s *bspline.Smoother, t *table, atSamples bool) error {
	xs := s.Nodes()
	if atSamples {
		xs = t.x
	}

	cols := make([][]float64, len(t.ys))
	for i, y := range t.ys {
		sp, err := s.Apply(y)
		if err != nil {
			return fmt.Errorf("column %s: %w", t.header[i+1], err)
		}
		if atSamples {
			cols[i] = sp.Resample(xs)
		} else {
			cols[i] = sp.Curve()
		}
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(t.header); err != nil {
		return err
	}
	row := make([]string, len(cols)+1)
	for r, x := range xs {
		row[0] = strconv.FormatFloat(x, 'g', -1, 64)
		for i, c := range cols {
			row[i+1] = strconv.FormatFloat(c[r], 'g', -1, 64)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
