package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cwbudde/algo-bspline/measure/response"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

type responseFlags struct {
	samples int
	spacing float64
	from    float64
	to      float64
	steps   int
	points  int
}

func responseCmd(flags *fitFlags) *cobra.Command {
	rf := &responseFlags{}
	cmd := &cobra.Command{
		Use:   "response",
		Short: "Measure the gain of the filter over a range of periods",
		Long: `Fit unit sine tones on an evenly spaced grid and compare the gain of
each fitted curve with the analytic response 1/(1+(wavelength/period)^(2k)).`,
		Example: "bspline response -w 20 -k 2 --from 5 --to 80 --steps 12",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			x := make([]float64, rf.samples)
			for i := range x {
				x[i] = float64(i) * rf.spacing
			}
			s, err := flags.newSmoother(cmd, x)
			if err != nil {
				return err
			}
			m, err := response.NewMeter(s, response.Config{Points: rf.points})
			if err != nil {
				return err
			}

			periods := response.Periods(rf.from, rf.to, rf.steps)
			bar := progressbar.NewOptions(len(periods),
				progressbar.OptionSetDescription("measuring"),
				progressbar.OptionSetWidth(40),
				progressbar.OptionSetWriter(cmd.ErrOrStderr()),
				progressbar.OptionSetPredictTime(false),
				progressbar.OptionClearOnFinish(),
				progressbar.OptionSetTheme(progressbar.Theme{
					Saucer:        "=",
					SaucerHead:    ">",
					SaucerPadding: " ",
					BarStart:      "[",
					BarEnd:        "]",
				}),
			)
			points, err := m.Sweep(periods, func() { _ = bar.Add(1) })
			_ = bar.Finish()
			if err != nil {
				return err
			}
			return printResponse(cmd.OutOrStdout(), points)
		},
	}

	f := cmd.Flags()
	f.IntVar(&rf.samples, "samples", 400, "number of evenly spaced samples")
	f.Float64Var(&rf.spacing, "spacing", 1, "sample spacing")
	f.Float64Var(&rf.from, "from", 5, "shortest period")
	f.Float64Var(&rf.to, "to", 80, "longest period")
	f.IntVar(&rf.steps, "steps", 9, "number of periods, spaced logarithmically")
	f.IntVar(&rf.points, "points", 256, "FFT length")
	return cmd
}

func printResponse(w io.Writer, points []response.Point) error {
	printHeading(w, "RESPONSE")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Period\tGain\tExpected\tError\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "------\t----\t--------\t-----\n"); err != nil {
		return err
	}
	for _, p := range points {
		if _, err := fmt.Fprintf(tw, "%.4g\t%.4f\t%.4f\t%+.4f\n", p.Period, p.Gain, p.Expected, p.Gain-p.Expected); err != nil {
			return err
		}
	}
	return tw.Flush()
}
