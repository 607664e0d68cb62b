package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-bspline/dsp/filter/bspline"
	"github.com/cwbudde/algo-bspline/internal/logging"
	"github.com/spf13/cobra"
)

// fitFlags are shared by every subcommand.
type fitFlags struct {
	wavelength float64
	order      int
	boundary   string
	verbose    bool
}

var boundaryNames = map[string]bspline.BoundaryCondition{
	"zero-value":     bspline.BoundaryZeroValue,
	"zero-slope":     bspline.BoundaryZeroSlope,
	"zero-curvature": bspline.BoundaryZeroCurvature,
}

func parseBoundary(s string) (bspline.BoundaryCondition, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if bc, ok := boundaryNames[s]; ok {
		return bc, nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		return bspline.BoundaryCondition(n), nil
	}
	return 0, fmt.Errorf("unknown boundary condition %q (zero-value, zero-slope, zero-curvature)", s)
}

// options converts the flags to smoother options, wiring in a logger.
func (f *fitFlags) options(log *logging.Logger) ([]bspline.Option, error) {
	bc, err := parseBoundary(f.boundary)
	if err != nil {
		return nil, err
	}
	return []bspline.Option{
		bspline.WithDerivativeOrder(f.order),
		bspline.WithBoundaryCondition(bc),
		bspline.WithLogger(log.WithPrefix("bspline").Logger),
	}, nil
}

func (f *fitFlags) newSmoother(cmd *cobra.Command, x []float64) (*bspline.Smoother, error) {
	log := logging.New(logging.ConfigForVerbosity(cmd.ErrOrStderr(), f.verbose))

	opts, err := f.options(log)
	if err != nil {
		return nil, err
	}
	s, err := bspline.New(x, f.wavelength, opts...)
	if err != nil {
		return nil, err
	}
	log.Debug("smoother ready", "command", cmd.Name(), "samples", len(x))
	return s, nil
}

func newRootCmd() *cobra.Command {
	flags := &fitFlags{}
	cmd := &cobra.Command{
		Use:   "bspline",
		Short: "Cubic B-spline smoothing filter",
		Long: `Smooth sampled data with a cubic B-spline low-pass filter.

Variation with a period well above the cutoff wavelength passes, variation
well below it is attenuated. Samples need not be evenly spaced.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.Float64VarP(&flags.wavelength, "wavelength", "w", 0, "cutoff wavelength in units of x")
	pf.IntVarP(&flags.order, "order", "k", 1, "penalised derivative order (1, 2 or 3)")
	pf.StringVarP(&flags.boundary, "boundary", "b", "zero-slope", "end constraint: zero-value, zero-slope or zero-curvature")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "log the derived configuration to stderr")
	_ = cmd.MarkPersistentFlagRequired("wavelength")

	cmd.AddCommand(infoCmd(flags), fitCmd(flags), responseCmd(flags))
	return cmd
}
