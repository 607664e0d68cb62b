// Command bspline smooths sampled data with a cubic B-spline low-pass filter.
//
// Usage:
//
//	bspline <command> [flags] [file]
//
// Commands read x,y CSV from file or stdin. Extra columns are fitted as
// further y series against the same abscissas.
//
// Examples:
//
//	bspline info -w 20 data.csv
//	bspline fit -w 20 -k 2 data.csv > curve.csv
//	bspline fit -w 20 --at-samples < data.csv
//	bspline response -w 20 --samples 400 --from 5 --to 80
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
