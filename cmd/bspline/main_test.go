package main

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/cwbudde/algo-bspline/dsp/filter/bspline"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func sineCSV(n int, period float64) string {
	var b strings.Builder
	b.WriteString("# generated\n")
	b.WriteString("t,level,flat\n")
	for i := range n {
		x := float64(i)
		fmt.Fprintf(&b, "%g,%g,%g\n", x, math.Sin(2*math.Pi*x/period), 2.0)
	}
	return b.String()
}

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestInfo(t *testing.T) {
	out, _, err := run(t, sineCSV(100, 50), "info", "-w", "20")
	require.NoError(t, err)
	assert.Contains(t, out, "DOMAIN")
	assert.Regexp(t, `Intervals:\s+99`, out)
	assert.Contains(t, out, "zero-slope")
}

func TestInfoVerboseLogs(t *testing.T) {
	_, stderr, err := run(t, sineCSV(100, 50), "info", "-w", "20", "-v", "-b", "zero-curvature")
	require.NoError(t, err)
	assert.Contains(t, stderr, "bspline.intervals=99")
	assert.Contains(t, stderr, "bspline.boundary=zero-curvature")
}

func TestFitNodes(t *testing.T) {
	out, _, err := run(t, sineCSV(100, 50), "fit", "-w", "20", "-k", "2")
	require.NoError(t, err)

	rows, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 101)
	assert.Equal(t, []string{"t", "level", "flat"}, rows[0])

	for _, row := range rows[1:] {
		flat, err := strconv.ParseFloat(row[2], 64)
		require.NoError(t, err)
		assert.InDelta(t, 2.0, flat, 1e-9)
	}
}

func TestFitAtSamplesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.txt")
	data := "0 1\n1 1\n2 1\n3 1\n4 1\n5 1\n6 1\n7 1\n8 1\n9 1\n10 1\n11 1\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	out, _, err := run(t, "", "fit", "-w", "3", "--at-samples", path)
	require.NoError(t, err)

	rows, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 13)
	assert.Equal(t, []string{"x", "y1"}, rows[0])
	assert.Equal(t, "5", rows[6][0])
	v, err := strconv.ParseFloat(rows[6][1], 64)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, v, 1e-9)
}

func TestResponse(t *testing.T) {
	out, _, err := run(t, "", "response", "-w", "20", "--from", "10", "--to", "40", "--steps", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "RESPONSE")
	assert.Regexp(t, `20\s+0\.(49|50)\d\d\s+0\.5000`, out)
}

func TestErrors(t *testing.T) {
	_, _, err := run(t, sineCSV(100, 50), "info")
	require.Error(t, err)

	_, _, err = run(t, sineCSV(100, 50), "fit", "-w", "200")
	require.ErrorIs(t, err, bspline.ErrWavelengthExceedsSpan)

	_, _, err = run(t, sineCSV(100, 50), "fit", "-w", "20", "-b", "sideways")
	require.ErrorContains(t, err, "unknown boundary condition")

	_, _, err = run(t, sineCSV(100, 50), "fit", "-w", "20", "-k", "5")
	require.ErrorIs(t, err, bspline.ErrInvalidDerivativeOrder)

	_, _, err = run(t, "x,y\n", "fit", "-w", "20")
	require.ErrorIs(t, err, errNoRows)

	_, _, err = run(t, "", "fit", "-w", "20", filepath.Join(t.TempDir(), "missing.csv"))
	require.ErrorContains(t, err, "open input")
}

func TestReadTable(t *testing.T) {
	tbl, err := readTable(strings.NewReader("# c\n1, 2, 3\n2, 4, 6\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y1", "y2"}, tbl.header)
	assert.Equal(t, []float64{1, 2}, tbl.x)
	assert.Equal(t, [][]float64{{2, 4}, {3, 6}}, tbl.ys)

	_, err = readTable(strings.NewReader("1\n"))
	require.ErrorIs(t, err, errNoColumns)

	_, err = readTable(strings.NewReader("1,2\n3,4,5\n"))
	require.ErrorContains(t, err, "line 2")

	_, err = readTable(strings.NewReader("x,y\n1,2\n3,oops\n"))
	require.ErrorContains(t, err, "line 3")
}

func TestParseBoundary(t *testing.T) {
	for name, want := range boundaryNames {
		got, err := parseBoundary(strings.ToUpper(name))
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	got, err := parseBoundary("2")
	require.NoError(t, err)
	assert.Equal(t, bspline.BoundaryZeroCurvature, got)
}
