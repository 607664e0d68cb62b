package bspline

import (
	"math"
	"math/rand"
	"testing"

	"github.com/cwbudde/algo-bspline/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupDomainUniform(t *testing.T) {
	d, err := setupDomain(testutil.Grid(100, 0, 1), 20)
	require.NoError(t, err)

	assert.Equal(t, 0.0, d.XMin)
	assert.Equal(t, 99.0, d.XMax)
	assert.Equal(t, 100, d.NX)
	assert.Equal(t, 99, d.M)
	assert.InDelta(t, 1.0, d.DX, 1e-15)
	assert.Equal(t, 100, d.NodeCount())
	assert.InDelta(t, 42.0, d.Node(42), 1e-12)
}

func TestSetupDomainCases(t *testing.T) {
	cases := []struct {
		name       string
		x          []float64
		wavelength float64
		wantM      int
	}{
		{"minimum samples", testutil.Grid(12, 0, 1), 3, 11},
		{"wavelength equals span", testutil.Grid(100, 0, 1), 99, 99},
		{"coarse first phase", testutil.Grid(1000, 0, 1), 10, 999},
		{"offset domain", testutil.Grid(50, -200, 4), 30, 49},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := setupDomain(tc.x, tc.wavelength)
			require.NoError(t, err)
			assert.Equal(t, tc.wantM, d.M)
			assert.GreaterOrEqual(t, d.M, 1)
			assert.Greater(t, d.DX, 0.0)
			assert.InDelta(t, d.Span(), float64(d.M)*d.DX, 1e-9)
		})
	}
}

func TestSetupDomainErrors(t *testing.T) {
	grid := testutil.Grid(30, 0, 1)
	cases := []struct {
		name       string
		x          []float64
		wavelength float64
		want       error
	}{
		{"empty", nil, 1, ErrTooFewSamples},
		{"single sample", []float64{1}, 1, ErrTooFewSamples},
		{"zero wavelength", grid, 0, ErrInvalidWavelength},
		{"negative wavelength", grid, -2, ErrInvalidWavelength},
		{"nan wavelength", grid, math.NaN(), ErrInvalidWavelength},
		{"inf wavelength", grid, math.Inf(1), ErrInvalidWavelength},
		{"nan sample", []float64{0, math.NaN(), 2}, 1, ErrNonFinite},
		{"inf sample", []float64{0, 1, math.Inf(-1)}, 1, ErrNonFinite},
		{"wavelength exceeds span", grid, 29.5, ErrWavelengthExceedsSpan},
		{"zero span", testutil.DC(4, 20), 1, ErrWavelengthExceedsSpan},
		{"too few samples per node", testutil.Grid(10, 0, 1), 3, ErrNodeSearch},
		{"wavelength too short for samples", grid, 0.4, ErrNodeSearch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := setupDomain(tc.x, tc.wavelength)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestSetupDomainIgnoresOrder(t *testing.T) {
	x := testutil.JitteredGrid(9, 200, 0, 0.5, 0.3)
	want, err := setupDomain(x, 7)
	require.NoError(t, err)

	shuffled := append([]float64(nil), x...)
	rng := rand.New(rand.NewSource(1))
	rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

	got, err := setupDomain(shuffled, 7)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestAlphaFor(t *testing.T) {
	base := 20 / (2 * math.Pi * 0.5)
	assert.InDelta(t, base*base, alphaFor(20, 0.5, 1), 1e-12)
	assert.InDelta(t, math.Pow(base, 4), alphaFor(20, 0.5, 2), 1e-9)
	assert.InDelta(t, math.Pow(base, 6), alphaFor(20, 0.5, 3), 1e-6)
}
