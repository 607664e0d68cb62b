package response

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-bspline/dsp/filter/bspline"
	"github.com/cwbudde/algo-vecmath"
)

const (
	defaultPoints = 256
	defaultMargin = 0.1
	minCycles     = 2.0
)

var (
	ErrInvalidPeriod = errors.New("response: period must be positive and finite")
	ErrInvalidPoints = errors.New("response: point count must be a power of two >= 16")
	ErrInvalidMargin = errors.New("response: margin must be in [0, 0.5)")
	ErrPeriodTooLong = errors.New("response: fewer than two cycles fit in the measured interval")
	ErrPeriodShort   = errors.New("response: period is shorter than two grid steps")
)

// Config holds measurement parameters. Zero values select the defaults.
type Config struct {
	// Points is the FFT length and the number of resampling points.
	Points int
	// Margin is the fraction of the span dropped at each end so the
	// boundary constraint does not bias the gain.
	Margin float64
}

// Point is one measured gain.
type Point struct {
	Period   float64
	Gain     float64
	Expected float64
}

// Meter measures the response of one smoother.
type Meter struct {
	s   *bspline.Smoother
	cfg Config
	lo  float64
	hi  float64
	win []float64
}

func normalizeConfig(cfg Config) Config {
	if cfg.Points == 0 {
		cfg.Points = defaultPoints
	}
	if cfg.Margin == 0 {
		cfg.Margin = defaultMargin
	}
	return cfg
}

// NewMeter prepares the interior grid and window for s.
func NewMeter(s *bspline.Smoother, cfg Config) (*Meter, error) {
	cfg = normalizeConfig(cfg)
	if cfg.Points < 16 || cfg.Points&(cfg.Points-1) != 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPoints, cfg.Points)
	}
	if !(cfg.Margin >= 0 && cfg.Margin < 0.5) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidMargin, cfg.Margin)
	}

	d := s.Domain()
	cut := cfg.Margin * d.Span()
	return &Meter{
		s:   s,
		cfg: cfg,
		lo:  d.XMin + cut,
		hi:  d.XMax - cut,
		win: hann(cfg.Points),
	}, nil
}

// Grid returns the uniform abscissas the curve is resampled on.
func (m *Meter) Grid() []float64 {
	n := m.cfg.Points
	out := make([]float64, n)
	step := (m.hi - m.lo) / float64(n-1)
	for i := range out {
		out[i] = m.lo + float64(i)*step
	}
	return out
}

// Measure fits a unit sine of the given period and returns its gain.
func (m *Meter) Measure(period float64) (Point, error) {
	if !(period > 0) || math.IsInf(period, 0) {
		return Point{}, fmt.Errorf("%w: got %v", ErrInvalidPeriod, period)
	}
	width := m.hi - m.lo
	if width/period < minCycles {
		return Point{}, fmt.Errorf("%w: period %v, interval %v", ErrPeriodTooLong, period, width)
	}
	if step := width / float64(m.cfg.Points-1); period < 2*step {
		return Point{}, fmt.Errorf("%w: period %v, step %v", ErrPeriodShort, period, step)
	}

	x := m.s.Samples()
	y := make([]float64, len(x))
	for i, v := range x {
		y[i] = math.Sin(2 * math.Pi * v / period)
	}
	sp, err := m.s.Apply(y)
	if err != nil {
		return Point{}, fmt.Errorf("response: fit: %w", err)
	}

	grid := m.Grid()
	ref := make([]float64, len(grid))
	for i, v := range grid {
		ref[i] = math.Sin(2 * math.Pi * v / period)
	}
	out := sp.Resample(grid)

	refMag, err := m.spectrum(ref)
	if err != nil {
		return Point{}, err
	}
	outMag, err := m.spectrum(out)
	if err != nil {
		return Point{}, err
	}

	peak := 1
	for k := 2; k < len(refMag); k++ {
		if refMag[k] > refMag[peak] {
			peak = k
		}
	}

	return Point{
		Period:   period,
		Gain:     outMag[peak] / refMag[peak],
		Expected: Expected(period, m.s.Domain().Wavelength, m.s.DerivativeOrder()),
	}, nil
}

// Sweep measures every period in turn. progress, if non-nil, is called after
// each measurement.
func (m *Meter) Sweep(periods []float64, progress func()) ([]Point, error) {
	points := make([]Point, 0, len(periods))
	for _, p := range periods {
		pt, err := m.Measure(p)
		if err != nil {
			return points, err
		}
		points = append(points, pt)
		if progress != nil {
			progress()
		}
	}
	return points, nil
}

// spectrum windows signal in place and returns the magnitudes of bins
// 0..N/2.
func (m *Meter) spectrum(signal []float64) ([]float64, error) {
	n := m.cfg.Points
	vecmath.MulBlockInPlace(signal, m.win)

	in := make([]complex128, n)
	for i, v := range signal {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("response: fft plan: %w", err)
	}
	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("response: fft: %w", err)
	}

	half := n/2 + 1
	re := make([]float64, half)
	im := make([]float64, half)
	for i := range half {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}
	mag := make([]float64, half)
	vecmath.Magnitude(mag, re, im)
	return mag, nil
}

// Expected returns the analytic gain 1/(1+(wavelength/period)^(2k)). It is
// one half at the cutoff for every order.
func Expected(period, wavelength float64, k int) float64 {
	return 1 / (1 + math.Pow(wavelength/period, float64(2*k)))
}

// Periods returns n periods spaced logarithmically from lo to hi.
func Periods(lo, hi float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{lo}
	}
	out := make([]float64, n)
	r := math.Log(hi / lo)
	for i := range out {
		out[i] = lo * math.Exp(r*float64(i)/float64(n-1))
	}
	out[n-1] = hi
	return out
}

// hann returns the symmetric Hann window of length n.
func hann(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(n-1))
	}
	return w
}
