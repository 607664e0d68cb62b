package testutil

import (
	"math"
	"math/rand"
	"sort"
)

// Grid returns n evenly spaced abscissas start, start+step, ...
func Grid(n int, start, step float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}

// JitteredGrid returns Grid(n, start, step) with each interior point moved by
// up to +/-jitter*step, using a fixed seed. The end points stay put so the
// domain is known, and the result is sorted.
func JitteredGrid(seed int64, n int, start, step, jitter float64) []float64 {
	out := Grid(n, start, step)
	rng := rand.New(rand.NewSource(seed))
	for i := 1; i < n-1; i++ {
		out[i] += (rng.Float64()*2 - 1) * jitter * step
	}
	sort.Float64s(out)
	return out
}

// Tone samples amplitude*sin(2*pi*x/period + phase) at each of xs.
func Tone(xs []float64, period, amplitude, phase float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = amplitude * math.Sin(2*math.Pi*x/period+phase)
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Add returns the element-wise sum of equally long slices.
func Add(a []float64, rest ...[]float64) []float64 {
	out := append([]float64(nil), a...)
	for _, r := range rest {
		for i := range out {
			out[i] += r[i]
		}
	}
	return out
}
