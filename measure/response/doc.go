// Package response measures the frequency response of a B-spline smoother.
//
// A test tone is sampled at the smoother's abscissas and fitted. The fitted
// curve and the tone are resampled on a uniform grid over the interior of
// the domain, Hann windowed and transformed; the gain is the ratio of their
// magnitudes at the tone's peak bin. [Expected] gives the analytic response
// the measurement is compared against.
package response
