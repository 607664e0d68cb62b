package bspline

import (
	"fmt"
	"log/slog"
)

// BoundaryCondition selects the constraint applied at both ends of the
// domain. Each value indexes one row of the boundary coefficient table.
type BoundaryCondition int

const (
	// BoundaryZeroValue pins the curve to zero at both ends.
	BoundaryZeroValue BoundaryCondition = iota
	// BoundaryZeroSlope forces a zero first derivative at both ends.
	BoundaryZeroSlope
	// BoundaryZeroCurvature forces a zero second derivative at both ends.
	BoundaryZeroCurvature
)

// String returns a short name for the boundary condition.
func (bc BoundaryCondition) String() string {
	switch bc {
	case BoundaryZeroValue:
		return "zero-value"
	case BoundaryZeroSlope:
		return "zero-slope"
	case BoundaryZeroCurvature:
		return "zero-curvature"
	default:
		return fmt.Sprintf("BoundaryCondition(%d)", int(bc))
	}
}

// Config holds the smoother settings.
type Config struct {
	// DerivativeOrder is the order k of the penalised derivative (1, 2 or 3).
	DerivativeOrder int
	// Boundary is the end-point constraint.
	Boundary BoundaryCondition
	// Logger receives debug records about the derived configuration.
	Logger *slog.Logger
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns first-derivative smoothing with zero-slope ends and
// a discarding logger.
func DefaultConfig() Config {
	return Config{
		DerivativeOrder: 1,
		Boundary:        BoundaryZeroSlope,
		Logger:          slog.New(slog.DiscardHandler),
	}
}

// WithDerivativeOrder sets the order of the penalised derivative.
func WithDerivativeOrder(k int) Option {
	return func(cfg *Config) {
		cfg.DerivativeOrder = k
	}
}

// WithBoundaryCondition sets the end-point constraint.
func WithBoundaryCondition(bc BoundaryCondition) Option {
	return func(cfg *Config) {
		cfg.Boundary = bc
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *Config) {
		if logger != nil {
			cfg.Logger = logger
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Validate reports whether cfg selects a supported penalty and boundary
// condition.
func (cfg Config) Validate() error {
	if cfg.DerivativeOrder < 1 || cfg.DerivativeOrder > len(qparts) {
		return fmt.Errorf("%w: got %d", ErrInvalidDerivativeOrder, cfg.DerivativeOrder)
	}
	if cfg.Boundary < BoundaryZeroValue || int(cfg.Boundary) >= len(boundaryTable) {
		return fmt.Errorf("%w: %v", ErrInvalidBoundaryCondition, cfg.Boundary)
	}
	return nil
}
