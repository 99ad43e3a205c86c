package config

import "sync"

// Drift bounds: the shrink factor is nudged back inside this band on each
// Drift step.
const (
	DriftLow  = 0.25
	DriftHigh = 0.85
	DriftStep = 0.1
)

// GrowthSettings holds live coral parameters that a tick loop may adjust
// between builds. Builds read a Snapshot, so they always see the latest values.
type GrowthSettings struct {
	mu  sync.RWMutex
	cfg GrowthConfig
}

// NewGrowthSettings wraps an initial configuration.
func NewGrowthSettings(cfg GrowthConfig) *GrowthSettings {
	return &GrowthSettings{cfg: cfg}
}

// Snapshot returns a copy of the current settings.
func (s *GrowthSettings) Snapshot() GrowthConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// Iterations returns the configured recursion depth.
func (s *GrowthSettings) Iterations() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg.Iterations
}

// SetIterations sets the recursion depth, clamped to [MinIterations, MaxIterations].
func (s *GrowthSettings) SetIterations(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n < MinIterations {
		n = MinIterations
	}
	if n > MaxIterations {
		n = MaxIterations
	}
	s.cfg.Iterations = n
}

// Scalar returns the current shrink factor.
func (s *GrowthSettings) Scalar() float32 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg.Scalar
}

// SetScalar sets the shrink factor, clamped to [MinScalar, MaxScalar].
func (s *GrowthSettings) SetScalar(v float32) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if v < MinScalar {
		v = MinScalar
	}
	if v > MaxScalar {
		v = MaxScalar
	}
	s.cfg.Scalar = v
}

// Drift performs one scheduled update of the shrink factor: below DriftLow it
// grows by DriftStep, above DriftHigh it shrinks by DriftStep, otherwise it is
// left alone. Returns the new value.
func (s *GrowthSettings) Drift() float32 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cfg.Scalar <= DriftLow {
		s.cfg.Scalar += DriftStep
	} else if s.cfg.Scalar >= DriftHigh {
		s.cfg.Scalar -= DriftStep
	}
	return s.cfg.Scalar
}
