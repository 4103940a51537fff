package rules

import (
	"log/slog"

	"github.com/aretw0/sprout/pkg/ports"
)

// ProbabilityPolicy decides how out-of-range trigger probabilities are handled at registration.
type ProbabilityPolicy string

const (
	// PolicyPermissive stores probabilities as given: values below 0 never fire, values at or above 1 always fire.
	PolicyPermissive ProbabilityPolicy = "permissive"
	// PolicyClamp clamps probabilities into [0, 1]. NaN becomes 0.
	PolicyClamp ProbabilityPolicy = "clamp"
	// PolicyStrict rejects NaN and values outside [0, 1] with domain.ErrInvalidProbability.
	PolicyStrict ProbabilityPolicy = "strict"
)

// Valid reports whether p is a known policy.
func (p ProbabilityPolicy) Valid() bool {
	switch p {
	case PolicyPermissive, PolicyClamp, PolicyStrict:
		return true
	}
	return false
}

// Option defines a functional option for configuring the Store.
type Option func(*Store)

// WithRandom injects the entropy source used by Lookup.
func WithRandom(src ports.RandomSource) Option {
	return func(s *Store) {
		s.random = src
	}
}

// WithProbabilityPolicy sets how registration treats out-of-range probabilities.
func WithProbabilityPolicy(policy ProbabilityPolicy) Option {
	return func(s *Store) {
		s.policy = policy
	}
}

// WithLogger sets a custom structured logger for the store.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}
