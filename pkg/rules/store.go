package rules

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"slices"

	"github.com/aretw0/sprout/pkg/domain"
	"github.com/aretw0/sprout/pkg/ports"
)

// Rule is a single production: the replacement and its trigger probability.
type Rule struct {
	Replacement domain.Sequence `json:"replacement"`
	Probability float64         `json:"probability"`
}

// Store implements ports.RuleSet with an ordered rule list per symbol.
type Store struct {
	productions map[domain.Symbol][]Rule
	random      ports.RandomSource
	policy      ProbabilityPolicy
	logger      *slog.Logger
}

var _ ports.RuleSet = (*Store)(nil)

// New creates an empty rule store.
// Without WithRandom, lookups draw from a source seeded by the runtime.
func New(opts ...Option) *Store {
	s := &Store{
		productions: make(map[domain.Symbol][]Rule),
		policy:      PolicyPermissive,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.random == nil {
		s.random = ports.NewRandomSource()
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return s
}

// Add registers a rule that always fires (probability 1.0).
func (s *Store) Add(sym domain.Symbol, replacement domain.Sequence) error {
	return s.AddWithProbability(sym, replacement, domain.DefaultProbability)
}

// AddWithProbability appends a rule for sym. Rules of a symbol are tried in the order they were added.
// An error is only possible under PolicyStrict.
func (s *Store) AddWithProbability(sym domain.Symbol, replacement domain.Sequence, p float64) error {
	p, err := s.normalize(p)
	if err != nil {
		return fmt.Errorf("rule %q -> %q: %w", sym, replacement, err)
	}
	s.productions[sym] = append(s.productions[sym], Rule{
		Replacement: replacement.Clone(),
		Probability: p,
	})
	s.logger.Debug("rule registered",
		"symbol", sym.String(),
		"replacement", replacement.String(),
		"probability", p,
		"position", len(s.productions[sym])-1,
	)
	return nil
}

// AddString registers a certain rule whose replacement is given as text.
func (s *Store) AddString(sym domain.Symbol, replacement string) error {
	return s.Add(sym, domain.ParseSequence(replacement))
}

// AddStringWithProbability registers a probabilistic rule whose replacement is given as text.
func (s *Store) AddStringWithProbability(sym domain.Symbol, replacement string, p float64) error {
	return s.AddWithProbability(sym, domain.ParseSequence(replacement), p)
}

func (s *Store) normalize(p float64) (float64, error) {
	switch s.policy {
	case PolicyClamp:
		if math.IsNaN(p) {
			return 0, nil
		}
		return math.Min(math.Max(p, 0), 1), nil
	case PolicyStrict:
		if math.IsNaN(p) || p < 0 || p > 1 {
			return 0, fmt.Errorf("%w: %v", domain.ErrInvalidProbability, p)
		}
	}
	return p, nil
}

// Lookup resolves one occurrence of sym.
// It returns ok=false for terminal symbols. Otherwise each rule is tried in insertion order
// with one independent draw (stopping at the first acceptance); if none fires, the identity
// sequence [sym] is returned.
func (s *Store) Lookup(sym domain.Symbol) (domain.Sequence, bool) {
	prods, ok := s.productions[sym]
	if !ok {
		return nil, false
	}
	for _, r := range prods {
		if s.random.Float64() < r.Probability {
			return r.Replacement.Clone(), true
		}
	}
	return domain.Sequence{sym}, true
}

// Symbols returns every symbol that has at least one rule, in ascending order.
func (s *Store) Symbols() []domain.Symbol {
	keys := make([]domain.Symbol, 0, len(s.productions))
	for k := range s.productions {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Rules returns a copy of the rules registered for sym, in insertion order.
func (s *Store) Rules(sym domain.Symbol) []Rule {
	prods := s.productions[sym]
	out := make([]Rule, len(prods))
	for i, r := range prods {
		out[i] = Rule{Replacement: r.Replacement.Clone(), Probability: r.Probability}
	}
	return out
}

// Len returns the total number of registered rules.
func (s *Store) Len() int {
	n := 0
	for _, prods := range s.productions {
		n += len(prods)
	}
	return n
}

// Policy returns the probability policy the store was created with.
func (s *Store) Policy() ProbabilityPolicy {
	return s.policy
}
