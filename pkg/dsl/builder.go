package dsl

import (
	"fmt"

	"github.com/aretw0/sprout/pkg/domain"
	"github.com/aretw0/sprout/pkg/rules"
)

type entry struct {
	symbol      domain.Symbol
	replacement domain.Sequence
	probability float64
}

// Builder manages the grammar construction.
type Builder struct {
	symbols map[domain.Symbol]*RuleBuilder
	entries []entry
}

// New creates a new grammar builder.
func New() *Builder {
	return &Builder{
		symbols: make(map[domain.Symbol]*RuleBuilder),
	}
}

// Rule starts (or resumes) the declaration of productions for sym.
// If the symbol was already declared, it returns the existing builder.
func (b *Builder) Rule(sym domain.Symbol) *RuleBuilder {
	if rb, ok := b.symbols[sym]; ok {
		return rb
	}
	rb := &RuleBuilder{
		symbol:  sym,
		builder: b,
	}
	b.symbols[sym] = rb
	return rb
}

// Len returns the number of declared productions.
func (b *Builder) Len() int {
	return len(b.entries)
}

// Build compiles the declarations into a rules.Store configured with opts.
// It fails only when the store rejects a probability (rules.PolicyStrict).
func (b *Builder) Build(opts ...rules.Option) (*rules.Store, error) {
	store := rules.New(opts...)
	if err := b.Into(store); err != nil {
		return nil, err
	}
	return store, nil
}

// Into registers the declarations into an existing store, after any rules it already holds.
func (b *Builder) Into(store *rules.Store) error {
	for _, e := range b.entries {
		if err := store.AddWithProbability(e.symbol, e.replacement, e.probability); err != nil {
			return fmt.Errorf("failed to build rule store: %w", err)
		}
	}
	return nil
}
