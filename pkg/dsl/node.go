package dsl

import "github.com/aretw0/sprout/pkg/domain"

// RuleBuilder provides a fluent API for declaring the productions of one symbol.
type RuleBuilder struct {
	symbol  domain.Symbol
	builder *Builder
}

// To adds a production that always fires.
func (r *RuleBuilder) To(replacement string) *RuleBuilder {
	return r.Maybe(replacement, domain.DefaultProbability)
}

// Maybe adds a production that fires with probability p.
// Productions of a symbol are tried in the order they are declared.
func (r *RuleBuilder) Maybe(replacement string, p float64) *RuleBuilder {
	return r.Sequence(domain.ParseSequence(replacement), p)
}

// Sequence adds a production from an already parsed replacement.
func (r *RuleBuilder) Sequence(replacement domain.Sequence, p float64) *RuleBuilder {
	r.builder.entries = append(r.builder.entries, entry{
		symbol:      r.symbol,
		replacement: replacement.Clone(),
		probability: p,
	})
	return r
}

// Rule switches to another symbol, allowing declarations to be chained.
func (r *RuleBuilder) Rule(sym domain.Symbol) *RuleBuilder {
	return r.builder.Rule(sym)
}

