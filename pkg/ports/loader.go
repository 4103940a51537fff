package ports

import "github.com/aretw0/sprout/pkg/domain"

// RuleSet defines how the engine resolves production rules.
// This allows the rule storage (map, builder, test fake) to be decoupled from the engine.
type RuleSet interface {
	// Lookup returns the replacement for one occurrence of sym.
	// ok is false when sym is terminal (no rule registered). When ok is true the
	// replacement may be the identity sequence [sym]; it still counts as an expansion.
	Lookup(sym domain.Symbol) (replacement domain.Sequence, ok bool)
}
