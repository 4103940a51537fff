package ports

import (
	"context"

	"github.com/aretw0/sprout/pkg/domain"
)

// Generator defines the grammar engine as seen by adapters (CLI, metrics, examples).
type Generator interface {
	// Advance performs one rewrite pass. ok is false when a fixed point was reached.
	Advance(ctx context.Context) (state domain.Sequence, ok bool)

	// Reset restores the axiom and discards accumulated generations.
	Reset(ctx context.Context)

	// State returns a copy of the current grammar state.
	State() domain.Sequence

	// Generation returns the number of rewrite passes applied since the last reset.
	Generation() int
}
