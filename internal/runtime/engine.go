package runtime

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/sprout/pkg/domain"
	"github.com/aretw0/sprout/pkg/ports"
)

// Engine is the core L-system rewriter.
// It owns the grammar state and rewrites it one generation per Advance call.
type Engine struct {
	rules      ports.RuleSet
	axiom      domain.Sequence
	state      domain.Sequence
	generation int
	hooks      domain.LifecycleHooks
	logger     *slog.Logger
	name       string
}

var _ ports.Generator = (*Engine)(nil)

// NewEngine creates an engine seeded with axiom. A nil rule set behaves as an empty one.
func NewEngine(rules ports.RuleSet, axiom domain.Sequence, opts ...EngineOption) *Engine {
	e := &Engine{
		rules:  rules,
		axiom:  axiom.Clone(),
		state:  axiom.Clone(),
		logger: slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.name != "" {
		e.logger = e.logger.With("grammar", e.name)
	}
	return e
}

// Advance performs one rewrite pass over the current state.
//
// Every symbol of the current generation is replaced by the rule set's lookup result, building
// a fresh sequence; symbols inserted during the pass are not rewritten again until the next call.
// It returns a copy of the new state and true when at least one symbol expanded (the identity
// fallback of a ruled symbol counts). Otherwise the state is a fixed point: it is left unchanged
// and Advance returns nil, false.
//
// Grammars whose symbols always have rules never reach a fixed point; callers must bound the
// number of calls.
func (e *Engine) Advance(ctx context.Context) (domain.Sequence, bool) {
	next := make(domain.Sequence, 0, len(e.state))
	expanded := 0

	for _, sym := range e.state {
		if e.rules != nil {
			if replacement, ok := e.rules.Lookup(sym); ok {
				next = append(next, replacement...)
				expanded++
				continue
			}
		}
		next = append(next, sym)
	}

	if expanded == 0 {
		e.logger.Debug("fixed point reached", "generation", e.generation, "length", len(e.state))
		e.emitFixedPoint(ctx)
		return nil, false
	}

	e.state = next
	e.generation++

	e.logger.Debug("generation advanced",
		"generation", e.generation,
		"length", len(e.state),
		"expanded", expanded,
	)
	e.emitGeneration(ctx, expanded)

	return e.state.Clone(), true
}

// Reset restores the axiom and discards accumulated generations.
func (e *Engine) Reset(ctx context.Context) {
	e.state = e.axiom.Clone()
	e.generation = 0
	e.logger.Debug("engine reset", "length", len(e.state))

	if e.hooks.OnReset != nil {
		e.hooks.OnReset(ctx, &domain.EventBase{
			Timestamp: time.Now(),
			Type:      domain.EventReset,
			Grammar:   e.name,
		})
	}
}

// State returns a copy of the current grammar state.
func (e *Engine) State() domain.Sequence {
	return e.state.Clone()
}

// Axiom returns a copy of the initial grammar state.
func (e *Engine) Axiom() domain.Sequence {
	return e.axiom.Clone()
}

// Generation returns the number of successful rewrite passes since creation or the last reset.
func (e *Engine) Generation() int {
	return e.generation
}

func (e *Engine) emitGeneration(ctx context.Context, expanded int) {
	if e.hooks.OnGeneration == nil {
		return
	}
	e.hooks.OnGeneration(ctx, e.event(domain.EventGeneration, expanded))
}

func (e *Engine) emitFixedPoint(ctx context.Context) {
	if e.hooks.OnFixedPoint == nil {
		return
	}
	e.hooks.OnFixedPoint(ctx, e.event(domain.EventFixedPoint, 0))
}

func (e *Engine) event(kind domain.EventType, expanded int) *domain.GenerationEvent {
	return &domain.GenerationEvent{
		EventBase: domain.EventBase{
			Timestamp: time.Now(),
			Type:      kind,
			Grammar:   e.name,
		},
		Index:    e.generation,
		Length:   len(e.state),
		Expanded: expanded,
	}
}
