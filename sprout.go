package sprout

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/sprout/internal/runtime"
	"github.com/aretw0/sprout/pkg/domain"
	"github.com/aretw0/sprout/pkg/mapper"
	"github.com/aretw0/sprout/pkg/ports"
	"github.com/aretw0/sprout/pkg/turtle"
)

// Engine is the high-level entry point for the Sprout library.
// It wraps the internal runtime and provides a simplified API for consumers.
type Engine struct {
	runtime *runtime.Engine
	hooks   domain.LifecycleHooks
	logger  *slog.Logger
	Name    string
}

var _ ports.Generator = (*Engine)(nil)

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithName labels events, metrics and log lines with a grammar name.
func WithName(name string) Option {
	return func(e *Engine) {
		e.Name = name
	}
}

// New initializes a new Sprout Engine for the given rules and axiom.
// The rule set is read during every Advance; it must not be modified concurrently.
func New(rs ports.RuleSet, axiom domain.Sequence, opts ...Option) *Engine {
	eng := &Engine{}
	for _, opt := range opts {
		opt(eng)
	}

	// Ensure logger is initialized (so we don't pass nil to runtime, which would overwrite its default)
	if eng.logger == nil {
		eng.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	eng.runtime = runtime.NewEngine(rs, axiom,
		runtime.WithLifecycleHooks(eng.hooks),
		runtime.WithLogger(eng.logger),
		runtime.WithName(eng.Name),
	)
	if eng.Name != "" {
		eng.logger = eng.logger.With("grammar", eng.Name)
	}
	return eng
}

// Advance performs one rewrite pass. It returns false once a fixed point is reached.
func (e *Engine) Advance(ctx context.Context) (domain.Sequence, bool) {
	return e.runtime.Advance(ctx)
}

// Reset restores the axiom and discards accumulated generations.
func (e *Engine) Reset(ctx context.Context) {
	e.runtime.Reset(ctx)
}

// State returns a copy of the current grammar state.
func (e *Engine) State() domain.Sequence {
	return e.runtime.State()
}

// Axiom returns a copy of the initial grammar state.
func (e *Engine) Axiom() domain.Sequence {
	return e.runtime.Axiom()
}

// Generation returns the number of rewrite passes since creation or the last reset.
func (e *Engine) Generation() int {
	return e.runtime.Generation()
}

// Grow advances at most n generations and returns a snapshot of every generation produced,
// so callers may keep the history. It stops early when a fixed point is reached (fixed is true)
// and checks ctx between generations.
//
// The bound is mandatory: grammars whose symbols always have rules never reach a fixed point.
func (e *Engine) Grow(ctx context.Context, n int) (gens []domain.Generation, fixed bool, err error) {
	if n < 0 {
		return nil, false, fmt.Errorf("%w: negative generation count %d", domain.ErrInvalidConfig, n)
	}

	gens = make([]domain.Generation, 0, n)
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return gens, false, err
		}
		state, ok := e.runtime.Advance(ctx)
		if !ok {
			e.logger.Debug("growth stopped at fixed point", "generation", e.runtime.Generation())
			return gens, true, nil
		}
		// Advance already returns a private copy.
		gens = append(gens, domain.Generation{Index: e.runtime.Generation(), Symbols: state})
	}
	return gens, false, nil
}

// Draw2D interprets seq with a fresh 2D turtle starting at start.
func (e *Engine) Draw2D(ctx context.Context, seq domain.Sequence, start domain.Pose2D, policy mapper.Policy[domain.Bearing2D]) domain.Geometry2D {
	geo := mapper.Map[domain.Position2D, domain.Bearing2D](seq, turtle.New2DFrom(start), policy)
	e.emitMap(ctx, domain.Dimension2D, len(seq), len(geo.Lines), len(geo.Markers))
	return geo
}

// Draw3D interprets seq with a fresh 3D turtle starting at start.
func (e *Engine) Draw3D(ctx context.Context, seq domain.Sequence, start domain.Pose3D, policy mapper.Policy[domain.Bearing3D]) domain.Geometry3D {
	geo := mapper.Map[domain.Position3D, domain.Bearing3D](seq, turtle.New3DFrom(start), policy)
	e.emitMap(ctx, domain.Dimension3D, len(seq), len(geo.Lines), len(geo.Markers))
	return geo
}

func (e *Engine) emitMap(ctx context.Context, dim domain.Dimension, symbols, lines, markers int) {
	e.logger.Debug("sequence mapped",
		"dimension", int(dim),
		"symbols", symbols,
		"lines", lines,
		"markers", markers,
	)
	if e.hooks.OnMap == nil {
		return
	}
	e.hooks.OnMap(ctx, &domain.MapEvent{
		EventBase: domain.EventBase{
			Timestamp: time.Now(),
			Type:      domain.EventMap,
			Grammar:   e.Name,
		},
		Dimension: dim,
		Symbols:   symbols,
		Lines:     lines,
		Markers:   markers,
	})
}
