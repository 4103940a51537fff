package sprout

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/aretw0/sprout/pkg/domain"
	"github.com/aretw0/sprout/pkg/ports"
	"github.com/aretw0/sprout/pkg/preset"
	"github.com/aretw0/sprout/pkg/rules"
	"github.com/google/uuid"
)

// Runner grows a preset end to end: rules, generations and geometry.
// One seeded random source is owned per run and shared, in order, by rule
// selection and the movement policy, so equal seeds give equal harvests.
type Runner struct {
	// Seed fixes the random source when Seeded is true. Otherwise a seed is drawn and reported.
	Seed   uint64
	Seeded bool

	// Generations overrides the preset default when non-negative.
	Generations int

	Policy rules.ProbabilityPolicy
	Logger *slog.Logger
	Hooks  domain.LifecycleHooks
}

// NewRunner creates a Runner that uses preset defaults and a fresh seed.
func NewRunner() *Runner {
	return &Runner{
		Generations: -1,
		Policy:      rules.PolicyPermissive,
	}
}

// Harvest is the outcome of a run.
type Harvest struct {
	RunID       string              `json:"run_id"`
	Preset      string              `json:"preset"`
	Dimension   domain.Dimension    `json:"dimension"`
	Seed        uint64              `json:"seed"`
	FixedPoint  bool                `json:"fixed_point"`
	Axiom       domain.Sequence     `json:"axiom"`
	Generations []domain.Generation `json:"generations"`
	Final       domain.Sequence     `json:"final"`

	// Exactly one of the geometries is set, matching Dimension.
	Geometry2D *domain.Geometry2D `json:"geometry_2d,omitempty"`
	Geometry3D *domain.Geometry3D `json:"geometry_3d,omitempty"`
}

// Run builds the preset grammar, grows it and maps the last generation.
func (r *Runner) Run(ctx context.Context, p preset.Preset) (*Harvest, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	seed := r.Seed
	if !r.Seeded {
		seed = rand.Uint64()
	}
	src := ports.NewSeededSource(seed)
	runID := uuid.NewString()

	logger := r.Logger
	if logger != nil {
		logger = logger.With("run_id", runID)
	}

	opts := []rules.Option{rules.WithRandom(src), rules.WithProbabilityPolicy(r.Policy)}
	if logger != nil {
		opts = append(opts, rules.WithLogger(logger))
	}
	store, err := p.Rules(opts...)
	if err != nil {
		return nil, err
	}

	n := p.Generations
	if r.Generations >= 0 {
		n = r.Generations
	}

	eng := New(store, p.AxiomSequence(),
		WithName(p.Name),
		WithLogger(logger),
		WithLifecycleHooks(r.Hooks),
	)
	gens, fixed, err := eng.Grow(ctx, n)
	if err != nil {
		return nil, fmt.Errorf("grow %s: %w", p.Name, err)
	}

	h := &Harvest{
		RunID:       runID,
		Preset:      p.Name,
		Dimension:   p.Dimension,
		Seed:        seed,
		FixedPoint:  fixed,
		Axiom:       eng.Axiom(),
		Generations: gens,
		Final:       eng.State(),
	}

	switch p.Dimension {
	case domain.Dimension2D:
		geo := eng.Draw2D(ctx, h.Final, p.Start2D, p.Policy2D(src))
		h.Geometry2D = &geo
	case domain.Dimension3D:
		geo := eng.Draw3D(ctx, h.Final, p.Start3D, p.Policy3D(src))
		h.Geometry3D = &geo
	}
	return h, nil
}
