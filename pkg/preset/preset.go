package preset

import (
	"fmt"

	"github.com/aretw0/sprout/pkg/domain"
	"github.com/aretw0/sprout/pkg/dsl"
	"github.com/aretw0/sprout/pkg/mapper"
	"github.com/aretw0/sprout/pkg/ports"
	"github.com/aretw0/sprout/pkg/rules"
)

// Preset is a complete L-system configuration.
type Preset struct {
	Name        string
	Description string
	Dimension   domain.Dimension
	Axiom       string
	Generations int

	// Grammar declares the production rules.
	Grammar func(b *dsl.Builder)

	// Distance is the base forward step.
	Distance float64
	// Jitter enables random variation: fixed once per run in 2D, per forward move in 3D.
	Jitter bool

	Start2D domain.Pose2D
	Turn2D  domain.Bearing2D
	Start3D domain.Pose3D
	Turn3D  domain.Bearing3D
}

// Rules builds a fresh rule store for the preset grammar.
func (p Preset) Rules(opts ...rules.Option) (*rules.Store, error) {
	b := dsl.New()
	if p.Grammar != nil {
		p.Grammar(b)
	}
	store, err := b.Build(opts...)
	if err != nil {
		return nil, fmt.Errorf("preset %s: %w", p.Name, err)
	}
	return store, nil
}

// AxiomSequence returns the parsed axiom.
func (p Preset) AxiomSequence() domain.Sequence {
	return domain.ParseSequence(p.Axiom)
}

// Policy2D returns the 2D movement policy. With Jitter, src is consulted once, here.
func (p Preset) Policy2D(src ports.RandomSource) mapper.Policy[domain.Bearing2D] {
	if p.Jitter && src != nil {
		return mapper.JitterOnce2D(p.Distance, p.Turn2D.Rotation, src)
	}
	return mapper.Fixed[domain.Bearing2D]{Distance: p.Distance, Bearing: p.Turn2D}
}

// Policy3D returns the 3D movement policy. With Jitter, src is consulted on every forward move.
func (p Preset) Policy3D(src ports.RandomSource) mapper.Policy[domain.Bearing3D] {
	if p.Jitter && src != nil {
		return mapper.JitterPerMove[domain.Bearing3D]{Distance: p.Distance, Bearing: p.Turn3D, Source: src}
	}
	return mapper.Fixed[domain.Bearing3D]{Distance: p.Distance, Bearing: p.Turn3D}
}

// Validate checks the fields a run depends on.
func (p Preset) Validate() error {
	switch {
	case p.Name == "":
		return fmt.Errorf("%w: preset name is required", domain.ErrInvalidConfig)
	case !p.Dimension.Valid():
		return fmt.Errorf("preset %s: %w: %d", p.Name, domain.ErrUnknownDimension, p.Dimension)
	case p.Generations < 0:
		return fmt.Errorf("%w: preset %s has negative generations", domain.ErrInvalidConfig, p.Name)
	}
	return nil
}
