package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/sprout"
	"github.com/aretw0/sprout/internal/config"
	"github.com/aretw0/sprout/internal/export"
	"github.com/aretw0/sprout/pkg/observability"
	"github.com/aretw0/sprout/pkg/preset"
	"github.com/aretw0/sprout/pkg/rules"
)

// harvest resolves the preset named by the profile and runs it.
func harvest(ctx context.Context, opts Options, profile config.Profile, logger *slog.Logger) (*sprout.Harvest, error) {
	p, err := preset.Default().Get(profile.Preset)
	if err != nil {
		return nil, err
	}
	p = profile.ApplyTo(p)

	hooks := createDebugHooks(logger)
	var metrics *observability.Metrics
	if opts.Metrics {
		metrics = observability.NewMetrics()
		hooks = hooks.Merge(metrics.Hooks())
	}

	runner := sprout.NewRunner()
	runner.Generations = profile.GenerationCount(p)
	runner.Policy = rules.ProbabilityPolicy(profile.Probability)
	runner.Logger = logger
	runner.Hooks = hooks
	if profile.Seed != nil {
		runner.Seed = *profile.Seed
		runner.Seeded = true
	}

	logger.Info("Growing", "preset", p.Name, "generations", runner.Generations)
	h, err := runner.Run(ctx, p)
	if err != nil {
		return nil, err
	}
	logger.Info("Harvested", "preset", p.Name, "seed", h.Seed, "symbols", len(h.Final), "fixed_point", h.FixedPoint)

	if metrics != nil {
		if err := metrics.WriteText(opts.stderr()); err != nil {
			return nil, fmt.Errorf("failed to write metrics: %w", err)
		}
	}
	return h, nil
}

// Grow prints every generation of the preset, one per line.
func Grow(ctx context.Context, opts Options, presetName string) error {
	profile, err := LoadProfile(opts, presetName)
	if err != nil {
		return err
	}
	logger := createLogger(opts.stderr(), profile)

	h, err := harvest(ctx, opts, profile, logger)
	if err != nil {
		return handleExecutionError(ctx, opts.stderr(), err)
	}

	out := opts.stdout()
	fmt.Fprintf(out, "0: %s\n", h.Axiom)
	for _, g := range h.Generations {
		fmt.Fprintf(out, "%d: %s\n", g.Index, g.Symbols)
	}
	if h.FixedPoint {
		printSystemMessage(opts.stderr(), "Fixed point reached after %d generations.", len(h.Generations))
	}
	return nil
}

// Draw maps the preset's last generation and writes the geometry in the profile format.
func Draw(ctx context.Context, opts Options, presetName string) error {
	profile, err := LoadProfile(opts, presetName)
	if err != nil {
		return err
	}
	logger := createLogger(opts.stderr(), profile)

	h, err := harvest(ctx, opts, profile, logger)
	if err != nil {
		return handleExecutionError(ctx, opts.stderr(), err)
	}

	doc := export.FromHarvest(h)
	if profile.Format == config.FormatText {
		return export.WriteText(opts.stdout(), doc)
	}
	return export.WriteJSON(opts.stdout(), doc, profile.Pretty)
}
