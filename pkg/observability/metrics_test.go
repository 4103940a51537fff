package observability_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/aretw0/sprout/internal/runtime"
	"github.com/aretw0/sprout/pkg/domain"
	"github.com/aretw0/sprout/pkg/observability"
	"github.com/aretw0/sprout/pkg/rules"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_RecordsEngineActivity(t *testing.T) {
	m := observability.NewMetrics()

	store := rules.New()
	require.NoError(t, store.AddString('A', "AB"))
	require.NoError(t, store.AddString('B', "A"))

	engine := runtime.NewEngine(store, domain.ParseSequence("A"),
		runtime.WithLifecycleHooks(m.Hooks()),
		runtime.WithName("algae"),
	)
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		engine.Advance(ctx)
	}
	engine.Reset(ctx)

	var buf bytes.Buffer
	require.NoError(t, m.WriteText(&buf))
	out := buf.String()

	assert.Contains(t, out, `sprout_generations_total{grammar="algae"} 3`)
	assert.Contains(t, out, `sprout_state_length_symbols{grammar="algae"} 5`)
	assert.Contains(t, out, `sprout_resets_total{grammar="algae"} 1`)
	assert.Contains(t, out, `sprout_expanded_symbols_count{grammar="algae"} 3`)

	count, err := testutil.GatherAndCount(m.Registry(), "sprout_expanded_symbols")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestMetrics_FixedPointAndMap(t *testing.T) {
	m := observability.NewMetrics()
	hooks := m.Hooks()
	ctx := context.Background()

	hooks.OnFixedPoint(ctx, &domain.GenerationEvent{EventBase: domain.EventBase{Grammar: "g"}})
	hooks.OnMap(ctx, &domain.MapEvent{
		EventBase: domain.EventBase{Grammar: "g"},
		Dimension: domain.Dimension2D,
		Lines:     7,
		Markers:   2,
	})

	var buf bytes.Buffer
	require.NoError(t, m.WriteText(&buf))
	out := buf.String()

	assert.Contains(t, out, `sprout_fixed_points_total{grammar="g"} 1`)
	assert.Contains(t, out, `sprout_lines_total{dimension="2d",grammar="g"} 7`)
	assert.Contains(t, out, `sprout_markers_total{dimension="2d",grammar="g"} 2`)
}
