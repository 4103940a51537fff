package sprout_test

import (
	"context"
	"testing"

	"github.com/aretw0/sprout"
	"github.com/aretw0/sprout/pkg/domain"
	"github.com/aretw0/sprout/pkg/dsl"
	"github.com/aretw0/sprout/pkg/mapper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func algae(t *testing.T) *sprout.Engine {
	t.Helper()
	b := dsl.New()
	b.Rule('A').To("AB")
	b.Rule('B').To("A")
	store, err := b.Build()
	require.NoError(t, err)
	return sprout.New(store, domain.ParseSequence("A"), sprout.WithName("algae"))
}

func TestGrow_ReturnsEveryGeneration(t *testing.T) {
	eng := algae(t)

	gens, fixed, err := eng.Grow(context.Background(), 4)
	require.NoError(t, err)
	assert.False(t, fixed)
	require.Len(t, gens, 4)

	want := []string{"AB", "ABA", "ABAAB", "ABAABABA"}
	for i, g := range gens {
		assert.Equal(t, i+1, g.Index)
		assert.Equal(t, want[i], g.Symbols.String())
	}
	assert.Equal(t, 4, eng.Generation())
	assert.Equal(t, "ABAABABA", eng.State().String())
}

func TestGrow_SnapshotsAreIndependent(t *testing.T) {
	eng := algae(t)
	gens, _, err := eng.Grow(context.Background(), 2)
	require.NoError(t, err)

	gens[0].Symbols[0] = 'Z'
	assert.Equal(t, "ABA", eng.State().String())
}

func TestGrow_StopsAtFixedPoint(t *testing.T) {
	b := dsl.New()
	b.Rule('X').To("F")
	store, err := b.Build()
	require.NoError(t, err)

	eng := sprout.New(store, domain.ParseSequence("X"))
	gens, fixed, err := eng.Grow(context.Background(), 10)
	require.NoError(t, err)
	assert.True(t, fixed)
	require.Len(t, gens, 1)
	assert.Equal(t, "F", gens[0].Symbols.String())
}

func TestGrow_ZeroAndNegative(t *testing.T) {
	eng := algae(t)

	gens, fixed, err := eng.Grow(context.Background(), 0)
	require.NoError(t, err)
	assert.False(t, fixed)
	assert.Empty(t, gens)
	assert.Equal(t, "A", eng.State().String())

	_, _, err = eng.Grow(context.Background(), -1)
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}

func TestGrow_HonorsCancellation(t *testing.T) {
	eng := algae(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	gens, _, err := eng.Grow(ctx, 5)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, gens)
	assert.Equal(t, 0, eng.Generation())
}

func TestReset_RestoresAxiom(t *testing.T) {
	eng := algae(t)
	_, _, err := eng.Grow(context.Background(), 3)
	require.NoError(t, err)

	eng.Reset(context.Background())
	assert.Equal(t, "A", eng.State().String())
	assert.Equal(t, "A", eng.Axiom().String())
	assert.Equal(t, 0, eng.Generation())
}

func TestDraw_FiresMapHook(t *testing.T) {
	var events []*domain.MapEvent
	hooks := domain.LifecycleHooks{
		OnMap: func(_ context.Context, e *domain.MapEvent) { events = append(events, e) },
	}
	eng := sprout.New(nil, domain.ParseSequence("F"), sprout.WithName("probe"), sprout.WithLifecycleHooks(hooks))

	geo := eng.Draw2D(context.Background(), domain.ParseSequence("F[F]FM"), domain.Pose2D{},
		mapper.Fixed[domain.Bearing2D]{Distance: 1})
	assert.Len(t, geo.Lines, 3)
	assert.Len(t, geo.Markers, 1)

	geo3 := eng.Draw3D(context.Background(), domain.ParseSequence("FF"), domain.Pose3D{},
		mapper.Fixed[domain.Bearing3D]{Distance: 2})
	assert.Len(t, geo3.Lines, 2)
	assert.InDelta(t, 4.0, geo3.Lines[1].End.Z, 1e-9)

	require.Len(t, events, 2)
	assert.Equal(t, domain.Dimension2D, events[0].Dimension)
	assert.Equal(t, 6, events[0].Symbols)
	assert.Equal(t, 3, events[0].Lines)
	assert.Equal(t, 1, events[0].Markers)
	assert.Equal(t, "probe", events[0].Grammar)
	assert.Equal(t, domain.Dimension3D, events[1].Dimension)
}
