package runtime_test

import (
	"context"
	"testing"

	"github.com/aretw0/sprout/internal/runtime"
	"github.com/aretw0/sprout/pkg/domain"
	"github.com/aretw0/sprout/pkg/ports"
	"github.com/aretw0/sprout/pkg/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockRuleSet implements ports.RuleSet with deterministic productions.
type MockRuleSet struct {
	Productions map[domain.Symbol]string
	Lookups     int
}

func (m *MockRuleSet) Lookup(sym domain.Symbol) (domain.Sequence, bool) {
	m.Lookups++
	repl, ok := m.Productions[sym]
	if !ok {
		return nil, false
	}
	return domain.ParseSequence(repl), true
}

func TestEngine_SingleGeneration(t *testing.T) {
	rs := &MockRuleSet{Productions: map[domain.Symbol]string{'X': "F"}}
	engine := runtime.NewEngine(rs, domain.ParseSequence("X"))

	state, ok := engine.Advance(context.Background())

	require.True(t, ok)
	assert.Equal(t, "F", state.String())
	assert.Equal(t, 1, engine.Generation())
}

func TestEngine_TerminalAxiom(t *testing.T) {
	rs := &MockRuleSet{Productions: map[domain.Symbol]string{'Y': "F"}}
	engine := runtime.NewEngine(rs, domain.ParseSequence("X"))

	state, ok := engine.Advance(context.Background())

	assert.False(t, ok)
	assert.Nil(t, state)
	assert.Equal(t, "X", engine.State().String())
	assert.Equal(t, 0, engine.Generation())
}

func TestEngine_FixedPointIsIdempotent(t *testing.T) {
	rs := &MockRuleSet{Productions: map[domain.Symbol]string{'X': "F[+F]"}}
	engine := runtime.NewEngine(rs, domain.ParseSequence("X"))
	ctx := context.Background()

	_, ok := engine.Advance(ctx)
	require.True(t, ok)

	for i := 0; i < 5; i++ {
		state, ok := engine.Advance(ctx)
		assert.False(t, ok)
		assert.Nil(t, state)
		assert.Equal(t, "F[+F]", engine.State().String())
		assert.Equal(t, 1, engine.Generation())
	}
}

func TestEngine_EmptyInputs(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty rule set", func(t *testing.T) {
		engine := runtime.NewEngine(rules.New(), domain.ParseSequence("FX"))
		_, ok := engine.Advance(ctx)
		assert.False(t, ok)
	})

	t.Run("Nil rule set", func(t *testing.T) {
		engine := runtime.NewEngine(nil, domain.ParseSequence("FX"))
		_, ok := engine.Advance(ctx)
		assert.False(t, ok)
	})

	t.Run("Empty axiom", func(t *testing.T) {
		rs := &MockRuleSet{Productions: map[domain.Symbol]string{'X': "F"}}
		engine := runtime.NewEngine(rs, nil)
		_, ok := engine.Advance(ctx)
		assert.False(t, ok)
		assert.Equal(t, 0, rs.Lookups)
	})
}

func TestEngine_NoReexpansionWithinPass(t *testing.T) {
	// A -> AB, B -> A : the classic algae system.
	rs := &MockRuleSet{Productions: map[domain.Symbol]string{'A': "AB", 'B': "A"}}
	engine := runtime.NewEngine(rs, domain.ParseSequence("A"))
	ctx := context.Background()

	expected := []string{"AB", "ABA", "ABAAB", "ABAABABA"}
	for i, want := range expected {
		state, ok := engine.Advance(ctx)
		require.True(t, ok)
		assert.Equal(t, want, state.String(), "generation %d", i+1)
	}
	assert.Equal(t, 1+2+3+5, rs.Lookups, "one lookup per symbol of the previous generation")
}

func TestEngine_IdentityFallbackCountsAsExpansion(t *testing.T) {
	// A rule that never fires still keeps the symbol "active".
	store := rules.New()
	require.NoError(t, store.AddStringWithProbability('X', "F", 0))
	engine := runtime.NewEngine(store, domain.ParseSequence("X"))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		state, ok := engine.Advance(ctx)
		require.True(t, ok)
		assert.Equal(t, "X", state.String())
	}
	assert.Equal(t, 3, engine.Generation())
}

func TestEngine_ResetRestoresAxiom(t *testing.T) {
	rs := &MockRuleSet{Productions: map[domain.Symbol]string{'F': "FF"}}
	engine := runtime.NewEngine(rs, domain.ParseSequence("F"))
	ctx := context.Background()

	engine.Advance(ctx)
	engine.Advance(ctx)
	require.Equal(t, "FFFF", engine.State().String())

	engine.Reset(ctx)

	assert.Equal(t, "F", engine.State().String())
	assert.Equal(t, 0, engine.Generation())
	assert.Equal(t, "F", engine.Axiom().String())
}

func TestEngine_ReturnedStateIsACopy(t *testing.T) {
	rs := &MockRuleSet{Productions: map[domain.Symbol]string{'F': "FF"}}
	axiom := domain.ParseSequence("F")
	engine := runtime.NewEngine(rs, axiom)
	ctx := context.Background()

	axiom[0] = 'Q'
	first, ok := engine.Advance(ctx)
	require.True(t, ok)
	first[0] = 'Z'

	second, _ := engine.Advance(ctx)
	assert.Equal(t, "FFFF", second.String())
	assert.Equal(t, "ZF", first.String())
	assert.Equal(t, "F", engine.Axiom().String(), "the engine keeps its own axiom copy")
}

func TestEngine_Hooks(t *testing.T) {
	rs := &MockRuleSet{Productions: map[domain.Symbol]string{'X': "FX", 'F': "F"}}

	var generations []*domain.GenerationEvent
	var fixedPoints, resets int
	hooks := domain.LifecycleHooks{
		OnGeneration: func(_ context.Context, e *domain.GenerationEvent) { generations = append(generations, e) },
		OnFixedPoint: func(_ context.Context, _ *domain.GenerationEvent) { fixedPoints++ },
		OnReset:      func(_ context.Context, _ *domain.EventBase) { resets++ },
	}
	engine := runtime.NewEngine(rs, domain.ParseSequence("X"),
		runtime.WithLifecycleHooks(hooks),
		runtime.WithName("hooked"),
	)
	ctx := context.Background()

	engine.Advance(ctx)
	engine.Advance(ctx)
	engine.Reset(ctx)

	require.Len(t, generations, 2)
	assert.Equal(t, 2, generations[1].Index)
	assert.Equal(t, 3, generations[1].Length)
	assert.Equal(t, 2, generations[1].Expanded)
	assert.Equal(t, domain.EventGeneration, generations[1].Type)
	assert.Equal(t, "hooked", generations[1].Grammar)
	assert.Equal(t, 0, fixedPoints)
	assert.Equal(t, 1, resets)

	terminal := runtime.NewEngine(nil, domain.ParseSequence("F"), runtime.WithLifecycleHooks(hooks))
	terminal.Advance(ctx)
	assert.Equal(t, 1, fixedPoints)
}

func TestEngine_SeededDeterminism(t *testing.T) {
	run := func() []string {
		store := rules.New(rules.WithRandom(ports.NewSeededSource(2024)))
		require.NoError(t, store.AddStringWithProbability('X', "F+[[X]-X]-F[-FX]+X", 0.9))
		require.NoError(t, store.AddStringWithProbability('X', "M", 0.25))
		require.NoError(t, store.AddString('F', "FF"))

		engine := runtime.NewEngine(store, domain.ParseSequence("X"))
		var out []string
		for i := 0; i < 4; i++ {
			state, ok := engine.Advance(context.Background())
			require.True(t, ok)
			out = append(out, state.String())
		}
		return out
	}

	assert.Equal(t, run(), run())
}
