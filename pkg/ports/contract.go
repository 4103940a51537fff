package ports

import (
	"testing"

	"github.com/aretw0/sprout/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunTurtleContract runs a suite of tests to verify that a Turtle implementation
// adheres to the defined interface contract.
// newTurtle must return a fresh turtle whose MoveForward changes its position,
// and delta must be a non-zero bearing.
func RunTurtleContract[P comparable, B comparable](t *testing.T, newTurtle func() Turtle[P, B], delta B) {
	t.Helper()

	t.Run("MoveForward changes position only", func(t *testing.T) {
		tt := newTurtle()
		p0, b0 := tt.Position(), tt.Bearing()

		tt.MoveForward(2)

		assert.NotEqual(t, p0, tt.Position())
		assert.Equal(t, b0, tt.Bearing())
	})

	t.Run("Turn changes bearing only", func(t *testing.T) {
		tt := newTurtle()
		p0, b0 := tt.Position(), tt.Bearing()

		tt.Turn(delta)

		assert.Equal(t, p0, tt.Position())
		assert.NotEqual(t, b0, tt.Bearing())
	})

	t.Run("Pop on empty stack is a no-op", func(t *testing.T) {
		tt := newTurtle()
		tt.MoveForward(1)
		tt.Turn(delta)
		p0, b0 := tt.Position(), tt.Bearing()

		tt.Pop()
		tt.Pop()

		assert.Equal(t, p0, tt.Position())
		assert.Equal(t, b0, tt.Bearing())
	})

	t.Run("Push and Pop restore pose", func(t *testing.T) {
		tt := newTurtle()
		p0, b0 := tt.Position(), tt.Bearing()

		tt.Push()
		tt.MoveForward(3)
		tt.Turn(delta)
		tt.MoveForward(3)
		require.NotEqual(t, p0, tt.Position())
		tt.Pop()

		assert.Equal(t, p0, tt.Position())
		assert.Equal(t, b0, tt.Bearing())
	})

	t.Run("Stack is LIFO", func(t *testing.T) {
		tt := newTurtle()
		p0 := tt.Position()

		tt.Push()
		tt.MoveForward(1)
		p1, b1 := tt.Position(), tt.Bearing()
		tt.Push()
		tt.Turn(delta)
		tt.MoveForward(1)

		tt.Pop()
		assert.Equal(t, p1, tt.Position())
		assert.Equal(t, b1, tt.Bearing())

		tt.Pop()
		assert.Equal(t, p0, tt.Position())
	})
}

// RunRuleSetContract verifies the lookup semantics every RuleSet must honour:
// terminal symbols report no expansion and ruled symbols always expand.
// rs must have exactly one certain rule ruled -> replacement and no rule for terminal.
func RunRuleSetContract(t *testing.T, rs RuleSet, ruled domain.Symbol, replacement domain.Sequence, terminal domain.Symbol) {
	t.Helper()

	t.Run("Terminal symbol does not expand", func(t *testing.T) {
		got, ok := rs.Lookup(terminal)
		assert.False(t, ok)
		assert.Nil(t, got)
	})

	t.Run("Ruled symbol expands", func(t *testing.T) {
		for i := 0; i < 10; i++ {
			got, ok := rs.Lookup(ruled)
			require.True(t, ok)
			assert.Equal(t, replacement, got)
		}
	})

	t.Run("Replacement is a copy", func(t *testing.T) {
		got, ok := rs.Lookup(ruled)
		require.True(t, ok)
		if len(got) > 0 {
			got[0] = terminal
		}
		again, _ := rs.Lookup(ruled)
		assert.Equal(t, replacement, again)
	})
}
