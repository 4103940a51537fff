package mapper

import (
	"github.com/aretw0/sprout/pkg/domain"
	"github.com/aretw0/sprout/pkg/ports"
)

// Map walks seq with t and policy, returning the traced lines and markers.
// The turtle is mutated; callers normally pass a fresh one per run.
func Map[P any, B domain.Flipper[B]](seq domain.Sequence, t ports.Turtle[P, B], policy Policy[B]) domain.Geometry[P] {
	out := domain.Geometry[P]{
		Lines:   []domain.Line[P]{},
		Markers: []P{},
	}
	for _, sym := range seq {
		switch sym {
		case domain.SymbolDraw:
			start := t.Position()
			t.MoveForward(policy.MoveDistance())
			out.Lines = append(out.Lines, domain.Line[P]{Start: start, End: t.Position()})
		case domain.SymbolTurn:
			t.Turn(policy.MoveBearing())
		case domain.SymbolTurnFlipped:
			t.Turn(policy.MoveBearing().Flip())
		case domain.SymbolPush:
			t.Push()
		case domain.SymbolPop:
			t.Pop()
		case domain.SymbolMarker:
			out.Markers = append(out.Markers, t.Position())
		}
	}
	return out
}
