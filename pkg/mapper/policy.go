package mapper

import (
	"math"

	"github.com/aretw0/sprout/pkg/domain"
	"github.com/aretw0/sprout/pkg/ports"
)

// Policy supplies the movement parameters consulted on every F, + and - symbol.
type Policy[B any] interface {
	// MoveDistance is called once per forward move.
	MoveDistance() float64

	// MoveBearing is called once per turn.
	MoveBearing() B
}

// Fixed is a policy with a constant distance and bearing.
type Fixed[B any] struct {
	Distance float64
	Bearing  B
}

// MoveDistance returns the fixed distance.
func (f Fixed[B]) MoveDistance() float64 {
	return f.Distance
}

// MoveBearing returns the fixed bearing.
func (f Fixed[B]) MoveBearing() B {
	return f.Bearing
}

// JitterOnce2D draws jitter a single time and returns a Fixed policy:
// distance + U(-1, 1) and rotation + U(-1, 1)/(2π).
// Every move of the mapping run then uses the same jittered values.
func JitterOnce2D(distance float64, rotation float64, src ports.RandomSource) Fixed[domain.Bearing2D] {
	return Fixed[domain.Bearing2D]{
		Distance: distance + symmetric(src),
		Bearing: domain.Bearing2D{
			Rotation: rotation + symmetric(src)/(2*math.Pi),
		},
	}
}

func symmetric(src ports.RandomSource) float64 {
	return src.Float64()*2 - 1
}

// JitterPerMove adds a fresh U[0, 1) draw to the distance on every forward move.
// The bearing is not jittered.
type JitterPerMove[B any] struct {
	Distance float64
	Bearing  B
	Source   ports.RandomSource
}

// MoveDistance returns Distance plus a fresh draw.
func (j JitterPerMove[B]) MoveDistance() float64 {
	return j.Distance + j.Source.Float64()
}

// MoveBearing returns the fixed bearing.
func (j JitterPerMove[B]) MoveBearing() B {
	return j.Bearing
}
