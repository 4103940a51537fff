package turtle

import (
	"math"

	"github.com/aretw0/sprout/pkg/domain"
	"github.com/aretw0/sprout/pkg/ports"
)

// Turtle2D moves on the plane. Rotation 0 points along +X.
type Turtle2D struct {
	stack    orientationStack[domain.Position2D, domain.Bearing2D]
	position domain.Position2D
	bearing  domain.Bearing2D
}

var _ ports.Turtle[domain.Position2D, domain.Bearing2D] = (*Turtle2D)(nil)

// New2D creates a turtle at the origin facing +X.
func New2D() *Turtle2D {
	return &Turtle2D{}
}

// New2DFrom creates a turtle at the given pose.
func New2DFrom(pose domain.Pose2D) *Turtle2D {
	return &Turtle2D{
		position: pose.Position,
		bearing:  pose.Bearing,
	}
}

// MoveForward advances by (d·cos θ, d·sin θ).
func (t *Turtle2D) MoveForward(dist float64) {
	t.position = domain.Position2D{
		X: t.position.X + dist*math.Cos(t.bearing.Rotation),
		Y: t.position.Y + dist*math.Sin(t.bearing.Rotation),
	}
}

// Turn adds delta's rotation to the current bearing.
func (t *Turtle2D) Turn(delta domain.Bearing2D) {
	t.bearing = domain.Bearing2D{Rotation: t.bearing.Rotation + delta.Rotation}
}

// Push saves the current pose.
func (t *Turtle2D) Push() {
	t.stack.push(t.position, t.bearing)
}

// Pop restores the last saved pose, if any.
func (t *Turtle2D) Pop() {
	if p, b, ok := t.stack.pop(); ok {
		t.position, t.bearing = p, b
	}
}

// Position returns the current position.
func (t *Turtle2D) Position() domain.Position2D {
	return t.position
}

// Bearing returns the current bearing.
func (t *Turtle2D) Bearing() domain.Bearing2D {
	return t.bearing
}

// Pose returns the current position and bearing together.
func (t *Turtle2D) Pose() domain.Pose2D {
	return domain.Pose2D{Position: t.position, Bearing: t.bearing}
}

// Depth returns the number of saved poses.
func (t *Turtle2D) Depth() int {
	return t.stack.depth()
}
