package turtle

import (
	"math"

	"github.com/aretw0/sprout/pkg/domain"
	"github.com/aretw0/sprout/pkg/ports"
)

// Turtle3D moves in space using a spherical bearing.
// With declination 0 it points along +Z.
type Turtle3D struct {
	stack    orientationStack[domain.Position3D, domain.Bearing3D]
	position domain.Position3D
	bearing  domain.Bearing3D
}

var _ ports.Turtle[domain.Position3D, domain.Bearing3D] = (*Turtle3D)(nil)

// New3D creates a turtle at the origin with a zero bearing.
func New3D() *Turtle3D {
	return &Turtle3D{}
}

// New3DFrom creates a turtle at the given pose.
func New3DFrom(pose domain.Pose3D) *Turtle3D {
	return &Turtle3D{
		position: pose.Position,
		bearing:  pose.Bearing,
	}
}

// MoveForward advances by (d·cos φ·sin δ, d·sin φ·sin δ, d·cos δ).
func (t *Turtle3D) MoveForward(dist float64) {
	az, dec := t.bearing.Azimuth, t.bearing.Declination
	t.position = domain.Position3D{
		X: t.position.X + dist*math.Cos(az)*math.Sin(dec),
		Y: t.position.Y + dist*math.Sin(az)*math.Sin(dec),
		Z: t.position.Z + dist*math.Cos(dec),
	}
}

// Turn adds azimuth and declination independently.
func (t *Turtle3D) Turn(delta domain.Bearing3D) {
	t.bearing = domain.Bearing3D{
		Azimuth:     t.bearing.Azimuth + delta.Azimuth,
		Declination: t.bearing.Declination + delta.Declination,
	}
}

// Push saves the current pose.
func (t *Turtle3D) Push() {
	t.stack.push(t.position, t.bearing)
}

// Pop restores the last saved pose, if any.
func (t *Turtle3D) Pop() {
	if p, b, ok := t.stack.pop(); ok {
		t.position, t.bearing = p, b
	}
}

// Position returns the current position.
func (t *Turtle3D) Position() domain.Position3D {
	return t.position
}

// Bearing returns the current bearing.
func (t *Turtle3D) Bearing() domain.Bearing3D {
	return t.bearing
}

// Pose returns the current position and bearing together.
func (t *Turtle3D) Pose() domain.Pose3D {
	return domain.Pose3D{Position: t.position, Bearing: t.bearing}
}

// Depth returns the number of saved poses.
func (t *Turtle3D) Depth() int {
	return t.stack.depth()
}
