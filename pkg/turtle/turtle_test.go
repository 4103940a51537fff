package turtle_test

import (
	"math"
	"testing"

	"github.com/aretw0/sprout/pkg/domain"
	"github.com/aretw0/sprout/pkg/ports"
	"github.com/aretw0/sprout/pkg/turtle"
	"github.com/stretchr/testify/assert"
)

const eps = 1e-9

func TestTurtle2D_Contract(t *testing.T) {
	ports.RunTurtleContract(t, func() ports.Turtle[domain.Position2D, domain.Bearing2D] {
		return turtle.New2D()
	}, domain.Bearing2D{Rotation: math.Pi / 6})
}

func TestTurtle3D_Contract(t *testing.T) {
	ports.RunTurtleContract(t, func() ports.Turtle[domain.Position3D, domain.Bearing3D] {
		return turtle.New3D()
	}, domain.Bearing3D{Azimuth: math.Pi / 4, Declination: math.Pi / 8})
}

func TestTurtle2D_MoveForward(t *testing.T) {
	tt := turtle.New2DFrom(domain.Pose2D{
		Position: domain.Position2D{X: 1, Y: 1},
		Bearing:  domain.Bearing2D{Rotation: -math.Pi / 2},
	})

	tt.MoveForward(5)

	assert.InDelta(t, 1, tt.Position().X, eps)
	assert.InDelta(t, -4, tt.Position().Y, eps)

	tt.Turn(domain.Bearing2D{Rotation: math.Pi / 2})
	tt.MoveForward(2)

	assert.InDelta(t, 3, tt.Position().X, eps)
	assert.InDelta(t, -4, tt.Position().Y, eps)
	assert.InDelta(t, 0, tt.Bearing().Rotation, eps)
}

func TestTurtle3D_MoveForward(t *testing.T) {
	tt := turtle.New3D()

	tt.MoveForward(2)
	assert.InDelta(t, 2, tt.Position().Z, eps, "zero declination points along +Z")

	tt.Turn(domain.Bearing3D{Azimuth: math.Pi / 2, Declination: math.Pi / 2})
	tt.MoveForward(3)

	p := tt.Position()
	assert.InDelta(t, 0, p.X, eps)
	assert.InDelta(t, 3, p.Y, eps)
	assert.InDelta(t, 2, p.Z, eps)
}

func TestTurtle_Depth(t *testing.T) {
	tt := turtle.New2D()
	assert.Equal(t, 0, tt.Depth())

	tt.Push()
	tt.Push()
	assert.Equal(t, 2, tt.Depth())

	tt.Pop()
	tt.Pop()
	tt.Pop()
	assert.Equal(t, 0, tt.Depth())

	t3 := turtle.New3D()
	t3.Push()
	assert.Equal(t, 1, t3.Depth())
	assert.Equal(t, domain.Pose3D{}, t3.Pose())
}
