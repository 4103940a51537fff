package mapper_test

import (
	"math"
	"testing"

	"github.com/aretw0/sprout/internal/testutils"
	"github.com/aretw0/sprout/pkg/domain"
	"github.com/aretw0/sprout/pkg/mapper"
	"github.com/aretw0/sprout/pkg/ports"
	"github.com/stretchr/testify/assert"
)

func TestJitterOnce2D(t *testing.T) {
	p := mapper.JitterOnce2D(5, math.Pi/6, testutils.NewScriptedSource(0.75))

	assert.InDelta(t, 5.5, p.MoveDistance(), eps)
	assert.InDelta(t, math.Pi/6+0.5/(2*math.Pi), p.MoveBearing().Rotation, eps)

	// Fixed after construction.
	assert.Equal(t, p.MoveDistance(), p.MoveDistance())
}

func TestJitterOnce2D_Bounds(t *testing.T) {
	src := ports.NewSeededSource(3)
	for i := 0; i < 100; i++ {
		p := mapper.JitterOnce2D(5, 0, src)
		assert.GreaterOrEqual(t, p.Distance, 4.0)
		assert.Less(t, p.Distance, 6.0)
		assert.LessOrEqual(t, math.Abs(p.Bearing.Rotation), 1/(2*math.Pi))
	}
}

func TestJitterPerMove(t *testing.T) {
	src := testutils.NewScriptedSource(0.1, 0.9)
	p := mapper.JitterPerMove[domain.Bearing2D]{
		Distance: 1,
		Bearing:  domain.Bearing2D{Rotation: 0.2},
		Source:   src,
	}

	assert.InDelta(t, 1.1, p.MoveDistance(), eps)
	assert.InDelta(t, 1.9, p.MoveDistance(), eps)
	assert.Equal(t, domain.Bearing2D{Rotation: 0.2}, p.MoveBearing())
	assert.Equal(t, 2, src.Drawn, "the bearing draws no entropy")
}
