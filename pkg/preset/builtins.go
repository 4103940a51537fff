package preset

import (
	"math"

	"github.com/aretw0/sprout/pkg/domain"
	"github.com/aretw0/sprout/pkg/dsl"
)

// Builtins returns the presets shipped with sprout.
func Builtins() []Preset {
	return []Preset{
		Plant2D(),
		Plant3D(),
		Fern2D(),
		Koch2D(),
	}
}

// Plant2D is a flowering shrub: branches may stop early and bloom (M markers).
// It grows upward on a y-down canvas.
func Plant2D() Preset {
	return Preset{
		Name:        "plant-2d",
		Description: "Stochastic flowering shrub with blooms on terminated branches",
		Dimension:   domain.Dimension2D,
		Axiom:       "X",
		Generations: 6,
		Grammar: func(b *dsl.Builder) {
			b.Rule('X').
				Maybe("F+[[X]-X]-F[-FX]+X", 0.9).
				Maybe("M", 0.25)
			b.Rule('F').
				To("FF")
		},
		Distance: 5,
		Jitter:   true,
		Start2D:  domain.Pose2D{Bearing: domain.Bearing2D{Rotation: -math.Pi / 2}},
		Turn2D:   domain.Bearing2D{Rotation: math.Pi / 6},
	}
}

// Plant3D is a spatial shrub growing along +Z with per-step length variation.
func Plant3D() Preset {
	return Preset{
		Name:        "plant-3d",
		Description: "Stochastic shrub in space with blooms and per-step length variation",
		Dimension:   domain.Dimension3D,
		Axiom:       "X",
		Generations: 5,
		Grammar: func(b *dsl.Builder) {
			b.Rule('X').
				Maybe("F[+X][-X]+F[+FX]-X", 0.85).
				Maybe("M", 0.3)
			b.Rule('F').
				To("FF")
		},
		Distance: 1,
		Jitter:   true,
		Turn3D:   domain.Bearing3D{Azimuth: 2 * math.Pi / 5, Declination: math.Pi / 7},
	}
}

// Fern2D is the deterministic fractal plant.
func Fern2D() Preset {
	return Preset{
		Name:        "fern-2d",
		Description: "Deterministic fractal plant",
		Dimension:   domain.Dimension2D,
		Axiom:       "X",
		Generations: 5,
		Grammar: func(b *dsl.Builder) {
			b.Rule('X').
				To("F+[[X]-X]-F[-FX]+X")
			b.Rule('F').
				To("FF")
		},
		Distance: 3,
		Start2D:  domain.Pose2D{Bearing: domain.Bearing2D{Rotation: -math.Pi / 2}},
		Turn2D:   domain.Bearing2D{Rotation: 25 * math.Pi / 180},
	}
}

// Koch2D is the quadratic Koch curve.
func Koch2D() Preset {
	return Preset{
		Name:        "koch-2d",
		Description: "Quadratic Koch curve",
		Dimension:   domain.Dimension2D,
		Axiom:       "F",
		Generations: 3,
		Grammar: func(b *dsl.Builder) {
			b.Rule('F').
				To("F+F-F-F+F")
		},
		Distance: 4,
		Turn2D:   domain.Bearing2D{Rotation: math.Pi / 2},
	}
}
