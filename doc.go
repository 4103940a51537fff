/*
Package sprout is a stochastic L-system engine that grows branching, plant-like shapes and
maps them to drawable geometry with turtle graphics.

It separates the grammar (production rules with trigger probabilities), the rewriting engine
(one pass per generation) and the interpreter (a 2D or 3D turtle driven by the generated
symbols). The output is a flat contract of line segments and markers that any renderer
(canvas, SVG, terminal plot) can consume.

# Key Features

  - Stochastic rules: each symbol owns an ordered list of productions tried with independent draws.
  - Reproducible runs: randomness is an explicit, seedable source owned by the run.
  - Dimension-generic turtles: the same interpreter drives 2D and 3D turtles.
  - Observability: lifecycle hooks, structured logging and Prometheus metrics.

# Usage

	package main

	import (
		"context"
		"fmt"
		"math"

		"github.com/aretw0/sprout"
		"github.com/aretw0/sprout/pkg/domain"
		"github.com/aretw0/sprout/pkg/dsl"
		"github.com/aretw0/sprout/pkg/mapper"
	)

	func main() {
		b := dsl.New()
		b.Rule('X').To("F+[[X]-X]-F[-FX]+X")
		b.Rule('F').To("FF")
		store, _ := b.Build()

		eng := sprout.New(store, domain.ParseSequence("X"))

		// Grammars that always expand never reach a fixed point: always pass a bound.
		gens, _, err := eng.Grow(context.Background(), 5)
		if err != nil {
			panic(err)
		}

		geo := eng.Draw2D(context.Background(), gens[len(gens)-1].Symbols, domain.Pose2D{},
			mapper.Fixed[domain.Bearing2D]{Distance: 4, Bearing: domain.Bearing2D{Rotation: math.Pi / 7}})
		fmt.Println(len(geo.Lines), len(geo.Markers))
	}
*/
package sprout
