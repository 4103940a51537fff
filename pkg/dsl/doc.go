/*
Package dsl provides a Go DSL for programmatically registering L-system production rules.

It allows grammars to be declared with a fluent builder instead of a sequence of
rules.Store calls, which keeps presets and tests readable. Rules keep the order in which
they were declared, across every symbol, so stochastic fallbacks behave as written.

Example usage:

	package main

	import (
		"github.com/aretw0/sprout/pkg/dsl"
		"github.com/aretw0/sprout/pkg/ports"
		"github.com/aretw0/sprout/pkg/rules"
	)

	func main() {
		b := dsl.New()

		b.Rule('X').
			Maybe("F+[[X]-X]-F[-FX]+X", 0.9).
			Maybe("M", 0.25) // only tried when the first production does not fire

		b.Rule('F').
			To("FF")

		store, err := b.Build(rules.WithRandom(ports.NewSeededSource(1)))
		if err != nil {
			panic(err)
		}
		_ = store // pass to sprout.New(...)
	}
*/
package dsl
