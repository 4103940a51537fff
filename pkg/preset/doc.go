// Package preset holds named, ready-to-grow L-system configurations.
//
// A Preset bundles a grammar (declared with the dsl package), an axiom, a default
// generation count, the turtle start pose and the movement policy. Presets are registered
// programmatically in a Registry; Default returns one pre-populated with the built-ins.
package preset
