/*
Package ports defines the driven ports (interfaces) for the Sprout engine.

These interfaces decouple the grammar engine and the geometry mapper from concrete
implementations, so rule stores, turtles and entropy sources can be swapped in tests.

# Key Interfaces

  - RuleSet: resolves a symbol to its replacement for one rewrite (e.g. rules.Store).
  - Turtle: the capability set of a 2D or 3D turtle, generic over position and bearing.
  - RandomSource: the explicit, owned entropy source consulted by rule selection and jitter.
*/
package ports
