/*
Package domain contains the core domain models of the Sprout L-system engine.

It defines the symbols the grammar rewrites, the geometry the turtle interpreter emits, and the
lifecycle events used for observability. This package is kept pure and free of external
dependencies like I/O or randomness, following Hexagonal Architecture principles.

# Key Entities

  - Symbol / Sequence: the alphabet and the grammar state rewritten each generation.
  - Generation: an immutable snapshot of the grammar state at a given step.
  - Position2D / Position3D and Bearing2D / Bearing3D: turtle pose value types.
  - Line / Geometry: the drawable output (line segments and markers) of a mapping run.
*/
package domain
