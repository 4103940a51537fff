package domain

import "math"

// Dimension selects the geometry kind a preset or mapping run works in.
type Dimension int

const (
	Dimension2D Dimension = 2
	Dimension3D Dimension = 3
)

// Valid reports whether d is a supported dimensionality.
func (d Dimension) Valid() bool {
	return d == Dimension2D || d == Dimension3D
}

// Flipper is implemented by bearings that can be mirrored.
// Flip negates every angular component.
type Flipper[B any] interface {
	Flip() B
}

// Point is implemented by positions that can be flattened into plain coordinates.
type Point interface {
	Coordinates() []float64
}

// Position2D is a point on the plane.
type Position2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Coordinates returns [x, y].
func (p Position2D) Coordinates() []float64 {
	return []float64{p.X, p.Y}
}

// Position3D is a point in space.
type Position3D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Coordinates returns [x, y, z].
func (p Position3D) Coordinates() []float64 {
	return []float64{p.X, p.Y, p.Z}
}

// Bearing2D is a heading on the plane, in radians.
type Bearing2D struct {
	Rotation float64 `json:"rotation"`
}

// Flip returns the mirrored bearing.
func (b Bearing2D) Flip() Bearing2D {
	return Bearing2D{Rotation: -b.Rotation}
}

// Bearing3D is a spherical heading, in radians.
// Declination is measured from the +Z axis.
type Bearing3D struct {
	Azimuth     float64 `json:"azimuth"`
	Declination float64 `json:"declination"`
}

// Flip returns the mirrored bearing.
func (b Bearing3D) Flip() Bearing3D {
	return Bearing3D{Azimuth: -b.Azimuth, Declination: -b.Declination}
}

// Pose2D is a full 2D turtle pose.
type Pose2D struct {
	Position Position2D `json:"position"`
	Bearing  Bearing2D  `json:"bearing"`
}

// Pose3D is a full 3D turtle pose.
type Pose3D struct {
	Position Position3D `json:"position"`
	Bearing  Bearing3D  `json:"bearing"`
}

// Line is a segment traced by the turtle.
type Line[P any] struct {
	Start P `json:"start"`
	End   P `json:"end"`
}

// Line2D is a segment on the plane.
type Line2D = Line[Position2D]

// Line3D is a segment in space.
type Line3D = Line[Position3D]

// Geometry is the output of a mapping run: segments and markers in traversal order.
type Geometry[P any] struct {
	Lines   []Line[P] `json:"lines"`
	Markers []P       `json:"markers"`
}

// Geometry2D is the output of a 2D mapping run.
type Geometry2D = Geometry[Position2D]

// Geometry3D is the output of a 3D mapping run.
type Geometry3D = Geometry[Position3D]

// Bounds2D returns the axis-aligned bounding box of every line endpoint and marker.
// ok is false when the geometry is empty.
func Bounds2D(g Geometry2D) (lo, hi Position2D, ok bool) {
	lo = Position2D{X: math.Inf(1), Y: math.Inf(1)}
	hi = Position2D{X: math.Inf(-1), Y: math.Inf(-1)}
	visit := func(p Position2D) {
		ok = true
		lo.X, lo.Y = math.Min(lo.X, p.X), math.Min(lo.Y, p.Y)
		hi.X, hi.Y = math.Max(hi.X, p.X), math.Max(hi.Y, p.Y)
	}
	for _, l := range g.Lines {
		visit(l.Start)
		visit(l.End)
	}
	for _, m := range g.Markers {
		visit(m)
	}
	if !ok {
		return Position2D{}, Position2D{}, false
	}
	return lo, hi, true
}
