package ports

// Turtle is the capability set shared by the 2D and 3D turtles.
// P is the position type and B the bearing type of the geometry kind.
type Turtle[P any, B any] interface {
	// MoveForward advances the turtle by dist along its current bearing.
	MoveForward(dist float64)

	// Turn adds delta to the current bearing, component-wise.
	Turn(delta B)

	// Push saves the current position and bearing on the orientation stack.
	Push()

	// Pop restores the last saved pose. It is a no-op when the stack is empty.
	Pop()

	// Position returns the current position.
	Position() P

	// Bearing returns the current bearing.
	Bearing() B
}
