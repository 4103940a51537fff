// Package turtle implements 2D and 3D turtles for interpreting L-system output.
//
// Both turtles satisfy ports.Turtle and share the same orientation stack semantics:
// Push saves the pose, Pop restores it and is a silent no-op on an empty stack, so
// unbalanced brackets never fault.
package turtle
