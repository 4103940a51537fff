/*
Package mapper interprets L-system sequences into geometry by driving a turtle.

Map is a pure, single-pass fold over the symbols with the turtle pose as accumulator:

	F  record the position, move forward by the policy distance, emit a line
	+  turn by the policy bearing
	-  turn by the flipped policy bearing
	[  push the pose
	]  pop the pose (no-op on an empty stack)
	M  emit a marker at the current position
	*  anything else is ignored

Lines and markers are returned in traversal order and are never retracted.
*/
package mapper
