package domain

// Drawing symbols understood by the geometry mapper.
// Any other symbol is reserved for the grammar and draws nothing.
const (
	SymbolDraw        Symbol = 'F' // Move forward, emitting a line segment
	SymbolTurn        Symbol = '+' // Turn by the policy bearing
	SymbolTurnFlipped Symbol = '-' // Turn by the flipped policy bearing
	SymbolPush        Symbol = '[' // Save the current pose
	SymbolPop         Symbol = ']' // Restore the last saved pose
	SymbolMarker      Symbol = 'M' // Emit a marker at the current position
)

// DefaultProbability is the trigger probability of a rule registered without one.
const DefaultProbability = 1.0
