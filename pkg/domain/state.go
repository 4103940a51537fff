package domain

// Generation is a snapshot of the grammar state after a number of rewrite passes.
// Index 0 is the axiom.
type Generation struct {
	Index   int      `json:"index"`
	Symbols Sequence `json:"symbols"`
}

// NewGeneration creates a snapshot holding its own copy of symbols.
func NewGeneration(index int, symbols Sequence) Generation {
	return Generation{
		Index:   index,
		Symbols: symbols.Clone(),
	}
}

func (g Generation) String() string {
	return g.Symbols.String()
}
