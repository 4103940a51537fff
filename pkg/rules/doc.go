/*
Package rules implements the stochastic production rule store of the L-system.

Each symbol owns an ordered list of (replacement, probability) rules. A lookup tries the
rules in insertion order, accepting each one independently with its probability; the first
accepted rule wins and, when none is accepted, the symbol maps to itself. Symbols without
rules are terminal.

	store := rules.New(rules.WithRandom(ports.NewSeededSource(42)))
	_ = store.AddStringWithProbability('X', "F+[[X]-X]-F[-FX]+X", 0.9)
	_ = store.AddStringWithProbability('X', "M", 0.25) // only tried if the first rule does not fire
	_ = store.AddString('F', "FF")

A Store is built once and then read during generation; it is not safe for concurrent use
because lookups consume entropy from the owned random source.
*/
package rules
