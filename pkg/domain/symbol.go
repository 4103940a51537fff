package domain

import "strings"

// Symbol is a single element of the L-system alphabet.
type Symbol rune

// String returns the symbol as a one-character string.
func (s Symbol) String() string {
	return string(s)
}

// Sequence is an ordered list of symbols (an axiom, a replacement or a grammar state).
type Sequence []Symbol

// ParseSequence converts a string into a Sequence, one symbol per rune.
func ParseSequence(s string) Sequence {
	seq := make(Sequence, 0, len(s))
	for _, r := range s {
		seq = append(seq, Symbol(r))
	}
	return seq
}

// String renders the sequence back into its textual form.
func (s Sequence) String() string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, sym := range s {
		sb.WriteRune(rune(sym))
	}
	return sb.String()
}

// Clone returns an independent copy of the sequence.
// A nil sequence clones to an empty, non-nil one.
func (s Sequence) Clone() Sequence {
	out := make(Sequence, len(s))
	copy(out, s)
	return out
}

// Count returns how many times sym occurs in the sequence.
func (s Sequence) Count(sym Symbol) int {
	n := 0
	for _, v := range s {
		if v == sym {
			n++
		}
	}
	return n
}

// MarshalText encodes the sequence as a plain string so JSON and YAML stay readable.
func (s Sequence) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a plain string into the sequence.
func (s *Sequence) UnmarshalText(text []byte) error {
	*s = ParseSequence(string(text))
	return nil
}
