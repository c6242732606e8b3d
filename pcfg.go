package pcfg

import "fmt"

// --- Reserved symbols ------------------------------------------------------

// TopSymbol is the designated start symbol. Every tree read from a treebank
// is rooted in it, and a sentence is parsed successfully if the chart holds
// TopSymbol over the whole input.
const TopSymbol = "TOP"

// UnknownWord replaces input tokens which are not part of a training vocabulary.
const UnknownWord = "<unk>"

// NoParse is the textual result for sentences the grammar cannot derive.
const NoParse = "NONE"

// SyntheticMarker is appended to the label of nodes introduced by
// binarization. Genuine grammar labels must not end with it.
const SyntheticMarker = "'"

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a run of input tokens. For every
// node of a parse tree and every chart cell we track which token positions
// it covers. A span denotes a start position and the position just
// behind the end.
type Span [2]int // (x…y)

// From returns the start value of a span.
func (s Span) From() int {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() int {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() int {
	return s[1] - s[0]
}

func (s Span) IsNull() bool {
	return s == Span{}
}

// Extend returns the smallest span covering s and other.
func (s Span) Extend(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
