package cyk

import (
	"bytes"
	"fmt"

	"github.com/npillmayer/pcfg"
	"github.com/npillmayer/pcfg/grammar"
)

// derivation tells how the best derivation of a chart entry has been found.
type derivation uint8

const (
	underived derivation = iota
	lexical              // matched an input word
	unary                // A -> B
	binary               // A -> B C
)

// entry is the chart entry for a (begin, end, label) triple.
type entry struct {
	prob  float64
	kind  derivation
	split int32 // binary: position between left and right child
	left  int32 // unary, binary: label of (left) child
	right int32 // binary: label of right child
}

// Chart is the CYK table for a single sentence. It is created by
// Parser.BuildChart and is read-only afterwards.
type Chart struct {
	g       *grammar.Grammar
	words   []string // the original input tokens
	n       int
	labels  int
	entries []entry
}

func newChart(g *grammar.Grammar, words []string) *Chart {
	n := len(words)
	labels := g.Symbols().Size()
	return &Chart{
		g:       g,
		words:   words,
		n:       n,
		labels:  labels,
		entries: make([]entry, n*(n+1)/2*labels),
	}
}

// at returns the entry for label over span [begin, end), begin < end.
// Spans are stored in triangular order, grouped by end position.
func (c *Chart) at(begin, end, label int) *entry {
	span := end*(end-1)/2 + begin
	return &c.entries[span*c.labels+label]
}

// Len returns the number of input tokens the chart has been built for.
func (c *Chart) Len() int {
	return c.n
}

// Words returns the input tokens, before any substitution of unknown words.
func (c *Chart) Words() []string {
	return c.words
}

// Score returns the probability of the best derivation of label over
// [begin, end). Unreachable cells, unknown labels and invalid spans score 0.
func (c *Chart) Score(begin, end int, label string) float64 {
	if begin < 0 || end > c.n || begin >= end {
		return 0
	}
	A, ok := c.g.Symbols().Resolve(label)
	if !ok {
		return 0
	}
	return c.at(begin, end, A).prob
}

// Dump is a debugging helper, tracing all reachable entries of the chart,
// span width by span width.
func (c *Chart) Dump() {
	st := c.g.Symbols()
	for width := 1; width <= c.n; width++ {
		for begin := 0; begin+width <= c.n; begin++ {
			end := begin + width
			tracer().Debugf("--- Cell %s ------------------------------------", pcfg.Span{begin, end})
			for A := 0; A < c.labels; A++ {
				if e := c.at(begin, end, A); e.kind != underived {
					tracer().Debugf("    %-8s %s", st.Name(A), c.entryString(e))
				}
			}
		}
	}
}

func (c *Chart) entryString(e *entry) string {
	var b bytes.Buffer
	b.WriteString(fmt.Sprintf("%.6g ", e.prob))
	st := c.g.Symbols()
	switch e.kind {
	case lexical:
		b.WriteString("<word>")
	case unary:
		b.WriteString("-> ")
		b.WriteString(st.Name(int(e.left)))
	case binary:
		b.WriteString(fmt.Sprintf("-> %s %s @%d", st.Name(int(e.left)), st.Name(int(e.right)), e.split))
	}
	return b.String()
}
