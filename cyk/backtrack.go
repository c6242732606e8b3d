package cyk

import (
	"fmt"

	"github.com/npillmayer/pcfg"
	"github.com/npillmayer/pcfg/tree"
	"github.com/npillmayer/schuko/gconf"
	"github.com/pkg/errors"
)

// ErrStuck is flagged if the walk of a derivation hits an inconsistent
// chart entry.
var ErrStuck = errors.New("CYK derivation walk is stuck")

// --- Derivation listener ---------------------------------------------------

// Listener is a type for walking the best derivation of a chart.
// The values returned by a listener are handed to the Reduce call of the
// parent node.
type Listener interface {
	Terminal(label string, word string, span pcfg.Span) interface{}
	Reduce(label string, children []interface{}, span pcfg.Span) interface{}
}

// --- Tree Walker -----------------------------------------------------------

// Walk walks the best derivation of non-terminal top over the whole input,
// depth-first and left to right. A listener gets called for every word and
// for every application of a rule. Walk returns the value the listener
// returned for the root, or nil if no derivation exists.
func (c *Chart) Walk(top string, listener Listener) (interface{}, error) {
	A, ok := c.g.Symbols().Resolve(top)
	if !ok || c.n == 0 || c.at(0, c.n, A).prob == 0 {
		return nil, nil
	}
	tracer().Debugf("=== Walk ===============================")
	v, err := c.walk(cell{0, c.n, A}, nil, listener)
	tracer().Debugf("========================================")
	return v, err
}

// walk recursively visits the derivation of a cell. trail collects the
// cells of the current chain of unary rules over the same span.
func (c *Chart) walk(at cell, trail cellset, listener Listener) (interface{}, error) {
	e := c.at(at.begin, at.end, at.label)
	label := c.g.Symbols().Name(at.label)
	span := pcfg.Span{at.begin, at.end}
	switch e.kind {
	case lexical:
		if span.Len() != 1 {
			return nil, stuck(fmt.Sprintf("word derivation of %s spans %s", label, span))
		}
		tracer().Debugf("Tree node    %d: %s", at.begin, label)
		return listener.Terminal(label, c.words[at.begin], span), nil
	case unary:
		if trail.contains(at) {
			return nil, stuck(fmt.Sprintf("cycle of unary rules at %s %s", label, span))
		}
		child, err := c.walk(cell{at.begin, at.end, int(e.left)}, trail.add(at), listener)
		if err != nil {
			return nil, err
		}
		return listener.Reduce(label, []interface{}{child}, span), nil
	case binary:
		split := int(e.split)
		if split <= at.begin || split >= at.end {
			return nil, stuck(fmt.Sprintf("split %d outside of %s for %s", split, span, label))
		}
		left, err := c.walk(cell{at.begin, split, int(e.left)}, nil, listener)
		if err != nil {
			return nil, err
		}
		right, err := c.walk(cell{split, at.end, int(e.right)}, nil, listener)
		if err != nil {
			return nil, err
		}
		tracer().Debugf("Tree node    %d|-----%s-----|%d", at.begin, label, at.end)
		return listener.Reduce(label, []interface{}{left, right}, span), nil
	}
	return nil, stuck(fmt.Sprintf("no derivation recorded for %s %s", label, span))
}

func stuck(msg string) error {
	tracer().Errorf(msg)
	if gconf.GetBool("panic-on-parser-stuck") {
		panic(`CYK-parser is stuck.

Configuration flag panic-on-parser-stuck is set to true. It is aimed at helping
to debug a parser and do a post-mortem of why it got stuck. However, if this is
a production environment and you did not expect this to panic, please unset
panic-on-parser-stuck to its default (false).

` + msg)
	}
	return errors.Wrap(ErrStuck, msg)
}

// --- Tree building listener -------------------------------------------

// TreeBuilder is a Listener which creates a parse tree from a chart.
// The tree is in binary form, just like the grammar. Parser.Parse uses a
// TreeBuilder and debinarizes the result.
type TreeBuilder struct{}

// Terminal is a listener method, called for words of the input.
func (tb TreeBuilder) Terminal(label string, word string, span pcfg.Span) interface{} {
	return tree.Leaf(label, word, span.From())
}

// Reduce is a listener method, called for rule applications.
func (tb TreeBuilder) Reduce(label string, children []interface{}, span pcfg.Span) interface{} {
	nodes := make([]*tree.Tree, len(children))
	for i, ch := range children {
		nodes[i] = ch.(*tree.Tree)
	}
	return tree.MustNode(label, nodes...)
}

var _ Listener = TreeBuilder{}
