package tree

import (
	"strings"

	"github.com/npillmayer/pcfg"
	"github.com/pkg/errors"
)

// EmptyMarker labels empty elements and traces, e.g. (-NONE- *T*-1).
const EmptyMarker = "-NONE-"

// ParseOption configures Parse.
type ParseOption func(*parser)

// StripFunctionalTags removes grammatical-function and coreference
// annotations from labels (NP-SBJ ⟹ NP, NP=2 ⟹ NP, ADVP|PRT ⟹ ADVP) and elides
// empty elements. Labels starting with '-', like -LRB-, are left alone.
func StripFunctionalTags() ParseOption {
	return func(p *parser) {
		p.strip = true
	}
}

// ForbidSyntheticLabels rejects input labels ending in pcfg.SyntheticMarker.
// Use it for treebank input which is about to be binarized.
func ForbidSyntheticLabels() ParseOption {
	return func(p *parser) {
		p.forbidSynthetic = true
	}
}

type parser struct {
	toks            []token
	pos             int // current token
	index           int // running terminal index
	strip           bool
	forbidSynthetic bool
}

// Parse reads a tree in bracket notation. Word positions are numbered from
// left to right, starting at 0; elided empty elements do not consume positions.
// An unlabeled root is labeled pcfg.TopSymbol. Any other root not labeled
// pcfg.TopSymbol is wrapped into a pcfg.TopSymbol node.
func Parse(text string, opts ...ParseOption) (*Tree, error) {
	toks, err := tokenize(text)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	for _, opt := range opts {
		opt(p)
	}
	t, empty, err := p.subtree()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokEOF {
		return nil, p.errorf("trailing input %q", p.peek().lexeme)
	}
	if empty {
		return nil, errors.Wrapf(ErrEmptyTree, "%.40s", text)
	}
	if t.label == "" { // PTB style ( (S …) )
		t.label = pcfg.TopSymbol
	}
	if t.label != pcfg.TopSymbol {
		tracer().Debugf("wrapping root %s into %s", t.label, pcfg.TopSymbol)
		t = &Tree{label: pcfg.TopSymbol, span: t.span, children: []*Tree{t}}
	}
	return t, nil
}

// MustParse is like Parse, but panics on error.
func MustParse(text string, opts ...ParseOption) *Tree {
	t, err := Parse(text, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// subtree parses "(LABEL subtree…)" or "(LABEL word)". The flag returned is
// true if the subtree turned out to be empty; emptiness propagates upwards.
func (p *parser) subtree() (*Tree, bool, error) {
	if p.next().kind != tokOpen {
		return nil, false, p.errorf("expected '('")
	}
	var label string
	if p.peek().kind == tokAtom { // PTB roots may come without a label
		label = p.next().lexeme
	}
	label, empty := p.normalize(label)
	if p.forbidSynthetic && IsSynthetic(label) {
		return nil, false, errors.Wrapf(ErrSyntheticLabel, "label %q", label)
	}
	start := p.index
	switch p.peek().kind {
	case tokOpen:
		var children []*Tree
		for p.peek().kind == tokOpen {
			child, childEmpty, err := p.subtree()
			if err != nil {
				return nil, false, err
			}
			if !childEmpty {
				children = append(children, child)
			}
		}
		if p.next().kind != tokClose {
			return nil, false, p.errorf("expected ')' to close %q", label)
		}
		if empty || len(children) == 0 {
			p.index = start
			return nil, true, nil
		}
		return &Tree{label: label, span: pcfg.Span{start, p.index}, children: children}, false, nil
	case tokAtom:
		word := p.next().lexeme
		if p.next().kind != tokClose {
			return nil, false, p.errorf("expected ')' after word %q", word)
		}
		if empty { // traces do not advance the terminal index
			return nil, true, nil
		}
		p.index++
		return Leaf(label, word, start), false, nil
	}
	return nil, false, p.errorf("expected subtree or word for %q", label)
}

// normalize strips functional tags, if requested, and tells if a label marks
// an empty element.
func (p *parser) normalize(label string) (string, bool) {
	if !p.strip || label == "" {
		return label, false
	}
	if label[0] == '-' {
		return label, label == EmptyMarker
	}
	for _, sep := range []string{"-", "=", "|"} {
		if i := strings.Index(label, sep); i >= 0 {
			label = label[:i]
		}
	}
	return label, false
}

func (p *parser) peek() token {
	return p.peekAt(0)
}

func (p *parser) peekAt(k int) token {
	if p.pos+k < len(p.toks) {
		return p.toks[p.pos+k]
	}
	return p.toks[len(p.toks)-1]
}

func (p *parser) next() token {
	t := p.peek()
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *parser) errorf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrMalformedTree, "offset %d: "+format,
		append([]interface{}{p.peek().offset}, args...)...)
}
