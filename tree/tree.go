package tree

import (
	"fmt"
	"strings"

	"github.com/cnf/structhash"
	"github.com/npillmayer/pcfg"
	"github.com/pkg/errors"
)

// Errors for tree construction and parsing.
var (
	ErrLeafAndNode        = errors.New("tree node has both a word and children")
	ErrNeitherLeafNorNode = errors.New("tree node has neither a word nor children")
	ErrMalformedTree      = errors.New("malformed bracketed tree")
	ErrEmptyTree          = errors.New("tree is empty after removing empty nodes")
	ErrSyntheticLabel     = errors.New("label collides with synthetic marker")
)

// Tree is a node of a parse tree. A node is either a leaf, carrying a word,
// or an internal node with a non-empty list of children, never both.
//
// Trees are values: apart from Binarize and Debinarize, no operation
// modifies a tree after construction.
type Tree struct {
	label    string
	span     pcfg.Span
	word     string
	leaf     bool
	children []*Tree
}

// New is the checked constructor for tree nodes. Exactly one of word and
// children has to be present; word == nil and len(children) == 0 denote absence.
func New(label string, span pcfg.Span, word *string, children []*Tree) (*Tree, error) {
	if word != nil && len(children) > 0 {
		return nil, errors.Wrapf(ErrLeafAndNode, "label %q", label)
	}
	if word == nil && len(children) == 0 {
		return nil, errors.Wrapf(ErrNeitherLeafNorNode, "label %q", label)
	}
	if word != nil {
		return &Tree{label: label, span: span, word: *word, leaf: true}, nil
	}
	return &Tree{label: label, span: span, children: append([]*Tree(nil), children...)}, nil
}

// Leaf creates a leaf for word at token position pos.
func Leaf(label, word string, pos int) *Tree {
	return &Tree{label: label, span: pcfg.Span{pos, pos + 1}, word: word, leaf: true}
}

// Node creates an internal node. Its span reaches from the start of the first
// child to the end of the last one.
func Node(label string, children ...*Tree) (*Tree, error) {
	if len(children) == 0 {
		return nil, errors.Wrapf(ErrNeitherLeafNorNode, "label %q", label)
	}
	return New(label, extent(children), nil, children)
}

// MustNode is like Node, but panics on error.
func MustNode(label string, children ...*Tree) *Tree {
	t, err := Node(label, children...)
	if err != nil {
		panic(err)
	}
	return t
}

func extent(children []*Tree) pcfg.Span {
	return pcfg.Span{children[0].span.From(), children[len(children)-1].span.To()}
}

// Label returns the node's grammar symbol.
func (t *Tree) Label() string {
	return t.label
}

// Span returns the token positions covered by the node.
func (t *Tree) Span() pcfg.Span {
	return t.span
}

// SpanWidth is the number of tokens covered by the node.
func (t *Tree) SpanWidth() int {
	return t.span.Len()
}

// IsLeaf is true for nodes carrying a word.
func (t *Tree) IsLeaf() bool {
	return t.leaf
}

// Word returns the word of a leaf, or "" for internal nodes.
func (t *Tree) Word() string {
	return t.word
}

// Children returns the children of an internal node. Clients must not modify
// the returned slice.
func (t *Tree) Children() []*Tree {
	return t.children
}

// Arity returns the number of children.
func (t *Tree) Arity() int {
	return len(t.children)
}

// String renders a tree in bracket notation. It is re-computed for every call,
// as Binarize and Debinarize change the structure.
func (t *Tree) String() string {
	var b strings.Builder
	t.render(&b)
	return b.String()
}

func (t *Tree) render(b *strings.Builder) {
	b.WriteByte('(')
	b.WriteString(t.label)
	if t.leaf {
		b.WriteByte(' ')
		b.WriteString(t.word)
	}
	for _, ch := range t.children {
		b.WriteByte(' ')
		ch.render(b)
	}
	b.WriteByte(')')
}

// LabelSpan is a debugging representation, e.g. "NP [0-2]".
func (t *Tree) LabelSpan() string {
	return fmt.Sprintf("%s [%d-%d]", t.label, t.span.From(), t.span.To())
}

// SpanLabel is a debugging representation, e.g. "[0-2]: NP".
func (t *Tree) SpanLabel() string {
	return fmt.Sprintf("[%d-%d]: %s", t.span.From(), t.span.To(), t.label)
}

// Equal compares two trees structurally: labels, words, spans, and the arity
// and order of children.
func (t *Tree) Equal(other *Tree) bool {
	if t == nil || other == nil {
		return t == other
	}
	if t.label != other.label || t.leaf != other.leaf || t.word != other.word ||
		t.span != other.span || len(t.children) != len(other.children) {
		return false
	}
	for i, ch := range t.children {
		if !ch.Equal(other.children[i]) {
			return false
		}
	}
	return true
}

// shape is the hashable structural image of a tree.
type shape struct {
	Label    string
	Word     string
	Leaf     bool
	From, To int
	Children []shape
}

func (t *Tree) shape() shape {
	s := shape{
		Label: t.label,
		Word:  t.word,
		Leaf:  t.leaf,
		From:  t.span.From(),
		To:    t.span.To(),
	}
	for _, ch := range t.children {
		s.Children = append(s.Children, ch.shape())
	}
	return s
}

// Hash returns a hash of the tree's structure. Trees which are Equal have the
// same hash. The hash is computed on every call and not stored in the tree.
func (t *Tree) Hash() string {
	h, err := structhash.Hash(t.shape(), 1)
	if err != nil {
		tracer().Errorf("cannot hash tree %s: %v", t.label, err)
		return ""
	}
	return h
}

// Height is 1 for leaves, and 1 + the maximum height of the children otherwise.
func (t *Tree) Height() int {
	if t.leaf {
		return 1
	}
	h := 0
	for _, ch := range t.children {
		if chh := ch.Height(); chh > h {
			h = chh
		}
	}
	return h + 1
}

// Words returns the yield of a tree, i.e. the words of its leaves from left
// to right.
func (t *Tree) Words() []string {
	if t.leaf {
		return []string{t.word}
	}
	var words []string
	for _, ch := range t.children {
		words = append(words, ch.Words()...)
	}
	return words
}

// --- Labeled spans ---------------------------------------------------------

// LabeledSpan is a bracket of a tree: a label over a span.
type LabeledSpan struct {
	Label string
	Span  pcfg.Span
}

// LabelSpans lists the labeled spans of all internal nodes in pre-order.
// Leaves, i.e. part-of-speech nodes, do not contribute.
func (t *Tree) LabelSpans() []LabeledSpan {
	if t.leaf {
		return nil
	}
	l := []LabeledSpan{{Label: t.label, Span: t.span}}
	for _, ch := range t.children {
		l = append(l, ch.LabelSpans()...)
	}
	return l
}

// LabelSpanCounts counts the occurences of labeled spans.
func (t *Tree) LabelSpanCounts() map[LabeledSpan]int {
	counts := make(map[LabeledSpan]int)
	for _, ls := range t.LabelSpans() {
		counts[ls]++
	}
	return counts
}
