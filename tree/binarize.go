package tree

import (
	"strings"

	"github.com/npillmayer/pcfg"
)

// IsSynthetic is true for labels of nodes introduced by binarization.
func IsSynthetic(label string) bool {
	return strings.HasSuffix(label, pcfg.SyntheticMarker)
}

// Synthetic returns the label for a node holding surplus children of a node
// labeled label. Labels which are already synthetic are not marked again.
func Synthetic(label string) string {
	if IsSynthetic(label) {
		return label
	}
	return label + pcfg.SyntheticMarker
}

// Binarize rewrites t in place into a tree where no node has more than two
// children. A node with children c1 … cn, n > 2, keeps c1 and moves c2 … cn
// into a synthetic node, which in turn is binarized.
func (t *Tree) Binarize() {
	if t.leaf {
		return
	}
	if len(t.children) > 2 {
		rest := append([]*Tree(nil), t.children[1:]...)
		syn := &Tree{label: Synthetic(t.label), span: extent(rest), children: rest}
		tracer().Debugf("binarize %s: %s holds %d children", t.LabelSpan(), syn.label, len(rest))
		t.children = []*Tree{t.children[0], syn}
	}
	for _, ch := range t.children {
		ch.Binarize()
	}
}

// Debinarize reverses Binarize in place: as long as the last child of a node is
// a synthetic node, it is replaced by its children.
func (t *Tree) Debinarize() {
	if t.leaf {
		return
	}
	for {
		last := t.children[len(t.children)-1]
		if last.leaf || !IsSynthetic(last.label) {
			break
		}
		children := make([]*Tree, 0, len(t.children)-1+len(last.children))
		children = append(children, t.children[:len(t.children)-1]...)
		t.children = append(children, last.children...)
	}
	for _, ch := range t.children {
		ch.Debinarize()
	}
}

// --- Productions -----------------------------------------------------------

// Production is a rule realized by a tree node. RHS is either a word, a single
// label, or two labels separated by a space.
type Production struct {
	LHS string
	RHS string
}

func (p Production) String() string {
	return p.LHS + " -> " + p.RHS
}

// Productions lists the productions of t and all its descendants in pre-order.
// Nodes with more than two children do not contribute a production of their
// own, so t should be binarized first.
func (t *Tree) Productions() []Production {
	var prods []Production
	return t.collect(prods)
}

func (t *Tree) collect(prods []Production) []Production {
	if t.leaf {
		return append(prods, Production{LHS: t.label, RHS: t.word})
	}
	switch len(t.children) {
	case 1:
		prods = append(prods, Production{LHS: t.label, RHS: t.children[0].label})
	case 2:
		prods = append(prods, Production{LHS: t.label,
			RHS: t.children[0].label + " " + t.children[1].label})
	}
	for _, ch := range t.children {
		prods = ch.collect(prods)
	}
	return prods
}
