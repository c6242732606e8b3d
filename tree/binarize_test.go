package tree

import (
	"testing"

	"github.com/npillmayer/pcfg"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// Trees with nodes of arity 1 to 6, nested in different ways.
var treebank = []string{
	"(TOP (NN dog))",
	"(TOP (S (NP (NN n)) (VP (VB v))))",
	"(TOP (S (NP (DT the) (JJ big) (NN dog)) (VP (VBZ barks))))",
	"(TOP (NP (DT the) (JJ big) (JJ red) (NN dog)))",
	"(TOP (S (A a) (B b) (C c) (D d) (E e)))",
	"(TOP (S (A a) (B b) (C c) (D d) (E e) (F f)))",
	"(TOP (S (NP (NP (DT a) (NN b) (NN c)) (PP (IN d) (NP (NN e)))) (VP (VB f) (NP (DT g) (JJ h) (NN i) (NN j)) (ADVP (RB k))) (. .)))",
	"(TOP (S (S' (X x) (Y y) (Z z)) (W w)))",
}

func TestBinarizeExample(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcfg.tree")
	defer teardown()
	//
	tr := MustParse("(TOP (NP (DT the) (JJ big) (JJ red) (NN dog)))")
	tr.Binarize()
	expected := "(TOP (NP (DT the) (NP' (JJ big) (NP' (JJ red) (NN dog)))))"
	if tr.String() != expected {
		t.Errorf("expected %s, have %s", expected, tr)
	}
	outer := tr.Children()[0].Children()[1]
	inner := outer.Children()[1]
	if outer.Span() != (pcfg.Span{1, 4}) || inner.Span() != (pcfg.Span{2, 4}) {
		t.Errorf("unexpected spans of synthetic nodes: %s, %s", outer.LabelSpan(), inner.LabelSpan())
	}
}

func TestBinaryInvariant(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcfg.tree")
	defer teardown()
	//
	for _, input := range treebank {
		tr := MustParse(input)
		tr.Binarize()
		checkArity(t, tr, input)
	}
}

func checkArity(t *testing.T, tr *Tree, input string) {
	if tr.IsLeaf() {
		return
	}
	if tr.Arity() < 1 || tr.Arity() > 2 {
		t.Errorf("node %s of binarized %q has %d children", tr.LabelSpan(), input, tr.Arity())
	}
	for _, ch := range tr.Children() {
		checkArity(t, ch, input)
	}
}

func TestBinarizeRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcfg.tree")
	defer teardown()
	//
	for _, input := range treebank {
		original := MustParse(input)
		tr := MustParse(input)
		tr.Binarize()
		tr.Debinarize()
		if !tr.Equal(original) {
			t.Errorf("round trip failed:\n    %s\n => %s", original, tr)
		}
		if tr.String() != input {
			t.Errorf("expected %s, have %s", input, tr)
		}
		if tr.Hash() != original.Hash() {
			t.Errorf("round trip changed hash of %s", input)
		}
	}
}

func TestBinarizeIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcfg.tree")
	defer teardown()
	//
	tr := MustParse(treebank[6])
	tr.Binarize()
	once := tr.String()
	tr.Binarize()
	if tr.String() != once {
		t.Errorf("binarizing a binary tree changed it:\n    %s\n => %s", once, tr)
	}
}

func TestSyntheticLabels(t *testing.T) {
	if !IsSynthetic("NP'") || IsSynthetic("NP") {
		t.Errorf("synthetic label detection broken")
	}
	if Synthetic("NP") != "NP'" || Synthetic("NP'") != "NP'" {
		t.Errorf("synthetic label construction broken")
	}
}

func TestProductions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcfg.tree")
	defer teardown()
	//
	tr := MustNode("A", Leaf("B", "b", 0), Leaf("C", "c", 1))
	prods := tr.Productions()
	expected := []Production{{"A", "B C"}, {"B", "b"}, {"C", "c"}}
	if len(prods) != len(expected) {
		t.Fatalf("expected %v, have %v", expected, prods)
	}
	for i, p := range prods {
		if p != expected[i] {
			t.Errorf("production #%d: expected %v, have %v", i, expected[i], p)
		}
	}
}

func TestProductionsOfBinarizedTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcfg.tree")
	defer teardown()
	//
	tr := MustParse("(S (NP (DT the) (NN dog)) (VP (VBZ barks)) (. .))")
	tr.Binarize()
	prods := tr.Productions()
	expected := []string{
		"TOP -> S",
		"S -> NP S'",
		"NP -> DT NN",
		"DT -> the",
		"NN -> dog",
		"S' -> VP .",
		"VP -> VBZ",
		"VBZ -> barks",
		". -> .",
	}
	if len(prods) != len(expected) {
		t.Fatalf("expected %d productions, have %v", len(expected), prods)
	}
	for i, p := range prods {
		if p.String() != expected[i] {
			t.Errorf("production #%d: expected %q, have %q", i, expected[i], p.String())
		}
	}
}
