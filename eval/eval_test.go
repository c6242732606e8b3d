package eval

import (
	"math"
	"strings"
	"testing"

	"github.com/npillmayer/pcfg/tree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

var gold = tree.MustParse("(TOP (S (NP (DT the) (NN dog)) (VP (VB saw) (NP (DT a) (NN cat)))))")

func TestCompareIdentical(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcfg.eval")
	defer teardown()
	//
	s := Compare(gold, gold)
	if s.Matched != 5 || s.Gold != 5 || s.Test != 5 {
		t.Errorf("expected 5 matching brackets, have %s", s)
	}
	if s.Precision() != 1 || s.Recall() != 1 || s.F1() != 1 {
		t.Errorf("expected perfect score, have %s", s)
	}
}

func TestComparePartial(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcfg.eval")
	defer teardown()
	//
	test := tree.MustParse("(TOP (S (NP (DT the) (NN dog)) (VP (VB saw) (DT a)) (NN cat)))")
	s := Compare(gold, test)
	// TOP, S and the first NP match; VP has a wrong span
	if s.Matched != 3 || s.Gold != 5 || s.Test != 4 {
		t.Errorf("unexpected score %s", s)
	}
	if math.Abs(s.Precision()-0.75) > 1e-9 || math.Abs(s.Recall()-0.6) > 1e-9 {
		t.Errorf("unexpected precision/recall %s", s)
	}
	f1 := 2 * 0.75 * 0.6 / (0.75 + 0.6)
	if math.Abs(s.F1()-f1) > 1e-9 {
		t.Errorf("expected F1=%g, have %g", f1, s.F1())
	}
}

func TestCompareNoParse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcfg.eval")
	defer teardown()
	//
	s := Compare(gold, nil)
	if s.Matched != 0 || s.Gold != 5 || s.Test != 0 {
		t.Errorf("expected gold brackets only, have %s", s)
	}
	if s.Precision() != 0 || s.F1() != 0 {
		t.Errorf("expected zero scores, have %s", s)
	}
}

func TestDuplicateBrackets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcfg.eval")
	defer teardown()
	//
	g := tree.MustParse("(TOP (NP (NP (NN n))))")
	test := tree.MustParse("(TOP (NP (NN n)))")
	s := Compare(g, test)
	if s.Matched != 2 || s.Gold != 3 || s.Test != 2 {
		t.Errorf("expected unary NP brackets to be counted as multiset, have %s", s)
	}
}

func TestEvaluator(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcfg.eval")
	defer teardown()
	//
	ev := NewEvaluator()
	ev.Add(gold, gold)
	ev.Add(gold, nil)
	ev.Add(gold, tree.MustParse("(TOP (X (NP (DT the) (NN dog)) (VP (VB saw) (NP (DT a) (NN cat)))))"))
	total := ev.Total()
	if total.Gold != 15 || total.Test != 10 || total.Matched != 9 {
		t.Errorf("unexpected total score %s", total)
	}
	all, parsed := ev.Sentences()
	if all != 3 || parsed != 2 {
		t.Errorf("expected 2 of 3 sentences parsed, have %d of %d", parsed, all)
	}
	if labels := strings.Join(ev.Labels(), " "); labels != "NP S TOP VP X" {
		t.Errorf("unexpected labels %q", labels)
	}
	if s := ev.Label("NP"); s.Gold != 6 || s.Matched != 4 || s.Test != 4 {
		t.Errorf("unexpected NP score %s", s)
	}
	if s := ev.Label("X"); s.Gold != 0 || s.Test != 1 {
		t.Errorf("unexpected X score %s", s)
	}
	if s := ev.Label("S"); s.Gold != 3 || s.Matched != 1 {
		t.Errorf("unexpected S score %s", s)
	}
}
