package grammar

import (
	"math"
	"strings"
	"testing"

	"github.com/npillmayer/pcfg"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/pkg/errors"
)

func buildG1(t *testing.T) *Grammar {
	b := NewBuilder("G1")
	b.LHS("TOP").N("S").P(1.0)
	b.LHS("S").N("NP").N("VP").P(0.9)
	b.LHS("S").N("VP").P(0.1)
	b.LHS("VP").N("V").N("NP").P(0.5)
	b.LHS("VP").T("sleeps").P(0.5)
	b.LHS("NP").T("dogs").P(0.6)
	b.LHS("NP").T("cats").P(0.4)
	b.LHS("V").T("chase").P(1.0)
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestBuilder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcfg.grammar")
	defer teardown()
	//
	g := buildG1(t)
	g.Dump()
	if g.Size() != 8 {
		t.Errorf("expected grammar to have 8 rules, has %d", g.Size())
	}
	nts := strings.Join(g.Nonterminals(), " ")
	if nts != "NP S TOP V VP" {
		t.Errorf("expected sorted non-terminals, have %q", nts)
	}
	if !g.IsNonterminal("VP") || g.IsNonterminal("dogs") {
		t.Errorf("non-terminal check failed")
	}
	if p := g.Prob("S", "NP VP"); p != 0.9 {
		t.Errorf("expected P(S -> NP VP) = 0.9, have %g", p)
	}
	if p := g.Prob("S", "NP"); p != 0 {
		t.Errorf("expected absent rule to have probability 0, have %g", p)
	}
}

func TestIndexes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcfg.grammar")
	defer teardown()
	//
	g := buildG1(t)
	np, _ := g.Symbols().Resolve("NP")
	if lex := g.Lexical("dogs"); len(lex) != 1 || lex[0].LHS != np || lex[0].Prob != 0.6 {
		t.Errorf("unexpected lexical entries for 'dogs': %v", lex)
	}
	if len(g.Lexical("birds")) != 0 {
		t.Errorf("expected no lexical entries for unknown word")
	}
	unary := g.UnaryRules()
	if len(unary) != 2 {
		t.Fatalf("expected 2 unary rules, have %d", len(unary))
	}
	// S -> VP sorts before TOP -> S
	if g.Symbols().Name(unary[0].LHS) != "S" || g.Symbols().Name(unary[1].LHS) != "TOP" {
		t.Errorf("unary rules not in (A, B) order")
	}
	binary := g.BinaryRules()
	if len(binary) != 2 {
		t.Fatalf("expected 2 binary rules, have %d", len(binary))
	}
	if g.Symbols().Name(binary[0].LHS) != "S" || g.Symbols().Name(binary[1].LHS) != "VP" {
		t.Errorf("binary rules not in order of registration")
	}
	// a single non-terminal symbol acts as a word, too
	if lex := g.Lexical("VP"); len(lex) != 1 {
		t.Errorf("expected S -> VP to be indexed lexically as well")
	}
}

func TestDuplicateRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcfg.grammar")
	defer teardown()
	//
	b := NewBuilder("dup")
	b.LHS("S").N("A").N("B").P(0.3)
	b.LHS("A").T("a").P(1.0)
	b.LHS("S").N("A").N("B").P(0.7)
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	if g.Size() != 2 {
		t.Errorf("expected duplicate to be merged, have %d rules", g.Size())
	}
	if g.Rules()[0].Prob != 0.7 {
		t.Errorf("expected last probability to win, have %g", g.Rules()[0].Prob)
	}
}

func TestProbabilityRange(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcfg.grammar")
	defer teardown()
	//
	for _, p := range []float64{-0.1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		b := NewBuilder("bad")
		b.LHS("S").T("s").P(p)
		if _, err := b.Grammar(); !errors.Is(err, ErrProbability) {
			t.Errorf("expected ErrProbability for p=%g, have %v", p, err)
		}
	}
	b := NewBuilder("edges")
	b.LHS("S").T("s").P(0)
	b.LHS("S").T("t").P(1)
	b.LHS("S").T("u").P(2.5)
	g, err := b.Grammar()
	if err != nil {
		t.Fatalf("expected weights 0, 1 and 2.5 to be accepted, have %v", err)
	}
	if p := g.Prob("S", "u"); p != 2.5 {
		t.Errorf("expected unnormalized weight 2.5, have %g", p)
	}
}

func TestRuleShape(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcfg.grammar")
	defer teardown()
	//
	b := NewBuilder("shape")
	b.LHS("S").N("A").T("a").P(0.5)
	if _, err := b.Grammar(); !errors.Is(err, ErrRuleShape) {
		t.Errorf("expected ErrRuleShape for mixed rule, have %v", err)
	}
	b = NewBuilder("shape")
	if err := b.Add("S", []string{"A", "B", "C"}, 0.5); !errors.Is(err, ErrRuleShape) {
		t.Errorf("expected ErrRuleShape for ternary rule, have %v", err)
	}
	if err := b.Add("", []string{"A"}, 0.5); !errors.Is(err, ErrRuleShape) {
		t.Errorf("expected ErrRuleShape for empty LHS, have %v", err)
	}
}

func TestParseRule(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcfg.grammar")
	defer teardown()
	//
	inputs := []struct {
		line, lhs, rhs string
		prob           float64
	}{
		{"S -> NP VP # 0.9", "S", "NP VP", 0.9},
		{"NP -> dog # 1e-3", "NP", "dog", 0.001},
		{"  VP->V NP#0.25  ", "VP", "V NP", 0.25},
		{"# -> # # 1.0", "#", "#", 1.0},
		{"SYM -> -> # 0.5", "SYM", "->", 0.5},
	}
	for _, input := range inputs {
		r, err := ParseRule(input.line)
		if err != nil {
			t.Errorf("%q: %v", input.line, err)
			continue
		}
		if r.LHS != input.lhs || r.RHSString() != input.rhs || r.Prob != input.prob {
			t.Errorf("%q parsed as %s", input.line, r)
		}
	}
	for _, line := range []string{"S NP VP 0.9", "S -> NP VP", "-> NP # 1", "S -> # 1", "S -> A B C # 1", "S -> A # x"} {
		if _, err := ParseRule(line); !errors.Is(err, ErrGrammarLine) {
			t.Errorf("expected ErrGrammarLine for %q, have %v", line, err)
		}
	}
}

var grammarFile = `; toy grammar
TOP -> S # 1.0
S -> NP VP # 1.0

NP -> n # 1.0
VP -> v # 1.0
`

func TestLoad(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcfg.grammar")
	defer teardown()
	//
	g, err := Load(strings.NewReader(grammarFile), "toy")
	if err != nil {
		t.Fatal(err)
	}
	if g.Size() != 4 || g.Name != "toy" {
		t.Errorf("expected 4 rules in grammar 'toy', have %d in %q", g.Size(), g.Name)
	}
	_, err = Load(strings.NewReader("TOP -> S # 1.0\nS -> NP VP\n"), "broken")
	if !errors.Is(err, ErrGrammarLine) {
		t.Fatalf("expected ErrGrammarLine, have %v", err)
	}
	if !strings.Contains(err.Error(), "broken:2") {
		t.Errorf("expected error to mention line 2, is: %v", err)
	}
	g, err = Load(strings.NewReader("TOP -> S # 2.0\n"), "weight")
	if err != nil || g.Prob("TOP", "S") != 2.0 {
		t.Errorf("expected weight above 1 to be loaded, have %v", err)
	}
	_, err = Load(strings.NewReader("TOP -> S # -0.5\n"), "prob")
	if !errors.Is(err, ErrProbability) {
		t.Errorf("expected ErrProbability, have %v", err)
	}
}

func TestVocabulary(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcfg.grammar")
	defer teardown()
	//
	v, err := LoadVocabulary(strings.NewReader("dog\n\n  cat \n"))
	if err != nil {
		t.Fatal(err)
	}
	if v.Size() != 2 || !v.Contains("cat") {
		t.Errorf("expected vocabulary {dog, cat}")
	}
	tokens := []string{"dog", "bird", "cat"}
	subst := v.Substitute(tokens)
	if subst[0] != "dog" || subst[1] != pcfg.UnknownWord || subst[2] != "cat" {
		t.Errorf("unexpected substitution %v", subst)
	}
	if tokens[1] != "bird" {
		t.Errorf("substitution must not modify its input")
	}
	var none *Vocabulary
	if s := none.Substitute(tokens); s[1] != "bird" {
		t.Errorf("nil vocabulary must not substitute")
	}
}
