package grammar

import (
	"fmt"
	"math"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/pkg/errors"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// ErrProbability is flagged for rule weights which are negative or not a
// finite number. Weights need not be normalized.
var ErrProbability = errors.New("rule probability out of range")

// ErrRuleShape is flagged for rules with an empty left-hand side or with
// neither one nor two symbols on the right-hand side.
var ErrRuleShape = errors.New("rule is not in binary form")

// Rule is a weighted grammar rule. Its right-hand side holds either one
// symbol (a word or a non-terminal) or two non-terminals.
type Rule struct {
	LHS  string
	RHS  []string
	Prob float64
}

// IsUnary is true for rules with a single right-hand side symbol.
func (r Rule) IsUnary() bool {
	return len(r.RHS) == 1
}

// IsBinary is true for rules with two right-hand side symbols.
func (r Rule) IsBinary() bool {
	return len(r.RHS) == 2
}

// RHSString returns the right-hand side symbols, separated by a single space.
// This is the encoding used for productions extracted from trees.
func (r Rule) RHSString() string {
	return strings.Join(r.RHS, " ")
}

func (r Rule) String() string {
	return fmt.Sprintf("%s -> %s # %g", r.LHS, r.RHSString(), r.Prob)
}

// LexicalRule is an index entry for a rule A -> word.
type LexicalRule struct {
	LHS  int
	Prob float64
}

// UnaryRule is an index entry for a rule A -> B, with B a non-terminal.
type UnaryRule struct {
	LHS, RHS int
	Prob     float64
}

// BinaryRule is an index entry for a rule A -> B C.
type BinaryRule struct {
	LHS, Left, Right int
	Prob             float64
}

type ruleKey struct {
	lhs, rhs string
}

// Grammar is a weighted context-free grammar in binary form.
// Non-terminals are the symbols occuring on the left-hand side of a rule.
// Once built, a grammar is immutable.
type Grammar struct {
	Name    string
	symbols *SymbolTable             // non-terminals, IDs in lexicographic order
	rules   []Rule                   // in order of first registration
	index   map[ruleKey]int          // (lhs, rhs) -> position in rules
	lexical map[string][]LexicalRule // word -> rules A -> word
	unary   []UnaryRule              // sorted by (A, B)
	binary  []BinaryRule             // in order of registration
}

// Size returns the number of distinct rules.
func (g *Grammar) Size() int {
	return len(g.rules)
}

// Rules returns a copy of all rules, in order of first registration.
func (g *Grammar) Rules() []Rule {
	rules := make([]Rule, len(g.rules))
	for i, r := range g.rules {
		rules[i] = r
		rules[i].RHS = append([]string(nil), r.RHS...)
	}
	return rules
}

// Prob returns the probability of rule lhs -> rhs, where rhs is the
// space-separated right-hand side. Rules not in the grammar have probability 0.
func (g *Grammar) Prob(lhs, rhs string) float64 {
	if i, ok := g.index[ruleKey{lhs, rhs}]; ok {
		return g.rules[i].Prob
	}
	return 0
}

// Nonterminals returns the non-terminals of g in lexicographic order.
func (g *Grammar) Nonterminals() []string {
	nts := make([]string, 0, g.symbols.Size())
	g.symbols.Each(func(_ int, name string) {
		nts = append(nts, name)
	})
	return nts
}

// IsNonterminal checks if sym occurs as the left-hand side of a rule.
func (g *Grammar) IsNonterminal(sym string) bool {
	_, ok := g.symbols.Resolve(sym)
	return ok
}

// Symbols returns the symbol table of non-terminals.
func (g *Grammar) Symbols() *SymbolTable {
	return g.symbols
}

// Lexical returns the rules A -> word. Clients must not modify the result.
func (g *Grammar) Lexical(word string) []LexicalRule {
	return g.lexical[word]
}

// UnaryRules returns the rules A -> B with B a non-terminal, ordered by
// (A, B). Clients must not modify the result.
func (g *Grammar) UnaryRules() []UnaryRule {
	return g.unary
}

// BinaryRules returns the rules A -> B C in order of registration.
// Rules with a terminal on the right-hand side can never fire and are not
// included. Clients must not modify the result.
func (g *Grammar) BinaryRules() []BinaryRule {
	return g.binary
}

// Dump is a debugging helper, printing the rules and indexes of g.
func (g *Grammar) Dump() {
	tracer().Debugf("--- Grammar %q: %d rules, %d non-terminals -------------",
		g.Name, len(g.rules), g.symbols.Size())
	for i, r := range g.rules {
		tracer().Debugf("%3d: %s", i, r)
	}
	words := maps.Keys(g.lexical)
	slices.Sort(words)
	for _, w := range words {
		for _, lr := range g.lexical[w] {
			tracer().Debugf("lex   %s -> %s # %g", g.symbols.Name(lr.LHS), w, lr.Prob)
		}
	}
	for _, u := range g.unary {
		tracer().Debugf("unary %s -> %s # %g", g.symbols.Name(u.LHS), g.symbols.Name(u.RHS), u.Prob)
	}
	tracer().Debugf("-------------------------------------------------------")
}

// --- Builder ---------------------------------------------------------------

// Builder is a builder type for grammars.
// Errors are collected during building and reported by Grammar().
type Builder struct {
	name  string
	rules []Rule
	index map[ruleKey]int
	err   error
}

// NewBuilder gets a new grammar builder, given the name of the grammar to build.
func NewBuilder(name string) *Builder {
	return &Builder{
		name:  name,
		index: make(map[ruleKey]int),
	}
}

// RuleBuilder collects the right-hand side of a rule.
type RuleBuilder struct {
	b   *Builder
	lhs string
	rhs []string
}

// LHS starts a rule, given the non-terminal on its left-hand side.
// Finish the rule with P.
func (b *Builder) LHS(lhs string) *RuleBuilder {
	return &RuleBuilder{b: b, lhs: lhs}
}

// N appends a non-terminal to the right-hand side of a rule.
func (rb *RuleBuilder) N(sym string) *RuleBuilder {
	rb.rhs = append(rb.rhs, sym)
	return rb
}

// T sets a word as the right-hand side of a lexical rule. Lexical rules
// carry nothing but a single word.
func (rb *RuleBuilder) T(word string) *RuleBuilder {
	if len(rb.rhs) > 0 {
		rb.b.fail(errors.Wrapf(ErrRuleShape, "%s: word %q after other symbols", rb.lhs, word))
	}
	rb.rhs = append(rb.rhs, word)
	return rb
}

// P ends a rule, setting its probability.
func (rb *RuleBuilder) P(prob float64) *Builder {
	rb.b.fail(rb.b.Add(rb.lhs, rb.rhs, prob))
	return rb.b
}

// Add adds a rule to the grammar. If a rule with the same sides has already
// been added, its probability is overwritten.
func (b *Builder) Add(lhs string, rhs []string, prob float64) error {
	if lhs == "" || len(rhs) < 1 || len(rhs) > 2 {
		return errors.Wrapf(ErrRuleShape, "%s -> %s", lhs, strings.Join(rhs, " "))
	}
	for _, sym := range rhs {
		if sym == "" {
			return errors.Wrapf(ErrRuleShape, "%s: empty right-hand side symbol", lhs)
		}
	}
	if math.IsNaN(prob) || math.IsInf(prob, 0) || prob < 0 {
		return errors.Wrapf(ErrProbability, "%s -> %s # %g", lhs, strings.Join(rhs, " "), prob)
	}
	r := Rule{LHS: lhs, RHS: append([]string(nil), rhs...), Prob: prob}
	key := ruleKey{lhs, r.RHSString()}
	if i, ok := b.index[key]; ok {
		tracer().Debugf("rule %s -> %s re-defined, probability %g", lhs, key.rhs, prob)
		b.rules[i].Prob = prob
		return nil
	}
	b.index[key] = len(b.rules)
	b.rules = append(b.rules, r)
	return nil
}

func (b *Builder) fail(err error) {
	if err != nil && b.err == nil {
		b.err = err
	}
}

// Grammar returns the grammar under construction, or the first error
// encountered while adding rules.
func (b *Builder) Grammar() (*Grammar, error) {
	if b.err != nil {
		return nil, b.err
	}
	nonterminals := treeset.NewWithStringComparator()
	for _, r := range b.rules {
		nonterminals.Add(r.LHS)
	}
	g := &Grammar{
		Name:    b.name,
		symbols: NewSymbolTable(),
		rules:   make([]Rule, len(b.rules)),
		index:   make(map[ruleKey]int, len(b.index)),
		lexical: make(map[string][]LexicalRule),
	}
	for _, nt := range nonterminals.Values() { // sorted
		g.symbols.ResolveOrDefine(nt.(string))
	}
	copy(g.rules, b.rules)
	for k, i := range b.index {
		g.index[k] = i
	}
	for _, r := range g.rules {
		a, _ := g.symbols.Resolve(r.LHS)
		switch len(r.RHS) {
		case 1:
			g.lexical[r.RHS[0]] = append(g.lexical[r.RHS[0]], LexicalRule{LHS: a, Prob: r.Prob})
			if bsym, ok := g.symbols.Resolve(r.RHS[0]); ok {
				g.unary = append(g.unary, UnaryRule{LHS: a, RHS: bsym, Prob: r.Prob})
			}
		case 2:
			left, okl := g.symbols.Resolve(r.RHS[0])
			right, okr := g.symbols.Resolve(r.RHS[1])
			if !okl || !okr {
				tracer().Debugf("rule %s can never fire", r)
				continue
			}
			g.binary = append(g.binary, BinaryRule{LHS: a, Left: left, Right: right, Prob: r.Prob})
		}
	}
	slices.SortStableFunc(g.unary, func(x, y UnaryRule) int {
		if x.LHS != y.LHS {
			return x.LHS - y.LHS
		}
		return x.RHS - y.RHS
	})
	tracer().Infof("grammar %q: %d rules, %d non-terminals", g.Name, len(g.rules), g.symbols.Size())
	return g, nil
}
