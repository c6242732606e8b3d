package cyk

import (
	"github.com/npillmayer/pcfg"
	"github.com/npillmayer/pcfg/grammar"
	"github.com/npillmayer/pcfg/tree"
	"github.com/npillmayer/schuko/gconf"
)

// Parser is a Viterbi CYK parser for a grammar. Create one with NewParser.
type Parser struct {
	g        *grammar.Grammar
	vocab    *grammar.Vocabulary
	fixpoint bool
	top      string
}

// Option configures a parser.
type Option func(p *Parser)

// WithVocabulary sets a training vocabulary. Input tokens not in the
// vocabulary are matched as pcfg.UnknownWord.
func WithVocabulary(v *grammar.Vocabulary) Option {
	return func(p *Parser) {
		p.vocab = v
	}
}

// UnaryFixpoint sets whether unary rules are applied repeatedly per span,
// until no chart entry improves. The default is taken from the
// configuration key "pcfg.unary-fixpoint".
func UnaryFixpoint(b bool) Option {
	return func(p *Parser) {
		p.fixpoint = b
	}
}

// TopSymbol sets the start symbol, which has to span the whole input for a
// parse to be found. Defaults to pcfg.TopSymbol.
func TopSymbol(sym string) Option {
	return func(p *Parser) {
		p.top = sym
	}
}

// NewParser creates a parser for grammar g.
func NewParser(g *grammar.Grammar, opts ...Option) *Parser {
	p := &Parser{
		g:        g,
		fixpoint: gconf.GetBool("pcfg.unary-fixpoint"),
		top:      pcfg.TopSymbol,
	}
	for _, option := range opts {
		option(p)
	}
	return p
}

// Grammar returns the grammar of the parser.
func (p *Parser) Grammar() *grammar.Grammar {
	return p.g
}

// BuildChart fills the CYK chart for a sentence.
func (p *Parser) BuildChart(tokens []string) *Chart {
	words := p.vocab.Substitute(tokens)
	c := newChart(p.g, append([]string(nil), tokens...))
	n := len(words)
	for i, w := range words {
		for _, r := range p.g.Lexical(w) {
			if e := c.at(i, i+1, r.LHS); r.Prob > e.prob {
				*e = entry{prob: r.Prob, kind: lexical}
			}
		}
		p.closeUnary(c, i, i+1)
	}
	binaries := p.g.BinaryRules()
	for width := 2; width <= n; width++ {
		for begin := 0; begin+width <= n; begin++ {
			end := begin + width
			for split := begin + 1; split < end; split++ {
				for _, r := range binaries {
					lp := c.at(begin, split, r.Left).prob
					if lp == 0 {
						continue
					}
					rp := c.at(split, end, r.Right).prob
					if rp == 0 {
						continue
					}
					prob := lp * rp * r.Prob
					if e := c.at(begin, end, r.LHS); prob > e.prob {
						*e = entry{
							prob:  prob,
							kind:  binary,
							split: int32(split),
							left:  int32(r.Left),
							right: int32(r.Right),
						}
					}
				}
			}
			p.closeUnary(c, begin, end)
		}
	}
	tracer().Debugf("chart of size %d built for %d tokens", len(c.entries), n)
	return c
}

// closeUnary applies the unary rules A -> B to span [begin, end).
// Without fixpoint iteration, exactly one pass is made.
func (p *Parser) closeUnary(c *Chart, begin, end int) {
	passes := 1
	if p.fixpoint {
		passes = c.labels + 1 // weights above 1 may close cycles, which never settle
	}
	for pass := 0; pass < passes; pass++ {
		changed := false
		for _, r := range p.g.UnaryRules() {
			bp := c.at(begin, end, r.RHS).prob
			if bp == 0 {
				continue
			}
			prob := bp * r.Prob
			if e := c.at(begin, end, r.LHS); prob > e.prob {
				*e = entry{prob: prob, kind: unary, left: int32(r.RHS)}
				changed = true
			}
		}
		if !changed {
			break
		}
	}
}

// Result is the outcome of parsing a sentence.
type Result struct {
	Tokens []string   // the input sentence
	Tree   *tree.Tree // the best parse tree, or nil if no parse has been found
	Prob   float64    // the probability of Tree
	Err    error      // set for batch results only
}

// Found is true if the grammar derives the sentence.
func (r *Result) Found() bool {
	return r != nil && r.Tree != nil
}

// String returns the bracketed parse tree, or pcfg.NoParse.
func (r *Result) String() string {
	if !r.Found() {
		return pcfg.NoParse
	}
	return r.Tree.String()
}

// Parse finds the most probable parse tree of a sentence. If the grammar
// does not derive the sentence, a result without a tree is returned, not
// an error. Errors are returned only if the chart is inconsistent.
func (p *Parser) Parse(tokens []string) (*Result, error) {
	result := &Result{Tokens: tokens}
	c := p.BuildChart(tokens)
	prob := c.Score(0, c.Len(), p.top)
	if prob == 0 {
		tracer().Infof("no parse for %d tokens", len(tokens))
		return result, nil
	}
	v, err := c.Walk(p.top, TreeBuilder{})
	if err != nil {
		return result, err
	}
	t := v.(*tree.Tree)
	t.Debinarize()
	result.Tree, result.Prob = t, prob
	tracer().Infof("parse found with probability %g", prob)
	return result, nil
}
