/*
Package cyk implements a Viterbi CYK parser for probabilistic context-free
grammars in binary form.

The parser fills a chart bottom-up, span width by span width. Every chart
cell holds, for each non-terminal, the probability of the best derivation of
that non-terminal over the cell's span, together with a record of how it has
been derived: by matching an input word, by a unary rule A -> B, or by a
binary rule A -> B C split at some position. After the chart is complete, the
best derivation of the top symbol over the whole input is walked
depth-first to build a parse tree.

Ties between derivations of equal probability are resolved by keeping the
derivation found first. Split points are visited left to right, binary
rules in the order of their registration in the grammar, and unary rules
A -> B in lexicographic order of (A, B).

Unary Rules

After the binary rules have been applied to a span, a single pass over the
unary rules is made. Chains of unary rules A -> B -> C within one span are
only found if the rules happen to be visited in the right order. Clients
may switch to iterating the unary pass until no cell changes, either with
the parser option UnaryFixpoint or by setting the global configuration key
"pcfg.unary-fixpoint".

Usage

    g, err := grammar.LoadFile("grammar.pcfg")
    ...
    parser := cyk.NewParser(g, cyk.WithVocabulary(vocab))
    result, err := parser.Parse(strings.Fields("the dog barks"))
    fmt.Println(result) // a bracketed tree, or "NONE"

A parser is immutable and may be used from multiple goroutines; ParseAll
parses a batch of sentences concurrently.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cyk

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pcfg.cyk'.
func tracer() tracing.Trace {
	return tracing.Select("pcfg.cyk")
}
