/*
Package grammar implements weighted context-free grammars in binary form,
as consumed by the CYK parser.

Building a Grammar

Grammars are created with a builder object or read from a grammar file.
A rule has a single word, a single non-terminal, or two non-terminals on its
right-hand side, and carries a probability.

Example:

    b := grammar.NewBuilder("G")
    b.LHS("TOP").N("S").P(1.0)         // TOP  ->  S
    b.LHS("S").N("NP").N("VP").P(1.0)  // S    ->  NP VP
    b.LHS("NP").T("n").P(1.0)          // NP   ->  n
    b.LHS("VP").T("v").P(1.0)          // VP   ->  v
    g, err := b.Grammar()

Grammar files hold one rule per line, in the same encoding:

    S -> NP VP # 1.0
    NP -> n # 0.25

A finished Grammar is immutable and may be shared between any number of
concurrently running parsers.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pcfg.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("pcfg.grammar")
}
