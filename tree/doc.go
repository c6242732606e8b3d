/*
Package tree implements Penn Treebank-style parse trees.

Trees are read from the usual fully parenthesized bracket notation

    (TOP (S (NP (PRP it)) (VP (VBD was) (ADJP (JJ fine)))))

and every node records the span of token positions it covers.

Binarization

A CYK parser needs a grammar with at most two symbols on the right-hand side
of every rule. Binarize rewrites a tree in place so that every node has at most
two children, introducing synthetic nodes for the surplus children. Synthetic
nodes are labeled like their parent plus pcfg.SyntheticMarker:

    (NP a b c d)  ⟹  (NP a (NP' b (NP' c d)))

Debinarize reverses the transform. For every tree t the sequence
t.Binarize(); t.Debinarize() restores the original structure.

Productions

Productions lists the rules a (binarized) tree realizes, in pre-order. The
right-hand side encoding is the one used in grammar files: a word, a single
label, or two space-separated labels.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pcfg.tree'.
func tracer() tracing.Trace {
	return tracing.Select("pcfg.tree")
}
