/*
Command pcfg parses sentences with a probabilistic context-free grammar and
provides helpers for preparing treebanks.

Sub-commands are

    parse        parse sentences, one per line, printing a tree or NONE per line
    binarize     binarize the trees of a treebank
    debinarize   undo binarization
    productions  list the productions of the trees of a treebank
    eval         score parse trees against gold trees (PARSEVAL)
    repl         parse sentences interactively

Call

    pcfg help <command>

for the flags of a command.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pcfg.cli'
func tracer() tracing.Trace {
	return tracing.Select("pcfg.cli")
}
