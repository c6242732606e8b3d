/*
Package pcfg is a toolbox for parsing with probabilistic context-free grammars.

It finds the most probable constituency parse of a tokenized sentence under a
weighted grammar, using a CYK chart parser with Viterbi scoring. Package
structure is as follows:

■ tree: Package tree implements Penn Treebank-style parse trees, together with
the binarization transform the chart parser relies on, and its inverse.

■ grammar: Package grammar implements immutable weighted grammars in binary
form, and a loader for the line-oriented grammar file format.

■ cyk: Package cyk implements the chart parser and the backtracker turning the
best chart entry into a tree.

■ eval: Package eval scores parse trees against gold trees (labeled brackets).

■ cmd/pcfg: Command pcfg is a command line driver for parsing, treebank
preparation and evaluation.

The base package contains data types and reserved symbols which are used
throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package pcfg
