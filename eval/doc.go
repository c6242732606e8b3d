/*
Package eval scores parse trees against gold standard trees, counting
matching labeled brackets (PARSEVAL).

A bracket is the label of an internal node together with the span of words
it covers. Part-of-speech nodes do not count as brackets.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package eval

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'pcfg.eval'.
func tracer() tracing.Trace {
	return tracing.Select("pcfg.eval")
}
