/*
Package grammar turns lablang source text into a program.

Tokenizing is line oriented: every line of text becomes a line of tokens.
Tokens are separated by spaces, with double-quoted string literals forming
a single token each. The loader then groups lines into labeled blocks,
starting a new block at every `label` directive.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lablang.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("lablang.grammar")
}
