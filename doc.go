/*
Package pyphen hyphenates words using pattern dictionaries in the format of
hunspell/LibreOffice (hyph_*.dic files).

It is based on the algorithm described by Frank Liang
(F.M.Liang http://www.tug.org/docs/liang/), in the simplified flavour of
Python's Pyphen: patterns are compiled into a table keyed by the literal
pattern text, and every substring of a dot-padded word is looked up in it.
The overlay of all matching weight vectors decides the break points: odd
weights allow a break, even weights suppress it, higher weights win.

Some dictionaries carry nonstandard hyphenation rules, written as

	c1k/k=k,1,2

where breaking the word also rewrites it ("Zucker" → "Zuk-ker"). Break points
coming from such patterns carry a Rule describing the substitution.

Typical usage:

	dict, err := pyphen.CompileFile("hyph_nl_NL.dic")
	if err != nil {
		...
	}
	h := pyphen.NewHyphenator(dict, pyphen.DefaultLeft, pyphen.DefaultRight)
	h.Inserted("lettergrepen") // => "let-ter-gre-pen"

Locating dictionaries by language is done by package registry.

Further Reading

	https://pyphen.org/
	https://nedbatchelder.com/code/modules/hyphenate.html   (Python implementation)
	https://github.com/hyphenation/tex-hyphen

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package pyphen

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'pyphen'
func tracer() tracing.Trace {
	return tracing.Select("pyphen")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
