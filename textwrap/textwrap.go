/*
Package textwrap fills paragraphs to a column width, hyphenating words
which would overflow a line.

Line break opportunities are found with the Unicode line breaking
algorithm (UAX #14), widths are measured in terminal cells:

	h := pyphen.NewHyphenator(dict, 2, 2)
	fmt.Println(textwrap.Fill(text, 40, h))

Mandatory breaks (newlines) in the input are kept.
*/
package textwrap

import (
	"strings"
	"unicode"

	"github.com/npillmayer/pyphen"
	"github.com/rivo/uniseg"
)

// Fill wraps text into lines of at most width cells, joined by newlines.
// h may be nil, in which case words are never hyphenated.
func Fill(text string, width int, h *pyphen.Hyphenator) string {
	return strings.Join(Lines(text, width, h), "\n")
}

// Lines wraps text into lines of at most width cells. A word which does not
// fit into an empty line and cannot be hyphenated overflows.
func Lines(text string, width int, h *pyphen.Hyphenator) []string {
	f := filler{width: width, h: h}
	state := -1
	for text != "" {
		var segment string
		var mustBreak bool
		segment, text, mustBreak, state = uniseg.FirstLineSegmentInString(text, state)
		f.add(segment)
		if mustBreak {
			f.flush(text != "")
		}
	}
	f.flush(false)
	return f.lines
}

type filler struct {
	width int
	h     *pyphen.Hyphenator
	lines []string
	line  strings.Builder
	used  int // cells of line, including trailing space
}

// add places a line segment, i.e. a word with its trailing whitespace.
func (f *filler) add(segment string) {
	for segment != "" {
		word := strings.TrimRightFunc(segment, unicode.IsSpace)
		if f.used+uniseg.StringWidth(word) <= f.width {
			f.put(segment)
			return
		}
		if first, rest, ok := f.hyphenate(word, f.width-f.used); ok {
			f.put(first)
			f.flush(true)
			segment = rest + segment[len(word):]
			continue
		}
		if f.used == 0 {
			f.put(segment)
			return
		}
		f.flush(true)
	}
}

func (f *filler) put(s string) {
	s = strings.TrimRight(s, "\r\n\v\f\u0085\u2028\u2029")
	f.line.WriteString(s)
	f.used += uniseg.StringWidth(s)
}

// flush ends the current line. Empty lines are kept only if forced.
func (f *filler) flush(force bool) {
	line := strings.TrimRightFunc(f.line.String(), unicode.IsSpace)
	if line != "" || force {
		f.lines = append(f.lines, line)
	}
	f.line.Reset()
	f.used = 0
}

// hyphenate wraps the letters of word into room cells. Leading and trailing
// punctuation stays attached to the first and the last part.
func (f *filler) hyphenate(word string, room int) (string, string, bool) {
	if f.h == nil || room <= 0 {
		return "", "", false
	}
	start := strings.IndexFunc(word, unicode.IsLetter)
	if start < 0 {
		return "", "", false
	}
	end := start + len(strings.TrimRightFunc(word[start:], func(r rune) bool {
		return !unicode.IsLetter(r)
	}))
	first, rest, ok := f.h.Wrap(word[start:end], room-uniseg.StringWidth(word[:start]))
	if !ok {
		return "", "", false
	}
	return word[:start] + first, rest + word[end:], true
}
