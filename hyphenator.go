package pyphen

import (
	"iter"
	"strings"
	"unicode/utf8"
)

// Default minimum number of characters before the first and after the last
// hyphen of a word.
const (
	DefaultLeft  = 2
	DefaultRight = 2
)

// Hyphenator hyphenates words with a dictionary, honouring minimum syllable
// lengths at both ends of a word. A Hyphenator is immutable; several
// hyphenators with different settings may share one Dictionary.
type Hyphenator struct {
	dict  *Dictionary
	left  int
	right int
}

// NewHyphenator creates a hyphenator. left and right are the minimum number
// of characters in the first and in the last syllable.
func NewHyphenator(dict *Dictionary, left, right int) *Hyphenator {
	assert(dict != nil, "hyphenator needs a dictionary")
	return &Hyphenator{
		dict:  dict,
		left:  max(0, left),
		right: max(0, right),
	}
}

// Dictionary returns the dictionary of h.
func (h *Hyphenator) Dictionary() *Dictionary {
	return h.dict
}

// Left returns the minimum length of the first syllable.
func (h *Hyphenator) Left() int { return h.left }

// Right returns the minimum length of the last syllable.
func (h *Hyphenator) Right() int { return h.right }

// Breakpoints returns the break points of word which leave at least Left
// characters before and Right characters after the break, ascending.
func (h *Hyphenator) Breakpoints(word string) []Breakpoint {
	right := utf8.RuneCountInString(word) - h.right
	all := h.dict.Positions(word)
	bps := make([]Breakpoint, 0, len(all))
	for _, bp := range all {
		if bp.Offset >= h.left && bp.Offset <= right {
			bps = append(bps, bp)
		}
	}
	return bps
}

// Positions returns the offsets of the break points of word, ascending.
// Words shorter than Left+Right have no positions.
func (h *Hyphenator) Positions(word string) []int {
	return Offsets(h.Breakpoints(word))
}

// Iterate iterates over all hyphenation possibilities, the longest first
// part first. For a nonstandard break point both parts carry the
// substituted text, e.g. "Zucker" => ("Zuk", "ker").
//
// The sequence may be ranged over repeatedly.
func (h *Hyphenator) Iterate(word string) iter.Seq2[string, string] {
	bps := h.Breakpoints(word)
	runes := []rune(word)
	isUpper := word == h.dict.upper(word)
	return func(yield func(string, string) bool) {
		for i := len(bps) - 1; i >= 0; i-- {
			first, second := h.split(runes, bps[i], isUpper)
			if !yield(first, second) {
				return
			}
		}
	}
}

// split cuts a word at a break point.
func (h *Hyphenator) split(runes []rune, bp Breakpoint, isUpper bool) (string, string) {
	if bp.Rule == nil {
		at := clamp(bp.Offset, 0, len(runes))
		return string(runes[:at]), string(runes[at:])
	}
	change := bp.Rule.Change
	if isUpper {
		change = h.dict.upper(change)
	}
	c1, c2, _ := strings.Cut(change, "=")
	index := resolveIndex(bp, len(runes))
	end := clamp(index+bp.Rule.Cut, index, len(runes))
	return string(runes[:index]) + c1, c2 + string(runes[end:])
}

// resolveIndex locates the first character replaced by a rule. Negative
// indices count from the end of the word.
func resolveIndex(bp Breakpoint, length int) int {
	index := bp.Rule.Index + bp.Offset
	if index < 0 {
		index += length
	}
	return clamp(index, 0, length)
}

func clamp(x, lo, hi int) int {
	return max(lo, min(x, hi))
}

// Wrap returns the longest possible first part and the last part of a word,
// with the first part no longer than width characters including a hyphen
// "-" attached to it.
//
// ok is false if there is no hyphenation point before width, or if the
// word could not be hyphenated.
func (h *Hyphenator) Wrap(word string, width int) (first, rest string, ok bool) {
	return h.WrapWith(word, width, "-")
}

// WrapWith is Wrap with a custom hyphen string.
func (h *Hyphenator) WrapWith(word string, width int, hyphen string) (first, rest string, ok bool) {
	width -= utf8.RuneCountInString(hyphen)
	for w1, w2 := range h.Iterate(word) {
		if utf8.RuneCountInString(w1) <= width {
			return w1 + hyphen, w2, true
		}
	}
	return "", "", false
}

// Inserted returns the word with all possible hyphens "-" inserted.
//
//	"lettergrepen" => "let-ter-gre-pen"
func (h *Hyphenator) Inserted(word string) string {
	return h.InsertedWith(word, "-")
}

// InsertedWith returns the word with all possible hyphens inserted,
// using a custom hyphen string, e.g. a soft hyphen U+00AD.
func (h *Hyphenator) InsertedWith(word string, hyphen string) string {
	return strings.Join(h.syllables(word, utf8.RuneCountInString(hyphen)), hyphen)
}

// Syllables splits a word at its break points.
//
//	"table" => [ "ta", "ble" ].
//
// Nonstandard break points split the substituted text, e.g.
// "Zucker" => [ "Zuk", "ker" ].
func (h *Hyphenator) Syllables(word string) []string {
	return h.syllables(word, 1)
}

// syllables cuts word at its break points, back to front. Negative rule
// indices count from the end of the hyphenated word built so far, where every
// hyphen is hyphenLen runes long. A rule never rewrites syllables already
// cut off.
func (h *Hyphenator) syllables(word string, hyphenLen int) []string {
	bps := h.Breakpoints(word)
	if len(bps) == 0 {
		return []string{word}
	}
	isUpper := word == h.dict.upper(word)
	head := []rune(word)
	var tail []string // cut off syllables, last one first
	tailLen := 0      // runes in tail, including a hyphen per syllable
	cut := func(syllable []rune) {
		tail = append(tail, string(syllable))
		tailLen += len(syllable) + hyphenLen
	}
	for i := len(bps) - 1; i >= 0; i-- {
		bp := bps[i]
		if bp.Rule == nil {
			at := clamp(bp.Offset, 0, len(head))
			cut(head[at:])
			head = head[:at]
			continue
		}
		change := bp.Rule.Change
		if isUpper {
			change = h.dict.upper(change)
		}
		c1, c2, _ := strings.Cut(change, "=")
		index := min(resolveIndex(bp, len(head)+tailLen), len(head))
		end := clamp(index+bp.Rule.Cut, index, len(head))
		cut(append([]rune(c2), head[end:]...))
		head = append(head[:index:index], []rune(c1)...)
	}
	syllables := make([]string, 0, len(tail)+1)
	syllables = append(syllables, string(head))
	for i := len(tail) - 1; i >= 0; i-- {
		syllables = append(syllables, tail[i])
	}
	return syllables
}
