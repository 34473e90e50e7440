package pyphen

import (
	"strings"
	"unicode"
)

// HyphenateText inserts hyphens into every word of a text. Words are maximal
// runs of letters (and combining marks); all other characters are copied
// unchanged.
//
//	"Go is a new language." => "Go is a new lan-guage."
func (h *Hyphenator) HyphenateText(text string, hyphen string) string {
	var b strings.Builder
	b.Grow(len(text) + len(text)/4)
	start := -1
	for i, r := range text {
		if isWordRune(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			b.WriteString(h.InsertedWith(text[start:i], hyphen))
			start = -1
		}
		b.WriteRune(r)
	}
	if start >= 0 {
		b.WriteString(h.InsertedWith(text[start:], hyphen))
	}
	return b.String()
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.Is(unicode.Mn, r)
}
