package pyphen

import (
	"fmt"
	"strings"
)

// Rule describes a nonstandard hyphenation, i.e. a break point where the
// word's text changes when the hyphen is inserted.
//
// Change is of the form "<left>=<right>", e.g. "k=k" for German "ck" → "k-k".
// Index locates the first character to replace, relative to the break
// offset; if resolving it yields a negative value, it counts from the end of
// the word. Cut is the number of characters of the original word which are
// replaced by Change.
type Rule struct {
	Change string
	Index  int
	Cut    int
}

// Split returns the parts of Change before and after the '='.
func (r *Rule) Split() (left, right string) {
	left, right, _ = strings.Cut(r.Change, "=")
	return
}

func (r *Rule) String() string {
	return fmt.Sprintf("%s,%d,%d", r.Change, r.Index, r.Cut)
}

// WeightedValue is a Liang weight at one intra-word slot, optionally tagged
// with a nonstandard hyphenation rule.
// Rule is set only for odd weights coming from patterns with alternative
// syntax.
type WeightedValue struct {
	Weight int
	Rule   *Rule
}

// Odd is true if the weight allows a hyphen.
func (v WeightedValue) Odd() bool {
	return v.Weight%2 != 0
}

func (v WeightedValue) String() string {
	if v.Rule == nil {
		return fmt.Sprintf("%d", v.Weight)
	}
	return fmt.Sprintf("%d/%s", v.Weight, v.Rule)
}

// Breakpoint is a position in a word where a hyphen may be inserted.
// Offset counts characters (runes) of the word, i.e. a break point at
// Offset 3 splits "lettergrepen" into "let" and "tergrepen".
type Breakpoint struct {
	Offset int
	Rule   *Rule
}

func (bp Breakpoint) String() string {
	if bp.Rule == nil {
		return fmt.Sprintf("%d", bp.Offset)
	}
	return fmt.Sprintf("%d(%s)", bp.Offset, bp.Rule)
}

// Offsets extracts the plain offsets of a list of break points.
func Offsets(bps []Breakpoint) []int {
	offsets := make([]int, len(bps))
	for i, bp := range bps {
		offsets[i] = bp.Offset
	}
	return offsets
}
