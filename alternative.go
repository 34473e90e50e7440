package pyphen

import (
	"fmt"
	"strconv"
	"strings"
)

// alternativeParser attaches nonstandard hyphenation data to the odd weights
// of one pattern line. It has to be called once per digit slot of the
// pattern, left to right.
type alternativeParser struct {
	change string
	index  int
	cut    int
}

// newAlternativeParser parses the "change,index,cut" suffix of a pattern.
func newAlternativeParser(pattern, alternative string) (*alternativeParser, error) {
	fields := strings.Split(alternative, ",")
	if len(fields) != 3 {
		return nil, fmt.Errorf("alternative %q: expected 3 fields, have %d", alternative, len(fields))
	}
	index, err := strconv.Atoi(fields[1])
	if err != nil {
		return nil, fmt.Errorf("alternative %q: index: %w", alternative, err)
	}
	cut, err := strconv.ParseUint(fields[2], 10, 31)
	if err != nil {
		return nil, fmt.Errorf("alternative %q: cut: %w", alternative, err)
	}
	ap := &alternativeParser{
		change: fields[0],
		index:  index,
		cut:    int(cut),
	}
	if strings.HasPrefix(pattern, ".") {
		ap.index++ // account for the word boundary slot
	}
	return ap, nil
}

// next consumes one digit slot. The countdown is decremented regardless of
// the weight.
func (ap *alternativeParser) next(weight int) WeightedValue {
	ap.index--
	if weight%2 == 0 {
		return WeightedValue{Weight: weight}
	}
	return WeightedValue{
		Weight: weight,
		Rule: &Rule{
			Change: ap.change,
			Index:  ap.index,
			Cut:    ap.cut,
		},
	}
}
