package pyphen

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// patternEntry is a compiled pattern: Values apply to the slots of a match,
// starting Start characters into the match.
type patternEntry struct {
	Key    string
	Start  int
	Values []WeightedValue
}

// unescapeHex replaces ^^hh (two lower-case hex digits) with the character
// of that code.
func unescapeHex(line string) string {
	if !strings.Contains(line, "^^") {
		return line
	}
	var b strings.Builder
	b.Grow(len(line))
	for i := 0; i < len(line); {
		if i+4 <= len(line) && line[i] == '^' && line[i+1] == '^' &&
			isLowerHex(line[i+2]) && isLowerHex(line[i+3]) {
			n, _ := strconv.ParseUint(line[i+2:i+4], 16, 8)
			b.WriteRune(rune(n))
			i += 4
			continue
		}
		b.WriteByte(line[i])
		i++
	}
	return b.String()
}

func isLowerHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f'
}

// patternToken is one (digit, letter) pair of a pattern. Both parts may be
// empty.
type patternToken struct {
	digit  string
	letter string
}

// tokenizePattern splits a pattern into (optional digit, optional non-digit)
// pairs. A pattern always yields a final empty pair for the slot after its
// last character, e.g.
//
//	"1bc2" => (1,b) (,c) (2,) (,)
func tokenizePattern(pattern string) []patternToken {
	runes := []rune(pattern)
	tokens := make([]patternToken, 0, len(runes)+1)
	for pos := 0; pos < len(runes); {
		var tok patternToken
		if unicode.IsDigit(runes[pos]) {
			tok.digit = string(runes[pos])
			pos++
		}
		if pos < len(runes) && !unicode.IsDigit(runes[pos]) {
			tok.letter = string(runes[pos])
			pos++
		}
		tokens = append(tokens, tok)
	}
	return append(tokens, patternToken{})
}

// decodePatternLine compiles one pattern line. ok is false for patterns
// carrying no information (all weights zero).
func decodePatternLine(line string) (entry patternEntry, ok bool, err error) {
	pattern := unescapeHex(line)
	var factory *alternativeParser
	if base, alternative, found := strings.Cut(pattern, "/"); found {
		pattern = base
		if factory, err = newAlternativeParser(pattern, alternative); err != nil {
			return
		}
	}
	var key strings.Builder
	tokens := tokenizePattern(pattern)
	values := make([]WeightedValue, len(tokens))
	maxWeight := 0
	for i, tok := range tokens {
		key.WriteString(tok.letter)
		weight := 0
		if tok.digit != "" {
			if weight, err = strconv.Atoi(tok.digit); err != nil {
				err = fmt.Errorf("weight %q: %w", tok.digit, err)
				return
			}
		}
		if factory != nil {
			values[i] = factory.next(weight)
		} else {
			values[i] = WeightedValue{Weight: weight}
		}
		maxWeight = max(maxWeight, weight)
	}
	if maxWeight == 0 {
		return
	}
	start, end := 0, len(values)
	for values[start].Weight == 0 {
		start++
	}
	for values[end-1].Weight == 0 {
		end--
	}
	entry = patternEntry{
		Key:    key.String(),
		Start:  start,
		Values: values[start:end:end],
	}
	return entry, true, nil
}
