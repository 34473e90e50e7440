package pyphen

import (
	"errors"
	"reflect"
	"strconv"
	"testing"
)

func TestUnescapeHex(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{in: "a1b", want: "a1b"},
		{in: "^^e41b", want: "ä1b"},
		{in: "x^^fcy", want: "xüy"},
		{in: "^^^411", want: "^A1"},
		{in: "^^E4", want: "^^E4"}, // upper-case hex is not an escape
		{in: "^^e", want: "^^e"},
	}
	for _, tt := range tests {
		if got := unescapeHex(tt.in); got != tt.want {
			t.Errorf("unescapeHex(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTokenizePattern(t *testing.T) {
	got := tokenizePattern("1bc2")
	want := []patternToken{
		{digit: "1", letter: "b"},
		{letter: "c"},
		{digit: "2"},
		{},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("tokens mismatch: got %v, want %v", got, want)
	}
	if got := tokenizePattern(""); len(got) != 1 {
		t.Fatalf("empty pattern should yield one empty token, got %v", got)
	}
}

func TestDecodePatternLine(t *testing.T) {
	tests := []struct {
		line    string
		key     string
		start   int
		weights []int
	}{
		{line: "1bc2", key: "bc", start: 0, weights: []int{1, 0, 2}},
		{line: "a5ban", key: "aban", start: 1, weights: []int{5}},
		{line: ".ab1c", key: ".abc", start: 3, weights: []int{1}},
		{line: "te2r", key: "ter", start: 2, weights: []int{2}},
		{line: "1pen.", key: "pen.", start: 0, weights: []int{1}},
		{line: "ä1b", key: "äb", start: 1, weights: []int{1}},
		{line: "^^e41b", key: "äb", start: 1, weights: []int{1}},
	}
	for _, tt := range tests {
		entry, ok, err := decodePatternLine(tt.line)
		if err != nil || !ok {
			t.Fatalf("pattern %q: ok=%v, err=%v", tt.line, ok, err)
		}
		if entry.Key != tt.key || entry.Start != tt.start {
			t.Errorf("pattern %q: got key=%q start=%d, want key=%q start=%d",
				tt.line, entry.Key, entry.Start, tt.key, tt.start)
		}
		weights := make([]int, len(entry.Values))
		for i, v := range entry.Values {
			weights[i] = v.Weight
			if v.Rule != nil {
				t.Errorf("pattern %q: unexpected rule at %d", tt.line, i)
			}
		}
		if !reflect.DeepEqual(weights, tt.weights) {
			t.Errorf("pattern %q: weights %v, want %v", tt.line, weights, tt.weights)
		}
	}
}

func TestDecodePatternLineDiscardsZeros(t *testing.T) {
	for _, line := range []string{"abc", "a0b", "0a0"} {
		_, ok, err := decodePatternLine(line)
		if err != nil {
			t.Fatalf("pattern %q: %v", line, err)
		}
		if ok {
			t.Errorf("pattern %q carries no weight and should be discarded", line)
		}
	}
}

func TestDecodePatternLineAlternative(t *testing.T) {
	entry, ok, err := decodePatternLine("c1k/k=k,1,2")
	if err != nil || !ok {
		t.Fatalf("ok=%v, err=%v", ok, err)
	}
	if entry.Key != "ck" || entry.Start != 1 || len(entry.Values) != 1 {
		t.Fatalf("unexpected entry %+v", entry)
	}
	want := Rule{Change: "k=k", Index: -1, Cut: 2}
	if r := entry.Values[0].Rule; r == nil || *r != want {
		t.Fatalf("rule = %v, want %v", r, want)
	}
}

func TestDecodePatternLineErrors(t *testing.T) {
	for _, line := range []string{
		"a1b/k=k,x,2",  // index not a number
		"a1b/k=k,1,-2", // cut must not be negative
		"a1b/k=k,1",    // missing field
		"a\u06631b",    // Arabic-Indic digit three is a digit, but not a weight
	} {
		_, _, err := decodePatternLine(line)
		if err == nil {
			t.Errorf("pattern %q should fail to compile", line)
		}
	}
	_, _, err := decodePatternLine("a1b/k=k,1,z")
	var numErr *strconv.NumError
	if !errors.As(err, &numErr) {
		t.Errorf("expected wrapped strconv error, got %v", err)
	}
}
