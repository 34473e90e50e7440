package texpatterns

import (
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/npillmayer/pyphen"
)

func readAll(t *testing.T, r *PatternReader) []string {
	t.Helper()
	var patterns []string
	for {
		p, err := r.Next()
		if err == io.EOF {
			return patterns
		}
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		patterns = append(patterns, p)
	}
}

func TestPatternReader(t *testing.T) {
	src := strings.NewReader(`\message{test-id}
\hyphenation{
ta-ble
}
\patterns{ % Liang patterns
fü1r
.ab1c 1bc2 % two on a line
^^e41b
}
\patterns{
ignored1
}`)
	r := NewPatternReader(src)
	got := readAll(t, r)
	want := []string{"fü1r", ".ab1c", "1bc2", "^^e41b"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("patterns = %v, want %v", got, want)
	}
	if r.Identifier() != "test-id" {
		t.Fatalf("identifier mismatch: %q", r.Identifier())
	}
}

func TestPatternReaderSingleLine(t *testing.T) {
	r := NewPatternReader(strings.NewReader(`\patterns{a1b c1d}`))
	if got := readAll(t, r); !reflect.DeepEqual(got, []string{"a1b", "c1d"}) {
		t.Fatalf("patterns = %v", got)
	}
}

func TestPatternReaderUnclosed(t *testing.T) {
	r := NewPatternReader(strings.NewReader("\\patterns{\na1b\n"))
	if p, err := r.Next(); err != nil || p != "a1b" {
		t.Fatalf("Next = %q, %v", p, err)
	}
	if _, err := r.Next(); err == nil || err == io.EOF {
		t.Fatalf("expected error for unclosed block, got %v", err)
	}
}

func TestLoadPatterns(t *testing.T) {
	dict, err := LoadPatterns("nl", strings.NewReader(`\patterns{
t1t r1g e1p 1pen. e1r te2r
}`))
	if err != nil {
		t.Fatal(err)
	}
	h := pyphen.NewHyphenator(dict, 2, 2)
	if got := h.Inserted("lettergrepen"); got != "let-ter-gre-pen" {
		t.Fatalf("inserted = %q", got)
	}
}

func TestLoadPatternsReportsLine(t *testing.T) {
	_, err := LoadPatterns("broken", strings.NewReader("\\patterns{\na1b\nc1k/k=k,x,2\n}"))
	cerr, ok := err.(*pyphen.CompileError)
	if !ok {
		t.Fatalf("expected *CompileError, got %v", err)
	}
	if cerr.Line != 3 {
		t.Fatalf("error on line %d, want 3", cerr.Line)
	}
}
