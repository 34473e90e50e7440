package tex

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/pyphen"
)

const dutch = `% a few Dutch patterns
\message{Dutch test patterns}
\patterns{ % Liang
t1t r1g r1d m1s
u1t o1b d1v n1t l1d p1j
e1p 1pen. e1r te2r
}
\hyphenation{
ta-ble
}
`

func TestLoadDictionary(t *testing.T) {
	for _, backend := range []pyphen.Backend{pyphen.BackendMap, pyphen.BackendPatricia, pyphen.BackendDAT} {
		dict, err := LoadDictionary("nl", strings.NewReader(dutch), pyphen.WithBackend(backend))
		if err != nil {
			t.Fatal(err)
		}
		h := pyphen.NewHyphenator(dict, 2, 2)
		tests := []struct {
			word string
			want string
		}{
			{word: "lettergrepen", want: "let-ter-gre-pen"},
			{word: "Amsterdam", want: "Am-ster-dam"},
			{word: "table", want: "ta-ble"}, // comes from TeX exceptions
		}
		for _, tt := range tests {
			if got := h.Inserted(tt.word); got != tt.want {
				t.Fatalf("%s: hyphenation mismatch for %q: got %q, want %q", backend, tt.word, got, tt.want)
			}
		}
	}
}

func TestLoadDictionaryUmlauts(t *testing.T) {
	dict, err := LoadDictionary("de", strings.NewReader(`\patterns{
d1c
^^f61b
1stra
}`))
	if err != nil {
		t.Fatal(err)
	}
	h := pyphen.NewHyphenator(dict, 2, 2)
	tests := []struct {
		word string
		want string
	}{
		{word: "Mädchen", want: "Mäd-chen"},
		{word: "Köbes", want: "Kö-bes"},
	}
	for _, tt := range tests {
		if got := h.Inserted(tt.word); got != tt.want {
			t.Fatalf("hyphenation mismatch for %q: got %q, want %q", tt.word, got, tt.want)
		}
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hyph-nl.tex")
	if err := os.WriteFile(path, []byte(dutch), 0o644); err != nil {
		t.Fatal(err)
	}
	dict, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := pyphen.NewHyphenator(dict, 2, 2).Inserted("table"); got != "ta-ble" {
		t.Fatalf("inserted = %q", got)
	}
	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.tex"))
	var cerr *pyphen.CompileError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected *CompileError for a missing file, got %v", err)
	}
}
