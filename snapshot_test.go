package pyphen

import (
	"bytes"
	"errors"
	"reflect"
	"testing"

	"github.com/vmihailenco/msgpack/v5"
)

func TestSnapshotRestoresDictionary(t *testing.T) {
	dict := mustCompile(t, "hyph_hu_HU.dic")
	dict.AddException("kulissza", []int{0, 0, 0, 1})
	var buf bytes.Buffer
	if err := dict.WriteSnapshot(&buf); err != nil {
		t.Fatal(err)
	}
	restored, err := ReadSnapshot(&buf, WithBackend(BackendDAT))
	if err != nil {
		t.Fatal(err)
	}
	if restored.Identifier != dict.Identifier {
		t.Fatalf("identifier = %q, want %q", restored.Identifier, dict.Identifier)
	}
	if restored.Len() != dict.Len() || restored.MaxLen() != dict.MaxLen() {
		t.Fatalf("restored %d patterns (maxlen %d), want %d (maxlen %d)",
			restored.Len(), restored.MaxLen(), dict.Len(), dict.MaxLen())
	}
	for _, word := range []string{"kulissza", "ulu", "asszony"} {
		if got, want := restored.Positions(word), dict.Positions(word); !reflect.DeepEqual(got, want) {
			t.Errorf("positions of %q = %v, want %v", word, got, want)
		}
	}
}

func TestSnapshotKeepsHyphenMins(t *testing.T) {
	dict := mustCompile(t, "hyph_de_DE.dic")
	var buf bytes.Buffer
	if err := dict.WriteSnapshot(&buf); err != nil {
		t.Fatal(err)
	}
	restored, err := ReadSnapshot(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if l, r := restored.HyphenMins(); l != 2 || r != 3 {
		t.Fatalf("hyphen mins = (%d, %d), want (2, 3)", l, r)
	}
	h := NewHyphenator(restored, 2, 3)
	if got := h.Inserted("Zucker"); got != "Zuk-ker" {
		t.Fatalf("inserted = %q", got)
	}
}

func TestSnapshotVersionMismatch(t *testing.T) {
	data, err := msgpack.Marshal(&snapshot{Version: snapshotVersion + 1, Identifier: "patterns: future"})
	if err != nil {
		t.Fatal(err)
	}
	_, err = ReadSnapshot(bytes.NewReader(data))
	var cerr *CompileError
	if !errors.As(err, &cerr) || cerr.Name != "future" {
		t.Fatalf("expected compile error for future, got %v", err)
	}
	if _, err = ReadSnapshot(bytes.NewReader([]byte{0xc1})); err == nil {
		t.Fatalf("garbage should not decode")
	}
}
