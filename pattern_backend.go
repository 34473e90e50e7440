package pyphen

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Backend selects the data structure used to look up pattern keys.
// All backends produce identical hyphenation results.
type Backend int

const (
	// BackendMap looks up every substring of a word in a hash map.
	BackendMap Backend = iota
	// BackendPatricia walks a PATRICIA trie for all keys prefixing a word suffix.
	BackendPatricia
	// BackendDAT walks a frozen double-array trie.
	BackendDAT
)

func (b Backend) String() string {
	switch b {
	case BackendMap:
		return "map"
	case BackendPatricia:
		return "patricia"
	case BackendDAT:
		return "dat"
	}
	return fmt.Sprintf("Backend(%d)", int(b))
}

// ParseBackend maps a backend name ("map", "patricia", "dat") to a Backend.
func ParseBackend(name string) (Backend, error) {
	switch strings.ToLower(name) {
	case "", "map":
		return BackendMap, nil
	case "patricia":
		return BackendPatricia, nil
	case "dat":
		return BackendDAT, nil
	}
	return BackendMap, fmt.Errorf("unknown pattern backend %q", name)
}

type patternIndexStats struct {
	Backend    string
	Keys       int
	UsedSlots  int
	TotalSlots int
	MaxStateID int
}

func (s patternIndexStats) FillRatio() float64 {
	if s.TotalSlots == 0 {
		return 0
	}
	return float64(s.UsedSlots) / float64(s.TotalSlots)
}

// patternIndex is the internal backend abstraction for pattern-key storage.
//
// Prefixes calls match with the pattern id of every stored key which is a
// prefix of s, shortest key first.
type patternIndex interface {
	Insert(key string, id int) error
	Freeze()
	Prefixes(s string, match func(id int))
	Stats() patternIndexStats
}

func newPatternIndex(backend Backend) patternIndex {
	switch backend {
	case BackendPatricia:
		return newPatriciaBackend()
	case BackendDAT:
		return newDATBackend()
	}
	return newMapBackend()
}

// --- Map backend -----------------------------------------------------------

// mapBackend is a plain hash table from key to pattern id. Lookups try all
// prefixes of s up to the length of the longest key.
type mapBackend struct {
	ids    map[string]int
	maxlen int // in runes
}

func newMapBackend() *mapBackend {
	return &mapBackend{ids: make(map[string]int)}
}

func (mb *mapBackend) Insert(key string, id int) error {
	mb.ids[key] = id
	mb.maxlen = max(mb.maxlen, utf8.RuneCountInString(key))
	return nil
}

func (mb *mapBackend) Freeze() {}

func (mb *mapBackend) Prefixes(s string, match func(id int)) {
	for i, n := 0, 0; i < len(s) && n < mb.maxlen; n++ {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		if id, ok := mb.ids[s[:i]]; ok {
			match(id)
		}
	}
}

func (mb *mapBackend) Stats() patternIndexStats {
	return patternIndexStats{
		Backend:    BackendMap.String(),
		Keys:       len(mb.ids),
		UsedSlots:  len(mb.ids),
		TotalSlots: len(mb.ids),
	}
}
