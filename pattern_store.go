package pyphen

import "unicode/utf8"

// patternStore keeps compiled pattern entries, addressed by pattern id.
// Index backends map keys to these ids.
type patternStore struct {
	entries []patternEntry
	maxlen  int // longest key, in runes
}

func newPatternStore(capacity int) *patternStore {
	return &patternStore{
		entries: make([]patternEntry, 0, capacity),
	}
}

// Put appends an entry and returns its id.
func (s *patternStore) Put(entry patternEntry) int {
	s.entries = append(s.entries, entry)
	s.maxlen = max(s.maxlen, utf8.RuneCountInString(entry.Key))
	return len(s.entries) - 1
}

// Replace overwrites the entry with id. Its key is expected to be unchanged.
func (s *patternStore) Replace(id int, entry patternEntry) {
	assert(s.entries[id].Key == entry.Key, "pattern store: replacing entry with different key")
	s.entries[id] = entry
}

// Get returns the entry with id.
func (s *patternStore) Get(id int) (patternEntry, bool) {
	if id < 0 || id >= len(s.entries) {
		return patternEntry{}, false
	}
	return s.entries[id], true
}

// Len is the number of stored patterns.
func (s *patternStore) Len() int {
	return len(s.entries)
}

// MergeInto overlays the values of pattern id onto dst, for a match starting
// at slot at. A stored value replaces the current one only if its weight is
// strictly greater; on ties the earlier match stays.
func (s *patternStore) MergeInto(id int, at int, dst []WeightedValue) {
	entry, ok := s.Get(id)
	if !ok {
		return
	}
	base := at + entry.Start
	for k, v := range entry.Values {
		if base+k >= len(dst) {
			break
		}
		if v.Weight > dst[base+k].Weight {
			dst[base+k] = v
		}
	}
}
