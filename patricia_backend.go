package pyphen

import (
	"github.com/tchap/go-patricia/v2/patricia"
)

// patriciaBackend stores pattern keys in a PATRICIA trie. One VisitPrefixes
// walk per word suffix replaces the substring probing of the map backend.
type patriciaBackend struct {
	trie *patricia.Trie
	keys int
}

func newPatriciaBackend() *patriciaBackend {
	return &patriciaBackend{trie: patricia.NewTrie()}
}

func (pb *patriciaBackend) Insert(key string, id int) error {
	if pb.trie.Insert(patricia.Prefix(key), id) {
		pb.keys++
	} else {
		pb.trie.Set(patricia.Prefix(key), id)
	}
	return nil
}

func (pb *patriciaBackend) Freeze() {}

func (pb *patriciaBackend) Prefixes(s string, match func(id int)) {
	err := pb.trie.VisitPrefixes(patricia.Prefix(s), func(_ patricia.Prefix, item patricia.Item) error {
		match(item.(int))
		return nil
	})
	if err != nil {
		tracer().Errorf("patricia prefix walk for %q: %v", s, err)
	}
}

func (pb *patriciaBackend) Stats() patternIndexStats {
	return patternIndexStats{
		Backend:    BackendPatricia.String(),
		Keys:       pb.keys,
		UsedSlots:  pb.keys,
		TotalSlots: pb.keys,
	}
}
