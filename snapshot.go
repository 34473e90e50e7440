package pyphen

import (
	"fmt"
	"io"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

const snapshotVersion = 1

// snapshot is the msgpack representation of a compiled dictionary.
type snapshot struct {
	Version    int               `msgpack:"v"`
	Identifier string            `msgpack:"id"`
	LeftMin    int               `msgpack:"lmin"`
	RightMin   int               `msgpack:"rmin"`
	Patterns   []snapshotPattern `msgpack:"p"`
	Exceptions map[string][]int  `msgpack:"x,omitempty"`
}

type snapshotPattern struct {
	Key    string          `msgpack:"k"`
	Start  int             `msgpack:"s"`
	Values []snapshotValue `msgpack:"w"`
}

type snapshotValue struct {
	Weight int           `msgpack:"w"`
	Rule   *snapshotRule `msgpack:"r,omitempty"`
}

type snapshotRule struct {
	Change string `msgpack:"c"`
	Index  int    `msgpack:"i"`
	Cut    int    `msgpack:"n"`
}

// WriteSnapshot writes the compiled patterns and exceptions of dict in
// msgpack format. Reading a snapshot is much faster than compiling the
// pattern source again. The word cache is not part of a snapshot.
func (dict *Dictionary) WriteSnapshot(w io.Writer) error {
	snap := snapshot{
		Version:    snapshotVersion,
		Identifier: dict.Identifier,
		LeftMin:    dict.leftMin,
		RightMin:   dict.rightMin,
		Patterns:   make([]snapshotPattern, len(dict.store.entries)),
	}
	for i, entry := range dict.store.entries {
		p := snapshotPattern{
			Key:    entry.Key,
			Start:  entry.Start,
			Values: make([]snapshotValue, len(entry.Values)),
		}
		for j, v := range entry.Values {
			p.Values[j].Weight = v.Weight
			if v.Rule != nil {
				p.Values[j].Rule = &snapshotRule{Change: v.Rule.Change, Index: v.Rule.Index, Cut: v.Rule.Cut}
			}
		}
		snap.Patterns[i] = p
	}
	if len(dict.exceptions) > 0 {
		snap.Exceptions = make(map[string][]int, len(dict.exceptions))
		for word, bps := range dict.exceptions {
			snap.Exceptions[word] = Offsets(bps)
		}
	}
	return msgpack.NewEncoder(w).Encode(&snap)
}

// ReadSnapshot restores a dictionary written by WriteSnapshot. Options
// apply as for Compile.
func ReadSnapshot(r io.Reader, opts ...Option) (*Dictionary, error) {
	var snap snapshot
	if err := msgpack.NewDecoder(r).Decode(&snap); err != nil {
		return nil, &CompileError{Name: "snapshot", Err: err}
	}
	name := strings.TrimPrefix(snap.Identifier, "patterns: ")
	if snap.Version != snapshotVersion {
		return nil, &CompileError{Name: name, Err: fmt.Errorf("unsupported snapshot version %d", snap.Version)}
	}
	store := newPatternStore(len(snap.Patterns))
	for _, p := range snap.Patterns {
		entry := patternEntry{
			Key:    p.Key,
			Start:  p.Start,
			Values: make([]WeightedValue, len(p.Values)),
		}
		for j, v := range p.Values {
			entry.Values[j].Weight = v.Weight
			if v.Rule != nil {
				entry.Values[j].Rule = &Rule{Change: v.Rule.Change, Index: v.Rule.Index, Cut: v.Rule.Cut}
			}
		}
		store.Put(entry)
	}
	dict, err := newDictionary(name, store, collectOptions(opts))
	if err != nil {
		return nil, err
	}
	dict.leftMin, dict.rightMin = snap.LeftMin, snap.RightMin
	for word, offsets := range snap.Exceptions {
		bps := make([]Breakpoint, len(offsets))
		for i, o := range offsets {
			bps[i].Offset = o
		}
		dict.exceptions[word] = bps
	}
	return dict, nil
}
