package pyphen

import (
	"fmt"
	"sort"

	"github.com/npillmayer/pyphen/dat"
)

type datBuildNode struct {
	state    uint32
	pattern  int32 // pattern id + 1, 0 for inner nodes
	children map[uint16]*datBuildNode
}

// datBackend collects keys in a pointer trie and compiles it into a
// double-array trie on Freeze.
type datBackend struct {
	frozen      bool
	root        *datBuildNode
	keys        int
	runeToDense map[rune]uint16
	nextDenseID uint16
	compiled    *dat.DAT
}

func newDATBackend() *datBackend {
	backend := &datBackend{
		root:        &datBuildNode{children: make(map[uint16]*datBuildNode)},
		runeToDense: make(map[rune]uint16),
		nextDenseID: 1, // reserve 1 for '.'
		compiled: &dat.DAT{
			Root: 1,
		},
	}
	backend.runeToDense['.'] = 1
	backend.compiled.MapPaged.Set(uint16('.'), 1)
	return backend
}

func (db *datBackend) encodeKey(s string) ([]uint16, error) {
	key := make([]uint16, 0, len(s))
	for _, r := range s {
		if r > 0xFFFF {
			return nil, fmt.Errorf("character %U outside BMP not supported by DAT backend", r)
		}
		dense, ok := db.runeToDense[r]
		if !ok {
			if db.nextDenseID == ^uint16(0) {
				return nil, fmt.Errorf("alphabet too large for DAT backend")
			}
			db.nextDenseID++
			dense = db.nextDenseID
			db.runeToDense[r] = dense
			db.compiled.MapPaged.Set(uint16(r), dense)
		}
		key = append(key, dense)
	}
	return key, nil
}

func (db *datBackend) Insert(key string, id int) error {
	if db.frozen {
		return fmt.Errorf("DAT backend is frozen, cannot insert %q", key)
	}
	if key == "" {
		return nil
	}
	dense, err := db.encodeKey(key)
	if err != nil {
		return err
	}
	n := db.root
	for _, c := range dense {
		child := n.children[c]
		if child == nil {
			child = &datBuildNode{children: make(map[uint16]*datBuildNode)}
			n.children[c] = child
		}
		n = child
	}
	if n.pattern == 0 {
		db.keys++
	}
	n.pattern = int32(id) + 1
	return nil
}

// Freeze places the build trie into the double array, breadth first.
func (db *datBackend) Freeze() {
	if db.frozen {
		return
	}
	d := db.compiled
	d.Sigma = db.nextDenseID
	d.Base = make([]int32, int(d.Root)+1)
	d.Check = make([]int32, int(d.Root)+1)
	d.Terminal = make([]int32, int(d.Root)+1)
	db.root.state = d.Root
	queue := []*datBuildNode{db.root}
	for q := 0; q < len(queue); q++ {
		n := queue[q]
		if len(n.children) == 0 {
			continue
		}
		labels := sortedLabels(n.children)
		base := findDATBase(d.Check, labels)
		ensureDATIndex(d, base+int(labels[len(labels)-1]))
		d.Base[n.state] = int32(base)
		for _, label := range labels {
			t := base + int(label)
			child := n.children[label]
			child.state = uint32(t)
			d.Check[t] = int32(n.state)
			d.Terminal[t] = child.pattern
			queue = append(queue, child)
		}
	}
	db.root = nil
	db.runeToDense = nil
	db.frozen = true
}

func (db *datBackend) Prefixes(s string, match func(id int)) {
	if db.frozen {
		db.compiled.Walk(s, match)
		return
	}
	n := db.root
	for _, r := range s {
		c, ok := db.runeToDense[r]
		if !ok {
			return
		}
		if n = n.children[c]; n == nil {
			return
		}
		if n.pattern != 0 {
			match(int(n.pattern - 1))
		}
	}
}

func sortedLabels(children map[uint16]*datBuildNode) []uint16 {
	labels := make([]uint16, 0, len(children))
	for label := range children {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		return labels[i] < labels[j]
	})
	return labels
}

func findDATBase(check []int32, labels []uint16) int {
	for base := 1; ; base++ {
		ok := true
		for _, label := range labels {
			t := base + int(label)
			if t < len(check) && check[t] != 0 {
				ok = false
				break
			}
		}
		if ok {
			return base
		}
	}
}

func ensureDATIndex(d *dat.DAT, idx int) {
	if idx < len(d.Base) {
		return
	}
	grow := idx + 1 - len(d.Base)
	d.Base = append(d.Base, make([]int32, grow)...)
	d.Check = append(d.Check, make([]int32, grow)...)
	d.Terminal = append(d.Terminal, make([]int32, grow)...)
}

func (db *datBackend) String() string {
	return fmt.Sprintf("DAT(states=%d,sigma=%d,frozen=%v)", db.compiled.NStates(), db.compiled.Sigma, db.frozen)
}

func (db *datBackend) Stats() patternIndexStats {
	stats := patternIndexStats{
		Backend:    BackendDAT.String(),
		Keys:       db.keys,
		TotalSlots: db.compiled.NStates(),
		MaxStateID: int(db.compiled.Root),
	}
	if stats.TotalSlots == 0 {
		return stats
	}
	used := 0
	maxID := int(db.compiled.Root)
	for i := range db.compiled.Check {
		if i == int(db.compiled.Root) || db.compiled.Check[i] != 0 {
			used++
			maxID = max(maxID, i)
		}
	}
	stats.UsedSlots = used
	stats.MaxStateID = maxID
	return stats
}
