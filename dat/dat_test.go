package dat

import (
	"reflect"
	"testing"
)

// build constructs the trie for the keys "a" (id 0) and "ab" (id 1) by hand.
func build() *DAT {
	d := &DAT{Root: 1, Sigma: 2}
	d.MapPaged.Set('a', 1)
	d.MapPaged.Set('b', 2)
	// state 1 --a--> 2 --b--> 4
	d.Base = []int32{0, 1, 2, 0, 0}
	d.Check = []int32{0, 0, 1, 0, 2}
	d.Terminal = []int32{0, 0, 1, 0, 2}
	return d
}

func TestPagedMap(t *testing.T) {
	var m PagedMapBMP
	m.Set('ä', 7)
	m.Set('x', 0) // clearing an absent page allocates nothing
	if m.NumPages() != 1 {
		t.Fatalf("expected 1 page, have %d", m.NumPages())
	}
	if m.Lookup('ä') != 7 || m.Lookup('a') != 0 {
		t.Fatalf("unexpected mapping")
	}
	if m.Lookup(0x1F600) != 0 {
		t.Fatalf("runes outside the BMP are never mapped")
	}
	m.Set('ä', 0)
	if m.Dense(uint16('ä')) != 0 {
		t.Fatalf("mapping should be cleared")
	}
}

func TestWalk(t *testing.T) {
	d := build()
	var ids []int
	d.Walk("abc", func(id int) { ids = append(ids, id) })
	if !reflect.DeepEqual(ids, []int{0, 1}) {
		t.Fatalf("walk visited %v, want [0 1]", ids)
	}
	ids = nil
	d.Walk("ba", func(id int) { ids = append(ids, id) })
	if len(ids) != 0 {
		t.Fatalf("walk from b should not match, got %v", ids)
	}
	if _, ok := d.Transition(1, 2); ok {
		t.Fatalf("root has no b transition")
	}
	if _, ok := d.Pattern(1); ok {
		t.Fatalf("root is not terminal")
	}
	if d.NStates() != 5 {
		t.Fatalf("states = %d", d.NStates())
	}
}
