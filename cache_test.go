package pyphen

import (
	"reflect"
	"strings"
	"testing"
)

func TestLRUCacheEviction(t *testing.T) {
	c := NewLRUCache(2)
	c.Put("a", []Breakpoint{{Offset: 1}})
	c.Put("b", nil)
	if _, ok := c.Get("a"); !ok { // a is now most recently used
		t.Fatalf("a should be cached")
	}
	c.Put("c", nil)
	if _, ok := c.Get("b"); ok {
		t.Fatalf("b should have been evicted")
	}
	if bps, ok := c.Get("a"); !ok || len(bps) != 1 || bps[0].Offset != 1 {
		t.Fatalf("a lost: %v %v", bps, ok)
	}
	if c.Len() != 2 {
		t.Fatalf("expected 2 entries, have %d", c.Len())
	}
}

func TestLRUCacheUpdate(t *testing.T) {
	c := NewLRUCache(0)
	c.Put("a", nil)
	c.Put("a", []Breakpoint{{Offset: 2}})
	if bps, ok := c.Get("a"); !ok || len(bps) != 1 {
		t.Fatalf("update of a lost: %v %v", bps, ok)
	}
	c.Put("b", nil)
	if c.Len() != 1 {
		t.Fatalf("capacity should be at least 1 and at most 1, have %d", c.Len())
	}
}

func TestMapCache(t *testing.T) {
	c := NewMapCache()
	if _, ok := c.Get("x"); ok {
		t.Fatalf("empty cache reports a hit")
	}
	c.Put("x", nil)
	if _, ok := c.Get("x"); !ok || c.Len() != 1 {
		t.Fatalf("x should be cached")
	}
}

func TestDictionaryCacheSize(t *testing.T) {
	dict := mustCompile(t, "hyph_nl_NL.dic", WithCacheSize(1))
	dict.Positions("lettergrepen")
	dict.Positions("Amsterdam")
	if dict.CacheLen() != 1 {
		t.Fatalf("bounded cache holds %d words, want 1", dict.CacheLen())
	}
}

func TestCachePerDictionary(t *testing.T) {
	opts := []Option{WithCache(NewMapCache)}
	ab, err := Compile("ab", strings.NewReader("a1b\nxyz1q\n"), opts...)
	if err != nil {
		t.Fatal(err)
	}
	bc, err := Compile("bc", strings.NewReader("b1c\nxyz1q\n"), opts...)
	if err != nil {
		t.Fatal(err)
	}
	if got := Offsets(ab.Positions("xxabcxx")); !reflect.DeepEqual(got, []int{3}) {
		t.Fatalf("ab: positions = %v, want [3]", got)
	}
	if got := Offsets(bc.Positions("xxabcxx")); !reflect.DeepEqual(got, []int{4}) {
		t.Fatalf("bc: positions = %v, want [4]", got)
	}
	if ab.CacheLen() != 1 || bc.CacheLen() != 1 {
		t.Fatalf("each dictionary should cache one word, have %d and %d", ab.CacheLen(), bc.CacheLen())
	}
}
