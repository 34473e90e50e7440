package pyphen

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// WordCache memoizes the break points of lower-cased words.
// Implementations must be safe for concurrent use. Cached slices are shared
// and must not be modified by clients.
type WordCache interface {
	Get(word string) ([]Breakpoint, bool)
	Put(word string, bps []Breakpoint)
	Len() int
}

// NewMapCache returns an unbounded cache. Entries live as long as the cache.
func NewMapCache() WordCache {
	return &mapCache{words: make(map[string][]Breakpoint)}
}

type mapCache struct {
	mu    sync.RWMutex
	words map[string][]Breakpoint
}

func (c *mapCache) Get(word string) ([]Breakpoint, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	bps, ok := c.words[word]
	return bps, ok
}

func (c *mapCache) Put(word string, bps []Breakpoint) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.words[word] = bps
}

func (c *mapCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.words)
}

// NewLRUCache returns a cache holding at most capacity words, evicting the
// least recently used one. A capacity < 1 is treated as 1.
func NewLRUCache(capacity int) WordCache {
	words, err := lru.New[string, []Breakpoint](max(1, capacity))
	assert(err == nil, "LRU cache with positive capacity")
	return lruCache{words: words}
}

type lruCache struct {
	words *lru.Cache[string, []Breakpoint]
}

func (c lruCache) Get(word string) ([]Breakpoint, bool) {
	return c.words.Get(word)
}

func (c lruCache) Put(word string, bps []Breakpoint) {
	c.words.Add(word, bps)
}

func (c lruCache) Len() int {
	return c.words.Len()
}

// noCache disables memoization.
type noCache struct{}

func (noCache) Get(string) ([]Breakpoint, bool) { return nil, false }
func (noCache) Put(string, []Breakpoint)        {}
func (noCache) Len() int                        { return 0 }
