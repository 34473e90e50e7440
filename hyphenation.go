package pyphen

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Dictionary is a compiled hyphenation dictionary.
//
// A dictionary contains:
//   - pattern rules (a key index backend + the compiled weight vectors)
//   - explicit hyphenation exceptions, consulted before the patterns
//   - a cache of break points per lower-cased word.
//
// After compilation a dictionary may be shared between Hyphenators and
// goroutines. Exceptions should be added before sharing it.
type Dictionary struct {
	Identifier string // Identifies the dictionary
	backend    Backend
	index      patternIndex
	store      *patternStore
	cache      WordCache
	exceptions map[string][]Breakpoint // e.g., "table" => [2] = "ta-ble"
	lang       language.Tag
	leftMin    int
	rightMin   int
}

// Option configures the compilation of a Dictionary.
type Option func(*options)

type options struct {
	backend  Backend
	newCache func() WordCache
	lang     language.Tag
}

// WithBackend selects the pattern key index. Default is BackendMap.
func WithBackend(backend Backend) Option {
	return func(o *options) {
		o.backend = backend
	}
}

// WithCache sets the constructor of the cache for per-word results. It is
// called once for every compiled dictionary, so dictionaries never share
// cached break points. Default is NewMapCache.
//
//	dict, err := pyphen.CompileFile(path, pyphen.WithCache(func() pyphen.WordCache {
//	    return pyphen.NewLRUCache(1000)
//	}))
func WithCache(newCache func() WordCache) Option {
	return func(o *options) {
		if newCache != nil {
			o.newCache = newCache
		}
	}
}

// WithCacheSize bounds the cache for per-word results to n words, see
// NewLRUCache. n < 1 selects the default unbounded cache.
func WithCacheSize(n int) Option {
	return func(o *options) {
		if n < 1 {
			o.newCache = NewMapCache
			return
		}
		o.newCache = func() WordCache { return NewLRUCache(n) }
	}
}

// WithoutCache disables memoization of per-word results.
func WithoutCache() Option {
	return func(o *options) {
		o.newCache = func() WordCache { return noCache{} }
	}
}

// WithLanguage sets the language used for case mapping, e.g. Turkish
// dotted and dotless i. Default is language.Und.
func WithLanguage(tag language.Tag) Option {
	return func(o *options) {
		o.lang = tag
	}
}

func collectOptions(opts []Option) options {
	o := options{lang: language.Und, newCache: NewMapCache}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// CompileFile reads a hyph_*.dic file and compiles its patterns.
func CompileFile(path string, opts ...Option) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &CompileError{Name: path, Err: err}
	}
	defer f.Close()
	return Compile(filepath.Base(path), f, opts...)
}

// Compile reads patterns in hyph_*.dic format from reader and compiles them.
//
// Patterns are one per line, with Liang weights between the letters:
//
//	.ab1c
//	1bc2
//	c1k/k=k,1,2
//
// Odd numbers stand for possible breakpoints, even numbers forbid
// hyphenation. Digits belong to the slot before the character after them.
func Compile(name string, reader io.Reader, opts ...Option) (*Dictionary, error) {
	return LoadPatterns(name, NewDicReader(reader), opts...)
}

// LoadPatterns compiles patterns from a streaming, format-agnostic source.
//
// File format parsing beyond single pattern lines is outside of this
// function. Use NewDicReader or adapters like package tex/texpatterns to
// feed this API.
func LoadPatterns(name string, reader PatternReader, opts ...Option) (*Dictionary, error) {
	store := newPatternStore(1024)
	ids := make(map[string]int)
	lineOf := func() int {
		if l, ok := reader.(liner); ok {
			return l.Line()
		}
		return 0
	}
	for {
		line, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &CompileError{Name: name, Line: lineOf(), Err: err}
		}
		entry, ok, err := decodePatternLine(line)
		if err != nil {
			tracer().Errorf("%s: rejecting pattern %q: %v", name, line, err)
			return nil, &CompileError{Name: name, Line: lineOf(), Pattern: line, Err: err}
		}
		if !ok {
			continue // carries no information
		}
		if id, found := ids[entry.Key]; found {
			store.Replace(id, entry)
			continue
		}
		ids[entry.Key] = store.Put(entry)
	}
	dict, err := newDictionary(name, store, collectOptions(opts))
	if err != nil {
		return nil, err
	}
	if h, ok := reader.(hyphenMinHinter); ok {
		dict.leftMin, dict.rightMin = h.HyphenMins()
	}
	return dict, nil
}

func newDictionary(name string, store *patternStore, o options) (*Dictionary, error) {
	dict := &Dictionary{
		Identifier: fmt.Sprintf("patterns: %s", name),
		backend:    o.backend,
		index:      newPatternIndex(o.backend),
		store:      store,
		cache:      o.newCache(),
		exceptions: make(map[string][]Breakpoint),
		lang:       o.lang,
	}
	for id, entry := range store.entries {
		if entry.Key == "" {
			continue // no substring lookup can ever hit it
		}
		if err := dict.index.Insert(entry.Key, id); err != nil {
			return nil, &CompileError{Name: name, Pattern: entry.Key, Err: err}
		}
	}
	dict.index.Freeze()
	stats := dict.index.Stats()
	tracer().Infof("%s: %d patterns, maxlen=%d, backend=%s keys=%d used=%d total=%d fill=%.2f",
		name, store.Len(), store.maxlen, stats.Backend, stats.Keys,
		stats.UsedSlots, stats.TotalSlots, stats.FillRatio())
	return dict, nil
}

// Backend returns the pattern key index in use.
func (dict *Dictionary) Backend() Backend {
	return dict.backend
}

// Len returns the number of compiled patterns.
func (dict *Dictionary) Len() int {
	return dict.store.Len()
}

// MaxLen returns the length of the longest pattern key, in characters.
func (dict *Dictionary) MaxLen() int {
	return dict.store.maxlen
}

// HyphenMins returns the minimum syllable lengths declared by the
// dictionary source (LEFTHYPHENMIN/RIGHTHYPHENMIN), or 0 if undeclared.
func (dict *Dictionary) HyphenMins() (left, right int) {
	return dict.leftMin, dict.rightMin
}

// IndexStats reports density metrics for the underlying pattern index.
func (dict *Dictionary) IndexStats() (backend string, keys, usedSlots, totalSlots int, fillRatio float64) {
	if dict == nil || dict.index == nil {
		return "", 0, 0, 0, 0
	}
	stats := dict.index.Stats()
	return stats.Backend, stats.Keys, stats.UsedSlots, stats.TotalSlots, stats.FillRatio()
}

// CacheLen returns the number of words currently memoized.
func (dict *Dictionary) CacheLen() int {
	return dict.cache.Len()
}

// LoadExceptions loads exception entries from a streaming source.
func (dict *Dictionary) LoadExceptions(reader ExceptionReader) (err error) {
	for {
		var word string
		var positions []int
		word, positions, err = reader.Next()
		if err == io.EOF {
			return nil
		} else if err != nil {
			break
		}
		dict.AddException(word, positions)
	}
	return err
}

// LoadExceptionList loads explicit exception entries from an in-memory map.
func (dict *Dictionary) LoadExceptionList(exceptions map[string][]int) {
	for word, positions := range exceptions {
		dict.AddException(word, positions)
	}
}

// AddException registers one explicit hyphenation exception.
// positions holds a weight per character of word: an odd weight at index i
// allows a break before character i, e.g.
//
//	"table", [0,0,1,0,0] => "ta-ble".
func (dict *Dictionary) AddException(word string, positions []int) {
	bps := make([]Breakpoint, 0, 4)
	for i, p := range positions {
		if i > 0 && p%2 != 0 {
			bps = append(bps, Breakpoint{Offset: i})
		}
	}
	dict.exceptions[dict.lower(word)] = bps
}

// Positions returns the break points of a word, ascending by offset.
//
// E.g. for the Dutch word "lettergrepen" the offsets are [3, 6, 9].
//
// Break points carry a Rule if they stem from a nonstandard hyphenation
// pattern. The minimum syllable lengths of a Hyphenator are not applied.
// The result is independent of the case of word and is cached per
// lower-cased word. Clients must not modify the returned slice.
func (dict *Dictionary) Positions(word string) []Breakpoint {
	lower := dict.lower(word)
	if bps, found := dict.exceptions[lower]; found {
		return bps
	}
	if bps, found := dict.cache.Get(lower); found {
		return bps
	}
	bps := dict.scan(lower)
	dict.cache.Put(lower, bps)
	return bps
}

// scan overlays the weights of every pattern matching a substring of the
// dot-padded word. Substrings are shorter than the longest pattern key and
// are visited by increasing start, then by increasing length.
func (dict *Dictionary) scan(word string) []Breakpoint {
	padded := "." + word + "."
	starts := make([]int, 0, len(padded)+1) // byte offset of every rune
	for offset := range padded {
		starts = append(starts, offset)
	}
	n := len(starts)
	starts = append(starts, len(padded))
	window := dict.store.maxlen - 1
	references := make([]WeightedValue, n+1)
	for i := 0; i < n-1 && window > 0; i++ {
		end := starts[min(i+window, n)]
		dict.index.Prefixes(padded[starts[i]:end], func(id int) {
			dict.store.MergeInto(id, i, references)
		})
	}
	var bps []Breakpoint
	for k, ref := range references {
		if ref.Odd() {
			bps = append(bps, Breakpoint{Offset: k - 1, Rule: ref.Rule})
		}
	}
	tracer().Debugf("%s: %q => %v", dict.Identifier, word, bps)
	return bps
}

func (dict *Dictionary) lower(s string) string {
	return cases.Lower(dict.lang).String(s)
}

func (dict *Dictionary) upper(s string) string {
	return cases.Upper(dict.lang).String(s)
}
