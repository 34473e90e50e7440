/*
Package registry keeps track of hyphenation dictionaries by language.

A Registry maps language names like "nl_NL" or "de" to dictionary files,
compiles each file at most once and hands out Hyphenators:

	reg := registry.New()
	reg.ScanDir("/usr/share/hyphen")
	h, err := reg.Lang("de-AT").Left(2).Right(3).Build()

Language names are resolved by truncation inheritance: "de-AT-1901" tries
"de_AT_1901", "de_AT" and finally "de".

Optionally, compiled dictionaries are stored as msgpack snapshots in a
directory and are read back instead of compiling the source file again, as
long as the snapshot is not older than the source.
*/
package registry

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/derekparker/trie"
	"github.com/npillmayer/pyphen"
	"github.com/npillmayer/pyphen/tex"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'pyphen.registry'
func tracer() tracing.Trace {
	return tracing.Select("pyphen.registry")
}

// LookupError is returned if no dictionary is registered for a language
// or any of its fallbacks.
type LookupError struct {
	Lang string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("no hyphenation dictionary for language %q", e.Lang)
}

// Registry maps languages to dictionary files and caches compiled
// dictionaries per file. It is safe for concurrent use.
type Registry struct {
	mu        sync.Mutex
	languages *trie.Trie // language => file path
	dicts     map[string]*pyphen.Dictionary
	snapshots string
	opts      []pyphen.Option
}

// New creates an empty registry. opts are used for every dictionary the
// registry compiles. Each compiled dictionary, including reloaded ones, gets
// a cache of its own.
func New(opts ...pyphen.Option) *Registry {
	return &Registry{
		languages: trie.New(),
		dicts:     make(map[string]*pyphen.Dictionary),
		opts:      opts,
	}
}

// SetSnapshotDir enables snapshots of compiled dictionaries in dir.
// An empty dir disables them.
func (reg *Registry) SetSnapshotDir(dir string) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	reg.snapshots = dir
}

// Register maps a language to a dictionary file. Dashes in lang are
// normalized to underscores. A later registration replaces an earlier one.
func (reg *Registry) Register(lang, path string) {
	lang = normalize(lang)
	reg.mu.Lock()
	defer reg.mu.Unlock()
	if _, found := reg.languages.Find(lang); found {
		reg.languages.Remove(lang)
	}
	reg.languages.Add(lang, path)
	tracer().Debugf("registered %s => %s", lang, path)
}

// ScanDir registers every dictionary file in dir. Recognized are
// hunspell dictionaries "hyph_<lang>.dic" and TeX pattern files
// "hyph-<lang>.tex". It returns the number of files registered.
func (reg *Registry) ScanDir(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if lang, ok := languageOf(entry.Name()); ok {
			reg.Register(lang, filepath.Join(dir, entry.Name()))
			n++
		}
	}
	tracer().Infof("found %d dictionaries in %s", n, dir)
	return n, nil
}

func languageOf(filename string) (string, bool) {
	if lang, ok := strings.CutPrefix(filename, "hyph_"); ok {
		lang, ok = strings.CutSuffix(lang, ".dic")
		return lang, ok && lang != ""
	}
	if lang, ok := strings.CutPrefix(filename, "hyph-"); ok {
		lang, ok = strings.CutSuffix(lang, ".tex")
		return lang, ok && lang != ""
	}
	return "", false
}

func normalize(lang string) string {
	return strings.ReplaceAll(lang, "-", "_")
}

// Languages returns all registered languages, sorted.
func (reg *Registry) Languages() []string {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	langs := reg.languages.Keys()
	sort.Strings(langs)
	return langs
}

// Variants returns all registered languages starting with prefix, sorted,
// e.g. "de" => [de_AT de_CH de_DE].
func (reg *Registry) Variants(prefix string) []string {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	langs := reg.languages.PrefixSearch(normalize(prefix))
	sort.Strings(langs)
	return langs
}

// Path returns the dictionary file registered for exactly lang.
func (reg *Registry) Path(lang string) (string, bool) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	return reg.path(normalize(lang))
}

func (reg *Registry) path(lang string) (string, bool) {
	node, found := reg.languages.Find(lang)
	if !found {
		return "", false
	}
	return node.Meta().(string), true
}

// Fallback returns the registered language best matching lang, using
// truncation inheritance. See
// http://www.unicode.org/reports/tr35/#Locale_Inheritance
func (reg *Registry) Fallback(lang string) (string, error) {
	parts := strings.Split(normalize(lang), "_")
	reg.mu.Lock()
	defer reg.mu.Unlock()
	for len(parts) > 0 {
		candidate := strings.Join(parts, "_")
		if _, found := reg.path(candidate); found && candidate != "" {
			return candidate, nil
		}
		parts = parts[:len(parts)-1]
	}
	return "", &LookupError{Lang: lang}
}

// Dictionary returns the compiled dictionary for a file, compiling it on
// first use.
func (reg *Registry) Dictionary(path string) (*pyphen.Dictionary, error) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	if dict, found := reg.dicts[path]; found {
		tracer().Debugf("reusing dictionary for %s", path)
		return dict, nil
	}
	return reg.load(path, true)
}

// Reload compiles a dictionary file again, ignoring snapshots, and replaces
// the cached dictionary.
func (reg *Registry) Reload(path string) (*pyphen.Dictionary, error) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	return reg.load(path, false)
}

func (reg *Registry) load(path string, useSnapshot bool) (*pyphen.Dictionary, error) {
	var dict *pyphen.Dictionary
	var err error
	snap := reg.snapshotPath(path)
	if useSnapshot && snap != "" && isFresh(snap, path) {
		if dict, err = readSnapshot(snap, reg.opts); err != nil {
			tracer().Errorf("ignoring snapshot %s: %v", snap, err)
			dict = nil
		}
	}
	if dict == nil {
		if dict, err = compile(path, reg.opts); err != nil {
			return nil, err
		}
		if snap != "" {
			if err := writeSnapshot(snap, dict); err != nil {
				tracer().Errorf("cannot write snapshot %s: %v", snap, err)
			}
		}
	}
	reg.dicts[path] = dict
	return dict, nil
}

func compile(path string, opts []pyphen.Option) (*pyphen.Dictionary, error) {
	if filepath.Ext(path) != ".tex" {
		return pyphen.CompileFile(path, opts...)
	}
	return tex.LoadFile(path, opts...)
}

func (reg *Registry) snapshotPath(path string) string {
	if reg.snapshots == "" {
		return ""
	}
	return filepath.Join(reg.snapshots, filepath.Base(path)+".msgpack")
}

// isFresh is true if snap exists and is not older than source.
func isFresh(snap, source string) bool {
	si, err := os.Stat(snap)
	if err != nil {
		return false
	}
	fi, err := os.Stat(source)
	if err != nil {
		return false
	}
	return !si.ModTime().Before(fi.ModTime())
}

func readSnapshot(snap string, opts []pyphen.Option) (*pyphen.Dictionary, error) {
	f, err := os.Open(snap)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	tracer().Debugf("reading snapshot %s", snap)
	return pyphen.ReadSnapshot(f, opts...)
}

func writeSnapshot(snap string, dict *pyphen.Dictionary) (err error) {
	if err = os.MkdirAll(filepath.Dir(snap), 0o755); err != nil {
		return err
	}
	f, err := os.Create(snap)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	return dict.WriteSnapshot(f)
}
