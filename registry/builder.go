package registry

import (
	"github.com/npillmayer/pyphen"
)

// Builder collects the settings for a Hyphenator.
//
//	h, err := reg.Lang("nl").Left(3).Build()
type Builder struct {
	reg      *Registry
	path     string
	err      error
	left     int
	right    int
	cache    bool
	dictMins bool
}

// Lang starts a Builder for the dictionary of a language or its best
// fallback.
func (reg *Registry) Lang(lang string) *Builder {
	b := reg.newBuilder("")
	fallback, err := reg.Fallback(lang)
	if err != nil {
		b.err = err
		return b
	}
	b.path, _ = reg.Path(fallback)
	return b
}

// File starts a Builder for a dictionary file, which need not be
// registered.
func (reg *Registry) File(path string) *Builder {
	return reg.newBuilder(path)
}

func (reg *Registry) newBuilder(path string) *Builder {
	return &Builder{
		reg:   reg,
		path:  path,
		left:  pyphen.DefaultLeft,
		right: pyphen.DefaultRight,
		cache: true,
	}
}

// Left sets the minimum number of characters in the first syllable.
func (b *Builder) Left(n int) *Builder {
	b.left = n
	return b
}

// Right sets the minimum number of characters in the last syllable.
func (b *Builder) Right(n int) *Builder {
	b.right = n
	return b
}

// Cache sets whether an already compiled dictionary may be reused.
// With false the file is compiled again.
func (b *Builder) Cache(cache bool) *Builder {
	b.cache = cache
	return b
}

// DictionaryMins makes the Hyphenator use LEFTHYPHENMIN/RIGHTHYPHENMIN of
// the dictionary file, where declared, instead of Left and Right.
func (b *Builder) DictionaryMins() *Builder {
	b.dictMins = true
	return b
}

// Path returns the dictionary file the Builder will use.
func (b *Builder) Path() string {
	return b.path
}

// Build creates the Hyphenator. It returns a *LookupError if the language
// is unknown and a *pyphen.CompileError if the dictionary cannot be read.
func (b *Builder) Build() (*pyphen.Hyphenator, error) {
	if b.err != nil {
		return nil, b.err
	}
	var dict *pyphen.Dictionary
	var err error
	if b.cache {
		dict, err = b.reg.Dictionary(b.path)
	} else {
		dict, err = b.reg.Reload(b.path)
	}
	if err != nil {
		return nil, err
	}
	left, right := b.left, b.right
	if b.dictMins {
		l, r := dict.HyphenMins()
		if l > 0 {
			left = l
		}
		if r > 0 {
			right = r
		}
	}
	return pyphen.NewHyphenator(dict, left, right), nil
}
