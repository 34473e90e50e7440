/*
Package tex reads hyphenation dictionaries from TeX sources, i.e. files with
a \patterns{...} block and optional \hyphenation{...} exception lists, like
the hyph-*.tex files of the hyph-utf8 project:

	https://github.com/hyphenation/tex-hyphen/tree/master/hyph-utf8/tex/generic/hyph-utf8/patterns/tex

Patterns go through the same compiler as hyph_*.dic files, so nonstandard
patterns ("c1k/k=k,1,2") are accepted as well.
*/
package tex

import (
	"bytes"
	"io"
	"os"
	"path/filepath"

	"github.com/npillmayer/pyphen"
	"github.com/npillmayer/pyphen/tex/texexceptions"
	"github.com/npillmayer/pyphen/tex/texpatterns"
)

// LoadFile compiles the TeX dictionary at path. The dictionary is named after
// the base name of the file.
//
//	dict, err := tex.LoadFile("patterns/hyph-nl.tex", pyphen.WithBackend(pyphen.BackendDAT))
func LoadFile(path string, opts ...pyphen.Option) (*pyphen.Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &pyphen.CompileError{Name: path, Err: err}
	}
	defer f.Close()
	return LoadDictionary(filepath.Base(path), f, opts...)
}

// LoadDictionary compiles the patterns of a TeX source and adds its
// exceptions to the resulting dictionary. The source is read twice and
// therefore buffered in memory.
func LoadDictionary(name string, reader io.Reader, opts ...pyphen.Option) (*pyphen.Dictionary, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, &pyphen.CompileError{Name: name, Err: err}
	}
	dict, err := texpatterns.LoadPatterns(name, bytes.NewReader(data), opts...)
	if err != nil {
		return nil, err
	}
	if err = texexceptions.LoadExceptions(dict, bytes.NewReader(data)); err != nil {
		return nil, &pyphen.CompileError{Name: name, Err: err}
	}
	return dict, nil
}
