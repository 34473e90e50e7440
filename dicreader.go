package pyphen

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// PatternReader yields raw pattern lines one-by-one, e.g. "a1b" or
// "c1k/k=k,1,2". Comment lines should not be returned.
// It should return io.EOF when the stream is exhausted.
type PatternReader interface {
	Next() (pattern string, err error)
}

// ExceptionReader yields hyphenation exceptions one-by-one.
// It should return io.EOF when the stream is exhausted.
type ExceptionReader interface {
	Next() (word string, positions []int, err error)
}

// hyphenMinHinter is implemented by pattern readers which know about the
// minimum syllable lengths a dictionary was made for.
type hyphenMinHinter interface {
	HyphenMins() (left, right int)
}

// liner is implemented by pattern readers which track source line numbers.
type liner interface {
	Line() int
}

// charsets maps the charset declarations found on the first line of
// hyph_*.dic files to decoders. UTF-8 needs no decoding.
var charsets = map[string]*charmap.Charmap{
	"ISO8859-1":        charmap.ISO8859_1,
	"ISO8859-2":        charmap.ISO8859_2,
	"ISO8859-3":        charmap.ISO8859_3,
	"ISO8859-4":        charmap.ISO8859_4,
	"ISO8859-5":        charmap.ISO8859_5,
	"ISO8859-6":        charmap.ISO8859_6,
	"ISO8859-7":        charmap.ISO8859_7,
	"ISO8859-8":        charmap.ISO8859_8,
	"ISO8859-9":        charmap.ISO8859_9,
	"ISO8859-10":       charmap.ISO8859_10,
	"ISO8859-13":       charmap.ISO8859_13,
	"ISO8859-14":       charmap.ISO8859_14,
	"ISO8859-15":       charmap.ISO8859_15,
	"KOI8-R":           charmap.KOI8R,
	"KOI8-U":           charmap.KOI8U,
	"MICROSOFT-CP1251": charmap.Windows1251,
	"CP1251":           charmap.Windows1251,
}

// DicReader streams patterns from a hunspell/LibreOffice hyph_*.dic file.
//
// Empty lines and lines starting with '%' or '#' are skipped. A first line
// naming a charset (e.g. "UTF-8" or "ISO8859-1") selects the encoding of the
// remaining lines. Header directives like "LEFTHYPHENMIN 2" are not patterns;
// the minimum syllable lengths are remembered and available from HyphenMins.
type DicReader struct {
	scanner  *bufio.Scanner
	decoder  *charmap.Charmap
	line     int
	leftMin  int
	rightMin int
}

// NewDicReader creates a pattern reader for a .dic stream.
func NewDicReader(reader io.Reader) *DicReader {
	return &DicReader{
		scanner: bufio.NewScanner(reader),
	}
}

// Line returns the source line number of the pattern last returned by Next.
func (r *DicReader) Line() int {
	return r.line
}

// HyphenMins returns the values of LEFTHYPHENMIN and RIGHTHYPHENMIN, or 0
// if the dictionary does not declare them.
func (r *DicReader) HyphenMins() (left, right int) {
	return r.leftMin, r.rightMin
}

// Next returns the next pattern line. It returns io.EOF when exhausted.
func (r *DicReader) Next() (string, error) {
	for r.scanner.Scan() {
		r.line++
		line := strings.TrimSpace(r.scanner.Text())
		if r.line == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
			if r.isCharset(line) {
				continue
			}
		}
		if line == "" || strings.HasPrefix(line, "%") || strings.HasPrefix(line, "#") {
			continue
		}
		if r.decoder != nil {
			decoded, err := r.decoder.NewDecoder().String(line)
			if err != nil {
				return "", fmt.Errorf("line %d: %w", r.line, err)
			}
			line = decoded
		}
		directive, err := r.isDirective(line)
		if err != nil {
			return "", err
		}
		if directive {
			continue
		}
		return line, nil
	}
	if err := r.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

func (r *DicReader) isCharset(line string) bool {
	name := strings.ToUpper(line)
	if name == "UTF-8" || name == "UTF8" {
		return true
	}
	if cm, ok := charsets[name]; ok {
		r.decoder = cm
		return true
	}
	return false
}

func (r *DicReader) isDirective(line string) (bool, error) {
	keyword, value, _ := strings.Cut(line, " ")
	var err error
	switch keyword {
	case "LEFTHYPHENMIN":
		r.leftMin, err = strconv.Atoi(strings.TrimSpace(value))
	case "RIGHTHYPHENMIN":
		r.rightMin, err = strconv.Atoi(strings.TrimSpace(value))
	case "COMPOUNDLEFTHYPHENMIN", "COMPOUNDRIGHTHYPHENMIN", "NOHYPHEN", "NEXTLEVEL":
	default:
		return false, nil
	}
	if err != nil {
		return true, fmt.Errorf("%s: %w", keyword, err)
	}
	return true, nil
}
