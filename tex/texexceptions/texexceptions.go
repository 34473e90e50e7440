package texexceptions

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/npillmayer/pyphen"
)

// Reader streams hyphenation exceptions from TeX \hyphenation{...} blocks.
type Reader struct {
	scanner *bufio.Scanner
	pending []string
	inBlock bool
}

// LoadExceptions parses TeX exception data from reader and adds all
// \hyphenation{...} entries to dict.
func LoadExceptions(dict *pyphen.Dictionary, reader io.Reader) error {
	return dict.LoadExceptions(NewReader(reader))
}

// NewReader creates an exception reader for a TeX source.
func NewReader(reader io.Reader) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(reader),
	}
}

// Next returns the next exception as (word, positions), e.g.
//
//	"ta-ble" => ("table", [0,0,1,0,0]).
//
// It returns io.EOF when exhausted.
func (r *Reader) Next() (string, []int, error) {
	for {
		if len(r.pending) > 0 {
			entry := r.pending[0]
			r.pending = r.pending[1:]
			word, positions := decodeException(entry)
			return word, positions, nil
		}
		if !r.scanner.Scan() {
			break
		}
		line, _, _ := strings.Cut(r.scanner.Text(), "%")
		line = strings.TrimSpace(line)
		if !r.inBlock {
			rest, ok := strings.CutPrefix(line, "\\hyphenation{")
			if !ok {
				continue // \patterns blocks and other TeX commands
			}
			r.inBlock = true
			line = rest
		}
		body, _, closed := strings.Cut(line, "}")
		r.pending = append(r.pending, strings.Fields(body)...)
		if closed {
			r.inBlock = false
		}
	}
	if err := r.scanner.Err(); err != nil {
		return "", nil, err
	}
	if r.inBlock {
		return "", nil, errors.New("unexpected end of file (unclosed \\hyphenation block)")
	}
	return "", nil, io.EOF
}

// decodeException turns an entry like "ta-ble" into the word and one weight
// per character, with weight 1 for a character following a hyphen.
func decodeException(entry string) (string, []int) {
	positions := make([]int, 0, len(entry))
	wasHyphen := false
	for _, ch := range entry {
		if ch == '-' {
			positions = append(positions, 1)
			wasHyphen = true
		} else if wasHyphen {
			wasHyphen = false
		} else {
			positions = append(positions, 0)
		}
	}
	return strings.ReplaceAll(entry, "-", ""), positions
}
