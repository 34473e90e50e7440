package texpatterns

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/npillmayer/pyphen"
)

// PatternReader streams Liang patterns from TeX-style source files.
type PatternReader struct {
	scanner    *bufio.Scanner
	identifier string
	line       int
	pending    []string
	inPatterns bool
	done       bool
}

// LoadPatterns parses TeX pattern data and returns a ready-to-use dictionary.
//
// Patterns are enclosed in between
//
//	\patterns{ % some comment
//	 ...
//	.wil5i
//	.ye4
//	4ab.
//	a5bal
//	a5ban
//	abe2
//	 ...
//	}
//
// Odd numbers stand for possible discretionary breakpoints, even numbers forbid
// hyphenation. Digits belong to the character immediately after them, i.e.,
//
//	"a5ban" => (a)(5b)(a)(n) => positions["aban"] = [0,5,0,0].
//
// Exceptions from \hyphenation{...} are intentionally not loaded here.
func LoadPatterns(name string, reader io.Reader, opts ...pyphen.Option) (*pyphen.Dictionary, error) {
	return pyphen.LoadPatterns(name, NewPatternReader(reader), opts...)
}

// NewPatternReader creates a pattern reader for a TeX source.
func NewPatternReader(reader io.Reader) *PatternReader {
	return &PatternReader{
		scanner: bufio.NewScanner(reader),
		pending: make([]string, 0, 16),
	}
}

// Identifier returns the \message{...} of the source, if any has been
// read so far.
func (r *PatternReader) Identifier() string {
	return r.identifier
}

// Line returns the source line of the pattern last returned by Next.
func (r *PatternReader) Line() int {
	return r.line
}

// Next returns the next pattern, e.g. "a5ban". Patterns may be separated
// by any whitespace, comments start with '%'. Only the first \patterns
// block is read. It returns io.EOF when exhausted.
func (r *PatternReader) Next() (string, error) {
	for {
		if len(r.pending) > 0 {
			p := r.pending[0]
			r.pending = r.pending[1:]
			return p, nil
		}
		if r.done {
			return "", io.EOF
		}
		if !r.scanner.Scan() {
			if err := r.scanner.Err(); err != nil {
				return "", err
			}
			if r.inPatterns {
				return "", errors.New("unexpected end of file (unclosed \\patterns block)")
			}
			return "", io.EOF
		}
		r.line++
		line := r.scanner.Text()
		if id, ok := strings.CutPrefix(line, "%     message: "); ok {
			r.identifier = id
			continue
		}
		if id, ok := strings.CutPrefix(line, "\\message{"); ok {
			r.identifier = strings.TrimSuffix(strings.TrimSpace(id), "}")
			continue
		}
		line, _, _ = strings.Cut(line, "%")
		line = strings.TrimSpace(line)
		if !r.inPatterns {
			rest, ok := strings.CutPrefix(line, "\\patterns{")
			if !ok {
				continue // \hyphenation blocks and other TeX commands
			}
			r.inPatterns = true
			line = rest
		}
		body, closed := strings.CutSuffix(line, "}")
		if !closed {
			body, _, closed = strings.Cut(line, "}")
		}
		r.pending = append(r.pending, strings.Fields(body)...)
		if closed {
			r.inPatterns = false
			r.done = true // do not read further
		}
	}
}
