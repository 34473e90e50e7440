package pyphen

import "fmt"

// CompileError is returned when a pattern dictionary cannot be compiled.
// Compilation is all-or-nothing: a dictionary with a broken line is never
// returned.
type CompileError struct {
	Name    string // dictionary identifier or file name
	Line    int    // source line, if known
	Pattern string // offending pattern line, if any
	Err     error
}

func (e *CompileError) Error() string {
	switch {
	case e.Pattern != "" && e.Line > 0:
		return fmt.Sprintf("pyphen: %s:%d: pattern %q: %v", e.Name, e.Line, e.Pattern, e.Err)
	case e.Pattern != "":
		return fmt.Sprintf("pyphen: %s: pattern %q: %v", e.Name, e.Pattern, e.Err)
	case e.Line > 0:
		return fmt.Sprintf("pyphen: %s:%d: %v", e.Name, e.Line, e.Err)
	}
	return fmt.Sprintf("pyphen: %s: %v", e.Name, e.Err)
}

func (e *CompileError) Unwrap() error {
	return e.Err
}
