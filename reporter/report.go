// Package reporter accumulates diagnostics produced while compiling a
// schema file. Every pass (lex, parse, link, fold) appends to a single
// [Handler] owned by the driver; no pass panics because of a bad input,
// and each pass keeps reporting after the first problem it finds so a
// single run can surface many problems. The linker is the exception: it
// stops after reference resolution when that step reported anything.
package reporter

import "fmt"

// Position identifies the 1-based source line a [Report] refers to.
type Position struct {
	Line int
}

// Span identifies a byte range (start inclusive, end exclusive) a
// [Report] refers to.
type Span struct {
	Start int
	End   int
}

// Report is a single diagnostic. Position and Span are optional: semantic
// diagnostics (redefinitions, cycles, bad operands) are not tied to a
// single token and carry neither.
type Report struct {
	Message  string
	Position *Position
	Span     *Span
}

// Error renders the report the way the driver prints it: a one-line
// "error : <message> (Ln <line>)" tag, or without the line suffix when no
// position is known. Source-excerpt underlining is not implemented; there
// is no accepted-but-unused source argument here because nothing in this
// module ever had one to keep.
func (r *Report) Error() string {
	if r.Position != nil {
		return fmt.Sprintf("error : %s (Ln %d)", r.Message, r.Position.Line)
	}
	return fmt.Sprintf("error : %s", r.Message)
}

func withPos(message string, line, start, end int) *Report {
	return &Report{
		Message:  message,
		Position: &Position{Line: line},
		Span:     &Span{Start: start, End: end},
	}
}

func withOffset(message string, line, offset int) *Report {
	return &Report{
		Message:  message,
		Position: &Position{Line: line},
		Span:     &Span{Start: offset, End: offset},
	}
}

func noPos(message string) *Report {
	return &Report{Message: message}
}

// InternalError reports an invariant violation in the compiler itself,
// not in the input being compiled.
func InternalError(message string) *Report {
	return noPos("internal error: " + message)
}
