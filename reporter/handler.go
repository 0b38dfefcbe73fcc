package reporter

import (
	"errors"
	"strings"
)

// ErrInvalidSchema is the sentinel error wrapped by [Handler.Err] when a
// Handler is non-empty at the end of a pass.
var ErrInvalidSchema = errors.New("schemac: invalid schema source")

// Handler accumulates diagnostics in the order they are produced. It is
// owned by the driver for the lifetime of one compilation and threaded,
// by pointer, through the lexer, parser, linker and option folder. A
// Handler is not safe for concurrent use; the compiler runs each
// compilation single-threaded, so none is needed.
type Handler struct {
	reports []*Report
}

// NewHandler returns an empty Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Add appends a diagnostic. Reports accumulate in call order: source
// order for parse errors, declaration order for semantic errors.
func (h *Handler) Add(r *Report) {
	h.reports = append(h.reports, r)
}

// Reports returns every diagnostic added so far, in order.
func (h *Handler) Reports() []*Report {
	return h.reports
}

// HasErrors reports whether any diagnostic has been added. The driver
// checks this between pipeline stages and halts before the next stage
// when it is true.
func (h *Handler) HasErrors() bool {
	return len(h.reports) > 0
}

// Err returns nil when the handler is empty, or a non-nil error wrapping
// [ErrInvalidSchema] and every accumulated report's rendered message
// otherwise.
func (h *Handler) Err() error {
	if !h.HasErrors() {
		return nil
	}
	var b strings.Builder
	for i, r := range h.reports {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(r.Error())
	}
	return &schemaError{reports: h.reports, text: b.String()}
}

type schemaError struct {
	reports []*Report
	text    string
}

func (e *schemaError) Error() string { return e.text }

func (e *schemaError) Unwrap() error { return ErrInvalidSchema }

// Reports extracts the underlying diagnostics from an error returned by
// [Handler.Err], if any.
func Reports(err error) []*Report {
	var se *schemaError
	if errors.As(err, &se) {
		return se.reports
	}
	return nil
}
