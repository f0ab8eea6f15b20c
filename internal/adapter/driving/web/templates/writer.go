package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// HTMLWriter writes markup to an io.Writer, remembering the first error so
// components can emit a run of fragments and check once at the end.
type HTMLWriter struct {
	w   io.Writer
	err error
}

// NewHTMLWriter wraps w.
func NewHTMLWriter(w io.Writer) *HTMLWriter {
	return &HTMLWriter{w: w}
}

// Raw writes trusted markup as-is.
func (hw *HTMLWriter) Raw(s string) {
	if hw.err != nil {
		return
	}
	_, hw.err = io.WriteString(hw.w, s)
}

// Text writes s with HTML escaping.
func (hw *HTMLWriter) Text(s string) {
	hw.Raw(templ.EscapeString(s))
}

// Attr writes ` name="value"` with the value escaped.
func (hw *HTMLWriter) Attr(name, value string) {
	hw.Raw(" " + name + `="` + templ.EscapeString(value) + `"`)
}

// Render renders a nested component into the same writer.
func (hw *HTMLWriter) Render(ctx context.Context, c templ.Component) {
	if hw.err != nil || c == nil {
		return
	}
	hw.err = c.Render(ctx, hw.w)
}

// Err returns the first error encountered.
func (hw *HTMLWriter) Err() error {
	return hw.err
}
