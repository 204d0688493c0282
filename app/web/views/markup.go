package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// markup writes fragments to w and keeps the first write error.
type markup struct {
	ctx context.Context
	w   io.Writer
	err error
}

func newMarkup(ctx context.Context, w io.Writer) *markup {
	return &markup{ctx: ctx, w: w}
}

// raw writes trusted markup as is.
func (m *markup) raw(parts ...string) {
	for _, p := range parts {
		if m.err != nil {
			return
		}
		_, m.err = io.WriteString(m.w, p)
	}
}

// text writes s escaped for element content and attribute values.
func (m *markup) text(s string) {
	m.raw(templ.EscapeString(s))
}

// component renders a nested component.
func (m *markup) component(c templ.Component) {
	if m.err != nil || c == nil {
		return
	}
	m.err = c.Render(m.ctx, m.w)
}
