package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Script and style sources loaded by every page.
const (
	htmxSrc     = "https://unpkg.com/htmx.org@1.9.12"
	htmxSSESrc  = "https://unpkg.com/htmx.org@1.9.12/dist/ext/sse.js"
	tailwindSrc = "https://cdn.tailwindcss.com"
	scriptsSrc  = "/assets/scripts.js"
)

// Layout wraps body in the HTML document shell.
func Layout(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(ctx, w)
		m.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		m.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		m.raw(`<title>`)
		m.text(title)
		m.raw(`</title>`)
		m.raw(`<script src="`, htmxSrc, `"></script>`)
		m.raw(`<script src="`, htmxSSESrc, `"></script>`)
		m.raw(`<script src="`, tailwindSrc, `"></script>`)
		m.raw(`<script src="`, scriptsSrc, `" defer></script>`)
		m.raw(`</head><body class="min-h-screen bg-neutral-900 text-neutral-200">`)
		m.component(body)
		m.raw(`</body></html>`)
		return m.err
	})
}
