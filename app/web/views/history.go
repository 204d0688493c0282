package views

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/newslens/integration/backend"
)

// HistoryDrawer lists previously analyzed articles. Clicking one loads its
// URL into the analyze input.
func HistoryDrawer(items []backend.NewsContent) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(ctx, w)
		m.raw(`<h2 class="mb-3 font-semibold">History</h2>`)
		if len(items) == 0 {
			m.raw(`<p class="text-sm text-neutral-400">No analyzed news yet.</p>`)
			return m.err
		}

		m.raw(`<ul class="flex flex-col gap-2">`)
		for _, item := range items {
			m.raw(`<li><a href="#" onclick="loadNewsHistory(this)" data-history-url="`)
			m.text(item.URL)
			m.raw(`" class="block truncate text-sm hover:underline">`)
			m.text(item.Title)
			m.raw(`</a></li>`)
		}
		m.raw(`</ul>`)
		return m.err
	})
}

// HistoryDrawerError replaces the list when history could not be loaded.
func HistoryDrawerError(message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(ctx, w)
		m.raw(`<h2 class="mb-3 font-semibold">History</h2><p class="text-sm text-red-400">error: `)
		m.text(message)
		m.raw(`</p>`)
		return m.err
	})
}
