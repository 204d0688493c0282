package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// HomePage is the analyzer screen of a signed-in user.
func HomePage(userID string) templ.Component {
	return Layout("Newslens", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(ctx, w)

		m.raw(`<aside class="fixed left-0 top-0 z-10 flex h-full">`)
		m.raw(`<div id="history-drawer" class="h-full w-80 -translate-x-80 overflow-y-auto bg-gray-800 p-4 transition-transform"`)
		m.raw(` hx-get="/history" hx-trigger="load, analyzed from:body" hx-swap="innerHTML"></div>`)
		m.raw(`<div class="bg-gray-800 p-2"><button id="drawer-button" type="button" onclick="toggleDrawer(this)">History</button>`)
		m.raw(`<span class="text-neutral-200">&#9776;</span></div>`)
		m.raw(`</aside>`)

		m.raw(`<main class="mx-auto flex max-w-3xl flex-col gap-6 p-8">`)
		m.raw(`<header><h1 class="text-3xl font-bold">Newslens</h1>`)
		m.raw(`<p class="text-neutral-400">Paste a news article link to extract and summarize it.</p>`)
		m.raw(`<p class="text-xs text-neutral-500">user: <span id="user-id">`)
		m.text(userID)
		m.raw(`</span></p></header>`)

		m.raw(`<form hx-get="/analyze" hx-target="#analyze-result" hx-indicator="#analyze-indicator" class="flex gap-2">`)
		m.raw(`<input id="analyze-search-input" type="url" name="url" required placeholder="https://" class="flex-1 rounded bg-neutral-800 p-2">`)
		m.raw(`<button type="submit" class="rounded bg-blue-600 px-4">Analyze</button>`)
		m.raw(`</form>`)
		m.raw(`<p id="analyze-indicator" class="htmx-indicator text-sm text-neutral-400">Analyzing...</p>`)
		m.raw(`<section id="analyze-result"></section>`)
		m.raw(`</main>`)

		return m.err
	}))
}
