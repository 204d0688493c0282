package views

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/newslens/integration/backend"
)

// analyzeErrorInstructions are shown when an article could not be analyzed.
var analyzeErrorInstructions = []string{
	"Pastikan url mengarah ke suatu media berita",
	"Coba gunakan media berita mainstream",
	"Coba hubungi pihak pengembang",
}

// AnalyzeResult renders a parsed article. The summary streams in from
// summarizerEndpoint over server-sent events.
func AnalyzeResult(news backend.NewsContent, summarizerEndpoint string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(ctx, w)
		m.raw(`<article class="flex flex-col gap-3" data-news-id="`)
		m.text(news.ContentID())
		m.raw(`">`)

		m.raw(`<h2 class="text-2xl font-semibold"><a href="`)
		m.text(string(templ.URL(news.URL)))
		m.raw(`" target="_blank" rel="noopener">`)
		m.text(news.Title)
		m.raw(`</a></h2>`)

		m.raw(`<p class="text-sm text-neutral-400">`)
		m.text(news.Authors)
		if news.PublicationDate != nil {
			m.raw(` &middot; `)
			m.text(*news.PublicationDate)
		}
		m.raw(`</p>`)

		m.raw(`<div hx-ext="sse" sse-connect="`)
		m.text(summarizerEndpoint)
		m.raw(`" sse-swap="message" hx-swap="beforeend" class="rounded bg-gray-800 p-4">`)
		if news.Summary != nil {
			m.text(*news.Summary)
		}
		m.raw(`</div>`)

		if news.Content != nil {
			m.raw(`<details><summary class="cursor-pointer text-neutral-400">Full text</summary><p class="whitespace-pre-line">`)
			m.text(*news.Content)
			m.raw(`</p></details>`)
		}

		m.raw(`</article>`)
		return m.err
	})
}

// AnalyzeError is the fragment swapped in when analysis failed.
func AnalyzeError() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(ctx, w)
		m.raw(`<div id="analyze-error" class="rounded border border-red-700 p-4">`)
		m.raw(`<p class="font-semibold text-red-400">Gagal menganalisis berita</p><ul class="list-disc pl-5">`)
		for _, line := range analyzeErrorInstructions {
			m.raw(`<li>`)
			m.text(line)
			m.raw(`</li>`)
		}
		m.raw(`</ul></div>`)
		return m.err
	})
}
