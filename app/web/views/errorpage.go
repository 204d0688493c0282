package views

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// ErrorMessage is the content of an error page.
type ErrorMessage struct {
	Code         int
	Message      string
	Instructions []string
}

// ErrorPage renders a full error page with a link back to the start.
func ErrorPage(msg ErrorMessage) templ.Component {
	title := strconv.Itoa(msg.Code) + " " + msg.Message
	return Layout(title, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(ctx, w)
		m.raw(`<main class="flex min-h-screen flex-col items-center justify-center gap-4">`)
		m.raw(`<h1 class="text-6xl font-bold">`)
		m.text(strconv.Itoa(msg.Code))
		m.raw(`</h1><p class="text-xl">`)
		m.text(msg.Message)
		m.raw(`</p><ul class="list-disc text-neutral-400">`)
		for _, line := range msg.Instructions {
			m.raw(`<li>`)
			m.text(line)
			m.raw(`</li>`)
		}
		m.raw(`</ul><a href="/" class="underline">Home</a></main>`)
		return m.err
	}))
}
