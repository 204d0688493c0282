package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// AuthPage is the full page around a login or register form.
func AuthPage(title string, form templ.Component) templ.Component {
	return Layout(title, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(ctx, w)
		m.raw(`<main class="flex min-h-screen items-center justify-center">`)
		m.raw(`<section class="w-full max-w-sm rounded-lg bg-gray-800 p-6 shadow">`)
		m.raw(`<h1 class="mb-4 text-xl font-semibold">`)
		m.text(title)
		m.raw(`</h1>`)
		m.component(form)
		m.raw(`</section></main>`)
		return m.err
	}))
}

// LoginForm posts credentials to /auth/login.
func LoginForm() templ.Component {
	return credentialsForm("/auth/login", "Login", "/auth/register", "Create an account")
}

// RegisterForm posts credentials to /auth/register.
func RegisterForm() templ.Component {
	return credentialsForm("/auth/register", "Register", "/auth/login", "Already have an account?")
}

func credentialsForm(action, submit, altHref, altLabel string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(ctx, w)
		m.raw(`<form method="post" action="`)
		m.text(action)
		m.raw(`" hx-post="`)
		m.text(action)
		m.raw(`" class="flex flex-col gap-3">`)
		m.raw(`<input type="email" name="email" placeholder="Email" required autocomplete="email" class="rounded bg-neutral-800 p-2">`)
		m.raw(`<input type="password" name="password" placeholder="Password" required class="rounded bg-neutral-800 p-2">`)
		m.raw(`<button type="submit" class="rounded bg-blue-600 p-2 font-medium">`)
		m.text(submit)
		m.raw(`</button>`)
		m.raw(`<a href="`)
		m.text(altHref)
		m.raw(`" class="text-sm text-neutral-400 underline">`)
		m.text(altLabel)
		m.raw(`</a></form>`)
		return m.err
	})
}
