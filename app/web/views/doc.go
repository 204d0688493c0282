// Package views holds the HTML components of the web front end.
//
// Components are plain templ.Component values built with templ.ComponentFunc,
// so they render through response.Templ like generated templ code would.
// Every dynamic value is escaped with templ.EscapeString before it reaches
// the writer.
//
//	return response.Templ(views.AuthPage("Auth Login", views.LoginForm()))
package views
