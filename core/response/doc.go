// Package response builds handler.Response values: plain text and HTML bodies,
// templ components, and redirects that understand HTMX clients.
//
// Two redirect families exist. Redirect and friends follow the usual HTMX
// convention of answering 200 with HX-Location when the request came from
// HTMX. Locate always answers with a real 3xx redirect and also copies the
// target into HX-Location; it is used for classified failures where every
// client must end up on the same page:
//
//	return response.Locate("/error/server-error")
package response
