package response

import (
	"net/http"

	"github.com/dmitrymomot/newslens/core/handler"
)

// Redirect creates a 302 Found response.
// For HTMX requests it answers 200 OK with an HX-Location header instead,
// so the client navigates without swapping the redirect body.
func Redirect(url string) handler.Response {
	return RedirectWithStatus(url, http.StatusFound)
}

// RedirectSeeOther creates a 303 See Other response.
// This is the redirect to use after a POST.
func RedirectSeeOther(url string) handler.Response {
	return RedirectWithStatus(url, http.StatusSeeOther)
}

// RedirectWithStatus creates a redirect with a custom status code.
// Statuses outside the 3xx range fall back to 302.
func RedirectWithStatus(url string, status int) handler.Response {
	if status < 300 || status >= 400 {
		status = http.StatusFound
	}
	return func(w http.ResponseWriter, r *http.Request) error {
		if IsHTMXRequest(r) {
			w.Header().Set(HeaderHXLocation, url)
			w.WriteHeader(http.StatusOK)
			return nil
		}

		http.Redirect(w, r, url, status)
		return nil
	}
}

// Locate redirects with status 303 and always mirrors the target into the
// HX-Location header, for clients that read the header rather than follow
// the redirect. Unlike Redirect the status line never changes for HTMX.
func Locate(url string) handler.Response {
	return LocateWithStatus(url, http.StatusSeeOther)
}

// LocateWithStatus is Locate with a custom 3xx status code.
func LocateWithStatus(url string, status int) handler.Response {
	if status < 300 || status >= 400 {
		status = http.StatusSeeOther
	}
	return func(w http.ResponseWriter, r *http.Request) error {
		w.Header().Set(HeaderHXLocation, url)
		http.Redirect(w, r, url, status)
		return nil
	}
}
