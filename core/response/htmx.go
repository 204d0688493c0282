package response

import "net/http"

// HTMX response headers.
const (
	HeaderHXLocation = "HX-Location"
	HeaderHXRedirect = "HX-Redirect"
	HeaderHXRetarget = "HX-Retarget"
	HeaderHXReswap   = "HX-Reswap"
)

// HTMX request headers.
const (
	HeaderHXRequest = "HX-Request"
	HeaderHXBoosted = "HX-Boosted"
	HeaderHXTarget  = "HX-Target"
)

// IsHTMXRequest checks if the request was issued by HTMX.
func IsHTMXRequest(r *http.Request) bool {
	return r.Header.Get(HeaderHXRequest) == "true"
}

// IsHTMXBoosted checks if the request is from an hx-boost link or form.
func IsHTMXBoosted(r *http.Request) bool {
	return r.Header.Get(HeaderHXBoosted) == "true"
}
