package route

import (
	"net/http"
	"strings"
)

// RedirectTrailingSlash canonicalizes request paths by stripping trailing "/"
// characters. The query string is carried over so language and filter
// parameters survive the redirect.
//
// It returns true when a redirect was written. Route handlers should stop
// further processing when true.
func RedirectTrailingSlash(w http.ResponseWriter, r *http.Request) bool {
	if w == nil || r == nil || r.URL == nil {
		return false
	}

	canonical := strings.TrimRight(r.URL.Path, "/")
	if canonical == "" {
		canonical = "/"
	}
	if canonical == r.URL.Path {
		return false
	}
	if query := r.URL.RawQuery; query != "" {
		canonical += "?" + query
	}

	http.Redirect(w, r, canonical, http.StatusMovedPermanently)
	return true
}
