// Package http carries HTTP transport helpers for the web service.
package http

import (
	"net/http"
	"path"
	"strings"
)

// contentTypes maps the asset extensions the site serves to explicit
// content types. Host mime tables are not consulted.
var contentTypes = map[string]string{
	".css": "text/css",
	".js":  "application/javascript",
	".svg": "image/svg+xml",
}

// WithStaticMime sets the Content-Type header for known asset extensions
// before handing the request to next.
func WithStaticMime(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ct, ok := contentTypes[strings.ToLower(path.Ext(r.URL.Path))]; ok {
			w.Header().Set("Content-Type", ct)
		}
		next.ServeHTTP(w, r)
	})
}
