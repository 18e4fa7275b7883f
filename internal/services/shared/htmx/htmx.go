// Package htmx renders templ pages for plain and HTMX-initiated requests.
//
// HTMX requests receive the content of the page's main element so partial
// swaps avoid re-sending layout chrome; plain requests get the full page.
package htmx

import (
	"bytes"
	"html"
	"net/http"
	"strings"

	"github.com/a-h/templ"
)

// RequestHeaderKey is the HTMX request header used to detect partial updates.
const RequestHeaderKey = "HX-Request"

// IsHTMXRequest reports whether the request was initiated by HTMX.
func IsHTMXRequest(r *http.Request) bool {
	if r == nil {
		return false
	}
	return strings.EqualFold(r.Header.Get(RequestHeaderKey), "true")
}

// TitleTag formats an escaped `<title>` element.
func TitleTag(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return ""
	}
	return "<title>" + html.EscapeString(title) + "</title>"
}

// RenderPage renders page for the request. HTMX requests receive the main
// element's content, prefixed with htmxTitle when the page carries no title
// of its own; other requests receive the full page.
func RenderPage(w http.ResponseWriter, r *http.Request, page templ.Component, htmxTitle string) {
	if page == nil {
		return
	}
	if !IsHTMXRequest(r) {
		templ.Handler(page).ServeHTTP(w, r)
		return
	}

	buf := newCapture()
	templ.Handler(page).ServeHTTP(buf, r)

	body := buf.body.Bytes()
	if inner, ok := mainContent(body); ok {
		body = inner
	}
	body = prependTitle(body, htmxTitle)

	copyHeaders(w.Header(), buf.header)
	if buf.status != 0 && buf.status != http.StatusOK {
		w.WriteHeader(buf.status)
	}
	_, _ = w.Write(body)
}

// capture buffers a component render so the main element can be extracted
// before anything reaches the network.
type capture struct {
	header http.Header
	status int
	body   bytes.Buffer
}

func newCapture() *capture {
	return &capture{header: make(http.Header)}
}

func (c *capture) Header() http.Header {
	return c.header
}

func (c *capture) WriteHeader(status int) {
	if c.status == 0 {
		c.status = status
	}
}

func (c *capture) Write(p []byte) (int, error) {
	return c.body.Write(p)
}

// mainContent returns the markup inside the page's main element.
func mainContent(body []byte) ([]byte, bool) {
	_, rest, found := bytes.Cut(body, []byte("<main"))
	if !found {
		return nil, false
	}
	_, inner, found := bytes.Cut(rest, []byte(">"))
	if !found {
		return nil, false
	}
	content, _, found := bytes.Cut(inner, []byte("</main>"))
	if !found {
		return nil, false
	}
	return content, true
}

// prependTitle puts the formatted title element before the fragment unless
// the fragment already carries one.
func prependTitle(body []byte, titleTag string) []byte {
	if strings.TrimSpace(titleTag) == "" {
		return body
	}
	if bytes.Contains(bytes.ToLower(body), []byte("<title")) {
		return body
	}
	return append([]byte(titleTag), body...)
}

// copyHeaders moves buffered headers onto the live response. Set-Cookie is
// the only header allowed to repeat.
func copyHeaders(dst, src http.Header) {
	for key, values := range src {
		if strings.EqualFold(key, "Set-Cookie") {
			for _, value := range values {
				dst.Add(key, value)
			}
			continue
		}
		if len(values) > 0 {
			dst.Set(key, values[len(values)-1])
		}
	}
}
