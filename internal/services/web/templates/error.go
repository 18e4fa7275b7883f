package templates

import (
	"context"
	"html"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/versocms/verso/internal/icon"
)

// ErrorPage renders a localized error page inside the standard chrome.
func ErrorPage(page PageContext, title string, message string) templ.Component {
	return Layout(page, title, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<section class="error-page">`)
		b.WriteString(InlineIcon(ctx, "warning", icon.Options{Class: []string{"error-icon"}}))
		b.WriteString(`<h1>`)
		b.WriteString(html.EscapeString(title))
		b.WriteString(`</h1><p>`)
		b.WriteString(html.EscapeString(message))
		b.WriteString(`</p><a class="button" href="/">`)
		b.WriteString(html.EscapeString(T(page.Loc, "error.back_home")))
		b.WriteString(`</a></section>`)
		_, err := io.WriteString(w, b.String())
		return err
	}))
}
