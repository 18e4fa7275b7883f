package templates

import (
	"context"
	"html"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/versocms/verso/internal/icon"
	sharedtemplates "github.com/versocms/verso/internal/services/shared/templates"
)

// htmxScriptURL pins the htmx version loaded by every page.
const htmxScriptURL = "https://unpkg.com/htmx.org@1.9.12"

// Layout wraps main content in the site chrome: document head, header
// navigation, and the footer language switcher. The main element is the HTMX
// swap boundary, so partial responses carry exactly its content.
func Layout(page PageContext, title string, main templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<!doctype html><html lang="`)
		b.WriteString(html.EscapeString(page.Lang))
		b.WriteString(`"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		b.WriteString(html.EscapeString(sharedtemplates.ComposePageTitle(title)))
		b.WriteString(`</title><meta name="description" content="`)
		b.WriteString(html.EscapeString(T(page.Loc, "meta.description")))
		b.WriteString(`"><link rel="stylesheet" href="/static/app.css"><script src="`)
		b.WriteString(htmxScriptURL)
		b.WriteString(`" defer></script></head><body hx-boost="true">`)
		b.WriteString(`<header class="site-header"><nav class="site-nav"><a class="brand" href="/">`)
		b.WriteString(html.EscapeString(page.AppName))
		b.WriteString(`</a><ul>`)
		writeNavItem(&b, ctx, "/", "house", T(page.Loc, "core.nav.home"))
		writeNavItem(&b, ctx, "/icons", "image", T(page.Loc, "core.nav.icons"))
		b.WriteString(`</ul></nav></header><main id="main">`)
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}

		if err := main.Render(ctx, w); err != nil {
			return err
		}

		var f strings.Builder
		f.WriteString(`</main><footer class="site-footer"><p class="footer-tagline">`)
		f.WriteString(html.EscapeString(T(page.Loc, "core.app.tagline")))
		f.WriteString(`</p><span class="footer-label">`)
		f.WriteString(html.EscapeString(T(page.Loc, "core.footer.language")))
		f.WriteString(`</span>`)
		// Language switches reload the whole document so the chrome follows.
		f.WriteString(`<ul class="language-switcher" hx-boost="false">`)
		for _, option := range LanguageOptions(page) {
			f.WriteString(`<li><a`)
			if option.Active {
				f.WriteString(` class="active"`)
			}
			f.WriteString(` href="`)
			f.WriteString(html.EscapeString(LanguageURL(page, option.Tag)))
			f.WriteString(`" hreflang="`)
			f.WriteString(html.EscapeString(option.Tag))
			f.WriteString(`">`)
			f.WriteString(html.EscapeString(option.Label))
			f.WriteString(`</a></li>`)
		}
		f.WriteString(`</ul></footer></body></html>`)
		_, err := io.WriteString(w, f.String())
		return err
	})
}

func writeNavItem(b *strings.Builder, ctx context.Context, href string, iconName string, label string) {
	b.WriteString(`<li><a href="`)
	b.WriteString(href)
	b.WriteString(`">`)
	b.WriteString(InlineIcon(ctx, iconName, icon.Options{Class: []string{"nav-icon"}}))
	b.WriteString(`<span>`)
	b.WriteString(html.EscapeString(label))
	b.WriteString(`</span></a></li>`)
}
