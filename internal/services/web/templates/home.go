package templates

import (
	"context"
	"html"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/versocms/verso/internal/icon"
)

// HomeParams feeds the landing page.
type HomeParams struct {
	// FeaturedIcons are rendered as a sample strip under the hero copy.
	FeaturedIcons []IconListItem
	// ThemeTitle is the active theme's display name.
	ThemeTitle string
}

// HomePage renders the landing page.
func HomePage(page PageContext, params HomeParams) templ.Component {
	return Layout(page, T(page.Loc, "title.home"), templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<section class="hero"><h1>`)
		b.WriteString(html.EscapeString(T(page.Loc, "home.heading")))
		b.WriteString(`</h1><p class="tagline">`)
		b.WriteString(html.EscapeString(T(page.Loc, "home.tagline")))
		b.WriteString(`</p>`)
		if params.ThemeTitle != "" {
			b.WriteString(`<p class="active-theme">`)
			b.WriteString(html.EscapeString(T(page.Loc, "home.active_theme", params.ThemeTitle)))
			b.WriteString(`</p>`)
		}
		b.WriteString(`<a class="button" href="/icons">`)
		b.WriteString(html.EscapeString(T(page.Loc, "home.browse")))
		b.WriteString(InlineIcon(ctx, "arrow-right", icon.Options{Class: []string{"button-icon"}}))
		b.WriteString(`</a></section>`)

		if len(params.FeaturedIcons) > 0 {
			b.WriteString(`<section class="featured-icons"><ul>`)
			for _, item := range params.FeaturedIcons {
				b.WriteString(`<li><a href="/icons/`)
				b.WriteString(item.Name)
				b.WriteString(`" title="`)
				b.WriteString(html.EscapeString(item.Title))
				b.WriteString(`">`)
				b.WriteString(InlineIcon(ctx, item.Name, icon.Options{Alt: item.Title}))
				b.WriteString(`</a></li>`)
			}
			b.WriteString(`</ul></section>`)
		}

		_, err := io.WriteString(w, b.String())
		return err
	}))
}
