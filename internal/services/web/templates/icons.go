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

// IconListItem is one gallery entry.
type IconListItem struct {
	Name  string
	Title string
}

// IconLibraryParams feeds the icon library page.
type IconLibraryParams struct {
	// Query is the active search filter, empty for the full gallery.
	Query string
	Items []IconListItem
}

// IconLibraryPage renders the gallery of every resolvable icon.
func IconLibraryPage(page PageContext, params IconLibraryParams) templ.Component {
	return Layout(page, T(page.Loc, "title.icons"), templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<section class="icon-library"><h1>`)
		b.WriteString(html.EscapeString(T(page.Loc, "icons.heading")))
		b.WriteString(`</h1><p class="subtitle">`)
		b.WriteString(html.EscapeString(T(page.Loc, "icons.subtitle")))
		b.WriteString(`</p>`)

		b.WriteString(`<form class="icon-search" method="get" action="/icons" role="search"><label class="visually-hidden" for="icon-search">`)
		b.WriteString(html.EscapeString(T(page.Loc, "icons.search_label")))
		b.WriteString(`</label><input id="icon-search" type="search" name="q" value="`)
		b.WriteString(html.EscapeString(params.Query))
		b.WriteString(`" placeholder="`)
		b.WriteString(html.EscapeString(T(page.Loc, "icons.search_placeholder")))
		b.WriteString(`"><button type="submit">`)
		b.WriteString(InlineIcon(ctx, "magnifying-glass", icon.Options{Class: []string{"button-icon"}}))
		b.WriteString(html.EscapeString(T(page.Loc, "icons.search_submit")))
		b.WriteString(`</button></form>`)

		if len(params.Items) == 0 {
			b.WriteString(`<p class="empty">`)
			if params.Query != "" {
				b.WriteString(html.EscapeString(T(page.Loc, "icons.no_matches", params.Query)))
			} else {
				b.WriteString(html.EscapeString(T(page.Loc, "icons.empty")))
			}
			b.WriteString(`</p></section>`)
			_, err := io.WriteString(w, b.String())
			return err
		}

		b.WriteString(`<p class="count">`)
		b.WriteString(html.EscapeString(T(page.Loc, "icons.count", len(params.Items))))
		b.WriteString(`</p><ul class="icon-grid">`)
		for _, item := range params.Items {
			// Icon names are machine names, safe in both URL and HTML position.
			b.WriteString(`<li><a href="/icons/`)
			b.WriteString(item.Name)
			b.WriteString(`">`)
			b.WriteString(InlineIcon(ctx, item.Name, icon.Options{Alt: item.Title}))
			b.WriteString(`<span class="icon-name">`)
			b.WriteString(html.EscapeString(item.Name))
			b.WriteString(`</span></a></li>`)
		}
		b.WriteString(`</ul></section>`)
		_, err := io.WriteString(w, b.String())
		return err
	}))
}

// IconDetailParams feeds the icon detail page.
type IconDetailParams struct {
	Name        string
	Title       string
	Description string
	// Found reports whether any provider resolves the name.
	Found bool
	// Path is the winning site-root-relative path under normal resolution.
	Path string
	// Provider is the localized label of the winning provider.
	Provider string
	// CorePath is the winning path under immutable resolution, empty when
	// nothing resolves.
	CorePath string
}

// IconDetailPage renders one icon with its resolution outcome and, when the
// active theme or an extension shadows core, both variants.
func IconDetailPage(page PageContext, params IconDetailParams) templ.Component {
	return Layout(page, params.Title, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		trail := sharedtemplates.BuildPathBreadcrumbs(page.CurrentPath, page.Loc, sharedtemplates.PathBreadcrumbOptions{
			IncludeRoot: true,
			RootLabel:   "core.nav.home",
			SegmentNames: map[string]string{
				"icons":     T(page.Loc, "core.nav.icons"),
				params.Name: params.Title,
			},
		})
		if err := sharedtemplates.Breadcrumbs(trail).Render(ctx, w); err != nil {
			return err
		}

		var b strings.Builder
		b.WriteString(`<section class="icon-detail"><h1>`)
		b.WriteString(html.EscapeString(params.Title))
		b.WriteString(`</h1>`)

		if !params.Found {
			b.WriteString(`<p class="absent">`)
			b.WriteString(html.EscapeString(T(page.Loc, "icon.absent")))
			b.WriteString(`</p>`)
			// Renders the not-found comment so the degraded markup is visible
			// in the page source.
			b.WriteString(InlineIcon(ctx, params.Name, icon.Options{}))
			writeBackLink(&b, ctx, page)
			b.WriteString(`</section>`)
			_, err := io.WriteString(w, b.String())
			return err
		}

		b.WriteString(`<figure class="icon-preview">`)
		b.WriteString(InlineIcon(ctx, params.Name, icon.Options{Alt: params.Title, Class: []string{"preview"}}))
		b.WriteString(`</figure>`)
		if params.Description != "" {
			b.WriteString(`<p class="description">`)
			b.WriteString(html.EscapeString(params.Description))
			b.WriteString(`</p>`)
		}

		b.WriteString(`<dl class="icon-meta"><dt>`)
		b.WriteString(html.EscapeString(T(page.Loc, "icon.provider")))
		b.WriteString(`</dt><dd>`)
		b.WriteString(html.EscapeString(params.Provider))
		b.WriteString(`</dd><dt>`)
		b.WriteString(html.EscapeString(T(page.Loc, "icon.path")))
		b.WriteString(`</dt><dd><code>`)
		b.WriteString(html.EscapeString(params.Path))
		b.WriteString(`</code></dd></dl>`)

		if params.CorePath != "" && params.CorePath != params.Path {
			b.WriteString(`<section class="icon-variants"><figure class="variant"><figcaption>`)
			b.WriteString(html.EscapeString(T(page.Loc, "icon.theme_variant")))
			b.WriteString(`</figcaption>`)
			b.WriteString(InlineIcon(ctx, params.Name, icon.Options{Alt: params.Title, Class: []string{"preview"}}))
			b.WriteString(`</figure><figure class="variant"><figcaption>`)
			b.WriteString(html.EscapeString(T(page.Loc, "icon.core_variant")))
			b.WriteString(`</figcaption>`)
			b.WriteString(InlineIcon(ctx, params.Name, icon.Options{Alt: params.Title, Class: []string{"preview"}, Immutable: true}))
			b.WriteString(`</figure></section>`)
		}

		writeBackLink(&b, ctx, page)
		b.WriteString(`</section>`)
		_, err := io.WriteString(w, b.String())
		return err
	}))
}

func writeBackLink(b *strings.Builder, ctx context.Context, page PageContext) {
	b.WriteString(`<a class="back-link" href="/icons">`)
	b.WriteString(InlineIcon(ctx, "arrow-left", icon.Options{Class: []string{"button-icon"}}))
	b.WriteString(html.EscapeString(T(page.Loc, "icon.back")))
	b.WriteString(`</a>`)
}
