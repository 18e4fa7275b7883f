package templates

import (
	"context"
	"html"
	"io"
	"strings"
	"unicode"

	"github.com/a-h/templ"
)

// BreadcrumbItem represents one breadcrumb entry in a page trail.
type BreadcrumbItem struct {
	// Label is the visible breadcrumb text.
	Label string
	// URL is the destination for this entry, empty for the current page.
	URL string
}

// BreadcrumbSegmentLabeler returns the label for a path segment.
//
// segment is the individual path segment while fullPath is the accumulated
// path up to the segment (for example, "/icons/house").
type BreadcrumbSegmentLabeler func(segment string, fullPath string, loc Localizer) string

// PathBreadcrumbOptions controls how a breadcrumb trail is built from a path.
type PathBreadcrumbOptions struct {
	// IncludeRoot adds a home-like root breadcrumb when enabled.
	IncludeRoot bool
	// RootPath is the URL used for the root breadcrumb, "/" when empty.
	RootPath string
	// RootLabel is the localization key (or fallback string) for the root breadcrumb.
	RootLabel string
	// LabelForSegment resolves labels for each non-root segment.
	LabelForSegment BreadcrumbSegmentLabeler
	// SegmentNames maps raw path segments to display names, taking precedence
	// over LabelForSegment.
	SegmentNames map[string]string
}

// BuildPathBreadcrumbs builds breadcrumb items from a request path. The final
// segment carries no URL so templates can mark it as the current page.
func BuildPathBreadcrumbs(path string, loc Localizer, options PathBreadcrumbOptions) []BreadcrumbItem {
	cleanPath := strings.Trim(strings.TrimSpace(path), "/")
	if cleanPath == "" {
		return []BreadcrumbItem{}
	}

	segments := strings.Split(cleanPath, "/")
	labeler := options.LabelForSegment
	if labeler == nil {
		labeler = defaultSegmentLabel
	}

	breadcrumbs := make([]BreadcrumbItem, 0, len(segments)+1)
	if options.IncludeRoot {
		rootPath := strings.TrimSpace(options.RootPath)
		if rootPath == "" {
			rootPath = "/"
		}
		breadcrumbs = append(breadcrumbs, BreadcrumbItem{Label: T(loc, options.RootLabel), URL: rootPath})
	}

	fullPath := ""
	for i, segment := range segments {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		fullPath += "/" + segment

		label, named := options.SegmentNames[segment]
		if !named {
			label = labeler(segment, fullPath, loc)
		}
		item := BreadcrumbItem{Label: label}
		if i < len(segments)-1 {
			item.URL = fullPath
		}
		breadcrumbs = append(breadcrumbs, item)
	}
	return breadcrumbs
}

// Breadcrumbs renders a breadcrumb trail as a nav element. Empty trails
// render nothing.
func Breadcrumbs(items []BreadcrumbItem) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if len(items) == 0 {
			return nil
		}
		var b strings.Builder
		b.WriteString(`<nav class="breadcrumbs" aria-label="Breadcrumb"><ol>`)
		for _, item := range items {
			b.WriteString("<li>")
			if item.URL != "" {
				b.WriteString(`<a href="`)
				b.WriteString(html.EscapeString(item.URL))
				b.WriteString(`">`)
				b.WriteString(html.EscapeString(item.Label))
				b.WriteString("</a>")
			} else {
				b.WriteString(`<span aria-current="page">`)
				b.WriteString(html.EscapeString(item.Label))
				b.WriteString("</span>")
			}
			b.WriteString("</li>")
		}
		b.WriteString("</ol></nav>")
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// defaultSegmentLabel humanizes a machine-name segment: separators become
// spaces and each word is capitalized.
func defaultSegmentLabel(segment string, _ string, _ Localizer) string {
	words := strings.FieldsFunc(segment, func(r rune) bool {
		return r == '-' || r == '_'
	})
	for i, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
