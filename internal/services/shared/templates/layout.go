// Package templates holds rendering helpers shared by HTML-serving services:
// localized text lookup, page title composition, and breadcrumb trails.
package templates

import (
	"fmt"
	"strings"

	"github.com/versocms/verso/internal/platform/branding"
	"golang.org/x/text/message"
)

// Localizer provides translated strings for templ components.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// T returns a translated string or a key-derived fallback.
func T(loc Localizer, key message.Reference, args ...any) string {
	if loc != nil {
		return loc.Sprintf(key, args...)
	}
	if keyString, ok := key.(string); ok {
		if len(args) > 0 {
			return fmt.Sprintf(keyString, args...)
		}
		return keyString
	}
	return ""
}

// ComposePageTitle appends the product name to a page title unless it already
// carries one. A hyphen-joined product suffix is normalized to the pipe form.
func ComposePageTitle(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return branding.AppName
	}
	pipeSuffix := " | " + branding.AppName
	if strings.HasSuffix(title, pipeSuffix) {
		return title
	}
	hyphenSuffix := " - " + branding.AppName
	if strings.HasSuffix(title, hyphenSuffix) {
		return strings.TrimSuffix(title, hyphenSuffix) + pipeSuffix
	}
	return title + pipeSuffix
}
