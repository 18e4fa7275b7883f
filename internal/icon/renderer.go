package icon

import (
	"bytes"
	"io/fs"
	"strings"

	"github.com/versocms/verso/internal/svg"
	"golang.org/x/net/html"
)

// Options controls one render call.
type Options struct {
	// Alt is the accessible label. When set it becomes a title element inside
	// the markup; when empty the markup is marked aria-hidden instead.
	Alt string
	// Immutable resolves in first-provider-wins order, pinning core over
	// theme and extension overrides.
	Immutable bool
	// Class entries are appended after the default icon classes.
	Class []string
	// Attributes are placed on the root element after the computed ones.
	Attributes []svg.Attribute
}

// Render reads the icon file at filePath and returns sanitized inline SVG
// markup with the computed attribute set on the root element. Files without
// the .svg extension, unreadable files, and content that does not open with
// an svg root tag all render as empty output rather than errors. Output is
// byte-deterministic for identical inputs.
func Render(root fs.FS, name, filePath string, opts Options) string {
	if !svg.HasExtension(filePath) {
		return ""
	}
	data, err := fs.ReadFile(root, filePath)
	if err != nil {
		return ""
	}
	data = bytes.TrimLeft(data, " \t\r\n")
	if !svg.IsInline(data) {
		return ""
	}

	classes := append([]string{"icon", "icon--" + name}, opts.Class...)
	attrs := []svg.Attribute{{Key: "class", Value: strings.Join(classes, " ")}}
	if opts.Alt == "" {
		attrs = append(attrs, svg.Attribute{Key: "aria-hidden", Value: "true"})
	}
	attrs = append(attrs, opts.Attributes...)

	rewritten := svg.RewriteRoot(data, attrs, opts.Alt)
	if rewritten == nil {
		return ""
	}
	return string(svg.Sanitize(rewritten))
}

// Inline resolves name and renders the winning file. A name no provider
// supplies degrades to an HTML comment carrying the name, so pages keep
// rendering without the asset.
func (r *Resolver) Inline(name string, opts Options) string {
	filePath, ok := r.ResolvePath(name, opts.Immutable)
	if !ok {
		return `<!-- icon "` + html.EscapeString(name) + `" not found -->`
	}
	return Render(r.cfg.Root, name, filePath, opts)
}
