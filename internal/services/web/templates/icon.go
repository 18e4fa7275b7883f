package templates

import (
	"context"

	"github.com/versocms/verso/internal/icon"
	"github.com/versocms/verso/internal/platform/requestctx"
)

// InlineIcon renders the named icon through the request's resolver. The
// returned markup is already sanitized and safe to write unescaped. Without a
// resolver in ctx it degrades to empty output so components render in
// isolation.
func InlineIcon(ctx context.Context, name string, opts icon.Options) string {
	resolver := requestctx.IconResolverFromContext(ctx)
	if resolver == nil {
		return ""
	}
	return resolver.Inline(name, opts)
}
