package requestctx

import (
	"context"

	"github.com/versocms/verso/internal/icon"
)

// iconResolverContextKey is the context key for the request-scoped icon resolver.
type iconResolverContextKey struct{}

// WithIconResolver stores a request-scoped icon resolver in context.
func WithIconResolver(ctx context.Context, resolver *icon.Resolver) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, iconResolverContextKey{}, resolver)
}

// IconResolverFromContext returns the icon resolver stored in context.
func IconResolverFromContext(ctx context.Context) *icon.Resolver {
	if ctx == nil {
		return nil
	}
	value, _ := ctx.Value(iconResolverContextKey{}).(*icon.Resolver)
	return value
}
