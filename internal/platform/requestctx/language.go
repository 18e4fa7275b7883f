package requestctx

import (
	"context"

	"github.com/versocms/verso/internal/platform/i18n"
	"golang.org/x/text/language"
)

// languageContextKey is the context key for the negotiated request language.
type languageContextKey struct{}

// WithLanguage stores the negotiated language tag in context.
func WithLanguage(ctx context.Context, tag language.Tag) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, languageContextKey{}, tag)
}

// LanguageFromContext returns the language tag stored in context, falling
// back to the default language when none was negotiated.
func LanguageFromContext(ctx context.Context) language.Tag {
	if ctx == nil {
		return i18n.DefaultTag()
	}
	value, ok := ctx.Value(languageContextKey{}).(language.Tag)
	if !ok {
		return i18n.DefaultTag()
	}
	return value
}
