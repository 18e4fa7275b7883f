// Package i18n centralizes the locales supported by user-facing surfaces.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Locale identifiers for the embedded catalogs.
const (
	LocaleEnUS = "en-US"
	LocalePtBR = "pt-BR"
)

var (
	supportedLocales = []string{LocaleEnUS, LocalePtBR}

	supportedTags = []language.Tag{
		language.MustParse(LocaleEnUS),
		language.MustParse(LocalePtBR),
	}

	matcher = language.NewMatcher(supportedTags)
)

// SupportedTags returns the language tags with embedded catalogs.
func SupportedTags() []language.Tag {
	out := make([]language.Tag, len(supportedTags))
	copy(out, supportedTags)
	return out
}

// DefaultTag returns the fallback language tag.
func DefaultTag() language.Tag {
	return supportedTags[0]
}

// ParseTag parses a locale value and reports whether a supported tag
// satisfies it. Bare languages select their regional catalog (pt -> pt-BR).
func ParseTag(value string) (language.Tag, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return DefaultTag(), false
	}
	tag, err := language.Parse(trimmed)
	if err != nil {
		return DefaultTag(), false
	}
	_, index, confidence := matcher.Match(tag)
	if confidence < language.High {
		return DefaultTag(), false
	}
	return supportedTags[index], true
}

// MatchTags selects the best supported tag for an Accept-Language chain.
func MatchTags(tags []language.Tag) language.Tag {
	if len(tags) == 0 {
		return DefaultTag()
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return DefaultTag()
	}
	return supportedTags[index]
}

// LocaleForTag maps a language tag to its catalog locale identifier.
func LocaleForTag(tag language.Tag) string {
	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		return LocaleEnUS
	}
	return supportedLocales[index]
}

// ParseLocale parses a locale value into a supported catalog identifier.
func ParseLocale(value string) (string, bool) {
	tag, ok := ParseTag(value)
	if !ok {
		return LocaleEnUS, false
	}
	return LocaleForTag(tag), true
}

// NormalizeLocale coerces any locale value to a supported identifier.
func NormalizeLocale(value string) string {
	locale, _ := ParseLocale(value)
	return locale
}
