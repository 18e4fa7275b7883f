// Package i18n negotiates the request language for the web service and
// builds the language controls the layout renders.
//
// Selection order: the lang query parameter wins and is written back as a
// cookie, then the cookie, then the Accept-Language header. Unsupported
// values fall back to the default locale.
package i18n

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	platformi18n "github.com/versocms/verso/internal/platform/i18n"
	_ "github.com/versocms/verso/internal/platform/i18n/catalog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// LangParam selects a language through the query string.
	LangParam = "lang"
	// LangCookieName persists the visitor's language choice.
	LangCookieName = "verso_lang"

	cookieMaxAge = int(365 * 24 * time.Hour / time.Second)
)

// Supported returns the tags that have embedded catalogs.
func Supported() []language.Tag {
	return platformi18n.SupportedTags()
}

// Default returns the fallback tag.
func Default() language.Tag {
	return platformi18n.DefaultTag()
}

// Printer builds a message printer for the tag. The catalog import above
// registers the embedded messages before any printer is constructed.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// ResolveTag picks the language for a request. The boolean reports whether
// the choice came from the query parameter and should be persisted.
func ResolveTag(r *http.Request) (language.Tag, bool) {
	if r == nil {
		return Default(), false
	}
	if raw := strings.TrimSpace(r.URL.Query().Get(LangParam)); raw != "" {
		if tag, ok := platformi18n.ParseTag(raw); ok {
			return tag, true
		}
	}
	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if tag, ok := platformi18n.ParseTag(cookie.Value); ok {
			return tag, false
		}
	}
	if accept := r.Header.Get("Accept-Language"); strings.TrimSpace(accept) != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil {
			return platformi18n.MatchTags(tags), false
		}
	}
	return Default(), false
}

// SetLanguageCookie persists the language for later visits.
func SetLanguageCookie(w http.ResponseWriter, tag language.Tag) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    tag.String(),
		Path:     "/",
		MaxAge:   cookieMaxAge,
		SameSite: http.SameSiteLaxMode,
	})
}

// LanguageOption is one entry in the layout's language switcher.
type LanguageOption struct {
	Tag    string
	Label  string
	Active bool
}

// Options lists every supported language with the active one marked. label
// translates a tag into display text; when it returns nothing the tag
// itself is shown.
func Options(activeLang string, label func(language.Tag) string) []LanguageOption {
	active := normalize(activeLang)
	supported := Supported()
	options := make([]LanguageOption, 0, len(supported))
	for _, tag := range supported {
		text := tag.String()
		if label != nil {
			if resolved := strings.TrimSpace(label(tag)); resolved != "" {
				text = resolved
			}
		}
		options = append(options, LanguageOption{
			Tag:    tag.String(),
			Label:  text,
			Active: tag == active,
		})
	}
	return options
}

// ActiveLabel returns the label of the active option, or the first label
// when none is marked active.
func ActiveLabel(options []LanguageOption) string {
	for _, option := range options {
		if option.Active {
			return option.Label
		}
	}
	if len(options) == 0 {
		return ""
	}
	return options[0].Label
}

// LabelKey maps a tag to the catalog key holding its display name.
func LabelKey(tag language.Tag) string {
	switch platformi18n.LocaleForTag(tag) {
	case platformi18n.LocalePtBR:
		return "core.nav.lang_pt_br"
	case platformi18n.LocaleEnUS:
		return "core.nav.lang_en"
	default:
		return tag.String()
	}
}

// SwitchURL rebuilds the current URL with the lang parameter replaced so a
// switcher link keeps the visitor on the page they are reading.
func SwitchURL(path, rawQuery, tag string) string {
	if strings.TrimSpace(path) == "" {
		path = "/"
	}
	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		query = url.Values{}
	}
	query.Set(LangParam, tag)
	return (&url.URL{Path: path, RawQuery: query.Encode()}).String()
}

func normalize(value string) language.Tag {
	if tag, ok := platformi18n.ParseTag(value); ok {
		return tag
	}
	return Default()
}
