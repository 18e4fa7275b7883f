package templates

import (
	webi18n "github.com/versocms/verso/internal/services/web/i18n"
	"golang.org/x/text/language"
)

// LanguageOption is one language-switcher entry.
type LanguageOption = webi18n.LanguageOption

// LanguageOptions returns the switcher entries for the page, labelled in
// the page's own language.
func LanguageOptions(page PageContext) []LanguageOption {
	return webi18n.Options(page.Lang, func(tag language.Tag) string {
		return T(page.Loc, webi18n.LabelKey(tag))
	})
}

// ActiveLanguageLabel returns the label of the language the page renders in.
func ActiveLanguageLabel(page PageContext) string {
	return webi18n.ActiveLabel(LanguageOptions(page))
}

// LanguageURL returns the current URL switched to another language.
func LanguageURL(page PageContext, tag string) string {
	return webi18n.SwitchURL(page.CurrentPath, page.CurrentQuery, tag)
}
