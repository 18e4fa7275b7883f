package templates

import (
	sharedtemplates "github.com/versocms/verso/internal/services/shared/templates"
	"golang.org/x/text/message"
)

// Localizer resolves catalog keys into the page's language. It is
// satisfied by *message.Printer.
type Localizer = sharedtemplates.Localizer

// T translates key through loc, falling back to the key text when loc is
// nil so components still render identifiable strings.
func T(loc Localizer, key message.Reference, args ...any) string {
	return sharedtemplates.T(loc, key, args...)
}
