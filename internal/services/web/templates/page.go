// Package templates renders the web service's HTML pages as templ components.
package templates

// PageContext carries per-request rendering inputs shared by all pages.
type PageContext struct {
	// Lang is the resolved BCP 47 language tag string.
	Lang string
	// Loc translates message keys for the resolved language.
	Loc Localizer
	// CurrentPath is the request path, used for language switch links.
	CurrentPath string
	// CurrentQuery is the raw request query, preserved across language switches.
	CurrentQuery string
	// AppName is the product name shown in the chrome.
	AppName string
}
