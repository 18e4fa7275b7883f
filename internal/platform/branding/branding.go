// Package branding centralizes user-facing product naming.
package branding

// AppName is the product name used in page titles and rendered chrome.
const AppName = "Verso"
