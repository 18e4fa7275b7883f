// Package errors provides structured domain errors with machine-readable
// codes. Sentinel errors built from these codes match through errors.Is so
// callers can branch on the code without inspecting messages.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// Theme errors
	CodeThemeNameInvalid       Code = "THEME_NAME_INVALID"
	CodeThemeNotFound          Code = "THEME_NOT_FOUND"
	CodeThemeManifestInvalid   Code = "THEME_MANIFEST_INVALID"
	CodeThemeBaseMissing       Code = "THEME_BASE_MISSING"
	CodeThemeBaseCycle         Code = "THEME_BASE_CYCLE"
	CodeThemeAlreadyRegistered Code = "THEME_ALREADY_REGISTERED"

	// Extension errors
	CodeExtensionNameInvalid       Code = "EXTENSION_NAME_INVALID"
	CodeExtensionManifestInvalid   Code = "EXTENSION_MANIFEST_INVALID"
	CodeExtensionAlreadyRegistered Code = "EXTENSION_ALREADY_REGISTERED"

	// Icon errors
	CodeIconNameInvalid         Code = "ICON_NAME_INVALID"
	CodeIconRegistrationInvalid Code = "ICON_REGISTRATION_INVALID"
	CodeIconRegistryFinalized   Code = "ICON_REGISTRY_FINALIZED"
)
