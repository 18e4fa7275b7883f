package theme

import apperrors "github.com/versocms/verso/internal/platform/errors"

var (
	// ErrInvalidName indicates a malformed theme machine name.
	ErrInvalidName = apperrors.New(apperrors.CodeThemeNameInvalid, "theme name is not a valid machine name")
	// ErrNotFound indicates a lookup for an unregistered theme.
	ErrNotFound = apperrors.New(apperrors.CodeThemeNotFound, "theme is not registered")
	// ErrManifestInvalid indicates an unreadable or inconsistent theme manifest.
	ErrManifestInvalid = apperrors.New(apperrors.CodeThemeManifestInvalid, "theme manifest is invalid")
	// ErrAlreadyRegistered indicates a duplicate theme registration.
	ErrAlreadyRegistered = apperrors.New(apperrors.CodeThemeAlreadyRegistered, "theme is already registered")
	// ErrBaseMissing indicates a theme whose declared base is not registered.
	ErrBaseMissing = apperrors.New(apperrors.CodeThemeBaseMissing, "base theme is not registered")
	// ErrBaseCycle indicates a cyclic base theme declaration.
	ErrBaseCycle = apperrors.New(apperrors.CodeThemeBaseCycle, "base theme chain contains a cycle")
)
