package extension

import apperrors "github.com/versocms/verso/internal/platform/errors"

var (
	// ErrInvalidName indicates a malformed extension machine name.
	ErrInvalidName = apperrors.New(apperrors.CodeExtensionNameInvalid, "extension name is not a valid machine name")
	// ErrAlreadyRegistered indicates a duplicate extension registration.
	ErrAlreadyRegistered = apperrors.New(apperrors.CodeExtensionAlreadyRegistered, "extension is already registered")
	// ErrManifestInvalid indicates an unreadable or inconsistent extension manifest.
	ErrManifestInvalid = apperrors.New(apperrors.CodeExtensionManifestInvalid, "extension manifest is invalid")
)
