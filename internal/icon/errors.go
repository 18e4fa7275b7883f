package icon

import (
	apperrors "github.com/versocms/verso/internal/platform/errors"
)

var (
	// ErrInvalidName indicates an icon name that is not a valid identifier.
	ErrInvalidName = apperrors.New(apperrors.CodeIconNameInvalid, "icon name is not valid")
	// ErrRegistrationInvalid indicates a registration that cannot be applied.
	ErrRegistrationInvalid = apperrors.New(apperrors.CodeIconRegistrationInvalid, "icon registration is invalid")
	// ErrRegistryFinalized indicates a mutation attempted after first use.
	ErrRegistryFinalized = apperrors.New(apperrors.CodeIconRegistryFinalized, "icon registry is finalized")
)
