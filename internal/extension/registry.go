package extension

import (
	apperrors "github.com/versocms/verso/internal/platform/errors"
)

// Registry indexes installed extensions by machine name while preserving
// registration order. Order matters downstream: when two extensions claim
// the same icon name, the later registration wins.
type Registry struct {
	byName map[string]Extension
	order  []string
}

// NewRegistry returns an empty extension registry.
func NewRegistry() *Registry {
	return &Registry{byName: map[string]Extension{}}
}

// Register adds an extension to the registry.
func (r *Registry) Register(ext Extension) error {
	if !ValidName(ext.Name) {
		return apperrors.WithMetadata(apperrors.CodeExtensionNameInvalid, "extension name is not a valid machine name", map[string]string{"Name": ext.Name})
	}
	if _, exists := r.byName[ext.Name]; exists {
		return apperrors.WithMetadata(apperrors.CodeExtensionAlreadyRegistered, "extension is already registered", map[string]string{"Name": ext.Name})
	}
	r.byName[ext.Name] = ext
	r.order = append(r.order, ext.Name)
	return nil
}

// Get returns the extension registered under name.
func (r *Registry) Get(name string) (Extension, bool) {
	ext, ok := r.byName[name]
	return ext, ok
}

// All returns every registered extension in registration order.
func (r *Registry) All() []Extension {
	out := make([]Extension, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.byName[name])
	}
	return out
}
