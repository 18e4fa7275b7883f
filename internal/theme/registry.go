package theme

import (
	"sort"

	apperrors "github.com/versocms/verso/internal/platform/errors"
)

// Registry indexes installed themes by machine name.
type Registry struct {
	themes map[string]Theme
}

// NewRegistry returns an empty theme registry.
func NewRegistry() *Registry {
	return &Registry{themes: map[string]Theme{}}
}

// Register adds a theme to the registry.
func (r *Registry) Register(t Theme) error {
	if !ValidName(t.Name) {
		return apperrors.WithMetadata(apperrors.CodeThemeNameInvalid, "theme name is not a valid machine name", map[string]string{"Name": t.Name})
	}
	if _, exists := r.themes[t.Name]; exists {
		return apperrors.WithMetadata(apperrors.CodeThemeAlreadyRegistered, "theme is already registered", map[string]string{"Name": t.Name})
	}
	r.themes[t.Name] = t
	return nil
}

// Get returns the theme registered under name.
func (r *Registry) Get(name string) (Theme, bool) {
	t, ok := r.themes[name]
	return t, ok
}

// All returns every registered theme sorted by machine name.
func (r *Registry) All() []Theme {
	out := make([]Theme, 0, len(r.themes))
	for _, t := range r.themes {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Chain returns the ordered theme chain for the active theme: the theme
// itself first, then its base ancestors. The walk is iterative and rejects
// cycles so callers can rely on a finite, active-first ordering.
func (r *Registry) Chain(active string) ([]Theme, error) {
	current, ok := r.themes[active]
	if !ok {
		return nil, apperrors.WithMetadata(apperrors.CodeThemeNotFound, "theme is not registered", map[string]string{"Name": active})
	}

	chain := []Theme{current}
	visited := map[string]bool{current.Name: true}
	for current.Base != "" {
		next, ok := r.themes[current.Base]
		if !ok {
			return nil, apperrors.WithMetadata(apperrors.CodeThemeBaseMissing, "base theme is not registered", map[string]string{
				"Name": current.Name,
				"Base": current.Base,
			})
		}
		if visited[next.Name] {
			return nil, apperrors.WithMetadata(apperrors.CodeThemeBaseCycle, "base theme chain contains a cycle", map[string]string{"Name": next.Name})
		}
		visited[next.Name] = true
		chain = append(chain, next)
		current = next
	}
	return chain, nil
}
