// Package icon resolves symbolic icon names to theme, extension, or core
// assets and renders the winning file as sanitized inline SVG markup.
package icon

import (
	"io/fs"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/versocms/verso/internal/extension"
	apperrors "github.com/versocms/verso/internal/platform/errors"
)

// Registration binds one icon name to the extension that provides it.
// Zero-value overrides fall back to convention: the file lives under the
// extension's icons directory and is named after the icon.
type Registration struct {
	Extension string // machine name of the providing extension
	Directory string // directory override, site-root relative
	Filename  string // basename override, without the .svg extension
}

// AlterFunc adjusts the merged registration map before first use.
type AlterFunc func(map[string]Registration)

// Registry collects icon registrations from extensions and merges them into
// a flat name-to-registration map. Later registrations for a name shadow
// earlier ones, and queued alter hooks get a final pass over the merged map.
// The merge runs exactly once, triggered by the first lookup.
//
// Register and Alter are startup calls and are not safe to run concurrently
// with Lookup. Once the registry is finalized they fail with
// ErrRegistryFinalized.
type Registry struct {
	entries  []entry
	alterers []AlterFunc

	once      sync.Once
	finalized bool
	merged    map[string]Registration
}

type entry struct {
	name string
	reg  Registration
}

var iconName = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// ValidName reports whether name is a valid icon name.
func ValidName(name string) bool {
	return iconName.MatchString(name)
}

// NewRegistry returns an empty icon registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds one registration under name.
func (r *Registry) Register(name string, reg Registration) error {
	if r.finalized {
		return apperrors.WithMetadata(apperrors.CodeIconRegistryFinalized, "icon registry is finalized", map[string]string{"Name": name})
	}
	if !ValidName(name) {
		return apperrors.WithMetadata(apperrors.CodeIconNameInvalid, "icon name is not a valid identifier", map[string]string{"Name": name})
	}
	if !extension.ValidName(reg.Extension) {
		return apperrors.WithMetadata(apperrors.CodeIconRegistrationInvalid, "icon registration needs a valid extension name", map[string]string{
			"Name":      name,
			"Extension": reg.Extension,
		})
	}
	if reg.Directory != "" && !fs.ValidPath(reg.Directory) {
		return apperrors.WithMetadata(apperrors.CodeIconRegistrationInvalid, "icon registration directory must be a relative path", map[string]string{
			"Name": name,
			"Path": reg.Directory,
		})
	}
	// Manifests may spell the filename with or without the extension; the
	// stored form never carries it.
	reg.Filename = strings.TrimSuffix(reg.Filename, ".svg")
	if reg.Filename != "" && (!fs.ValidPath(reg.Filename) || strings.ContainsRune(reg.Filename, '/')) {
		return apperrors.WithMetadata(apperrors.CodeIconRegistrationInvalid, "icon registration filename must be a bare basename", map[string]string{
			"Name": name,
			"Path": reg.Filename,
		})
	}
	r.entries = append(r.entries, entry{name: name, reg: reg})
	return nil
}

// RegisterExtension adds every icon an extension contributes. Names are
// visited in sorted order so repeated boots register identically.
func (r *Registry) RegisterExtension(ext extension.Extension) error {
	names := make([]string, 0, len(ext.Icons))
	for name := range ext.Icons {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		spec := ext.Icons[name]
		reg := Registration{Extension: ext.Name, Directory: spec.Directory, Filename: spec.Filename}
		if err := r.Register(name, reg); err != nil {
			return err
		}
	}
	return nil
}

// Alter queues an adjustment of the merged map. All queued functions run
// once, in order, before the first lookup returns.
func (r *Registry) Alter(f AlterFunc) error {
	if r.finalized {
		return apperrors.New(apperrors.CodeIconRegistryFinalized, "icon registry is finalized")
	}
	r.alterers = append(r.alterers, f)
	return nil
}

func (r *Registry) finalize() {
	r.once.Do(func() {
		merged := make(map[string]Registration, len(r.entries))
		for _, e := range r.entries {
			merged[e.name] = e.reg
		}
		for _, alter := range r.alterers {
			alter(merged)
		}
		r.merged = merged
		r.finalized = true
	})
}

// Lookup returns the merged registration for name. The first call finalizes
// the registry; concurrent lookups after that are safe.
func (r *Registry) Lookup(name string) (Registration, bool) {
	r.finalize()
	reg, ok := r.merged[name]
	return reg, ok
}

// Names returns every icon name in the merged map, sorted. Like Lookup, the
// first call finalizes the registry.
func (r *Registry) Names() []string {
	r.finalize()
	names := make([]string, 0, len(r.merged))
	for name := range r.merged {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
