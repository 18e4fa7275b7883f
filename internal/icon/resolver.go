package icon

import (
	"io/fs"
	"path"

	"github.com/versocms/verso/internal/extension"
	"github.com/versocms/verso/internal/theme"
)

// DefaultCoreDir is where the built-in icon set lives under the site root.
const DefaultCoreDir = "core/misc/icons"

// Config wires a Resolver to one site: its filesystem root, the active theme
// chain, the installed extensions, and the merged icon registry.
type Config struct {
	Root       fs.FS
	Chain      []theme.Theme // active theme first, then its base ancestors
	Extensions *extension.Registry
	Registry   *Registry
	CoreDir    string // defaults to DefaultCoreDir
}

// Resolver maps icon names to site-root-relative asset paths, consulting the
// theme chain, extension registrations, and the core set in override order.
// Every outcome, including absence, is memoized for the resolver's lifetime,
// so the intended use is one resolver per request. Not safe for concurrent
// use.
type Resolver struct {
	cfg   Config
	cache map[cacheKey]cacheEntry
}

type cacheKey struct {
	name      string
	immutable bool
}

type cacheEntry struct {
	path string
	ok   bool
}

// NewResolver returns a resolver over cfg.
func NewResolver(cfg Config) *Resolver {
	if cfg.CoreDir == "" {
		cfg.CoreDir = DefaultCoreDir
	}
	return &Resolver{cfg: cfg, cache: map[cacheKey]cacheEntry{}}
}

// ResolvePath returns the site-root-relative path for name, or false when no
// provider supplies it. Normal resolution lets themes shadow extensions and
// extensions shadow core; immutable resolution reverses the order so the
// first system to define a name keeps it. A computed result sticks for the
// resolver's lifetime even if the underlying file changes.
func (r *Resolver) ResolvePath(name string, immutable bool) (string, bool) {
	key := cacheKey{name: name, immutable: immutable}
	if entry, hit := r.cache[key]; hit {
		return entry.path, entry.ok
	}

	var resolved string
	var ok bool
	// Invalid names resolve to absence rather than an error, and the name
	// grammar keeps path separators and dot segments out of Join.
	if ValidName(name) {
		providers := []func(string) (string, bool){r.themePath, r.extensionPath, r.corePath}
		if immutable {
			providers = []func(string) (string, bool){r.corePath, r.extensionPath, r.themePath}
		}
		for _, provider := range providers {
			if resolved, ok = provider(name); ok {
				break
			}
		}
	}

	r.cache[key] = cacheEntry{path: resolved, ok: ok}
	return resolved, ok
}

// themePath walks the precomputed theme chain, active theme first, checking
// each theme's icon directory.
func (r *Resolver) themePath(name string) (string, bool) {
	for _, t := range r.cfg.Chain {
		candidate := path.Join(t.Path, t.Icons(), name+".svg")
		if r.fileExists(candidate) {
			return candidate, true
		}
	}
	return "", false
}

// extensionPath consults the merged registry. A registration without a
// directory override falls back to the owning extension's icons directory,
// and one without a filename override uses the icon name.
func (r *Resolver) extensionPath(name string) (string, bool) {
	if r.cfg.Registry == nil {
		return "", false
	}
	reg, ok := r.cfg.Registry.Lookup(name)
	if !ok {
		return "", false
	}

	dir := reg.Directory
	if dir == "" {
		if r.cfg.Extensions == nil {
			return "", false
		}
		ext, ok := r.cfg.Extensions.Get(reg.Extension)
		if !ok {
			return "", false
		}
		dir = path.Join(ext.Path, "icons")
	}
	filename := reg.Filename
	if filename == "" {
		filename = name
	}

	candidate := path.Join(dir, filename+".svg")
	if r.fileExists(candidate) {
		return candidate, true
	}
	return "", false
}

func (r *Resolver) corePath(name string) (string, bool) {
	candidate := path.Join(r.cfg.CoreDir, name+".svg")
	if r.fileExists(candidate) {
		return candidate, true
	}
	return "", false
}

func (r *Resolver) fileExists(p string) bool {
	info, err := fs.Stat(r.cfg.Root, p)
	return err == nil && !info.IsDir()
}
