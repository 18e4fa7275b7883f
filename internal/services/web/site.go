package web

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"path"
	"sort"
	"strings"

	"github.com/versocms/verso/internal/extension"
	"github.com/versocms/verso/internal/icon"
	"github.com/versocms/verso/internal/platform/timeouts"
	"github.com/versocms/verso/internal/storage"
	"github.com/versocms/verso/internal/theme"
)

// DefaultThemeName is the bundled theme used when no setting selects one.
const DefaultThemeName = "basis"

// Provider kinds reported by Site.Provider.
const (
	ProviderTheme     = "theme"
	ProviderExtension = "extension"
	ProviderCore      = "core"
)

// SiteConfig describes how to assemble a Site.
type SiteConfig struct {
	// Root is the site filesystem. Required.
	Root fs.FS
	// ActiveTheme overrides the settings store's active theme when set.
	ActiveTheme string
	// Settings supplies the persisted active theme and per-theme icon
	// directory overrides. Optional.
	Settings storage.SettingsStore
	// Alter hooks run once over the merged icon registrations before the
	// first lookup.
	Alter []icon.AlterFunc
}

// Site is a loaded site tree plus the precomputed lookup state shared by
// every request: the active theme chain, the extension registry, and the
// merged icon registry. A Site is immutable after LoadSite returns.
type Site struct {
	Root       fs.FS
	Themes     *theme.Registry
	Extensions *extension.Registry
	Icons      *icon.Registry
	Chain      []theme.Theme

	names []string
}

// IconProvider identifies which provider supplied a resolved icon path.
type IconProvider struct {
	Kind  string
	Title string
}

// LoadSite reads themes and extensions from the site root and precomputes
// the active theme chain. Settings lookups run under a bounded timeout so a
// slow store cannot stall boot, and a persisted theme that is no longer
// registered falls back to the default theme.
func LoadSite(ctx context.Context, cfg SiteConfig) (*Site, error) {
	if cfg.Root == nil {
		return nil, errors.New("site root is required")
	}

	themes, err := theme.LoadFromFS(cfg.Root, "themes")
	if err != nil {
		return nil, fmt.Errorf("load themes: %w", err)
	}
	extensions, err := extension.LoadFromFS(cfg.Root, "modules")
	if err != nil {
		return nil, fmt.Errorf("load extensions: %w", err)
	}

	icons := icon.NewRegistry()
	for _, ext := range extensions.All() {
		if err := icons.RegisterExtension(ext); err != nil {
			return nil, fmt.Errorf("register icons for %s: %w", ext.Name, err)
		}
	}
	for _, alter := range cfg.Alter {
		if err := icons.Alter(alter); err != nil {
			return nil, fmt.Errorf("queue icon alter hook: %w", err)
		}
	}

	active := strings.TrimSpace(cfg.ActiveTheme)
	fromSettings := false
	if active == "" {
		active = settingsActiveTheme(ctx, cfg.Settings)
		fromSettings = active != ""
	}
	if active == "" {
		active = DefaultThemeName
	}
	chain, err := themes.Chain(active)
	if err != nil && fromSettings && errors.Is(err, theme.ErrNotFound) {
		// A stale settings row must not stop the site from booting.
		log.Printf("persisted theme %q is not registered, using %s", active, DefaultThemeName)
		chain, err = themes.Chain(DefaultThemeName)
	}
	if err != nil {
		return nil, fmt.Errorf("resolve theme chain: %w", err)
	}
	applyIconDirectoryOverrides(ctx, cfg.Settings, chain)

	site := &Site{
		Root:       cfg.Root,
		Themes:     themes,
		Extensions: extensions,
		Icons:      icons,
		Chain:      chain,
	}
	site.names = site.listIconNames()
	return site, nil
}

// ActiveTheme returns the head of the theme chain.
func (s *Site) ActiveTheme() theme.Theme {
	return s.Chain[0]
}

// Resolver returns a fresh resolver over the site. Each request gets its own
// so memoized lookups never outlive the request.
func (s *Site) Resolver() *icon.Resolver {
	return icon.NewResolver(icon.Config{
		Root:       s.Root,
		Chain:      s.Chain,
		Extensions: s.Extensions,
		Registry:   s.Icons,
	})
}

// IconNames returns every icon name some provider can supply, sorted.
func (s *Site) IconNames() []string {
	return append([]string(nil), s.names...)
}

// Provider reports which provider supplies the resolved path for name,
// mirroring the resolver's own path computation per provider.
func (s *Site) Provider(name string, resolved string) (IconProvider, bool) {
	for _, t := range s.Chain {
		if resolved == path.Join(t.Path, t.Icons(), name+".svg") {
			return IconProvider{Kind: ProviderTheme, Title: t.Title}, true
		}
	}

	if reg, ok := s.Icons.Lookup(name); ok {
		dir := reg.Directory
		ext, extOK := s.Extensions.Get(reg.Extension)
		if dir == "" && extOK {
			dir = path.Join(ext.Path, "icons")
		}
		filename := reg.Filename
		if filename == "" {
			filename = name
		}
		if dir != "" && resolved == path.Join(dir, filename+".svg") {
			title := reg.Extension
			if extOK {
				title = ext.Title
			}
			return IconProvider{Kind: ProviderExtension, Title: title}, true
		}
	}

	if resolved == path.Join(icon.DefaultCoreDir, name+".svg") {
		return IconProvider{Kind: ProviderCore}, true
	}
	return IconProvider{}, false
}

// listIconNames unions the names each provider can serve: core files, theme
// chain files, and merged registrations.
func (s *Site) listIconNames() []string {
	seen := map[string]struct{}{}
	collect := func(dir string) {
		matches, err := fs.Glob(s.Root, path.Join(dir, "*.svg"))
		if err != nil {
			return
		}
		for _, match := range matches {
			name := strings.TrimSuffix(path.Base(match), ".svg")
			if icon.ValidName(name) {
				seen[name] = struct{}{}
			}
		}
	}

	collect(icon.DefaultCoreDir)
	for _, t := range s.Chain {
		collect(path.Join(t.Path, t.Icons()))
	}
	for _, name := range s.Icons.Names() {
		seen[name] = struct{}{}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func settingsActiveTheme(ctx context.Context, settings storage.SettingsStore) string {
	if settings == nil {
		return ""
	}
	queryCtx, cancel := context.WithTimeout(ctx, timeouts.SettingsQuery)
	defer cancel()

	name, ok, err := settings.ActiveTheme(queryCtx)
	if err != nil {
		log.Printf("read active theme setting: %v", err)
		return ""
	}
	if !ok {
		return ""
	}
	return name
}

func applyIconDirectoryOverrides(ctx context.Context, settings storage.SettingsStore, chain []theme.Theme) {
	if settings == nil {
		return
	}
	for i := range chain {
		queryCtx, cancel := context.WithTimeout(ctx, timeouts.SettingsQuery)
		dir, ok, err := settings.ThemeIconDirectory(queryCtx, chain[i].Name)
		cancel()
		if err != nil {
			log.Printf("read icon directory for theme %s: %v", chain[i].Name, err)
			continue
		}
		if ok {
			chain[i].IconDirectory = dir
		}
	}
}
