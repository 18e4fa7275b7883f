package theme

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	apperrors "github.com/versocms/verso/internal/platform/errors"
)

// ManifestName is the manifest file every theme directory must carry.
const ManifestName = "theme.yaml"

type manifest struct {
	Name          string `yaml:"name"`
	Title         string `yaml:"title"`
	Base          string `yaml:"base"`
	IconDirectory string `yaml:"icon_directory"`
}

// LoadFromFS scans dir for theme directories carrying a manifest and returns
// a registry of the themes found. The manifest name must match its directory
// so paths stay predictable.
func LoadFromFS(root fs.FS, dir string) (*Registry, error) {
	paths, err := fs.Glob(root, path.Join(dir, "*", ManifestName))
	if err != nil {
		return nil, fmt.Errorf("glob theme manifests: %w", err)
	}
	sort.Strings(paths)

	registry := NewRegistry()
	for _, manifestPath := range paths {
		t, err := loadManifest(root, manifestPath)
		if err != nil {
			return nil, err
		}
		if err := registry.Register(t); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

func loadManifest(root fs.FS, manifestPath string) (Theme, error) {
	data, err := fs.ReadFile(root, manifestPath)
	if err != nil {
		return Theme{}, fmt.Errorf("read theme manifest %s: %w", manifestPath, err)
	}

	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Theme{}, apperrors.WrapWithMetadata(apperrors.CodeThemeManifestInvalid, fmt.Sprintf("parse theme manifest %s", manifestPath), map[string]string{"Name": manifestPath}, err)
	}

	themeDir := path.Dir(manifestPath)
	name := strings.TrimSpace(m.Name)
	if name == "" {
		return Theme{}, apperrors.WithMetadata(apperrors.CodeThemeManifestInvalid, fmt.Sprintf("theme manifest %s: name is required", manifestPath), map[string]string{"Name": manifestPath})
	}
	if base := path.Base(themeDir); name != base {
		return Theme{}, apperrors.WithMetadata(apperrors.CodeThemeManifestInvalid, fmt.Sprintf("theme manifest %s: name %q must match directory %q", manifestPath, name, base), map[string]string{"Name": name})
	}
	if iconDir := strings.TrimSpace(m.IconDirectory); iconDir != "" && !fs.ValidPath(iconDir) {
		return Theme{}, apperrors.WithMetadata(apperrors.CodeThemeManifestInvalid, fmt.Sprintf("theme manifest %s: icon_directory %q must be a relative path", manifestPath, iconDir), map[string]string{"Name": name})
	}

	title := strings.TrimSpace(m.Title)
	if title == "" {
		title = name
	}

	return Theme{
		Name:          name,
		Title:         title,
		Base:          strings.TrimSpace(m.Base),
		Path:          themeDir,
		IconDirectory: strings.TrimSpace(m.IconDirectory),
	}, nil
}
