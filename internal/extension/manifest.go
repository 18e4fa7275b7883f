package extension

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	apperrors "github.com/versocms/verso/internal/platform/errors"
)

// ManifestName is the manifest file every extension directory must carry.
const ManifestName = "extension.yaml"

type manifest struct {
	Name  string              `yaml:"name"`
	Title string              `yaml:"title"`
	Icons map[string]IconSpec `yaml:"icons"`
}

// LoadFromFS scans dir for extension directories carrying a manifest and
// returns a registry of the extensions found. Directories are visited in
// lexical order, which fixes the registration order downstream merges see.
func LoadFromFS(root fs.FS, dir string) (*Registry, error) {
	paths, err := fs.Glob(root, path.Join(dir, "*", ManifestName))
	if err != nil {
		return nil, fmt.Errorf("glob extension manifests: %w", err)
	}
	sort.Strings(paths)

	registry := NewRegistry()
	for _, manifestPath := range paths {
		ext, err := loadManifest(root, manifestPath)
		if err != nil {
			return nil, err
		}
		if err := registry.Register(ext); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

func loadManifest(root fs.FS, manifestPath string) (Extension, error) {
	data, err := fs.ReadFile(root, manifestPath)
	if err != nil {
		return Extension{}, fmt.Errorf("read extension manifest %s: %w", manifestPath, err)
	}

	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Extension{}, apperrors.WrapWithMetadata(apperrors.CodeExtensionManifestInvalid, fmt.Sprintf("parse extension manifest %s", manifestPath), map[string]string{"Name": manifestPath}, err)
	}

	extDir := path.Dir(manifestPath)
	name := strings.TrimSpace(m.Name)
	if name == "" {
		return Extension{}, apperrors.WithMetadata(apperrors.CodeExtensionManifestInvalid, fmt.Sprintf("extension manifest %s: name is required", manifestPath), map[string]string{"Name": manifestPath})
	}
	if base := path.Base(extDir); name != base {
		return Extension{}, apperrors.WithMetadata(apperrors.CodeExtensionManifestInvalid, fmt.Sprintf("extension manifest %s: name %q must match directory %q", manifestPath, name, base), map[string]string{"Name": name})
	}
	for iconName, spec := range m.Icons {
		if dir := strings.TrimSpace(spec.Directory); dir != "" && !fs.ValidPath(dir) {
			return Extension{}, apperrors.WithMetadata(apperrors.CodeExtensionManifestInvalid, fmt.Sprintf("extension manifest %s: icon %q directory %q must be a relative path", manifestPath, iconName, dir), map[string]string{"Name": name})
		}
	}

	title := strings.TrimSpace(m.Title)
	if title == "" {
		title = name
	}

	return Extension{
		Name:  name,
		Title: title,
		Path:  extDir,
		Icons: m.Icons,
	}, nil
}
