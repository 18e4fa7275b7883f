package site

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/versocms/verso/internal/extension"
	"github.com/versocms/verso/internal/icon"
	"github.com/versocms/verso/internal/platform/icons"
	"github.com/versocms/verso/internal/svg"
	"github.com/versocms/verso/internal/theme"
)

func TestCoreIconsCoverCatalog(t *testing.T) {
	t.Parallel()

	for _, def := range icons.Catalog() {
		data, err := fs.ReadFile(FS, "core/misc/icons/"+def.Name+".svg")
		if err != nil {
			t.Errorf("catalog icon %q has no core file: %v", def.Name, err)
			continue
		}
		if !svg.IsInline(data) {
			t.Errorf("core icon %q does not open with an svg root tag", def.Name)
		}
	}
}

func TestCoreIconsSurviveSanitization(t *testing.T) {
	t.Parallel()

	entries, err := fs.ReadDir(FS, "core/misc/icons")
	if err != nil {
		t.Fatalf("read core icons: %v", err)
	}
	if len(entries) == 0 {
		t.Fatal("expected core icons to be embedded")
	}
	for _, entry := range entries {
		name := strings.TrimSuffix(entry.Name(), ".svg")
		got := icon.Render(FS, name, "core/misc/icons/"+entry.Name(), icon.Options{})
		if got == "" {
			t.Errorf("core icon %q rendered empty", name)
			continue
		}
		if !strings.HasPrefix(got, `<svg class="icon icon--`+name+`"`) {
			t.Errorf("core icon %q markup = %q, want icon class prefix", name, got)
		}
	}
}

func TestBundledThemesLoad(t *testing.T) {
	t.Parallel()

	themes, err := theme.LoadFromFS(FS, "themes")
	if err != nil {
		t.Fatalf("LoadFromFS() error = %v", err)
	}

	basis, ok := themes.Get("basis")
	if !ok {
		t.Fatal("expected basis theme to be bundled")
	}
	if basis.Icons() != theme.DefaultIconDirectory {
		t.Fatalf("basis.Icons() = %q, want %q", basis.Icons(), theme.DefaultIconDirectory)
	}

	midnight, ok := themes.Get("midnight")
	if !ok {
		t.Fatal("expected midnight theme to be bundled")
	}
	if midnight.Icons() != "assets/glyphs" {
		t.Fatalf("midnight.Icons() = %q, want %q", midnight.Icons(), "assets/glyphs")
	}

	chain, err := themes.Chain("midnight")
	if err != nil {
		t.Fatalf("Chain() error = %v", err)
	}
	if len(chain) != 2 || chain[0].Name != "midnight" || chain[1].Name != "basis" {
		t.Fatalf("Chain(midnight) = %+v, want midnight then basis", chain)
	}
}

func TestBundledExtensionsResolve(t *testing.T) {
	t.Parallel()

	extensions, err := extension.LoadFromFS(FS, "modules")
	if err != nil {
		t.Fatalf("LoadFromFS() error = %v", err)
	}
	registry := icon.NewRegistry()
	for _, ext := range extensions.All() {
		if err := registry.RegisterExtension(ext); err != nil {
			t.Fatalf("RegisterExtension(%s) error = %v", ext.Name, err)
		}
	}

	resolver := icon.NewResolver(icon.Config{
		Root:       FS,
		Extensions: extensions,
		Registry:   registry,
	})

	got, ok := resolver.ResolvePath("camera", false)
	if !ok || got != "modules/media/icons/camera.svg" {
		t.Fatalf("ResolvePath(camera) = %q, %t, want convention path", got, ok)
	}
	got, ok = resolver.ResolvePath("flame", false)
	if !ok || got != "modules/forum/assets/flame-hot.svg" {
		t.Fatalf("ResolvePath(flame) = %q, %t, want override path", got, ok)
	}
}

func TestMidnightOverridesCoreStar(t *testing.T) {
	t.Parallel()

	themes, err := theme.LoadFromFS(FS, "themes")
	if err != nil {
		t.Fatalf("LoadFromFS() error = %v", err)
	}
	chain, err := themes.Chain("midnight")
	if err != nil {
		t.Fatalf("Chain() error = %v", err)
	}
	resolver := icon.NewResolver(icon.Config{Root: FS, Chain: chain})

	got, ok := resolver.ResolvePath("star", false)
	if !ok || got != "themes/midnight/assets/glyphs/star.svg" {
		t.Fatalf("ResolvePath(star) = %q, %t, want midnight glyph", got, ok)
	}
	got, ok = resolver.ResolvePath("star", true)
	if !ok || got != "core/misc/icons/star.svg" {
		t.Fatalf("ResolvePath(star, immutable) = %q, %t, want core file", got, ok)
	}
}
