package icon

import (
	"errors"
	"testing"

	"github.com/versocms/verso/internal/extension"
)

func mustRegister(t *testing.T, r *Registry, name string, reg Registration) {
	t.Helper()
	if err := r.Register(name, reg); err != nil {
		t.Fatalf("register %s: %v", name, err)
	}
}

func TestRegistryLastRegisteredWins(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	mustRegister(t, registry, "camera", Registration{Extension: "media"})
	mustRegister(t, registry, "camera", Registration{Extension: "gallery", Filename: "camera-pro"})

	reg, ok := registry.Lookup("camera")
	if !ok {
		t.Fatal("expected camera registration")
	}
	if reg.Extension != "gallery" {
		t.Fatalf("extension = %q, want gallery", reg.Extension)
	}
	if reg.Filename != "camera-pro" {
		t.Fatalf("filename = %q, want camera-pro", reg.Filename)
	}
}

func TestRegistryStripsFilenameExtension(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	mustRegister(t, registry, "flame", Registration{Extension: "forum", Filename: "flame-hot.svg"})

	reg, ok := registry.Lookup("flame")
	if !ok {
		t.Fatal("expected flame registration")
	}
	if reg.Filename != "flame-hot" {
		t.Fatalf("filename = %q, want flame-hot", reg.Filename)
	}
}

func TestRegistryAlterRunsOncePerRegistry(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	mustRegister(t, registry, "camera", Registration{Extension: "media"})

	runs := 0
	err := registry.Alter(func(merged map[string]Registration) {
		runs++
		merged["camera"] = Registration{Extension: "gallery"}
		merged["badge"] = Registration{Extension: "gallery"}
	})
	if err != nil {
		t.Fatalf("alter: %v", err)
	}

	if reg, _ := registry.Lookup("camera"); reg.Extension != "gallery" {
		t.Fatalf("extension after alter = %q, want gallery", reg.Extension)
	}
	if _, ok := registry.Lookup("badge"); !ok {
		t.Fatal("expected altered-in badge registration")
	}
	registry.Lookup("camera")
	if runs != 1 {
		t.Fatalf("alter runs = %d, want 1", runs)
	}
}

func TestRegistryFinalizedRejectsMutation(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	mustRegister(t, registry, "camera", Registration{Extension: "media"})
	registry.Lookup("camera")

	if err := registry.Register("badge", Registration{Extension: "media"}); !errors.Is(err, ErrRegistryFinalized) {
		t.Fatalf("register after finalize = %v, want ErrRegistryFinalized", err)
	}
	if err := registry.Alter(func(map[string]Registration) {}); !errors.Is(err, ErrRegistryFinalized) {
		t.Fatalf("alter after finalize = %v, want ErrRegistryFinalized", err)
	}
}

func TestRegistryRejectsInvalidIconName(t *testing.T) {
	t.Parallel()

	cases := []string{"", "Home", "has space", "-leading", "_leading", "a/b", "a.b"}
	for _, name := range cases {
		registry := NewRegistry()
		if err := registry.Register(name, Registration{Extension: "media"}); !errors.Is(err, ErrInvalidName) {
			t.Fatalf("Register(%q) = %v, want ErrInvalidName", name, err)
		}
	}

	valid := []string{"home", "9patch", "x", "arrow-left", "file_text"}
	for _, name := range valid {
		registry := NewRegistry()
		if err := registry.Register(name, Registration{Extension: "media"}); err != nil {
			t.Fatalf("Register(%q) = %v, want nil", name, err)
		}
	}
}

func TestRegistryRejectsInvalidRegistration(t *testing.T) {
	t.Parallel()

	cases := []Registration{
		{Extension: ""},
		{Extension: "Not-Valid"},
		{Extension: "media", Directory: "../outside"},
		{Extension: "media", Directory: "/absolute"},
		{Extension: "media", Filename: "nested/name"},
		{Extension: "media", Filename: ".."},
	}
	for _, reg := range cases {
		registry := NewRegistry()
		if err := registry.Register("camera", reg); !errors.Is(err, ErrRegistrationInvalid) {
			t.Fatalf("Register(%+v) = %v, want ErrRegistrationInvalid", reg, err)
		}
	}
}

func TestRegisterExtension(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	err := registry.RegisterExtension(extension.Extension{
		Name: "media",
		Path: "modules/media",
		Icons: map[string]extension.IconSpec{
			"camera":  {},
			"gallery": {Filename: "photo-stack"},
		},
	})
	if err != nil {
		t.Fatalf("register extension: %v", err)
	}

	names := registry.Names()
	want := []string{"camera", "gallery"}
	if len(names) != len(want) {
		t.Fatalf("names = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("names = %v, want %v", names, want)
		}
	}

	reg, _ := registry.Lookup("gallery")
	if reg.Extension != "media" || reg.Filename != "photo-stack" {
		t.Fatalf("gallery registration = %+v", reg)
	}
}

func TestRegisterExtensionLaterExtensionWins(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	first := extension.Extension{Name: "media", Path: "modules/media", Icons: map[string]extension.IconSpec{"camera": {}}}
	second := extension.Extension{Name: "gallery", Path: "modules/gallery", Icons: map[string]extension.IconSpec{"camera": {}}}
	if err := registry.RegisterExtension(first); err != nil {
		t.Fatalf("register media: %v", err)
	}
	if err := registry.RegisterExtension(second); err != nil {
		t.Fatalf("register gallery: %v", err)
	}

	reg, _ := registry.Lookup("camera")
	if reg.Extension != "gallery" {
		t.Fatalf("extension = %q, want gallery", reg.Extension)
	}
}
