package extension

import (
	"errors"
	"testing"
	"testing/fstest"
)

func TestLoadFromFS(t *testing.T) {
	t.Parallel()

	root := fstest.MapFS{
		"modules/media/extension.yaml": &fstest.MapFile{Data: []byte(
			"name: media\ntitle: Media\nicons:\n  camera: {}\n  gallery:\n    filename: photo-stack\n",
		)},
		"modules/forum/extension.yaml": &fstest.MapFile{Data: []byte(
			"name: forum\nicons:\n  thread:\n    directory: modules/forum/assets\n",
		)},
		"modules/readme.txt": &fstest.MapFile{Data: []byte("ignored")},
	}

	registry, err := LoadFromFS(root, "modules")
	if err != nil {
		t.Fatalf("load extensions: %v", err)
	}

	media, ok := registry.Get("media")
	if !ok {
		t.Fatal("expected media extension")
	}
	if media.Path != "modules/media" {
		t.Fatalf("media path = %q, want modules/media", media.Path)
	}
	if spec := media.Icons["gallery"]; spec.Filename != "photo-stack" {
		t.Fatalf("gallery filename = %q, want photo-stack", spec.Filename)
	}
	if spec := media.Icons["camera"]; spec != (IconSpec{}) {
		t.Fatalf("camera spec = %+v, want zero value", spec)
	}

	forum, ok := registry.Get("forum")
	if !ok {
		t.Fatal("expected forum extension")
	}
	if forum.Title != "forum" {
		t.Fatalf("forum title = %q, want name fallback", forum.Title)
	}
	if spec := forum.Icons["thread"]; spec.Directory != "modules/forum/assets" {
		t.Fatalf("thread directory = %q, want modules/forum/assets", spec.Directory)
	}
}

func TestLoadFromFSOrdersLexically(t *testing.T) {
	t.Parallel()

	root := fstest.MapFS{
		"modules/zeta/extension.yaml":  &fstest.MapFile{Data: []byte("name: zeta\n")},
		"modules/alpha/extension.yaml": &fstest.MapFile{Data: []byte("name: alpha\n")},
	}
	registry, err := LoadFromFS(root, "modules")
	if err != nil {
		t.Fatalf("load extensions: %v", err)
	}
	all := registry.All()
	if len(all) != 2 || all[0].Name != "alpha" || all[1].Name != "zeta" {
		t.Fatalf("order = %v, want [alpha zeta]", []string{all[0].Name, all[1].Name})
	}
}

func TestLoadFromFSRejectsNameMismatch(t *testing.T) {
	t.Parallel()

	root := fstest.MapFS{
		"modules/media/extension.yaml": &fstest.MapFile{Data: []byte("name: other\n")},
	}
	_, err := LoadFromFS(root, "modules")
	if !errors.Is(err, ErrManifestInvalid) {
		t.Fatalf("expected manifest error, got %v", err)
	}
}

func TestLoadFromFSRejectsMalformedYAML(t *testing.T) {
	t.Parallel()

	root := fstest.MapFS{
		"modules/media/extension.yaml": &fstest.MapFile{Data: []byte(":\n\t- bad")},
	}
	_, err := LoadFromFS(root, "modules")
	if !errors.Is(err, ErrManifestInvalid) {
		t.Fatalf("expected manifest error, got %v", err)
	}
}

func TestLoadFromFSRejectsEscapingIconDirectory(t *testing.T) {
	t.Parallel()

	root := fstest.MapFS{
		"modules/media/extension.yaml": &fstest.MapFile{Data: []byte(
			"name: media\nicons:\n  camera:\n    directory: ../outside\n",
		)},
	}
	_, err := LoadFromFS(root, "modules")
	if !errors.Is(err, ErrManifestInvalid) {
		t.Fatalf("expected manifest error, got %v", err)
	}
}

func TestLoadFromFSEmptyDirectory(t *testing.T) {
	t.Parallel()

	registry, err := LoadFromFS(fstest.MapFS{}, "modules")
	if err != nil {
		t.Fatalf("load extensions: %v", err)
	}
	if got := len(registry.All()); got != 0 {
		t.Fatalf("expected empty registry, got %d extensions", got)
	}
}
