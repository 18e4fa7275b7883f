package catalog

import (
	"strings"
	"testing"
	"testing/fstest"
)

func catalogFS(files map[string]string) fstest.MapFS {
	fsys := fstest.MapFS{}
	for name, content := range files {
		fsys[name] = &fstest.MapFile{Data: []byte(content)}
	}
	return fsys
}

func TestDefaultBundleCoversSupportedLocales(t *testing.T) {
	bundle := Default()
	for _, locale := range []string{"en-US", "pt-BR"} {
		if !bundle.Has(locale) {
			t.Fatalf("embedded bundle is missing locale %s", locale)
		}
	}
	if _, ok := bundle.Lookup("en-US", "core.nav.icons"); !ok {
		t.Fatal("core.nav.icons not defined for en-US")
	}
	if got := bundle.Namespace("en-US", "web"); len(got) == 0 {
		t.Fatal("en-US web namespace is empty")
	}
}

func TestEmbeddedLocalesDefineSameKeys(t *testing.T) {
	bundle := Default()
	base := bundle.Messages(BaseLocale)
	for _, locale := range bundle.Locales() {
		if locale == BaseLocale {
			continue
		}
		messages := bundle.Messages(locale)
		for key := range base {
			if _, ok := messages[key]; !ok {
				t.Errorf("%s is missing key %q", locale, key)
			}
		}
		for key := range messages {
			if _, ok := base[key]; !ok {
				t.Errorf("%s defines %q which %s lacks", locale, key, BaseLocale)
			}
		}
	}
}

func TestLookupFallsBackToBaseLocale(t *testing.T) {
	bundle, err := Load(catalogFS(map[string]string{
		"locales/en-US/web.yaml": "locale: en-US\nnamespace: web\nmessages:\n  \"icons.title\": \"Icon library\"\n  \"icons.empty\": \"No icons registered.\"\n",
		"locales/pt-BR/web.yaml": "locale: pt-BR\nnamespace: web\nmessages:\n  \"icons.title\": \"Biblioteca de ícones\"\n",
	}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if got, ok := bundle.Lookup("pt-BR", "icons.title"); !ok || got != "Biblioteca de ícones" {
		t.Fatalf("Lookup(pt-BR, icons.title) = %q, %v", got, ok)
	}
	if got, ok := bundle.Lookup("pt-BR", "icons.empty"); !ok || got != "No icons registered." {
		t.Fatalf("fallback lookup = %q, %v, want base locale value", got, ok)
	}
	if _, ok := bundle.Lookup("en-US", "icons.unknown"); ok {
		t.Fatal("unknown key resolved in base locale")
	}
}

func TestLoadRejectsBadCatalogs(t *testing.T) {
	base := "locale: en-US\nnamespace: web\nmessages:\n  \"icons.title\": \"Icon library\"\n"

	tests := []struct {
		name    string
		files   map[string]string
		wantErr string
	}{
		{
			name:    "empty set",
			files:   map[string]string{},
			wantErr: "no locale catalogs",
		},
		{
			name: "locale does not match directory",
			files: map[string]string{
				"locales/en-US/web.yaml": "locale: pt-BR\nnamespace: web\nmessages:\n  \"a\": \"b\"\n",
			},
			wantErr: "does not match directory",
		},
		{
			name: "namespace does not match filename",
			files: map[string]string{
				"locales/en-US/web.yaml": "locale: en-US\nnamespace: icons\nmessages:\n  \"a\": \"b\"\n",
			},
			wantErr: "does not match filename",
		},
		{
			name: "core key outside core namespace",
			files: map[string]string{
				"locales/en-US/web.yaml": "locale: en-US\nnamespace: web\nmessages:\n  \"core.nav.home\": \"Home\"\n",
			},
			wantErr: "belongs to the core namespace",
		},
		{
			name: "key defined in two namespaces",
			files: map[string]string{
				"locales/en-US/web.yaml":   base,
				"locales/en-US/icons.yaml": "locale: en-US\nnamespace: icons\nmessages:\n  \"icons.title\": \"Again\"\n",
			},
			wantErr: "already defined",
		},
		{
			name: "missing base locale",
			files: map[string]string{
				"locales/pt-BR/web.yaml": "locale: pt-BR\nnamespace: web\nmessages:\n  \"a\": \"b\"\n",
			},
			wantErr: "base locale",
		},
		{
			name: "not yaml",
			files: map[string]string{
				"locales/en-US/web.yaml": ":\n\t- bad",
			},
			wantErr: "parse catalog",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(catalogFS(tc.files))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("error = %v, want substring %q", err, tc.wantErr)
			}
		})
	}
}
