// Package catalog loads the embedded locale catalogs and registers every
// message with x/text at startup.
//
// Catalog files live at locales/<locale>/<namespace>.yaml. Each file names
// its own locale and namespace, which must agree with its path, followed by
// a flat message map. Keys carrying the core. prefix may only be defined in
// the core namespace.
package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// BaseLocale is the source locale. Lookups for other locales fall back to
// it, so it must define every key the templates reference.
const BaseLocale = "en-US"

//go:embed locales/*/*.yaml
var embeddedFS embed.FS

var defaultBundle = func() *Bundle {
	bundle, err := Load(embeddedFS)
	if err != nil {
		panic(fmt.Sprintf("embedded locale catalogs: %v", err))
	}
	bundle.register()
	return bundle
}()

// Default returns the bundle built from the embedded catalogs. Its messages
// are already registered with x/text by the time any caller can observe it.
func Default() *Bundle {
	return defaultBundle
}

// catalogDoc mirrors the on-disk shape of one catalog file.
type catalogDoc struct {
	Locale    string            `yaml:"locale"`
	Namespace string            `yaml:"namespace"`
	Messages  map[string]string `yaml:"messages"`
}

// localeSet collects one locale's messages, grouped by namespace and as a
// flat map for whole-locale queries.
type localeSet struct {
	tag         language.Tag
	namespaces  map[string]map[string]string
	allMessages map[string]string
}

// Bundle is a read-only view over every loaded locale.
type Bundle struct {
	locales map[string]*localeSet
}

// Load reads every catalog under locales/ in fsys and validates the set as
// a whole: the base locale must be present, locales and namespaces must
// match their paths, and a key may only be defined once per locale.
func Load(fsys fs.FS) (*Bundle, error) {
	files, err := fs.Glob(fsys, "locales/*/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no locale catalogs under locales/")
	}
	sort.Strings(files)

	bundle := &Bundle{locales: make(map[string]*localeSet)}
	for _, file := range files {
		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", file, err)
		}
		var doc catalogDoc
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", file, err)
		}
		if err := bundle.merge(file, doc); err != nil {
			return nil, err
		}
	}

	if _, ok := bundle.locales[BaseLocale]; !ok {
		return nil, fmt.Errorf("base locale %s has no catalogs", BaseLocale)
	}
	return bundle, nil
}

func (b *Bundle) merge(file string, doc catalogDoc) error {
	wantLocale := path.Base(path.Dir(file))
	wantNamespace := strings.TrimSuffix(path.Base(file), path.Ext(file))

	locale := strings.TrimSpace(doc.Locale)
	switch {
	case locale == "":
		return fmt.Errorf("catalog %s: missing locale", file)
	case locale != wantLocale:
		return fmt.Errorf("catalog %s: locale %q does not match directory %q", file, locale, wantLocale)
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return fmt.Errorf("catalog %s: locale %q: %w", file, locale, err)
	}

	namespace := strings.TrimSpace(doc.Namespace)
	switch {
	case namespace == "":
		return fmt.Errorf("catalog %s: missing namespace", file)
	case namespace != wantNamespace:
		return fmt.Errorf("catalog %s: namespace %q does not match filename %q", file, namespace, wantNamespace)
	}

	if len(doc.Messages) == 0 {
		return fmt.Errorf("catalog %s: no messages", file)
	}

	set := b.locales[locale]
	if set == nil {
		set = &localeSet{
			tag:         tag,
			namespaces:  make(map[string]map[string]string),
			allMessages: make(map[string]string),
		}
		b.locales[locale] = set
	}
	if _, dup := set.namespaces[namespace]; dup {
		return fmt.Errorf("catalog %s: namespace %q already loaded for locale %q", file, namespace, locale)
	}

	group := make(map[string]string, len(doc.Messages))
	for key, value := range doc.Messages {
		key = strings.TrimSpace(key)
		if key == "" {
			return fmt.Errorf("catalog %s: blank message key", file)
		}
		if strings.HasPrefix(key, "core.") && namespace != "core" {
			return fmt.Errorf("catalog %s: key %q belongs to the core namespace", file, key)
		}
		if _, dup := set.allMessages[key]; dup {
			return fmt.Errorf("catalog %s: key %q already defined for locale %q", file, key, locale)
		}
		group[key] = value
		set.allMessages[key] = value
	}
	set.namespaces[namespace] = group
	return nil
}

// register publishes every message to the x/text default catalog. Each
// locale is also registered under its bare language tag so a request for
// pt matches the pt-BR catalog.
func (b *Bundle) register() {
	for _, locale := range b.Locales() {
		set := b.locales[locale]
		tags := []language.Tag{set.tag}
		if bare, ok := bareTag(set.tag); ok {
			tags = append(tags, bare)
		}
		keys := make([]string, 0, len(set.allMessages))
		for key := range set.allMessages {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			for _, tag := range tags {
				message.SetString(tag, key, set.allMessages[key])
			}
		}
	}
}

func bareTag(tag language.Tag) (language.Tag, bool) {
	base, _ := tag.Base()
	name := base.String()
	if name == "" || name == "und" {
		return language.Tag{}, false
	}
	bare, err := language.Parse(name)
	if err != nil || bare == tag {
		return language.Tag{}, false
	}
	return bare, true
}

// Locales returns the loaded locale identifiers in sorted order.
func (b *Bundle) Locales() []string {
	if b == nil {
		return nil
	}
	out := make([]string, 0, len(b.locales))
	for locale := range b.locales {
		out = append(out, locale)
	}
	sort.Strings(out)
	return out
}

// Has reports whether the locale has at least one catalog.
func (b *Bundle) Has(locale string) bool {
	if b == nil {
		return false
	}
	_, ok := b.locales[strings.TrimSpace(locale)]
	return ok
}

// Messages returns a copy of every message defined for the locale, without
// fallback. Unknown locales yield an empty map.
func (b *Bundle) Messages(locale string) map[string]string {
	if b == nil {
		return map[string]string{}
	}
	set := b.locales[strings.TrimSpace(locale)]
	if set == nil {
		return map[string]string{}
	}
	return cloneMessages(set.allMessages)
}

// Lookup returns the message for key in the locale, falling back to the
// base locale when the locale does not define it.
func (b *Bundle) Lookup(locale, key string) (string, bool) {
	if b == nil {
		return "", false
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return "", false
	}
	locale = strings.TrimSpace(locale)
	if set := b.locales[locale]; set != nil {
		if value, ok := set.allMessages[key]; ok {
			return value, true
		}
	}
	if locale == BaseLocale {
		return "", false
	}
	if set := b.locales[BaseLocale]; set != nil {
		value, ok := set.allMessages[key]
		return value, ok
	}
	return "", false
}

// Namespaces returns the sorted namespace names defined for the locale.
func (b *Bundle) Namespaces(locale string) []string {
	if b == nil {
		return nil
	}
	set := b.locales[strings.TrimSpace(locale)]
	if set == nil {
		return nil
	}
	out := make([]string, 0, len(set.namespaces))
	for namespace := range set.namespaces {
		out = append(out, namespace)
	}
	sort.Strings(out)
	return out
}

// Namespace returns a copy of one namespace's messages for the locale.
func (b *Bundle) Namespace(locale, namespace string) map[string]string {
	if b == nil {
		return map[string]string{}
	}
	set := b.locales[strings.TrimSpace(locale)]
	if set == nil {
		return map[string]string{}
	}
	group, ok := set.namespaces[strings.TrimSpace(namespace)]
	if !ok {
		return map[string]string{}
	}
	return cloneMessages(group)
}

func cloneMessages(src map[string]string) map[string]string {
	out := make(map[string]string, len(src))
	for key, value := range src {
		out[key] = value
	}
	return out
}
