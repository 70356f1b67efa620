// Package catalog loads the embedded translation files into an x/text
// message catalog.
//
// Files live at locales/<locale>/<namespace>.yaml. Every locale must define
// exactly the keys of the base locale so a missing translation fails at
// startup instead of rendering a raw key.
package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"
	"sync"

	"github.com/knadh/koanf/parsers/yaml"
	"golang.org/x/text/language"
	"golang.org/x/text/message/catalog"
)

// BaseLocale is the locale every other locale is checked against.
const BaseLocale = "en"

//go:embed locales/*/*.yaml
var embedded embed.FS

// Bundle is a validated set of translations.
type Bundle struct {
	messages map[string]map[string]string
	builder  *catalog.Builder
}

var loadEmbedded = sync.OnceValue(func() *Bundle {
	bundle, err := Load(embedded)
	if err != nil {
		panic(fmt.Sprintf("load embedded catalogs: %v", err))
	}
	return bundle
})

// Embedded returns the catalogs compiled into the binary.
func Embedded() *Bundle {
	return loadEmbedded()
}

// Load reads every locales/*/*.yaml file in fsys.
func Load(fsys fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(fsys, "locales/*/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob catalogs: %w", err)
	}
	slices.Sort(paths)

	messages := map[string]map[string]string{}
	for _, name := range paths {
		locale := path.Base(path.Dir(name))
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		file, err := parseFile(data)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		if file.locale != locale {
			return nil, fmt.Errorf("%s: locale %q does not match directory %q", name, file.locale, locale)
		}
		if namespace := strings.TrimSuffix(path.Base(name), ".yaml"); file.namespace != namespace {
			return nil, fmt.Errorf("%s: namespace %q does not match file name %q", name, file.namespace, namespace)
		}
		if messages[locale] == nil {
			messages[locale] = map[string]string{}
		}
		for key, text := range file.messages {
			if _, dup := messages[locale][key]; dup {
				return nil, fmt.Errorf("%s: key %q already defined for %s", name, key, locale)
			}
			messages[locale][key] = text
		}
	}
	if _, ok := messages[BaseLocale]; !ok {
		return nil, fmt.Errorf("base locale %s has no catalog", BaseLocale)
	}
	if err := checkParity(messages); err != nil {
		return nil, err
	}

	builder := catalog.NewBuilder(catalog.Fallback(language.MustParse(BaseLocale)))
	for locale, entries := range messages {
		tag, err := language.Parse(locale)
		if err != nil {
			return nil, fmt.Errorf("locale %q: %w", locale, err)
		}
		for key, text := range entries {
			if err := builder.SetString(tag, key, text); err != nil {
				return nil, fmt.Errorf("set %s/%s: %w", locale, key, err)
			}
		}
	}
	return &Bundle{messages: messages, builder: builder}, nil
}

func checkParity(messages map[string]map[string]string) error {
	base := messages[BaseLocale]
	for locale, entries := range messages {
		if locale == BaseLocale {
			continue
		}
		for key := range base {
			if _, ok := entries[key]; !ok {
				return fmt.Errorf("locale %s is missing key %q", locale, key)
			}
		}
		for key := range entries {
			if _, ok := base[key]; !ok {
				return fmt.Errorf("locale %s defines unknown key %q", locale, key)
			}
		}
	}
	return nil
}

// Catalog exposes the bundle for message.Catalog.
func (b *Bundle) Catalog() catalog.Catalog {
	return b.builder
}

// Locales returns the loaded locale names, sorted.
func (b *Bundle) Locales() []string {
	out := make([]string, 0, len(b.messages))
	for locale := range b.messages {
		out = append(out, locale)
	}
	slices.Sort(out)
	return out
}

// Keys returns the sorted message keys defined for locale.
func (b *Bundle) Keys(locale string) []string {
	entries := b.messages[locale]
	out := make([]string, 0, len(entries))
	for key := range entries {
		out = append(out, key)
	}
	slices.Sort(out)
	return out
}

// Lookup returns the raw text for key, falling back to the base locale.
func (b *Bundle) Lookup(locale, key string) (string, bool) {
	if text, ok := b.messages[locale][key]; ok {
		return text, true
	}
	text, ok := b.messages[BaseLocale][key]
	return text, ok
}

type file struct {
	locale    string
	namespace string
	messages  map[string]string
}

func parseFile(data []byte) (file, error) {
	raw, err := yaml.Parser().Unmarshal(data)
	if err != nil {
		return file{}, err
	}
	out := file{messages: map[string]string{}}
	out.locale, _ = raw["locale"].(string)
	out.namespace, _ = raw["namespace"].(string)
	if out.locale == "" || out.namespace == "" {
		return file{}, fmt.Errorf("locale and namespace are required")
	}
	entries, ok := raw["messages"].(map[string]any)
	if !ok || len(entries) == 0 {
		return file{}, fmt.Errorf("messages are required")
	}
	for key, value := range entries {
		text, ok := value.(string)
		if !ok {
			return file{}, fmt.Errorf("message %q is %T, want string", key, value)
		}
		if key = strings.TrimSpace(key); key == "" {
			return file{}, fmt.Errorf("blank message key")
		}
		out.messages[key] = text
	}
	return out, nil
}
