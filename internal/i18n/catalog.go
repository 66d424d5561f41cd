package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/goccy/go-yaml"
	"golang.org/x/text/language"
)

// BaseLocale is the canonical source locale; lookups for other locales
// fall back to it when a locale or key is missing.
const BaseLocale = "en-US"

//go:embed locales/*/*.yaml
var embeddedFS embed.FS

type catalogFile struct {
	Locale    string            `yaml:"locale"`
	Namespace string            `yaml:"namespace"`
	Messages  map[string]string `yaml:"messages"`
}

// Bundle holds the message catalogs of every embedded locale.
type Bundle struct {
	locales map[string]map[string]string
	tags    []language.Tag
	names   []string
	matcher language.Matcher
}

// LoadEmbedded loads the catalog files embedded in this package.
func LoadEmbedded() (*Bundle, error) {
	return LoadFromFS(embeddedFS)
}

// LoadFromFS loads catalog files from the provided filesystem.
func LoadFromFS(catalogFS fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(catalogFS, "locales/*/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files found")
	}
	sort.Strings(paths)

	bundle := &Bundle{locales: map[string]map[string]string{}}

	for _, path := range paths {
		data, err := fs.ReadFile(catalogFS, path)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", path, err)
		}

		var file catalogFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", path, err)
		}
		if err := bundle.addFile(path, file); err != nil {
			return nil, err
		}
	}

	if !bundle.HasLocale(BaseLocale) {
		return nil, fmt.Errorf("base locale %s is not defined in catalogs", BaseLocale)
	}

	if err := bundle.buildMatcher(); err != nil {
		return nil, err
	}

	return bundle, nil
}

func (b *Bundle) addFile(path string, file catalogFile) error {
	locale := strings.TrimSpace(file.Locale)
	if locale == "" {
		return fmt.Errorf("catalog %s: locale is required", path)
	}
	if file.Messages == nil {
		return fmt.Errorf("catalog %s: messages map is required", path)
	}

	messages, ok := b.locales[locale]
	if !ok {
		messages = map[string]string{}
		b.locales[locale] = messages
	}

	namespace := strings.TrimSpace(file.Namespace)
	for key, value := range file.Messages {
		trimmedKey := strings.TrimSpace(key)
		if trimmedKey == "" {
			return fmt.Errorf("catalog %s: message key cannot be blank", path)
		}
		if namespace != "" {
			trimmedKey = namespace + "." + trimmedKey
		}
		if _, exists := messages[trimmedKey]; exists {
			return fmt.Errorf("catalog %s: duplicate key %q in locale %q", path, trimmedKey, locale)
		}
		messages[trimmedKey] = value
	}

	return nil
}

func (b *Bundle) buildMatcher() error {
	names := b.Locales()

	// Base locale first so it wins ties and unknown requests.
	sort.SliceStable(names, func(i, j int) bool {
		return names[i] == BaseLocale && names[j] != BaseLocale
	})

	tags := make([]language.Tag, 0, len(names))
	for _, name := range names {
		tag, err := language.Parse(name)
		if err != nil {
			return fmt.Errorf("parse locale tag %q: %w", name, err)
		}
		tags = append(tags, tag)
	}

	b.names = names
	b.tags = tags
	b.matcher = language.NewMatcher(tags)
	return nil
}

// HasLocale reports whether the locale exists in this bundle.
func (b *Bundle) HasLocale(locale string) bool {
	_, ok := b.locales[strings.TrimSpace(locale)]
	return ok
}

// Locales returns all available locale identifiers, sorted.
func (b *Bundle) Locales() []string {
	out := make([]string, 0, len(b.locales))
	for locale := range b.locales {
		out = append(out, locale)
	}
	sort.Strings(out)
	return out
}

// Match negotiates the best available locale for an Accept-Language
// header value, falling back to the base locale.
func (b *Bundle) Match(acceptLanguage string) string {
	if strings.TrimSpace(acceptLanguage) == "" {
		return BaseLocale
	}
	_, index := language.MatchStrings(b.matcher, acceptLanguage)
	return b.names[index]
}

// Message returns one message value with base-locale fallback.
func (b *Bundle) Message(locale string, key string) (string, bool) {
	trimmedLocale := strings.TrimSpace(locale)
	trimmedKey := strings.TrimSpace(key)
	if trimmedKey == "" {
		return "", false
	}
	if messages, ok := b.locales[trimmedLocale]; ok {
		if value, exists := messages[trimmedKey]; exists {
			return value, true
		}
	}
	if trimmedLocale != BaseLocale {
		if messages, ok := b.locales[BaseLocale]; ok {
			value, exists := messages[trimmedKey]
			return value, exists
		}
	}
	return "", false
}

// Printer binds the bundle to one negotiated locale.
func (b *Bundle) Printer(locale string) *Printer {
	return &Printer{
		bundle: b,
		locale: strings.TrimSpace(locale),
	}
}

// Printer looks messages up in a single locale. It satisfies the
// translator capability the presentation layer expects.
type Printer struct {
	bundle *Bundle
	locale string
}

func (p *Printer) Locale() string {
	return p.locale
}

func (p *Printer) Message(key string) (string, bool) {
	return p.bundle.Message(p.locale, key)
}
