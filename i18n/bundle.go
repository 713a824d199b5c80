// Package i18n provides translated messages for errors and usage output.
//
// A Bundle holds one flat key/value table per language. The default bundle is built from
// the JSON locales embedded in this package (en, de) and is shared read-only; use
// NewBundle to obtain a private copy which can be extended with AddLanguage.
package i18n

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

//go:embed locales/*.json
var defaultLocales embed.FS

var (
	ErrInvalidLanguage                    = errors.New("invalid language in filename")
	ErrDefaultLanguageTranslationsMissing = errors.New("default language translations missing")
	ErrInvalidTranslations                = errors.New("invalid translations")
	ErrEmptyTranslations                  = errors.New("empty translations")
	ErrFailedToSetString                  = errors.New("failed to set string")
	ErrLanguageNotFound                   = errors.New("language not found")
	ErrExtraKey                           = errors.New("extra key")
	ErrMissingKey                         = errors.New("missing key")
	ErrBundleImmutable                    = errors.New("bundle is immutable and cannot be modified")
)

type Bundle struct {
	mu           sync.RWMutex
	defaultLang  language.Tag
	translations map[language.Tag]map[string]string
	catalog      *catalog.Builder
	printers     map[language.Tag]*message.Printer
	immutable    bool
}

var (
	defaultBundleOnce sync.Once
	defaultBundle     *Bundle
)

// Default returns the shared bundle built from the embedded locales. It cannot be modified.
func Default() *Bundle {
	defaultBundleOnce.Do(func() {
		b, err := NewBundle()
		if err != nil {
			panic("failed to load embedded locales: " + err.Error())
		}
		b.immutable = true
		defaultBundle = b
	})

	return defaultBundle
}

// NewBundle returns a modifiable bundle initialised with the embedded locales
func NewBundle() (*Bundle, error) {
	return NewBundleWithFS(defaultLocales, "locales")
}

// NewEmptyBundle returns a bundle without any translations, English being the default language
func NewEmptyBundle() *Bundle {
	return &Bundle{
		defaultLang:  language.English,
		translations: make(map[language.Tag]map[string]string),
		catalog:      catalog.NewBuilder(),
		printers:     make(map[language.Tag]*message.Printer),
	}
}

// NewBundleWithFS loads every <lang>.json file found in dir. The default language is
// loaded first so that the other languages can be validated against it.
func NewBundleWithFS(fsys fs.FS, dir string) (*Bundle, error) {
	b := NewEmptyBundle()

	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, err
	}

	var deferred []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		lang, err := language.Parse(strings.TrimSuffix(entry.Name(), ".json"))
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidLanguage, entry.Name())
		}
		if lang != b.defaultLang {
			deferred = append(deferred, entry.Name())
			continue
		}
		if err := b.loadFile(fsys, lang, path.Join(dir, entry.Name())); err != nil {
			return nil, err
		}
	}

	if _, ok := b.translations[b.defaultLang]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrDefaultLanguageTranslationsMissing, b.defaultLang)
	}

	for _, name := range deferred {
		lang := language.MustParse(strings.TrimSuffix(name, ".json"))
		if err := b.loadFile(fsys, lang, path.Join(dir, name)); err != nil {
			return nil, err
		}
	}

	return b, nil
}

// T returns the translation for key in the default language, formatted with args
func (b *Bundle) T(key string, args ...interface{}) string {
	return b.TL(b.DefaultLanguage(), key, args...)
}

// TL returns the translation for key in lang, formatted with args. Unknown languages
// fall back to the default language; unknown keys are returned as-is.
func (b *Bundle) TL(lang language.Tag, key string, args ...interface{}) string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if _, ok := b.translations[lang][key]; !ok {
		lang = b.defaultLang
		if _, ok := b.translations[lang][key]; !ok {
			return key
		}
	}

	return b.printers[lang].Sprintf(key, args...)
}

// AddLanguage adds translations for lang, merging with any existing ones. A new
// non-default language must provide exactly the keys of the default language.
func (b *Bundle) AddLanguage(lang language.Tag, translations map[string]string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.immutable {
		return ErrBundleImmutable
	}
	if len(translations) == 0 {
		return fmt.Errorf("%w: %s", ErrEmptyTranslations, lang)
	}

	original, existed := b.translations[lang]
	merged := make(map[string]string, len(original)+len(translations))
	for k, v := range original {
		merged[k] = v
	}
	for k, v := range translations {
		merged[k] = v
	}

	if !existed && lang != b.defaultLang {
		if errs := b.validate(lang, merged); len(errs) > 0 {
			return fmt.Errorf("%w: %s: %v", ErrInvalidTranslations, lang, errs)
		}
	}

	for key, value := range translations {
		if err := b.catalog.SetString(lang, key, value); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrFailedToSetString, key, err)
		}
	}

	b.translations[lang] = merged
	b.printers[lang] = message.NewPrinter(lang, message.Catalog(b.catalog))

	return nil
}

// HasLanguage checks if a language is supported
func (b *Bundle) HasLanguage(lang language.Tag) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.translations[lang]
	return ok
}

// HasKey checks if a key exists in a language
func (b *Bundle) HasKey(lang language.Tag, key string) bool {
	_, ok := b.lookup(lang, key)
	return ok
}

// Languages returns the supported languages sorted by tag
func (b *Bundle) Languages() []language.Tag {
	b.mu.RLock()
	defer b.mu.RUnlock()

	langs := make([]language.Tag, 0, len(b.translations))
	for lang := range b.translations {
		langs = append(langs, lang)
	}
	sort.Slice(langs, func(i, j int) bool {
		return langs[i].String() < langs[j].String()
	})

	return langs
}

// Keys returns the keys of lang sorted alphabetically
func (b *Bundle) Keys(lang language.Tag) []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	keys := make([]string, 0, len(b.translations[lang]))
	for k := range b.translations[lang] {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// SetDefaultLanguage sets the fallback language. It fails when lang has no translations.
func (b *Bundle) SetDefaultLanguage(lang language.Tag) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.immutable {
		return ErrBundleImmutable
	}
	if _, ok := b.translations[lang]; !ok {
		return fmt.Errorf("%w: %s", ErrLanguageNotFound, lang)
	}
	b.defaultLang = lang

	return nil
}

// DefaultLanguage returns the fallback language
func (b *Bundle) DefaultLanguage() language.Tag {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.defaultLang
}

func (b *Bundle) lookup(lang language.Tag, key string) (string, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	msg, ok := b.translations[lang][key]
	return msg, ok
}

func (b *Bundle) loadFile(fsys fs.FS, lang language.Tag, name string) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return err
	}

	var translations map[string]string
	if err := json.Unmarshal(data, &translations); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidTranslations, name, err)
	}

	return b.AddLanguage(lang, translations)
}

func (b *Bundle) validate(lang language.Tag, translations map[string]string) []error {
	var errs []error

	defaults := b.translations[b.defaultLang]
	for key := range defaults {
		if _, ok := translations[key]; !ok {
			errs = append(errs, fmt.Errorf("%w: %s: %q", ErrMissingKey, lang, key))
		}
	}
	for key := range translations {
		if _, ok := defaults[key]; !ok {
			errs = append(errs, fmt.Errorf("%w: %s: %q", ErrExtraKey, lang, key))
		}
	}
	sort.Slice(errs, func(i, j int) bool { return errs[i].Error() < errs[j].Error() })

	return errs
}
