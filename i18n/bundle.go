// Package i18n provides the message catalog used for errors, warnings and help output.
package i18n

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/napalu/goargs/types"

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
)

// Bundle holds translations per language and the printers used to format them.
// The English translations are the reference set: every other language must provide exactly the same keys.
type Bundle struct {
	mu           sync.RWMutex
	baseLang     language.Tag
	currentLang  language.Tag
	translations map[language.Tag]map[string]string
	catalog      *catalog.Builder
	printers     map[language.Tag]*message.Printer
}

var defaultBundle *Bundle

func init() {
	var err error
	defaultBundle, err = NewBundleWithFS(defaultLocales, "locales")
	if err != nil {
		panic("failed to load embedded locales: " + err.Error())
	}
}

// Default returns the process-wide bundle loaded from the embedded locales
func Default() *Bundle {
	return defaultBundle
}

// NewBundle returns a fresh bundle loaded from the embedded locales
func NewBundle() (*Bundle, error) {
	return NewBundleWithFS(defaultLocales, "locales")
}

// NewBundleWithFS loads every <lang>.json file found under dirPrefix in fs
func NewBundleWithFS(fs embed.FS, dirPrefix string) (*Bundle, error) {
	b := &Bundle{
		baseLang:     language.English,
		currentLang:  language.English,
		translations: make(map[language.Tag]map[string]string),
		catalog:      catalog.NewBuilder(),
		printers:     make(map[language.Tag]*message.Printer),
	}

	if err := b.loadEmbeddedWithFS(fs, dirPrefix); err != nil {
		return nil, err
	}

	if _, exists := b.translations[b.baseLang]; !exists {
		return nil, fmt.Errorf("%w: %s", ErrDefaultLanguageTranslationsMissing, b.baseLang)
	}

	return b, nil
}

// T returns the translation for the given key in the current language
func (b *Bundle) T(key string, args ...any) string {
	return b.TL(b.Language(), key, args...)
}

// TL returns the translation for the given language and key. Unknown languages fall back to English and
// unknown keys are returned verbatim.
func (b *Bundle) TL(lang language.Tag, key string, args ...any) string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	p, exists := b.printers[lang]
	if !exists || !b.hasKey(lang, key) {
		p = b.printers[b.baseLang]
	}
	if p == nil || !b.hasKey(b.baseLang, key) {
		return key
	}

	return p.Sprintf(key, args...)
}

// AddLanguage adds a new language to the bundle or merges translations into an existing one
func (b *Bundle) AddLanguage(lang language.Tag, translations map[string]string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	original := b.translations[lang]
	merged := make(map[string]string, len(original)+len(translations))
	for k, v := range original {
		merged[k] = v
	}
	for k, v := range translations {
		merged[k] = v
	}
	b.translations[lang] = merged

	if lang != b.baseLang && original == nil {
		if errs := b.validateLanguage(lang); len(errs) > 0 {
			delete(b.translations, lang)
			return fmt.Errorf("%w: %s: %v", ErrInvalidTranslations, lang, errs)
		}
	}

	for key, value := range translations {
		if err := b.catalog.SetString(lang, key, value); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrFailedToSetString, key, err)
		}
	}

	b.printers[lang] = message.NewPrinter(lang, message.Catalog(b.catalog))

	return nil
}

// SetLanguage selects the language used by T. Unsupported languages are matched to the closest supported one.
func (b *Bundle) SetLanguage(lang language.Tag) {
	b.mu.Lock()
	defer b.mu.Unlock()

	supported := make([]language.Tag, 0, len(b.translations))
	supported = append(supported, b.baseLang)
	for l := range b.translations {
		if l != b.baseLang {
			supported = append(supported, l)
		}
	}
	_, idx, _ := language.NewMatcher(supported).Match(lang)
	b.currentLang = supported[idx]
}

// Language returns the language currently used by T
func (b *Bundle) Language() language.Tag {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.currentLang
}

// HasLanguage checks if a language is supported
func (b *Bundle) HasLanguage(lang language.Tag) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, exists := b.translations[lang]

	return exists
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

// HasKey checks if a key exists in a language
func (b *Bundle) HasKey(lang language.Tag, key string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.hasKey(lang, key)
}

func (b *Bundle) hasKey(lang language.Tag, key string) bool {
	translations, exists := b.translations[lang]
	if !exists {
		return false
	}
	_, exists = translations[key]

	return exists
}

func (b *Bundle) loadEmbeddedWithFS(fs embed.FS, dirPrefix string) error {
	entries, err := fs.ReadDir(dirPrefix)
	if err != nil {
		return err
	}

	// the base language must be loaded first so the others can be validated against it
	others := make([]types.KeyValue[language.Tag, string], 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		parsedLang, err := language.Parse(strings.TrimSuffix(entry.Name(), ".json"))
		if err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidLanguage, entry.Name())
		}
		file := path.Join(dirPrefix, entry.Name())
		if parsedLang != b.baseLang {
			others = append(others, types.KeyValue[language.Tag, string]{Key: parsedLang, Value: file})
			continue
		}
		if err := b.processLangFile(fs, parsedLang, file); err != nil {
			return err
		}
	}

	for _, other := range others {
		if err := b.processLangFile(fs, other.Key, other.Value); err != nil {
			return err
		}
	}

	return nil
}

func (b *Bundle) processLangFile(fs embed.FS, lang language.Tag, file string) error {
	data, err := fs.ReadFile(file)
	if err != nil {
		return err
	}

	var translations map[string]string
	if err := json.Unmarshal(data, &translations); err != nil {
		return err
	}

	return b.AddLanguage(lang, translations)
}

func (b *Bundle) validateLanguage(lang language.Tag) []error {
	var errs []error

	translations := b.translations[lang]
	if len(translations) == 0 {
		return []error{fmt.Errorf("%w: %s", ErrEmptyTranslations, lang)}
	}

	base, exists := b.translations[b.baseLang]
	if !exists {
		return []error{fmt.Errorf("%w: %s", ErrLanguageNotFound, b.baseLang)}
	}
	for key := range base {
		if _, exists := translations[key]; !exists {
			errs = append(errs, fmt.Errorf("%w: %s: %q", ErrMissingKey, lang, key))
		}
	}
	for key := range translations {
		if _, exists := base[key]; !exists {
			errs = append(errs, fmt.Errorf("%w: %s: %q", ErrExtraKey, lang, key))
		}
	}

	return errs
}
