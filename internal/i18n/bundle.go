package i18n

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

// Locale is a supported site language.
type Locale string

const (
	English Locale = "en"
	Dutch   Locale = "nl"
)

// Supported lists the site languages; the first is the default.
var Supported = []Locale{English, Dutch}

//go:embed locales/*.json
var localeFiles embed.FS

var ErrIncompleteLocale = errors.New("incomplete locale table")

// ParseLocale accepts "en", "NL", "nl-BE" and the like.
func ParseLocale(s string) (Locale, bool) {
	base, _, _ := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "-")
	for _, l := range Supported {
		if string(l) == base {
			return l, true
		}
	}
	return "", false
}

// Bundle holds one complete table per supported locale.
type Bundle struct {
	tables map[Locale]*[keyCount]string
}

// Load reads the embedded locale tables.
func Load() (*Bundle, error) {
	sub, err := fs.Sub(localeFiles, "locales")
	if err != nil {
		return nil, err
	}
	return LoadFS(sub)
}

// MustLoad is Load for package-level initialisation.
func MustLoad() *Bundle {
	b, err := Load()
	if err != nil {
		panic(err)
	}
	return b
}

// LoadFS reads <locale>.json for every supported locale from fsys.
// It fails unless each table defines exactly the known key set, so that
// lookups never need a missing-key fallback.
func LoadFS(fsys fs.FS) (*Bundle, error) {
	b := &Bundle{tables: make(map[Locale]*[keyCount]string, len(Supported))}

	for _, locale := range Supported {
		raw, err := fs.ReadFile(fsys, string(locale)+".json")
		if err != nil {
			return nil, fmt.Errorf("read %s table: %w", locale, err)
		}

		var entries map[string]string
		if err := json.Unmarshal(raw, &entries); err != nil {
			return nil, fmt.Errorf("decode %s table: %w", locale, err)
		}

		table, err := buildTable(entries)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", locale, err)
		}
		b.tables[locale] = table
	}

	return b, nil
}

func buildTable(entries map[string]string) (*[keyCount]string, error) {
	var table [keyCount]string
	var missing, unknown []string

	for name, text := range entries {
		k, ok := ParseKey(name)
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		table[k] = text
	}

	for _, k := range Keys() {
		if strings.TrimSpace(table[k]) == "" {
			missing = append(missing, k.String())
		}
	}

	if len(missing) > 0 || len(unknown) > 0 {
		sort.Strings(missing)
		sort.Strings(unknown)
		return nil, fmt.Errorf("%w: missing %v, unknown %v", ErrIncompleteLocale, missing, unknown)
	}

	return &table, nil
}

// T returns the text for k. Unsupported locales read the English table.
func (b *Bundle) T(locale Locale, k Key) string {
	table, ok := b.tables[locale]
	if !ok {
		table = b.tables[English]
	}
	if k < 0 || k >= keyCount {
		return k.String()
	}
	return table[k]
}

// Table returns the whole table for locale keyed by dotted name.
func (b *Bundle) Table(locale Locale) (map[string]string, bool) {
	table, ok := b.tables[locale]
	if !ok {
		return nil, false
	}

	out := make(map[string]string, keyCount)
	for _, k := range Keys() {
		out[k.String()] = table[k]
	}
	return out, true
}
