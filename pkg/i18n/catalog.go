package i18n

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Catalog is a yaml backed Translator. The file maps locale to key to string:
//
//	en:
//	  FormGuard.RECAPTCHAv3: "Recaptcha v3"
type Catalog struct {
	locale   string
	fallback string
	entries  map[string]map[string]string
}

func LoadCatalogFile(path, locale string) (*Catalog, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog %s: %w", path, err)
	}
	defer f.Close()
	return LoadCatalog(f, locale)
}

func LoadCatalog(r io.Reader, locale string) (*Catalog, error) {
	entries := make(map[string]map[string]string)
	if err := yaml.NewDecoder(r).Decode(&entries); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	return &Catalog{
		locale:   strings.ToLower(locale),
		fallback: baseLocale(locale),
		entries:  lowerKeys(entries),
	}, nil
}

// T looks the key up in the exact locale first ("en_au"), then in its base
// language ("en").
func (c *Catalog) T(key, fallback string) string {
	if v, ok := c.entries[c.locale][key]; ok && v != "" {
		return v
	}
	if v, ok := c.entries[c.fallback][key]; ok && v != "" {
		return v
	}
	return fallback
}

func (c *Catalog) Locale() string {
	return c.locale
}

func baseLocale(locale string) string {
	locale = strings.ToLower(locale)
	if i := strings.IndexAny(locale, "_-"); i > 0 {
		return locale[:i]
	}
	return locale
}

func lowerKeys(in map[string]map[string]string) map[string]map[string]string {
	out := make(map[string]map[string]string, len(in))
	for locale, keys := range in {
		out[strings.ToLower(locale)] = keys
	}
	return out
}
