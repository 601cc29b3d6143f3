package domain

import (
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// FallbackColor is used for any code missing from the catalog.
const FallbackColor = "#999999"

// Language holds the display metadata for a target-language code.
type Language struct {
	Code  string `yaml:"code" json:"code"`
	Name  string `yaml:"name" json:"name"`
	Color string `yaml:"color" json:"color"`
}

// Catalog is a finite code -> metadata mapping with a defined fallback.
type Catalog struct {
	byCode map[string]Language
	order  []string
}

// NewCatalog builds a catalog. Later entries override earlier ones with the same code.
func NewCatalog(langs ...Language) Catalog {
	c := Catalog{byCode: make(map[string]Language, len(langs))}
	for _, l := range langs {
		if _, ok := c.byCode[l.Code]; !ok {
			c.order = append(c.order, l.Code)
		}
		c.byCode[l.Code] = l
	}
	return c
}

// Lookup returns the metadata for code. Unknown codes resolve to the raw code
// as the name and FallbackColor.
func (c Catalog) Lookup(code string) Language {
	if l, ok := c.byCode[code]; ok {
		return l
	}
	return Language{Code: code, Name: code, Color: FallbackColor}
}

// Known reports whether code has an explicit catalog entry.
func (c Catalog) Known(code string) bool {
	_, ok := c.byCode[code]
	return ok
}

// Languages returns the catalog entries in declaration order.
func (c Catalog) Languages() []Language {
	out := make([]Language, 0, len(c.order))
	for _, code := range c.order {
		out = append(out, c.byCode[code])
	}
	return out
}

// Validate checks that every entry has a well-formed BCP 47 code, a name and
// a #RRGGBB color.
func (c Catalog) Validate() error {
	for _, code := range c.order {
		l := c.byCode[code]
		if _, err := language.Parse(code); err != nil {
			return fmt.Errorf("language %q: invalid code: %w", code, err)
		}
		if strings.TrimSpace(l.Name) == "" {
			return fmt.Errorf("language %q: missing name", code)
		}
		if !ValidColor(l.Color) {
			return fmt.Errorf("language %q: invalid color %q", code, l.Color)
		}
	}
	return nil
}

// UnknownCodes returns the distinct codes used by records that have no catalog
// entry, in order of first appearance.
func (c Catalog) UnknownCodes(records []PhraseRecord) []string {
	var unknown []string
	seen := make(map[string]bool)
	for _, r := range records {
		if c.Known(r.Language) || seen[r.Language] {
			continue
		}
		seen[r.Language] = true
		unknown = append(unknown, r.Language)
	}
	return unknown
}

// ValidColor reports whether s is a #RRGGBB hex color.
func ValidColor(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	_, err := hex.DecodeString(s[1:])
	return err == nil
}
