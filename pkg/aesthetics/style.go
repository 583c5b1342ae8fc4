// Package aesthetics ships a catalog of one hundred named visual design
// styles, searchable by slug, name, or keyword, with an interactive picker
// and a bridge into the design-brief template.
package aesthetics

import "strings"

// Style is one entry in the catalog.
type Style struct {
	Slug        string   `yaml:"slug"`
	Name        string   `yaml:"name"`
	Era         string   `yaml:"era"`
	Keywords    []string `yaml:"keywords"`
	Palette     []string `yaml:"palette"`
	Description string   `yaml:"description"`
}

// Label is the display form used in listings and the interactive picker.
func (s Style) Label() string {
	if s.Era == "" {
		return s.Name
	}
	return s.Name + " (" + s.Era + ")"
}

// matches reports whether the lowercase query matches the style's slug,
// name, or any keyword. prefix reports a prefix hit on the slug or name,
// which sorts ahead of substring hits.
func (s Style) matches(query string) (match, prefix bool) {
	slug := strings.ToLower(s.Slug)
	name := strings.ToLower(s.Name)

	if strings.HasPrefix(slug, query) || strings.HasPrefix(name, query) {
		return true, true
	}
	if strings.Contains(slug, query) || strings.Contains(name, query) {
		return true, false
	}
	for _, kw := range s.Keywords {
		if strings.Contains(strings.ToLower(kw), query) {
			return true, false
		}
	}
	return false, false
}
