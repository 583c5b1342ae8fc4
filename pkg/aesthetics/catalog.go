package aesthetics

import (
	_ "embed"
	"fmt"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed styles.yaml
var stylesYAML []byte

// Catalog is an immutable collection of styles indexed by slug.
type Catalog struct {
	styles []Style
	bySlug map[string]int
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// DefaultCatalog returns the embedded catalog, loaded once per process.
func DefaultCatalog() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = Load(stylesYAML)
	})
	if defaultErr != nil {
		return nil, fmt.Errorf("aesthetics: load embedded catalog: %w", defaultErr)
	}
	return defaultCatalog, nil
}

// MustDefault is DefaultCatalog that panics on failure. The embedded data is
// validated by tests, so failures indicate a broken build.
func MustDefault() *Catalog {
	catalog, err := DefaultCatalog()
	if err != nil {
		panic(err)
	}
	return catalog
}

// Load parses catalog data, validating that every style carries a unique
// non-empty slug and a name.
func Load(data []byte) (*Catalog, error) {
	var doc struct {
		Styles []Style `yaml:"styles"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("aesthetics: parse catalog: %w", err)
	}
	if len(doc.Styles) == 0 {
		return nil, fmt.Errorf("aesthetics: catalog is empty")
	}

	bySlug := make(map[string]int, len(doc.Styles))
	for i, style := range doc.Styles {
		if style.Slug == "" {
			return nil, fmt.Errorf("aesthetics: style %d has no slug", i)
		}
		if style.Name == "" {
			return nil, fmt.Errorf("aesthetics: style %q has no name", style.Slug)
		}
		if _, exists := bySlug[style.Slug]; exists {
			return nil, fmt.Errorf("aesthetics: duplicate slug %q", style.Slug)
		}
		bySlug[style.Slug] = i
	}

	return &Catalog{styles: doc.Styles, bySlug: bySlug}, nil
}

// Get retrieves a style by slug.
func (c *Catalog) Get(slug string) (Style, error) {
	i, ok := c.bySlug[slug]
	if !ok {
		return Style{}, fmt.Errorf("aesthetics: style %q not found", slug)
	}
	return c.styles[i], nil
}

// Has reports whether a slug exists in the catalog.
func (c *Catalog) Has(slug string) bool {
	_, ok := c.bySlug[slug]
	return ok
}

// All returns every style in catalog order. The slice is a copy.
func (c *Catalog) All() []Style {
	out := make([]Style, len(c.styles))
	copy(out, c.styles)
	return out
}

// Slugs returns every slug, sorted.
func (c *Catalog) Slugs() []string {
	slugs := make([]string, 0, len(c.styles))
	for slug := range c.bySlug {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)
	return slugs
}

// Len reports the number of styles.
func (c *Catalog) Len() int {
	return len(c.styles)
}
