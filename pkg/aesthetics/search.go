package aesthetics

import (
	"sort"
	"strings"
)

// Search returns styles matching query against slug, name, and keywords.
// Prefix matches on slug or name rank ahead of substring and keyword
// matches; within each rank results sort by slug. A limit of zero or less
// means no limit. An empty query returns nil.
func (c *Catalog) Search(query string, limit int) []Style {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	type hit struct {
		style  Style
		prefix bool
	}

	var hits []hit
	for _, style := range c.styles {
		if match, prefix := style.matches(query); match {
			hits = append(hits, hit{style: style, prefix: prefix})
		}
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].prefix != hits[j].prefix {
			return hits[i].prefix
		}
		return hits[i].style.Slug < hits[j].style.Slug
	})

	if limit > 0 && len(hits) > limit {
		hits = hits[:limit]
	}

	out := make([]Style, len(hits))
	for i, h := range hits {
		out[i] = h.style
	}
	return out
}
