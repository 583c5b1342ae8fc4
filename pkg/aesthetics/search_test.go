package aesthetics

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func searchSlugs(t *testing.T, query string, limit int) []string {
	t.Helper()
	catalog := MustDefault()

	results := catalog.Search(query, limit)
	slugs := make([]string, len(results))
	for i, style := range results {
		slugs[i] = style.Slug
	}
	return slugs
}

func TestSearch_PrefixHitsRankFirst(t *testing.T) {
	slugs := searchSlugs(t, "art", 0)

	want := []string{"art-deco", "art-nouveau"}
	if len(slugs) < 2 {
		t.Fatalf("expected at least two results, got %v", slugs)
	}
	if diff := cmp.Diff(want, slugs[:2]); diff != "" {
		t.Errorf("prefix hits mismatch (-want +got):\n%s", diff)
	}

	// Substring hits like pop-art follow the prefix block.
	var sawPopArt bool
	for _, slug := range slugs[2:] {
		if slug == "pop-art" {
			sawPopArt = true
		}
	}
	if !sawPopArt {
		t.Errorf("expected pop-art among substring hits, got %v", slugs)
	}
}

func TestSearch_MatchesKeywords(t *testing.T) {
	slugs := searchSlugs(t, "phosphor", 0)

	if diff := cmp.Diff([]string{"terminal"}, slugs); diff != "" {
		t.Errorf("keyword search mismatch (-want +got):\n%s", diff)
	}
}

func TestSearch_CaseInsensitive(t *testing.T) {
	slugs := searchSlugs(t, "BRUTAL", 0)

	if len(slugs) == 0 || slugs[0] != "brutalism" {
		t.Errorf("expected brutalism first, got %v", slugs)
	}

	var sawNeo bool
	for _, slug := range slugs {
		if slug == "neo-brutalism" {
			sawNeo = true
		}
	}
	if !sawNeo {
		t.Errorf("expected neo-brutalism in results, got %v", slugs)
	}
}

func TestSearch_HonorsLimit(t *testing.T) {
	slugs := searchSlugs(t, "a", 5)
	if len(slugs) != 5 {
		t.Errorf("limit ignored, got %d results", len(slugs))
	}
}

func TestSearch_EmptyQuery(t *testing.T) {
	if slugs := searchSlugs(t, "   ", 0); slugs != nil && len(slugs) != 0 {
		t.Errorf("expected no results for blank query, got %v", slugs)
	}
}

func TestSearch_NoMatch(t *testing.T) {
	if slugs := searchSlugs(t, "zzzz-not-a-style", 0); len(slugs) != 0 {
		t.Errorf("expected no results, got %v", slugs)
	}
}
