package aesthetics

import (
	"strings"
	"testing"
)

func TestDefaultCatalog_HasOneHundredStyles(t *testing.T) {
	catalog, err := DefaultCatalog()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	if catalog.Len() != 100 {
		t.Errorf("catalog size = %d, want 100", catalog.Len())
	}
}

func TestDefaultCatalog_EntriesAreComplete(t *testing.T) {
	catalog := MustDefault()

	for _, style := range catalog.All() {
		if style.Era == "" {
			t.Errorf("style %q has no era", style.Slug)
		}
		if style.Description == "" {
			t.Errorf("style %q has no description", style.Slug)
		}
		if len(style.Keywords) == 0 {
			t.Errorf("style %q has no keywords", style.Slug)
		}
		if len(style.Palette) == 0 {
			t.Errorf("style %q has no palette", style.Slug)
		}
		for _, color := range style.Palette {
			if !strings.HasPrefix(color, "#") {
				t.Errorf("style %q palette entry %q is not a hex color", style.Slug, color)
			}
		}
	}
}

func TestCatalog_Get(t *testing.T) {
	catalog := MustDefault()

	style, err := catalog.Get("art-deco")
	if err != nil {
		t.Fatalf("get art-deco: %v", err)
	}
	if style.Name != "Art Deco" {
		t.Errorf("name = %q, want Art Deco", style.Name)
	}
	if style.Label() != "Art Deco (1920s-1930s)" {
		t.Errorf("label = %q", style.Label())
	}

	if _, err := catalog.Get("nonexistent-style"); err == nil {
		t.Fatal("expected error for unknown slug")
	}
}

func TestLoad_RejectsDuplicateSlugs(t *testing.T) {
	data := []byte(`styles:
  - slug: twin
    name: Twin One
  - slug: twin
    name: Twin Two
`)
	if _, err := Load(data); err == nil {
		t.Fatal("expected duplicate slug error")
	}
}

func TestLoad_RejectsMissingSlug(t *testing.T) {
	data := []byte(`styles:
  - name: Anonymous
`)
	if _, err := Load(data); err == nil {
		t.Fatal("expected missing slug error")
	}
}

func TestLoad_RejectsEmptyCatalog(t *testing.T) {
	if _, err := Load([]byte("styles: []\n")); err == nil {
		t.Fatal("expected empty catalog error")
	}
}

func TestCatalog_AllReturnsCopy(t *testing.T) {
	catalog := MustDefault()

	all := catalog.All()
	all[0].Name = "mutated"

	again, err := catalog.Get(all[0].Slug)
	if err != nil {
		t.Fatal(err)
	}
	if again.Name == "mutated" {
		t.Error("All leaked internal state")
	}
}
