package engine

import (
	"strings"
	"testing"
	"testing/fstest"
)

func TestNew_RequiresLoader(t *testing.T) {
	if _, err := New(); err == nil {
		t.Fatal("expected error when no loader is configured")
	}
}

func TestRenderString_SubstitutesContext(t *testing.T) {
	e, err := New(WithFS(fstest.MapFS{}))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	got, err := e.RenderString("Hello {{ name }}", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "Hello Ada" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestRenderTemplate_AppendsExtension(t *testing.T) {
	fsys := fstest.MapFS{
		"docs/note.tpl": {Data: []byte("note for {{ who }}")},
	}

	e, err := New(WithFS(fsys))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	got, err := e.RenderTemplate("docs/note", map[string]any{"who": "review"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "note for review" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestRenderTemplate_LoopsOverSlices(t *testing.T) {
	fsys := fstest.MapFS{
		"list.tpl": {Data: []byte("{% for item in items %}- {{ item }}\n{% endfor %}")},
	}

	e, err := New(WithFS(fsys))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	got, err := e.RenderTemplate("list", map[string]any{"items": []string{"a", "b"}})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "- a\n- b\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestGlobals_AvailableToTemplates(t *testing.T) {
	e, err := New(
		WithFS(fstest.MapFS{}),
		WithGlobals(map[string]any{"tool": "skillgen"}),
	)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	got, err := e.RenderString("by {{ tool }}", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "by skillgen" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestSlugFilter(t *testing.T) {
	e, err := New(WithFS(fstest.MapFS{}))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	got, err := e.RenderString(`{{ "Art Deco / Machine Age" | slug }}`, nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "art-deco-machine-age" {
		t.Fatalf("unexpected slug %q", got)
	}
}

func TestRenderString_ParseErrorSurfaced(t *testing.T) {
	e, err := New(WithFS(fstest.MapFS{}))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	_, err = e.RenderString("{% for %}", nil)
	if err == nil || !strings.Contains(err.Error(), "engine:") {
		t.Fatalf("expected wrapped parse error, got %v", err)
	}
}
