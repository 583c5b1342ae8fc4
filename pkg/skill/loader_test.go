package skill

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
)

func skillDoc(name, description string) []byte {
	return []byte("---\nname: " + name + "\ndescription: " + description + "\n---\n\n# " + name + "\n\nBody.\n")
}

func TestLoadFS_WalksSkillTree(t *testing.T) {
	fsys := fstest.MapFS{
		"skills/alpha/SKILL.md": {Data: skillDoc("alpha", "First.")},
		"skills/beta/SKILL.md":  {Data: skillDoc("beta", "Second.")},
		"skills/beta/notes.md":  {Data: []byte("ignored")},
	}

	set, err := LoadFS(fsys, "skills")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if diff := cmp.Diff([]string{"alpha", "beta"}, set.Names()); diff != "" {
		t.Errorf("names mismatch (-want +got):\n%s", diff)
	}

	sk, err := set.Get("beta")
	if err != nil {
		t.Fatalf("get beta: %v", err)
	}
	if sk.Description != "Second." {
		t.Errorf("description = %q", sk.Description)
	}
}

func TestLoadFS_DuplicateNamesFail(t *testing.T) {
	fsys := fstest.MapFS{
		"skills/one/SKILL.md": {Data: skillDoc("same", "One.")},
		"skills/two/SKILL.md": {Data: skillDoc("same", "Two.")},
	}

	_, err := LoadFS(fsys, "skills")
	if err == nil {
		t.Fatal("expected duplicate name error")
	}
	if !strings.Contains(err.Error(), "already loaded") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestSet_GetUnknown(t *testing.T) {
	set := NewSet()
	if _, err := set.Get("ghost"); err == nil {
		t.Fatal("expected error for unknown skill")
	}
}

func TestBuiltin_ShipsExpectedSkills(t *testing.T) {
	set, err := Builtin()
	if err != nil {
		t.Fatalf("builtin: %v", err)
	}

	want := []string{"code-review", "design-aesthetics", "expo-scaffold"}
	if diff := cmp.Diff(want, set.Names()); diff != "" {
		t.Errorf("builtin names mismatch (-want +got):\n%s", diff)
	}

	for _, sk := range set.All() {
		if sk.Description == "" {
			t.Errorf("builtin skill %q has no description", sk.Name)
		}
		if !strings.Contains(sk.Instructions, "## ") {
			t.Errorf("builtin skill %q has no sections", sk.Name)
		}
	}
}
