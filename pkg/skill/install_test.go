package skill

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDir_ProjectScope(t *testing.T) {
	dir, err := Dir(ToolClaude, ScopeProject, "/work/app")
	if err != nil {
		t.Fatalf("dir: %v", err)
	}
	want := filepath.Join("/work/app", ".claude", "skills")
	if dir != want {
		t.Errorf("dir = %q, want %q", dir, want)
	}
}

func TestDir_UnsupportedTool(t *testing.T) {
	if _, err := Dir(Tool("emacs"), ScopeProject, "."); err == nil {
		t.Fatal("expected error for unsupported tool")
	}
}

func TestTools_Sorted(t *testing.T) {
	want := []Tool{ToolClaude, ToolCodex, ToolCursor}
	if diff := cmp.Diff(want, Tools()); diff != "" {
		t.Errorf("tools mismatch (-want +got):\n%s", diff)
	}
}

func TestDetectTools(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, ".claude"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(root, ".cursor"), 0o755); err != nil {
		t.Fatal(err)
	}

	found := DetectTools(root)
	if diff := cmp.Diff([]Tool{ToolClaude, ToolCursor}, found); diff != "" {
		t.Errorf("detected tools mismatch (-want +got):\n%s", diff)
	}
}

func TestInstall_WritesSkillFile(t *testing.T) {
	root := t.TempDir()
	sk := &Skill{Name: "demo", Description: "Demo.", Instructions: "# Demo\n\nBody."}

	target, err := Install(sk, ToolClaude, ScopeProject, root, false)
	if err != nil {
		t.Fatalf("install: %v", err)
	}

	want := filepath.Join(root, ".claude", "skills", "demo", FileName)
	if target != want {
		t.Errorf("target = %q, want %q", target, want)
	}

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read installed skill: %v", err)
	}
	if !strings.Contains(string(data), "name: demo") {
		t.Errorf("installed document missing frontmatter: %q", data)
	}
}

func TestInstall_RefusesOverwriteWithoutForce(t *testing.T) {
	root := t.TempDir()
	sk := &Skill{Name: "demo", Instructions: "Body."}

	if _, err := Install(sk, ToolCursor, ScopeProject, root, false); err != nil {
		t.Fatalf("first install: %v", err)
	}

	if _, err := Install(sk, ToolCursor, ScopeProject, root, false); err == nil {
		t.Fatal("expected error when installing over an existing skill")
	}

	if _, err := Install(sk, ToolCursor, ScopeProject, root, true); err != nil {
		t.Fatalf("forced install: %v", err)
	}
}
