package skill

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Scope selects where a skill is installed.
type Scope string

const (
	// ScopeProject installs under the current project directory.
	ScopeProject Scope = "project"
	// ScopeGlobal installs under the user's home directory.
	ScopeGlobal Scope = "global"
)

// Tool identifies an assistant tool that consumes skill documents.
type Tool string

const (
	ToolClaude Tool = "claude"
	ToolCursor Tool = "cursor"
	ToolCodex  Tool = "codex"
)

// toolDirs maps each tool to its skill directory, relative to the project
// root or the home directory depending on scope.
var toolDirs = map[Tool]string{
	ToolClaude: ".claude/skills",
	ToolCursor: ".cursor/skills",
	ToolCodex:  ".codex/skills",
}

// Tools returns the supported tool names, sorted.
func Tools() []Tool {
	tools := make([]Tool, 0, len(toolDirs))
	for tool := range toolDirs {
		tools = append(tools, tool)
	}
	sort.Slice(tools, func(i, j int) bool { return tools[i] < tools[j] })
	return tools
}

// Dir resolves the skill directory for a tool and scope. Project scope
// resolves against projectRoot; global scope resolves against the user's
// home directory.
func Dir(tool Tool, scope Scope, projectRoot string) (string, error) {
	rel, ok := toolDirs[tool]
	if !ok {
		return "", fmt.Errorf("skill: unsupported tool %q", tool)
	}

	switch scope {
	case ScopeProject:
		if projectRoot == "" {
			projectRoot = "."
		}
		return filepath.Join(projectRoot, filepath.FromSlash(rel)), nil
	case ScopeGlobal:
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("skill: resolve home directory: %w", err)
		}
		return filepath.Join(home, filepath.FromSlash(rel)), nil
	default:
		return "", fmt.Errorf("skill: unsupported scope %q", scope)
	}
}

// DetectTools reports which supported tools have a skill directory present
// under projectRoot.
func DetectTools(projectRoot string) []Tool {
	var found []Tool
	for _, tool := range Tools() {
		dir, err := Dir(tool, ScopeProject, projectRoot)
		if err != nil {
			continue
		}
		// The tool marker is the parent config dir, not the skills subdir.
		if info, err := os.Stat(filepath.Dir(dir)); err == nil && info.IsDir() {
			found = append(found, tool)
		}
	}
	return found
}

// Install writes the skill as <dir>/<name>/SKILL.md for the given tool and
// scope. An existing install is only overwritten when force is set. Returns
// the written file path.
func Install(sk *Skill, tool Tool, scope Scope, projectRoot string, force bool) (string, error) {
	if sk == nil {
		return "", fmt.Errorf("skill: skill is required")
	}

	dir, err := Dir(tool, scope, projectRoot)
	if err != nil {
		return "", err
	}

	target := filepath.Join(dir, sk.Name, FileName)
	if !force {
		if _, err := os.Stat(target); err == nil {
			return "", fmt.Errorf("skill: %q already installed at %s (use force to overwrite)", sk.Name, target)
		}
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", fmt.Errorf("skill: create %s: %w", filepath.Dir(target), err)
	}
	if err := os.WriteFile(target, sk.Document(), 0o644); err != nil {
		return "", fmt.Errorf("skill: write %s: %w", target, err)
	}

	return target, nil
}
