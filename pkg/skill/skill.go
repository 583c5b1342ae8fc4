package skill

import (
	"fmt"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is the canonical file name for a skill document.
const FileName = "SKILL.md"

// Skill is a parsed skill document.
type Skill struct {
	// Name identifies the skill. Defaults to the parent directory name when
	// the frontmatter omits it.
	Name string
	// Description is a one-line summary from the frontmatter.
	Description string
	// Instructions is the markdown body below the frontmatter.
	Instructions string
	// Path records where the skill was loaded from, for diagnostics.
	Path string
}

type frontmatter struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// Parse decodes a skill document. The document must open with a `---` fenced
// YAML frontmatter block; everything after the closing fence is the
// instruction body.
func Parse(data []byte, filePath string) (*Skill, error) {
	text := string(data)

	rest, ok := strings.CutPrefix(text, "---\n")
	if !ok {
		return nil, fmt.Errorf("skill: %s: missing frontmatter", filePath)
	}

	head, body, ok := strings.Cut(rest, "\n---\n")
	if !ok {
		return nil, fmt.Errorf("skill: %s: unterminated frontmatter", filePath)
	}

	var fm frontmatter
	if err := yaml.Unmarshal([]byte(head), &fm); err != nil {
		return nil, fmt.Errorf("skill: %s: parse frontmatter: %w", filePath, err)
	}

	name := fm.Name
	if name == "" {
		name = path.Base(path.Dir(filePath))
	}
	if name == "" || name == "." || name == "/" {
		return nil, fmt.Errorf("skill: %s: skill name is required", filePath)
	}

	return &Skill{
		Name:         name,
		Description:  fm.Description,
		Instructions: strings.TrimSpace(body),
		Path:         filePath,
	}, nil
}

// Document reassembles the on-disk form of the skill, frontmatter included.
func (s *Skill) Document() []byte {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("name: " + s.Name + "\n")
	if s.Description != "" {
		b.WriteString("description: " + s.Description + "\n")
	}
	b.WriteString("---\n\n")
	b.WriteString(s.Instructions)
	b.WriteString("\n")
	return []byte(b.String())
}
