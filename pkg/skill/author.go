package skill

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"

	"github.com/skillgen/skillgen/pkg/engine"
)

//go:embed templates/*.tpl
var authorTemplates embed.FS

// Section is one titled block of a drafted skill.
type Section struct {
	Title string
	Body  string
}

// Draft describes a skill to author. Name defaults to a slug of Title.
type Draft struct {
	Name        string
	Title       string
	Description string
	Overview    string
	Sections    []Section
	Checklist   []string
}

// Author renders a draft into a complete skill document and parses it back,
// so the result is guaranteed loadable.
func Author(draft Draft) (*Skill, error) {
	if strings.TrimSpace(draft.Title) == "" {
		return nil, fmt.Errorf("skill: draft title is required")
	}

	sub, err := fs.Sub(authorTemplates, "templates")
	if err != nil {
		return nil, fmt.Errorf("skill: open author templates: %w", err)
	}

	eng, err := engine.New(engine.WithFS(sub), engine.WithExtension(".tpl"))
	if err != nil {
		return nil, fmt.Errorf("skill: create author engine: %w", err)
	}

	name := strings.TrimSpace(draft.Name)
	data := map[string]any{
		"name":        name,
		"title":       draft.Title,
		"description": draft.Description,
		"overview":    draft.Overview,
		"sections":    draft.Sections,
		"checklist":   draft.Checklist,
	}
	if name == "" {
		rendered, err := eng.RenderString("{{ title | slug }}", data)
		if err != nil {
			return nil, fmt.Errorf("skill: derive name from title: %w", err)
		}
		name = rendered
		data["name"] = name
	}

	doc, err := eng.RenderTemplate("skill.md", data)
	if err != nil {
		return nil, fmt.Errorf("skill: author %q: %w", name, err)
	}

	return Parse([]byte(doc), name+"/"+FileName)
}
