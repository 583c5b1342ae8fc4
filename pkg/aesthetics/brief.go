package aesthetics

import (
	"strings"

	"github.com/skillgen/skillgen/pkg/template"
)

// BriefFields maps a style onto the design-brief template fields for the
// named project. Guidance defaults to a short directive when empty.
func BriefFields(style Style, project, guidance string) template.FieldSet {
	if strings.TrimSpace(project) == "" {
		project = "Untitled project"
	}
	if strings.TrimSpace(guidance) == "" {
		guidance = "Commit to this one style; mixing aesthetics reads as neither."
	}

	return template.FieldSet{
		"project":     project,
		"style":       style.Name,
		"era":         style.Era,
		"description": style.Description,
		"keywords":    strings.Join(style.Keywords, ", "),
		"palette":     strings.Join(style.Palette, " "),
		"guidance":    guidance,
	}
}

// Brief renders the design-brief template for a style.
func Brief(reg *template.Registry, style Style, project, guidance string) (string, error) {
	return reg.Render("design-brief", BriefFields(style, project, guidance))
}
