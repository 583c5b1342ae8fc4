// Package skillgen is the root facade over the template renderer and the
// generation pipeline. Most callers only need Render for quick template
// substitution or Generate for the full pipeline; the subpackages expose the
// moving parts for advanced use.
package skillgen

import (
	"context"

	"github.com/skillgen/skillgen/pkg/generator"
	"github.com/skillgen/skillgen/pkg/template"
)

// FieldSet maps placeholder names to replacement values.
type FieldSet = template.FieldSet

// Template is a parsed template with its placeholder list.
type Template = template.Template

// Request describes one generation run.
type Request = generator.Request

// Render substitutes fields into the named built-in template and returns the
// markdown text. Unknown names return an error matching
// template.ErrUnknownTemplate; an unresolved placeholder returns an error
// matching template.ErrMissingField naming the first one hit.
func Render(name string, fields FieldSet) (string, error) {
	reg, err := template.Builtin()
	if err != nil {
		return "", err
	}
	return reg.Render(name, fields)
}

// Templates returns the names of the built-in templates.
func Templates() ([]string, error) {
	reg, err := template.Builtin()
	if err != nil {
		return nil, err
	}
	return reg.List(), nil
}

// Generate runs the full pipeline with default wiring: built-in templates and
// the markdown, term, and tracker outputs.
func Generate(ctx context.Context, req Request, options ...generator.Option) ([]byte, error) {
	return generator.New(options...).Generate(ctx, req)
}
