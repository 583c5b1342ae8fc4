// Package generator coordinates the full pipeline from template name and
// fields to final output bytes. It applies sensible defaults (built-in
// templates, markdown output) while remaining open to dependency injection
// for advanced callers.
package generator

import (
	"context"
	"errors"
	"fmt"

	"github.com/skillgen/skillgen/pkg/output"
	"github.com/skillgen/skillgen/pkg/template"
)

const defaultOutputName = "markdown"

// Decorator can adjust the field set before rendering, for example to fill
// defaults or normalize values.
type Decorator interface {
	Decorate(fields template.FieldSet) error
}

// DecoratorFunc adapts a function to the Decorator interface.
type DecoratorFunc func(fields template.FieldSet) error

// Decorate implements Decorator.
func (f DecoratorFunc) Decorate(fields template.FieldSet) error {
	return f(fields)
}

// Option customises the generator configuration.
type Option func(*Generator)

// WithTemplates injects a template registry.
func WithTemplates(reg *template.Registry) Option {
	return func(g *Generator) {
		g.templates = reg
	}
}

// WithOutputs injects an output renderer registry.
func WithOutputs(reg *output.Registry) Option {
	return func(g *Generator) {
		g.outputs = reg
	}
}

// WithDefaultOutput overrides the renderer used when a request omits an
// explicit Output field.
func WithDefaultOutput(name string) Option {
	return func(g *Generator) {
		g.defaultOutput = name
	}
}

// WithDecorators registers decorators that run against the field set before
// rendering, in order.
func WithDecorators(decorators ...Decorator) Option {
	return func(g *Generator) {
		if len(decorators) == 0 {
			return
		}
		g.decorators = append(g.decorators, decorators...)
	}
}

// Generator runs the template render and output shaping stages. Missing
// dependencies are initialised with the built-in implementations so callers
// can start with a single constructor call.
type Generator struct {
	templates       *template.Registry
	outputs         *output.Registry
	defaultOutput   string
	decorators      []Decorator
	initialiseErr   error
	defaultsApplied bool
}

// New constructs a Generator applying any provided options.
func New(options ...Option) *Generator {
	g := &Generator{
		defaultOutput: defaultOutputName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(g)
	}
	g.applyDefaults()
	return g
}

// Request describes one generation run.
type Request struct {
	// Template names the template to render.
	Template string

	// Fields supplies the placeholder values.
	Fields template.FieldSet

	// Output names the output renderer. If empty, the generator falls back
	// to the configured default.
	Output string

	// Options carries per-request output hints such as word wrap.
	Options output.Options
}

// Generate renders the template and shapes it through the selected output
// renderer.
func (g *Generator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("generator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := g.initialiseErr; err != nil {
		return nil, err
	}
	if !g.defaultsApplied {
		g.applyDefaults()
		if err := g.initialiseErr; err != nil {
			return nil, err
		}
	}

	if req.Template == "" {
		return nil, errors.New("generator: template name is required")
	}

	fields := make(template.FieldSet, len(req.Fields))
	for key, value := range req.Fields {
		fields[key] = value
	}
	for _, decorator := range g.decorators {
		if decorator == nil {
			continue
		}
		if err := decorator.Decorate(fields); err != nil {
			return nil, fmt.Errorf("generator: decorate fields: %w", err)
		}
	}

	body, err := g.templates.Render(req.Template, fields)
	if err != nil {
		return nil, err
	}

	renderer, err := g.rendererFor(req.Output)
	if err != nil {
		return nil, err
	}

	out, err := renderer.Render(ctx, output.Document{Template: req.Template, Body: body}, req.Options)
	if err != nil {
		return nil, fmt.Errorf("generator: shape output: %w", err)
	}
	return out, nil
}

// Templates exposes the configured template registry.
func (g *Generator) Templates() *template.Registry {
	return g.templates
}

// Outputs exposes the configured output registry.
func (g *Generator) Outputs() *output.Registry {
	return g.outputs
}

func (g *Generator) rendererFor(name string) (output.Renderer, error) {
	if g.outputs == nil {
		return nil, errors.New("generator: output registry is nil")
	}

	target := name
	if target == "" {
		target = g.defaultOutput
	}

	renderer, err := g.outputs.Get(target)
	if err != nil {
		if name != "" {
			return nil, fmt.Errorf("generator: output %q: %w", name, err)
		}
		names := g.outputs.List()
		if len(names) == 0 {
			return nil, errors.New("generator: no output renderers registered")
		}
		return g.outputs.Get(names[0])
	}
	return renderer, nil
}

func (g *Generator) applyDefaults() {
	if g.defaultsApplied {
		return
	}

	if g.templates == nil {
		reg, err := template.Builtin()
		if err != nil {
			g.initialiseErr = fmt.Errorf("generator: builtin templates: %w", err)
		} else {
			g.templates = reg
		}
	}
	if g.outputs == nil {
		g.outputs = output.NewRegistry()
		g.outputs.MustRegister(output.NewMarkdown())
		g.outputs.MustRegister(output.NewTerm())
		g.outputs.MustRegister(output.NewTracker())
	}
	if g.defaultOutput == "" {
		g.defaultOutput = defaultOutputName
	}

	g.defaultsApplied = true
}
