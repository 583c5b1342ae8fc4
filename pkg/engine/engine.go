// Package engine wraps a pongo2 template set behind a small rendering
// contract. It is used for authoring documents that need more than the core
// {placeholder} templates offer: loops, conditionals, and filters.
package engine

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
)

// Option configures the engine before construction.
type Option func(*config)

type config struct {
	baseDir   string
	templates fs.FS
	extension string
	globals   map[string]any
}

// WithBaseDir loads templates from a directory on disk.
func WithBaseDir(dir string) Option {
	return func(cfg *config) {
		cfg.baseDir = strings.TrimSpace(dir)
	}
}

// WithFS loads templates from an fs.FS, typically an embedded tree.
func WithFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templates = files
	}
}

// WithExtension overrides the default ".tpl" template extension.
func WithExtension(ext string) Option {
	return func(cfg *config) {
		trimmed := strings.TrimSpace(ext)
		if trimmed == "" {
			return
		}
		if !strings.HasPrefix(trimmed, ".") {
			trimmed = "." + trimmed
		}
		cfg.extension = trimmed
	}
}

// WithGlobals seeds context values available to every template.
func WithGlobals(data map[string]any) Option {
	return func(cfg *config) {
		if len(data) == 0 {
			return
		}
		if cfg.globals == nil {
			cfg.globals = make(map[string]any, len(data))
		}
		for key, value := range data {
			cfg.globals[strings.TrimSpace(key)] = value
		}
	}
}

// Engine renders pongo2 templates from a configured loader, caching compiled
// templates by path.
type Engine struct {
	mu sync.RWMutex

	templateSet *pongo2.TemplateSet
	templates   map[string]*pongo2.Template
	tplExt      string
}

// New constructs an Engine. At least one of WithBaseDir or WithFS is required.
func New(options ...Option) (*Engine, error) {
	cfg := &config{
		extension: ".tpl",
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}

	if cfg.baseDir == "" && cfg.templates == nil {
		return nil, errors.New("engine: need to provide either base dir or fs.FS")
	}

	var loaders []pongo2.TemplateLoader
	if cfg.baseDir != "" {
		loader, err := pongo2.NewLocalFileSystemLoader(cfg.baseDir)
		if err != nil {
			return nil, fmt.Errorf("engine: create local loader: %w", err)
		}
		loaders = append(loaders, loader)
	}
	if cfg.templates != nil {
		loaders = append(loaders, pongo2.NewFSLoader(cfg.templates))
	}

	e := &Engine{
		templateSet: pongo2.NewSet("skillgen", loaders...),
		templates:   make(map[string]*pongo2.Template),
		tplExt:      cfg.extension,
	}
	registerDefaultFilters()

	if len(cfg.globals) > 0 {
		e.templateSet.Globals = pongo2.Context(cfg.globals)
	}

	return e, nil
}

// RenderTemplate loads name from the configured loader (appending the
// template extension when absent) and executes it with data.
func (e *Engine) RenderTemplate(name string, data map[string]any) (string, error) {
	if e == nil || e.templateSet == nil {
		return "", errors.New("engine: engine is nil")
	}

	templatePath := name
	if !strings.HasSuffix(templatePath, e.tplExt) {
		templatePath += e.tplExt
	}

	tmpl, err := e.getTemplate(templatePath)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer

	e.mu.RLock()
	err = tmpl.ExecuteWriter(pongo2.Context(data), &buf)
	e.mu.RUnlock()

	if err != nil {
		return "", fmt.Errorf("engine: execute template %q: %w", templatePath, err)
	}
	return buf.String(), nil
}

// RenderString parses content as an inline template and executes it with data.
func (e *Engine) RenderString(content string, data map[string]any) (string, error) {
	if e == nil || e.templateSet == nil {
		return "", errors.New("engine: engine is nil")
	}

	tmpl, err := e.templateSet.FromString(content)
	if err != nil {
		return "", fmt.Errorf("engine: parse template string: %w", err)
	}

	var buf bytes.Buffer

	e.mu.RLock()
	err = tmpl.ExecuteWriter(pongo2.Context(data), &buf)
	e.mu.RUnlock()

	if err != nil {
		return "", fmt.Errorf("engine: execute template string: %w", err)
	}
	return buf.String(), nil
}

// RegisterFilter exposes a custom filter to all templates. Filter names are
// process-wide in pongo2, so duplicate names return an error.
func (e *Engine) RegisterFilter(name string, fn func(input any, param any) (any, error)) error {
	if strings.TrimSpace(name) == "" || fn == nil {
		return errors.New("engine: filter name and function required")
	}

	filter := func(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
		var paramVal any
		if param != nil {
			paramVal = param.Interface()
		}
		result, err := fn(in.Interface(), paramVal)
		if err != nil {
			return nil, &pongo2.Error{Sender: "custom_filter", OrigError: err}
		}
		return pongo2.AsValue(result), nil
	}

	if pongo2.FilterExists(name) {
		return fmt.Errorf("engine: filter %q already exists", name)
	}
	return pongo2.RegisterFilter(name, filter)
}

func (e *Engine) getTemplate(path string) (*pongo2.Template, error) {
	e.mu.RLock()
	if tmpl, ok := e.templates[path]; ok {
		e.mu.RUnlock()
		return tmpl, nil
	}
	e.mu.RUnlock()

	e.mu.Lock()
	defer e.mu.Unlock()

	if tmpl, ok := e.templates[path]; ok {
		return tmpl, nil
	}

	tmpl, err := e.templateSet.FromFile(path)
	if err != nil {
		return nil, fmt.Errorf("engine: load template %q: %w", path, err)
	}

	e.templates[path] = tmpl
	return tmpl, nil
}

func registerDefaultFilters() {
	if !pongo2.FilterExists("trim") {
		_ = pongo2.RegisterFilter("trim", filterTrim)
	}
	if !pongo2.FilterExists("slug") {
		_ = pongo2.RegisterFilter("slug", filterSlug)
	}
}

func filterTrim(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if in.Len() <= 0 {
		return pongo2.AsValue(""), nil
	}
	return pongo2.AsValue(strings.TrimSpace(in.String())), nil
}

// filterSlug lowercases its input and collapses runs of non-alphanumeric
// characters into single hyphens.
func filterSlug(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if in.Len() <= 0 {
		return pongo2.AsValue(""), nil
	}

	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(in.String()) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return pongo2.AsValue(strings.Trim(b.String(), "-")), nil
}
