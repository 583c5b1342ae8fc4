package template

import (
	"fmt"
	"sort"
	"sync"
)

// Registry stores templates by name, providing discovery and duplication
// safeguards. The built-in table returned by Builtin is populated once and
// treated as read-only afterwards; custom registries may keep registering.
type Registry struct {
	mu        sync.RWMutex
	templates map[string]Template
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		templates: make(map[string]Template),
	}
}

// Register adds a template under its Name(). Duplicate names return an error.
func (r *Registry) Register(t Template) error {
	name := t.Name()
	if name == "" {
		return fmt.Errorf("template: template name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.templates[name]; exists {
		return fmt.Errorf("template: template %q already registered", name)
	}

	r.templates[name] = t
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(t Template) {
	if err := r.Register(t); err != nil {
		panic(err)
	}
}

// Get retrieves a template by name, failing with *UnknownTemplateError when
// the name is not registered.
func (r *Registry) Get(name string) (Template, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.templates[name]
	if !ok {
		return Template{}, &UnknownTemplateError{Name: name}
	}
	return t, nil
}

// Render resolves name and substitutes fields through the template. It is the
// single entry point callers need: unknown names surface as
// *UnknownTemplateError, unsatisfied placeholders as *MissingFieldError.
func (r *Registry) Render(name string, fields FieldSet) (string, error) {
	t, err := r.Get(name)
	if err != nil {
		return "", err
	}
	return t.Render(fields)
}

// List returns a sorted list of template names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.templates))
	for name := range r.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether a template is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.templates[name]
	return ok
}
