package template

import (
	"errors"
	"fmt"
)

// Sentinel errors so callers can branch with errors.Is without depending on
// the concrete error types.
var (
	ErrUnknownTemplate = errors.New("unknown template")
	ErrMissingField    = errors.New("missing field")
)

// UnknownTemplateError reports a render request naming a template that is not
// present in the registry.
type UnknownTemplateError struct {
	Name string
}

func (e *UnknownTemplateError) Error() string {
	return fmt.Sprintf("template: unknown template %q", e.Name)
}

func (e *UnknownTemplateError) Is(target error) bool {
	return target == ErrUnknownTemplate
}

// MissingFieldError reports the first placeholder encountered during a render
// that had no entry in the supplied field set.
type MissingFieldError struct {
	Template string
	Field    string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("template: %s: missing field %q", e.Template, e.Field)
}

func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}
