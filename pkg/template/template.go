package template

import (
	"strings"
)

// FieldSet maps placeholder names to the string values substituted at render
// time. Entries not referenced by the template are ignored.
type FieldSet map[string]string

// Template is an immutable text pattern with {placeholder} tokens.
// Placeholder identifiers are letters, digits, '_', '-', and '.'; a '{' that
// does not open a valid token is treated as literal text.
type Template struct {
	name         string
	body         string
	placeholders []string
}

// New constructs a template. The body is scanned once so Placeholders and
// Validate do not re-parse it.
func New(name, body string) Template {
	return Template{
		name:         strings.TrimSpace(name),
		body:         body,
		placeholders: scanPlaceholders(body),
	}
}

// Name returns the registry identifier.
func (t Template) Name() string { return t.name }

// Body returns the raw pattern text.
func (t Template) Body() string { return t.body }

// Placeholders returns the distinct placeholder names in first-occurrence
// order.
func (t Template) Placeholders() []string {
	out := make([]string, len(t.placeholders))
	copy(out, t.placeholders)
	return out
}

// Render substitutes fields into the template in a single left-to-right pass.
// The first placeholder without a matching field aborts the render with a
// *MissingFieldError and no partial output. Substituted values are copied
// verbatim and never re-expanded, so identical inputs always produce
// byte-identical output.
func (t Template) Render(fields FieldSet) (string, error) {
	var b strings.Builder
	b.Grow(len(t.body))

	body := t.body
	for i := 0; i < len(body); {
		open := strings.IndexByte(body[i:], '{')
		if open < 0 {
			b.WriteString(body[i:])
			break
		}
		open += i
		b.WriteString(body[i:open])

		name, end := scanToken(body, open)
		if name == "" {
			b.WriteByte('{')
			i = open + 1
			continue
		}

		value, ok := fields[name]
		if !ok {
			return "", &MissingFieldError{Template: t.name, Field: name}
		}
		b.WriteString(value)
		i = end
	}

	return b.String(), nil
}

// Validate reports whether fields satisfies every placeholder the template
// requires, returning the same error Render would without producing output.
func (t Template) Validate(fields FieldSet) error {
	for _, name := range t.placeholders {
		if _, ok := fields[name]; !ok {
			return &MissingFieldError{Template: t.name, Field: name}
		}
	}
	return nil
}

// scanToken reads a {placeholder} token starting at the opening brace. It
// returns the placeholder name and the index just past the closing brace, or
// an empty name when the brace does not open a valid token.
func scanToken(body string, open int) (string, int) {
	i := open + 1
	for i < len(body) && isIdent(body[i]) {
		i++
	}
	if i == open+1 || i >= len(body) || body[i] != '}' {
		return "", 0
	}
	return body[open+1 : i], i + 1
}

func isIdent(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '_' || c == '-' || c == '.':
		return true
	}
	return false
}

func scanPlaceholders(body string) []string {
	var (
		out  []string
		seen map[string]struct{}
	)
	for i := 0; i < len(body); {
		open := strings.IndexByte(body[i:], '{')
		if open < 0 {
			break
		}
		open += i
		name, end := scanToken(body, open)
		if name == "" {
			i = open + 1
			continue
		}
		if seen == nil {
			seen = make(map[string]struct{})
		}
		if _, dup := seen[name]; !dup {
			seen[name] = struct{}{}
			out = append(out, name)
		}
		i = end
	}
	return out
}
