package output

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/glamour"
)

const defaultWordWrap = 80

// TermOption configures the terminal renderer.
type TermOption func(*Term)

// WithWordWrap sets the default wrap width used when a render call does not
// override it.
func WithWordWrap(width int) TermOption {
	return func(t *Term) {
		if width > 0 {
			t.wordWrap = width
		}
	}
}

// WithStylePath forces a named glamour style ("dark", "light", ...) instead
// of auto-detecting from the terminal.
func WithStylePath(style string) TermOption {
	return func(t *Term) {
		t.stylePath = style
	}
}

// Term renders markdown as ANSI-styled terminal output via glamour.
type Term struct {
	wordWrap  int
	stylePath string
}

// NewTerm constructs the terminal renderer with defaults (auto style, 80
// column wrap) plus any overrides.
func NewTerm(options ...TermOption) *Term {
	t := &Term{
		wordWrap: defaultWordWrap,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(t)
	}
	return t
}

func (t *Term) Name() string        { return "term" }
func (t *Term) ContentType() string { return "text/plain" }

func (t *Term) Render(ctx context.Context, doc Document, opts Options) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("output: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	wrap := t.wordWrap
	if opts.WordWrap > 0 {
		wrap = opts.WordWrap
	}

	// Wrap width can change per call, so the glamour renderer is built per
	// render rather than cached.
	gopts := []glamour.TermRendererOption{
		glamour.WithWordWrap(wrap),
	}
	if t.stylePath != "" {
		gopts = append(gopts, glamour.WithStylePath(t.stylePath))
	} else {
		gopts = append(gopts, glamour.WithAutoStyle())
	}

	renderer, err := glamour.NewTermRenderer(gopts...)
	if err != nil {
		return nil, fmt.Errorf("output: create terminal renderer: %w", err)
	}

	styled, err := renderer.Render(doc.Body)
	if err != nil {
		return nil, fmt.Errorf("output: render %q for terminal: %w", doc.Template, err)
	}
	return []byte(styled), nil
}
