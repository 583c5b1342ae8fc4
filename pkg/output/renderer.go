// Package output shapes rendered template text into its final byte
// representation: raw markdown, styled terminal output, or tracker-safe
// sanitized markdown. Renderers are resolved by name from a registry so the
// generator and CLI can stay agnostic of the destination.
package output

import "context"

// Document is a rendered template ready for final output shaping.
type Document struct {
	// Template names the template that produced Body. Renderers may use it
	// for diagnostics; it does not affect the output.
	Template string
	// Body is the rendered markdown text.
	Body string
}

// Options carry per-call hints renderers may honor.
type Options struct {
	// WordWrap bounds line width for terminal output. Zero keeps the
	// renderer default.
	WordWrap int
}

// Renderer converts a document into bytes for one destination.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, doc Document, opts Options) ([]byte, error)
}
