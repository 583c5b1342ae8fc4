package output

import (
	"context"
	"errors"
	"strings"
)

// Markdown is the default passthrough renderer. It emits the document body
// unchanged apart from normalizing to a single trailing newline.
type Markdown struct{}

// NewMarkdown constructs the markdown renderer.
func NewMarkdown() Markdown {
	return Markdown{}
}

func (Markdown) Name() string        { return "markdown" }
func (Markdown) ContentType() string { return "text/markdown" }

func (Markdown) Render(ctx context.Context, doc Document, _ Options) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("output: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	body := strings.TrimRight(doc.Body, "\n") + "\n"
	return []byte(body), nil
}
