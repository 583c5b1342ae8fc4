package output

import (
	"context"
	"errors"

	"github.com/skillgen/skillgen/pkg/review"
)

// Tracker emits markdown with inline HTML sanitized, suitable for pasting
// into issue trackers that render user-supplied markdown.
type Tracker struct{}

// NewTracker constructs the tracker renderer.
func NewTracker() Tracker {
	return Tracker{}
}

func (Tracker) Name() string        { return "tracker" }
func (Tracker) ContentType() string { return "text/markdown" }

func (Tracker) Render(ctx context.Context, doc Document, _ Options) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("output: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return []byte(review.SanitizeMarkdown(doc.Body) + "\n"), nil
}
