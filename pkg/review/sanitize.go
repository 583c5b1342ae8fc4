package review

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	trackerPolicyOnce sync.Once
	trackerPolicy     *bluemonday.Policy
)

// SanitizeMarkdown strips unsafe inline HTML from rendered markdown before it
// is handed to an issue tracker. Markdown text itself passes through; only
// embedded HTML is filtered to the UGC allowlist.
func SanitizeMarkdown(body string) string {
	return strings.TrimSpace(trackerSanitizer().Sanitize(body))
}

func trackerSanitizer() *bluemonday.Policy {
	trackerPolicyOnce.Do(func() {
		trackerPolicy = bluemonday.UGCPolicy()
	})
	return trackerPolicy
}
