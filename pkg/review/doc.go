// Package review turns structured code-review findings into the field sets
// consumed by the built-in pr-comment, github-issue, and review-summary
// templates. It owns the severity taxonomy, the deterministic ordering of
// findings, and the sanitizer applied before output leaves for an issue
// tracker.
package review
