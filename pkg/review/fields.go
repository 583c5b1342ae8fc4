package review

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/skillgen/skillgen/pkg/template"
)

// CommentFields maps a finding onto the placeholders of the pr-comment
// template. Empty Fix text is rendered as an explicit "None suggested." so
// the template never shows a dangling heading.
func CommentFields(f Finding) template.FieldSet {
	fix := strings.TrimSpace(f.Fix)
	if fix == "" {
		fix = "None suggested."
	}
	return template.FieldSet{
		"file":     f.File,
		"line":     strconv.Itoa(f.Line),
		"severity": f.Severity.String(),
		"issue":    f.Issue,
		"why":      f.Why,
		"fix":      fix,
	}
}

// SummaryFields maps a review summary onto the review-summary template. The
// findings list is sorted through SortFindings first, so identical summaries
// always render identically.
func SummaryFields(s Summary) template.FieldSet {
	findings := make([]Finding, len(s.Findings))
	copy(findings, s.Findings)
	SortFindings(findings)

	return template.FieldSet{
		"title":      s.Title,
		"verdict":    string(s.Verdict),
		"stats":      Stats(findings),
		"highlights": bulletList(s.Highlights, "None."),
		"findings":   findingList(findings),
	}
}

// Issue describes a standalone tracker issue derived from review output.
type Issue struct {
	Title    string
	Summary  string
	Steps    []string
	Expected string
	Actual   string
	Labels   []string
}

// IssueFields maps an issue onto the github-issue template.
func IssueFields(is Issue) template.FieldSet {
	return template.FieldSet{
		"title":    is.Title,
		"summary":  is.Summary,
		"steps":    numberedList(is.Steps, "None recorded."),
		"expected": is.Expected,
		"actual":   is.Actual,
		"labels":   labelList(is.Labels),
	}
}

func bulletList(items []string, empty string) string {
	if len(items) == 0 {
		return empty
	}
	var b strings.Builder
	for i, item := range items {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("- ")
		b.WriteString(strings.TrimSpace(item))
	}
	return b.String()
}

func numberedList(items []string, empty string) string {
	if len(items) == 0 {
		return empty
	}
	var b strings.Builder
	for i, item := range items {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%d. %s", i+1, strings.TrimSpace(item))
	}
	return b.String()
}

func findingList(findings []Finding) string {
	if len(findings) == 0 {
		return "None."
	}
	var b strings.Builder
	for i, f := range findings {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "- `%s:%d` [%s] %s", f.File, f.Line, f.Severity, f.Issue)
	}
	return b.String()
}

func labelList(labels []string) string {
	if len(labels) == 0 {
		return "none"
	}
	trimmed := make([]string, 0, len(labels))
	for _, l := range labels {
		if l = strings.TrimSpace(l); l != "" {
			trimmed = append(trimmed, l)
		}
	}
	return strings.Join(trimmed, ", ")
}
