package review

import (
	"github.com/skillgen/skillgen/pkg/template"
)

// Comment renders a single finding through the pr-comment template in reg.
func Comment(reg *template.Registry, f Finding) (string, error) {
	return reg.Render("pr-comment", CommentFields(f))
}

// SummaryBody renders a full review pass through the review-summary template.
func SummaryBody(reg *template.Registry, s Summary) (string, error) {
	return reg.Render("review-summary", SummaryFields(s))
}

// IssueBody renders a tracker issue through the github-issue template.
func IssueBody(reg *template.Registry, is Issue) (string, error) {
	return reg.Render("github-issue", IssueFields(is))
}
