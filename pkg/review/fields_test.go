package review

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/skillgen/skillgen/pkg/template"
)

func TestCommentFields_MapsEveryPlaceholder(t *testing.T) {
	f := Finding{
		File:     "auth.go",
		Line:     45,
		Severity: SeverityMajor,
		Issue:    "missing nil check",
		Why:      "dereference panics on expired sessions",
		Fix:      "guard the lookup before use",
	}

	got := CommentFields(f)
	want := template.FieldSet{
		"file":     "auth.go",
		"line":     "45",
		"severity": "major",
		"issue":    "missing nil check",
		"why":      "dereference panics on expired sessions",
		"fix":      "guard the lookup before use",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
}

func TestCommentFields_EmptyFixGetsPlaceholderText(t *testing.T) {
	got := CommentFields(Finding{File: "a.go", Line: 1})
	if got["fix"] != "None suggested." {
		t.Fatalf("unexpected fix field %q", got["fix"])
	}
}

func TestComment_RendersThroughBuiltinTemplate(t *testing.T) {
	out, err := Comment(template.MustBuiltin(), Finding{
		File:     "auth.go",
		Line:     45,
		Severity: SeverityBlocker,
		Issue:    "token accepted after expiry",
		Why:      "expiry check compares seconds to milliseconds",
		Fix:      "normalize both sides to time.Time",
	})
	if err != nil {
		t.Fatalf("comment: %v", err)
	}

	for _, fragment := range []string{"auth.go:45", "blocker", "token accepted after expiry"} {
		if !strings.Contains(out, fragment) {
			t.Fatalf("output missing %q:\n%s", fragment, out)
		}
	}
	if strings.Contains(out, "{") && strings.Contains(out, "}") {
		// Built-in templates carry no literal braces, so any remaining pair
		// means a placeholder survived.
		t.Fatalf("unresolved placeholder in output:\n%s", out)
	}
}

func TestSummaryFields_DeterministicAcrossInputOrder(t *testing.T) {
	findings := []Finding{
		{File: "b.go", Line: 2, Severity: SeverityMinor, Issue: "naming"},
		{File: "a.go", Line: 9, Severity: SeverityBlocker, Issue: "race"},
	}
	reversed := []Finding{findings[1], findings[0]}

	first := SummaryFields(Summary{Title: "PR 12", Verdict: VerdictRequestChanges, Findings: findings})
	second := SummaryFields(Summary{Title: "PR 12", Verdict: VerdictRequestChanges, Findings: reversed})

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("field sets differ by input order (-first +second):\n%s", diff)
	}
	if !strings.HasPrefix(first["findings"], "- `a.go:9` [blocker] race") {
		t.Fatalf("findings not sorted by severity:\n%s", first["findings"])
	}
}

func TestSummaryBody_RendersStatsLine(t *testing.T) {
	out, err := SummaryBody(template.MustBuiltin(), Summary{
		Title:      "login hardening",
		Verdict:    VerdictApprove,
		Highlights: []string{"good test coverage"},
		Findings:   []Finding{{File: "x.go", Line: 1, Severity: SeverityNit, Issue: "typo"}},
	})
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if !strings.Contains(out, "0 blocker, 0 major, 0 minor, 1 nit") {
		t.Fatalf("stats line missing:\n%s", out)
	}
	if !strings.Contains(out, "- good test coverage") {
		t.Fatalf("highlights missing:\n%s", out)
	}
}

func TestIssueFields_ListsAndLabels(t *testing.T) {
	got := IssueFields(Issue{
		Title:    "crash on logout",
		Summary:  "logging out with a pending sync crashes the app",
		Steps:    []string{"start a sync", "log out"},
		Expected: "logout completes",
		Actual:   "panic in sync worker",
		Labels:   []string{"bug", "sync"},
	})

	if got["steps"] != "1. start a sync\n2. log out" {
		t.Fatalf("unexpected steps %q", got["steps"])
	}
	if got["labels"] != "bug, sync" {
		t.Fatalf("unexpected labels %q", got["labels"])
	}

	empty := IssueFields(Issue{Title: "t", Summary: "s", Expected: "e", Actual: "a"})
	if empty["steps"] != "None recorded." {
		t.Fatalf("unexpected empty steps %q", empty["steps"])
	}
	if empty["labels"] != "none" {
		t.Fatalf("unexpected empty labels %q", empty["labels"])
	}
}
