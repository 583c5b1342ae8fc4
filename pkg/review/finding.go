package review

import (
	"fmt"
	"sort"
	"strings"
)

// Severity ranks how much a finding should block a change.
type Severity int

const (
	SeverityNit Severity = iota
	SeverityMinor
	SeverityMajor
	SeverityBlocker
)

var severityNames = map[Severity]string{
	SeverityNit:     "nit",
	SeverityMinor:   "minor",
	SeverityMajor:   "major",
	SeverityBlocker: "blocker",
}

func (s Severity) String() string {
	if name, ok := severityNames[s]; ok {
		return name
	}
	return fmt.Sprintf("severity(%d)", int(s))
}

// ParseSeverity maps a case-insensitive severity label to its value.
func ParseSeverity(raw string) (Severity, error) {
	needle := strings.ToLower(strings.TrimSpace(raw))
	for sev, name := range severityNames {
		if name == needle {
			return sev, nil
		}
	}
	return SeverityNit, fmt.Errorf("review: unknown severity %q", raw)
}

// Verdict is the overall outcome of a review.
type Verdict string

const (
	VerdictApprove        Verdict = "approve"
	VerdictRequestChanges Verdict = "request changes"
	VerdictComment        Verdict = "comment"
)

// Finding is one reviewable issue located in a file.
type Finding struct {
	File     string
	Line     int
	Severity Severity
	Issue    string
	Why      string
	Fix      string
}

// Summary aggregates a whole review pass.
type Summary struct {
	Title      string
	Verdict    Verdict
	Highlights []string
	Findings   []Finding
}

// SortFindings orders findings by severity (highest first), then file, then
// line, so rendered output is stable across runs regardless of input order.
func SortFindings(findings []Finding) {
	sort.SliceStable(findings, func(i, j int) bool {
		if findings[i].Severity != findings[j].Severity {
			return findings[i].Severity > findings[j].Severity
		}
		if findings[i].File != findings[j].File {
			return findings[i].File < findings[j].File
		}
		return findings[i].Line < findings[j].Line
	})
}

// Stats produces the one-line severity tally used by the review-summary
// template, e.g. "1 blocker, 2 major, 0 minor, 1 nit".
func Stats(findings []Finding) string {
	counts := make(map[Severity]int, len(severityNames))
	for _, f := range findings {
		counts[f.Severity]++
	}

	order := []Severity{SeverityBlocker, SeverityMajor, SeverityMinor, SeverityNit}
	parts := make([]string, 0, len(order))
	for _, sev := range order {
		parts = append(parts, fmt.Sprintf("%d %s", counts[sev], sev))
	}
	return strings.Join(parts, ", ")
}
