package review

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseSeverity(t *testing.T) {
	cases := []struct {
		raw  string
		want Severity
	}{
		{"blocker", SeverityBlocker},
		{"Major", SeverityMajor},
		{" minor ", SeverityMinor},
		{"NIT", SeverityNit},
	}

	for _, tc := range cases {
		got, err := ParseSeverity(tc.raw)
		if err != nil {
			t.Fatalf("parse %q: %v", tc.raw, err)
		}
		if got != tc.want {
			t.Fatalf("parse %q: want %v, got %v", tc.raw, tc.want, got)
		}
	}

	if _, err := ParseSeverity("catastrophic"); err == nil {
		t.Fatal("expected unknown severity to fail")
	}
}

func TestSortFindings_SeverityThenFileThenLine(t *testing.T) {
	findings := []Finding{
		{File: "b.go", Line: 10, Severity: SeverityNit, Issue: "d"},
		{File: "a.go", Line: 5, Severity: SeverityBlocker, Issue: "a"},
		{File: "a.go", Line: 30, Severity: SeverityMajor, Issue: "c"},
		{File: "a.go", Line: 2, Severity: SeverityMajor, Issue: "b"},
	}

	SortFindings(findings)

	got := make([]string, len(findings))
	for i, f := range findings {
		got[i] = f.Issue
	}
	want := []string{"a", "b", "c", "d"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestStats_CountsEverySeverity(t *testing.T) {
	findings := []Finding{
		{Severity: SeverityBlocker},
		{Severity: SeverityMajor},
		{Severity: SeverityMajor},
		{Severity: SeverityNit},
	}

	got := Stats(findings)
	want := "1 blocker, 2 major, 0 minor, 1 nit"
	if got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}
