package skill

import (
	"strings"
	"testing"
)

func TestAuthor_RendersCompleteSkill(t *testing.T) {
	sk, err := Author(Draft{
		Name:        "incident-response",
		Title:       "Incident Response",
		Description: "Run an incident from page to postmortem.",
		Overview:    "Stabilize first, diagnose second, document third.",
		Sections: []Section{
			{Title: "Triage", Body: "Confirm impact and declare severity."},
			{Title: "Mitigate", Body: "Roll back before debugging forward."},
		},
		Checklist: []string{"Severity declared", "Postmortem scheduled"},
	})
	if err != nil {
		t.Fatalf("author: %v", err)
	}

	if sk.Name != "incident-response" {
		t.Errorf("name = %q", sk.Name)
	}
	if sk.Description != "Run an incident from page to postmortem." {
		t.Errorf("description = %q", sk.Description)
	}

	body := sk.Instructions
	for _, want := range []string{
		"# Incident Response",
		"## Triage",
		"Roll back before debugging forward.",
		"## Checklist",
		"- [ ] Severity declared",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("instructions missing %q:\n%s", want, body)
		}
	}
}

func TestAuthor_DerivesNameFromTitle(t *testing.T) {
	sk, err := Author(Draft{
		Title:    "Release Day Runbook",
		Overview: "Ship it calmly.",
	})
	if err != nil {
		t.Fatalf("author: %v", err)
	}
	if sk.Name != "release-day-runbook" {
		t.Errorf("name = %q, want release-day-runbook", sk.Name)
	}
}

func TestAuthor_RequiresTitle(t *testing.T) {
	if _, err := Author(Draft{Overview: "No title."}); err == nil {
		t.Fatal("expected error for missing title")
	}
}

func TestAuthor_OmitsChecklistWhenEmpty(t *testing.T) {
	sk, err := Author(Draft{
		Title:    "Minimal",
		Overview: "Just an overview.",
	})
	if err != nil {
		t.Fatalf("author: %v", err)
	}
	if strings.Contains(sk.Instructions, "## Checklist") {
		t.Errorf("unexpected checklist section:\n%s", sk.Instructions)
	}
}
