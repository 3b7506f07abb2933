package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestClassify(t *testing.T) {
	issues := []Issue{
		{File: "a.html", Line: 1, Matched: "x", Severity: SeverityWarning},
		{File: "a.html", Line: 2, Matched: "y", Severity: SeverityError},
		{File: "b.css", Line: 1, Matched: "z", Severity: SeverityInfo},
		{File: "b.css", Line: 4, Matched: "w", Severity: SeverityError},
	}

	r := Classify(issues)

	wantErrors := []Issue{issues[1], issues[3]}
	if diff := cmp.Diff(wantErrors, r.Errors); diff != "" {
		t.Errorf("errors mismatch (-want +got):\n%s", diff)
	}
	wantWarnings := []Issue{issues[0], issues[2]}
	if diff := cmp.Diff(wantWarnings, r.Warnings); diff != "" {
		t.Errorf("warnings mismatch (-want +got):\n%s", diff)
	}
	if r.InfoCount() != 1 {
		t.Errorf("expected 1 info issue, got %d", r.InfoCount())
	}
	if r.TotalIssues() != 4 {
		t.Errorf("expected 4 issues, got %d", r.TotalIssues())
	}
}

func TestPassed(t *testing.T) {
	tests := []struct {
		name     string
		errors   int
		warnings int
		want     bool
	}{
		{"empty", 0, 0, true},
		{"warnings only", 0, 5, true},
		{"single error", 1, 0, false},
		{"both", 2, 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Result{}
			for i := 0; i < tt.errors; i++ {
				r.Add(Issue{Severity: SeverityError})
			}
			for i := 0; i < tt.warnings; i++ {
				r.Add(Issue{Severity: SeverityWarning})
			}
			if got := r.Passed(); got != tt.want {
				t.Errorf("Passed() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAllOrder(t *testing.T) {
	r := &Result{}
	r.Add(Issue{Line: 1, Severity: SeverityWarning})
	r.Add(Issue{Line: 2, Severity: SeverityError})
	r.Add(Issue{Line: 3, Severity: SeverityInfo})

	var lines []int
	for _, i := range r.All() {
		lines = append(lines, i.Line)
	}
	if diff := cmp.Diff([]int{2, 1, 3}, lines); diff != "" {
		t.Errorf("All() order mismatch (-want +got):\n%s", diff)
	}
}
