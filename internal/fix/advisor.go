package fix

import (
	"strings"

	"github.com/juparave/stylecheck/internal/domain"
)

// Suggest returns replacement advice for matched text, or "" when no
// heuristic applies. Checks are ordered and case-sensitive.
func Suggest(matched string) string {
	switch {
	case strings.Contains(matched, `style="`):
		return `Replace with appropriate CSS class (e.g., class="text-muted")`
	case strings.Contains(matched, "text-gray-"):
		return `Replace with class="text-muted"`
	case strings.Contains(matched, "rgba(0,0,0,0.6)"):
		return "Replace with var(--text-muted-color)"
	default:
		return ""
	}
}

// Advise groups issues by file, keeping first-seen file order and the
// issue order within each file.
func Advise(issues []domain.Issue) []domain.FileFixes {
	var groups []domain.FileFixes
	index := make(map[string]int)

	for _, issue := range issues {
		i, ok := index[issue.File]
		if !ok {
			i = len(groups)
			index[issue.File] = i
			groups = append(groups, domain.FileFixes{File: issue.File})
		}
		groups[i].Fixes = append(groups[i].Fixes, domain.FixSuggestion{
			File: issue.File,
			Line: issue.Line,
			From: issue.Matched,
			To:   Suggest(issue.Matched),
		})
	}

	return groups
}
