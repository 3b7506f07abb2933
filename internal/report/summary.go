package report

import "github.com/juparave/stylecheck/internal/domain"

// Summary is the structured outcome of a run
type Summary struct {
	Target   string             `json:"target"`
	Passed   bool               `json:"passed"`
	Files    int                `json:"files_checked"`
	Errors   int                `json:"errors"`
	Warnings int                `json:"warnings"`
	Infos    int                `json:"infos"`
	Issues   IssueBuckets       `json:"issues"`
	Fixes    []domain.FileFixes `json:"fixes,omitempty"`
}

// IssueBuckets holds the issues of each bucket in scan order
type IssueBuckets struct {
	Errors   []domain.Issue `json:"errors"`
	Warnings []domain.Issue `json:"warnings"`
}

// Summarize builds a Summary from a run result
func Summarize(target string, res *domain.Result) Summary {
	errs := res.Errors
	if errs == nil {
		errs = []domain.Issue{}
	}
	warns := res.Warnings
	if warns == nil {
		warns = []domain.Issue{}
	}

	return Summary{
		Target:   target,
		Passed:   res.Passed(),
		Files:    res.Files,
		Errors:   res.ErrorCount(),
		Warnings: res.WarningCount(),
		Infos:    res.InfoCount(),
		Issues: IssueBuckets{
			Errors:   errs,
			Warnings: warns,
		},
	}
}
