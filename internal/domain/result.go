package domain

// Result accumulates the issues of a run, partitioned by severity.
// Info issues are kept in the warnings bucket.
type Result struct {
	Errors   []Issue
	Warnings []Issue
	Files    int
}

// Classify builds a Result from issues in scan order
func Classify(issues []Issue) *Result {
	r := &Result{}
	for _, issue := range issues {
		r.Add(issue)
	}
	return r
}

// Add routes an issue into its bucket, preserving insertion order
func (r *Result) Add(issue Issue) {
	if issue.IsError() {
		r.Errors = append(r.Errors, issue)
		return
	}
	r.Warnings = append(r.Warnings, issue)
}

// Passed returns true if no error-severity issue was collected
func (r *Result) Passed() bool {
	return len(r.Errors) == 0
}

// All returns errors followed by warnings
func (r *Result) All() []Issue {
	all := make([]Issue, 0, len(r.Errors)+len(r.Warnings))
	all = append(all, r.Errors...)
	return append(all, r.Warnings...)
}

// ErrorCount returns the number of errors
func (r *Result) ErrorCount() int {
	return len(r.Errors)
}

// WarningCount returns the size of the warnings bucket, info included
func (r *Result) WarningCount() int {
	return len(r.Warnings)
}

// InfoCount returns the number of info severity issues
func (r *Result) InfoCount() int {
	count := 0
	for _, w := range r.Warnings {
		if w.Severity == SeverityInfo {
			count++
		}
	}
	return count
}

// TotalIssues returns the total number of issues
func (r *Result) TotalIssues() int {
	return len(r.Errors) + len(r.Warnings)
}

// HasIssues returns true if there are any issues
func (r *Result) HasIssues() bool {
	return r.TotalIssues() > 0
}
