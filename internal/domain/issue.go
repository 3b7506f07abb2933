package domain

import "regexp"

// Severity represents the importance level of an issue
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Group is the organisational bucket a rule is declared in
type Group string

const (
	GroupForbidden  Group = "forbidden"
	GroupSuggestion Group = "suggestion"
)

// Rule is a single pattern-to-message mapping applied to every line
type Rule struct {
	ID       string
	Group    Group
	Pattern  *regexp.Regexp
	Message  string
	Severity Severity
}

// Issue is one concrete rule match found at a file and line
type Issue struct {
	File     string   `json:"file"`
	Line     int      `json:"line"`
	RuleID   string   `json:"rule_id"`
	Message  string   `json:"message"`
	Matched  string   `json:"matched"`
	Severity Severity `json:"severity"`
}

// IsError returns true if the issue fails the run
func (i *Issue) IsError() bool {
	return i.Severity == SeverityError
}
