package lint

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/juparave/stylecheck/internal/domain"
)

// FileReadError reports a file that could not be opened or decoded as text
type FileReadError struct {
	Path string
	Err  error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("reading %s: %v", e.Path, e.Err)
}

func (e *FileReadError) Unwrap() error {
	return e.Err
}

// ErrInvalidUTF8 is wrapped by FileReadError when content is not UTF-8
var ErrInvalidUTF8 = errors.New("content is not valid UTF-8")

// Linter applies an ordered rule set to file contents
type Linter struct {
	rules []domain.Rule
}

// New creates a new Linter
func New(rules []domain.Rule) *Linter {
	return &Linter{rules: rules}
}

// CheckFile reads path and checks every line of it
func (l *Linter) CheckFile(path string) ([]domain.Issue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileReadError{Path: path, Err: err}
	}
	if !utf8.Valid(data) {
		return nil, &FileReadError{Path: path, Err: ErrInvalidUTF8}
	}

	return l.CheckContent(path, string(data)), nil
}

// CheckContent splits content on newlines and checks each line.
// Line numbers are 1-based.
func (l *Linter) CheckContent(path, content string) []domain.Issue {
	var issues []domain.Issue
	for i, line := range strings.Split(content, "\n") {
		issues = append(issues, l.CheckLine(path, i+1, line)...)
	}
	return issues
}

// CheckLine records the first match of every rule on a single line
func (l *Linter) CheckLine(path string, lineNumber int, line string) []domain.Issue {
	var issues []domain.Issue
	for _, rule := range l.rules {
		matched := rule.Pattern.FindString(line)
		if matched == "" {
			continue
		}
		issues = append(issues, domain.Issue{
			File:     path,
			Line:     lineNumber,
			RuleID:   rule.ID,
			Message:  rule.Message,
			Matched:  matched,
			Severity: rule.Severity,
		})
	}
	return issues
}
