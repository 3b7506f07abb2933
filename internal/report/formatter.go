package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/juparave/stylecheck/internal/domain"
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Formatter renders run results to a writer
type Formatter struct {
	w      io.Writer
	format string
}

// NewFormatter creates a Formatter for the given format
func NewFormatter(w io.Writer, format string) (*Formatter, error) {
	switch format {
	case "", FormatText:
		format = FormatText
	case FormatJSON:
	default:
		return nil, fmt.Errorf("unknown report format %q", format)
	}
	return &Formatter{w: w, format: format}, nil
}

// Start announces the directory being validated. It writes nothing in
// JSON mode so the output stays a single document.
func (f *Formatter) Start(target string) error {
	if f.format != FormatText {
		return nil
	}
	_, err := fmt.Fprintf(f.w, "🔍 Validating styles in: %s\n", target)
	return err
}

// Write renders the summary, followed by fix suggestions when fixes is
// non-nil. The pass/fail signal is Summary.Passed.
func (f *Formatter) Write(s Summary, fixes []domain.FileFixes) error {
	if f.format == FormatJSON {
		s.Fixes = fixes
		enc := json.NewEncoder(f.w)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	}

	var sb strings.Builder
	writeText(&sb, s)
	if fixes != nil {
		writeFixes(&sb, fixes)
	}
	_, err := io.WriteString(f.w, sb.String())
	return err
}

func writeText(sb *strings.Builder, s Summary) {
	sb.WriteString("\n📊 Style Validation Report\n")
	sb.WriteString(strings.Repeat("=", 50) + "\n")

	if s.Errors == 0 && s.Warnings == 0 {
		sb.WriteString("✅ No style violations found!\n")
		return
	}

	if s.Errors > 0 {
		sb.WriteString(fmt.Sprintf("\n❌ Errors (%d):\n", s.Errors))
		writeIssues(sb, s.Issues.Errors)
	}

	if s.Warnings > 0 {
		sb.WriteString(fmt.Sprintf("\n⚠️  Warnings (%d):\n", s.Warnings))
		writeIssues(sb, s.Issues.Warnings)
	}

	sb.WriteString("\n📈 Summary:\n")
	sb.WriteString(fmt.Sprintf("   Errors: %d\n", s.Errors))
	sb.WriteString(fmt.Sprintf("   Warnings: %d\n", s.Warnings))
}

func writeIssues(sb *strings.Builder, issues []domain.Issue) {
	for _, i := range issues {
		sb.WriteString(fmt.Sprintf("  %s:%d\n", i.File, i.Line))
		sb.WriteString(fmt.Sprintf("    %s\n", i.Message))
		sb.WriteString(fmt.Sprintf("    Found: \"%s\"\n", i.Matched))
		sb.WriteString("\n")
	}
}

func writeFixes(sb *strings.Builder, fixes []domain.FileFixes) {
	sb.WriteString("\n🔧 Auto-fix suggestions:\n")
	sb.WriteString(strings.Repeat("=", 30) + "\n")

	for _, ff := range fixes {
		sb.WriteString(fmt.Sprintf("\n📄 %s:\n", ff.File))
		for _, fx := range ff.Fixes {
			sb.WriteString(fmt.Sprintf("  Line %d: %s → %s\n", fx.Line, fx.From, fx.To))
		}
	}
}
