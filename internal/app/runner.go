package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/juparave/stylecheck/internal/config"
	"github.com/juparave/stylecheck/internal/domain"
	"github.com/juparave/stylecheck/internal/fix"
	"github.com/juparave/stylecheck/internal/lint"
	"github.com/juparave/stylecheck/internal/report"
	"github.com/juparave/stylecheck/internal/rules"
	"github.com/juparave/stylecheck/internal/scanner"
)

// ErrViolations is returned by the CLI when a run collected errors
var ErrViolations = errors.New("style violations found")

// Runner orchestrates the full validation flow
type Runner struct {
	config  *config.Config
	logger  *log.Logger
	out     io.Writer
	scanner *scanner.Scanner
	lint    *lint.Linter
}

// NewRunner creates a new Runner that writes its report to out
func NewRunner(cfg *config.Config, out io.Writer) *Runner {
	logger := log.New(os.Stderr, "[stylecheck] ", log.LstdFlags)

	return &Runner{
		config:  cfg,
		logger:  logger,
		out:     out,
		scanner: scanner.New(logger, cfg.Scan.ExcludeDirs),
		lint:    lint.New(rules.Default()),
	}
}

// Run scans markup files, then stylesheet files, and reports the issues.
// Any unreadable file aborts the whole run before a report is written.
func (r *Runner) Run(ctx context.Context) (*domain.Result, error) {
	startTime := time.Now()

	if err := r.config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	root := r.config.RootPath
	formatter, err := report.NewFormatter(r.out, r.config.Report.Format)
	if err != nil {
		return nil, err
	}
	if err := formatter.Start(root); err != nil {
		return nil, fmt.Errorf("writing report: %w", err)
	}

	res := &domain.Result{}
	groups := [][]string{r.config.Scan.MarkupExtensions, r.config.Scan.StylesheetExtensions}
	for _, exts := range groups {
		if len(exts) == 0 {
			continue
		}

		files, err := r.scanner.ListFiles(root, exts)
		if err != nil {
			return nil, fmt.Errorf("listing files: %w", err)
		}
		r.log("Found %d files matching %v", len(files), exts)

		for _, rel := range files {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			path := filepath.Join(root, rel)
			issues, err := r.lint.CheckFile(path)
			if err != nil {
				return nil, fmt.Errorf("validating %s: %w", root, err)
			}
			for _, issue := range issues {
				res.Add(issue)
			}
			res.Files++
			r.log("Checked %s: %d issues", path, len(issues))
		}
	}

	var fixes []domain.FileFixes
	if r.config.Report.FixSuggestions {
		fixes = fix.Advise(res.All())
		if fixes == nil {
			fixes = []domain.FileFixes{}
		}
	}

	if err := formatter.Write(report.Summarize(root, res), fixes); err != nil {
		return nil, fmt.Errorf("writing report: %w", err)
	}

	elapsed := time.Since(startTime)
	r.log("Validation of %d files complete in %s", res.Files, elapsed.Round(time.Millisecond))

	return res, nil
}

// ExitCode maps a finished run to the process exit status
func ExitCode(res *domain.Result) int {
	if res == nil || !res.Passed() {
		return 1
	}
	return 0
}

func (r *Runner) log(format string, args ...interface{}) {
	if r.config.Verbose {
		r.logger.Printf(format, args...)
	}
}
