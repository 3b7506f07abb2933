package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/juparave/stylecheck/internal/app"
	"github.com/juparave/stylecheck/internal/config"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

type options struct {
	cfgFile        string
	format         string
	fixSuggestions bool
	verbose        bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, app.ErrViolations) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "stylecheck [directory]",
		Short:         "Style validation for HTML and CSS files",
		Long:          `stylecheck scans HTML and CSS files for inline color styles, hardcoded colors and discouraged utility classes. Errors fail the run; warnings are reported only.`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}

	rootCmd.Flags().BoolVar(&opts.fixSuggestions, "fix-suggestions", false, "Print suggested replacements after the report")
	rootCmd.Flags().StringVarP(&opts.cfgFile, "config", "c", "", "Path to config file (default: ~/.config/stylecheck/config.yaml)")
	rootCmd.Flags().StringVarP(&opts.format, "format", "f", "", "Report format: text or json")
	rootCmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose output")

	return rootCmd
}

func run(cmd *cobra.Command, args []string, opts *options) error {
	// Load configuration
	cfg, err := config.Load(opts.cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Override config with CLI arguments
	if len(args) == 1 {
		cfg.RootPath = args[0]
	}
	if opts.fixSuggestions {
		cfg.Report.FixSuggestions = true
	}
	if opts.format != "" {
		cfg.Report.Format = opts.format
	}
	cfg.Verbose = opts.verbose

	runner := app.NewRunner(cfg, cmd.OutOrStdout())
	res, err := runner.Run(cmd.Context())
	if err != nil {
		return err
	}
	if app.ExitCode(res) != 0 {
		return app.ErrViolations
	}
	return nil
}
