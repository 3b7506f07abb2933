package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/juparave/stylecheck/internal/report"
	"github.com/juparave/stylecheck/internal/util"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration
type Config struct {
	RootPath string       `yaml:"root_path"`
	Scan     ScanConfig   `yaml:"scan"`
	Report   ReportConfig `yaml:"report"`
	Verbose  bool         `yaml:"-"` // Set via CLI only
}

// ScanConfig controls which files are checked. Rules are fixed and not
// configurable.
type ScanConfig struct {
	MarkupExtensions     []string `yaml:"markup_extensions"`
	StylesheetExtensions []string `yaml:"stylesheet_extensions"`
	ExcludeDirs          []string `yaml:"exclude_dirs"` // opt-in, empty by default
}

// ReportConfig holds report output settings
type ReportConfig struct {
	Format         string `yaml:"format"` // text, json
	FixSuggestions bool   `yaml:"fix_suggestions"`
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		RootPath: ".",
		Scan: ScanConfig{
			MarkupExtensions:     []string{".html"},
			StylesheetExtensions: []string{".css"},
		},
		Report: ReportConfig{
			Format: report.FormatText,
		},
	}
}

// DefaultPath returns the config file location used when none is given
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "stylecheck", "config.yaml"), nil
}

// Load reads configuration from file and merges with defaults
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil // Use defaults if can't find home
		}
		path = p
	}

	path = util.ExpandPath(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil // Use defaults if file doesn't exist
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.RootPath = util.ExpandPath(cfg.RootPath)

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.RootPath == "" {
		return fmt.Errorf("root_path is required")
	}

	if !util.DirExists(c.RootPath) {
		return fmt.Errorf("root_path is not a directory: %s", c.RootPath)
	}

	if len(c.Scan.MarkupExtensions) == 0 && len(c.Scan.StylesheetExtensions) == 0 {
		return fmt.Errorf("at least one of markup_extensions or stylesheet_extensions is required")
	}

	switch c.Report.Format {
	case "", report.FormatText, report.FormatJSON:
	default:
		return fmt.Errorf("unknown report format %q (want text or json)", c.Report.Format)
	}

	return nil
}
