// Package config provides configuration loading and management for devloop.
//
// Configuration is loaded using Viper, supporting a YAML config file and
// environment variable overrides. The defaults work out of the box for a
// standard Go project: gofmt, golangci-lint, go test with the race detector,
// and go tool cover.
//
// Key types:
//   - [Config] is the root configuration container
//   - [Loader] handles Viper-based configuration loading
//   - [ToolsConfig] holds the external tool command lines
//
// Configuration priority (highest to lowest):
//  1. Environment variables (DEVLOOP_ prefix)
//  2. Config file specified by DEVLOOP_CONFIG_PATH
//  3. ./devloop.yaml
//  4. Platform config directory (e.g. ~/.config/devloop/devloop.yaml)
//  5. [DefaultConfig] defaults
package config

import "fmt"

// Config represents the root configuration structure.
//
// Use [DefaultConfig] for sensible defaults and [Loader.Load] to layer a
// config file and environment overrides on top of them.
type Config struct {
	// Mode is the default color mode, "dark" or "light", used when -m is
	// not given on the command line. Unrecognized values fall back to dark.
	Mode string `mapstructure:"mode" yaml:"mode"`

	// Entry is the program entry point passed to the run tool.
	Entry string `mapstructure:"entry" yaml:"entry"`

	// Tools holds the external tool command lines.
	Tools ToolsConfig `mapstructure:"tools" yaml:"tools"`

	// Coverage holds the coverage artifact file names.
	Coverage CoverageConfig `mapstructure:"coverage" yaml:"coverage"`
}

// ToolsConfig holds the argv vectors for the wrapped external tools.
//
// Each entry is a full command line: the first element is the binary, the
// rest are its fixed arguments. Stages append their own trailing arguments
// (the file being formatted, the coverage profile flags, the entry point).
type ToolsConfig struct {
	// Format is the in-place source formatter, invoked once per file.
	Format []string `mapstructure:"format" yaml:"format"`

	// Lint is the linter. A non-empty captured stdout means findings.
	Lint []string `mapstructure:"lint" yaml:"lint"`

	// Test is the test runner with race detection, across all packages.
	Test []string `mapstructure:"test" yaml:"test"`

	// Cover is the coverage-instrumented test run; the profile flag is
	// appended by the coverage stage.
	Cover []string `mapstructure:"cover" yaml:"cover"`

	// CoverHTML converts a coverage profile into an HTML report.
	CoverHTML []string `mapstructure:"cover_html" yaml:"cover_html"`

	// Run invokes the program entry point with live output.
	Run []string `mapstructure:"run" yaml:"run"`
}

// CoverageConfig holds the coverage artifact settings.
//
// Both files are written into the working directory, overwritten on each
// run, and never deleted.
type CoverageConfig struct {
	// Profile is the coverage profile file name.
	Profile string `mapstructure:"profile" yaml:"profile"`

	// HTML is the generated HTML report file name.
	HTML string `mapstructure:"html" yaml:"html"`
}

// DefaultConfig returns a new [Config] with sensible defaults for a
// standard Go project. These work without any configuration file.
func DefaultConfig() *Config {
	return &Config{
		Mode:  "dark",
		Entry: "main.go",
		Tools: ToolsConfig{
			Format:    []string{"gofmt", "-l", "-w"},
			Lint:      []string{"golangci-lint", "run"},
			Test:      []string{"go", "test", "-race", "./..."},
			Cover:     []string{"go", "test", "./..."},
			CoverHTML: []string{"go", "tool", "cover"},
			Run:       []string{"go", "run"},
		},
		Coverage: CoverageConfig{
			Profile: "coverage.out",
			HTML:    "coverage.html",
		},
	}
}

// Validate checks that every tool command line has at least a binary name
// and that the artifact file names are set.
func (c *Config) Validate() error {
	tools := map[string][]string{
		"format":     c.Tools.Format,
		"lint":       c.Tools.Lint,
		"test":       c.Tools.Test,
		"cover":      c.Tools.Cover,
		"cover_html": c.Tools.CoverHTML,
		"run":        c.Tools.Run,
	}
	for name, argv := range tools {
		if len(argv) == 0 {
			return fmt.Errorf("tools.%s: command is empty", name)
		}
	}
	if c.Entry == "" {
		return fmt.Errorf("entry: file name is empty")
	}
	if c.Coverage.Profile == "" {
		return fmt.Errorf("coverage.profile: file name is empty")
	}
	if c.Coverage.HTML == "" {
		return fmt.Errorf("coverage.html: file name is empty")
	}
	return nil
}
