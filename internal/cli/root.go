package cli

import (
	"github.com/spf13/cobra"

	"devloop/internal/config"
	"devloop/internal/output"
	"devloop/internal/pipeline"
	"devloop/internal/theme"
)

// version is reported by --version.
const version = "1.0.0"

type rootOptions struct {
	mode       string
	lint       bool
	test       bool
	run        bool
	verbose    bool
	initConfig bool
}

// NewRootCommand builds the devloop root command over the given [App].
func NewRootCommand(app *App) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "devloop",
		Short: "Format, lint, test, and run the Go project in the current directory",
		Long: `devloop wraps the everyday Go check loop for a single project directory:
it formats every source file in place, lints, runs the tests with the race
detector, measures coverage, and finally runs the program when every check
passed.

Single-action flags short-circuit the pipeline:
  -l    run the linter only, then exit
  -t    run the tests only, then exit
  -r    run the program only, then exit

All outcomes are reported through colorized banners; the exit code is
always 0.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				cmd.Println(cmd.UsageString())
				return ErrUsage
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.run(cmd, opts)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&opts.mode, "mode", "m", "", `color mode: "dark" or "light"`)
	fl.BoolVarP(&opts.lint, "lint", "l", false, "run the linter only, then exit")
	fl.BoolVarP(&opts.test, "test", "t", false, "run the tests only, then exit")
	fl.BoolVarP(&opts.run, "run", "r", false, "run the program only, then exit")
	fl.BoolVarP(&opts.verbose, "verbose", "v", false, "verbose linter and test output (with -l and -t)")
	fl.BoolVar(&opts.initConfig, "init-config", false, "write a starter devloop.yaml and exit")

	// Unknown or malformed flags print usage and exit 0, matching the
	// original tool's contract.
	cmd.SetFlagErrorFunc(func(c *cobra.Command, _ error) error {
		c.Println(c.UsageString())
		return ErrUsage
	})

	return cmd
}

// run dispatches one invocation: config bootstrap, a single action, or the
// full pipeline.
func (a *App) run(cmd *cobra.Command, opts *rootOptions) error {
	mode := theme.ParseMode(a.Config.Mode)
	if opts.mode != "" {
		mode = theme.ParseMode(opts.mode)
	}
	printer := output.NewPrinterWithWriter(a.Out, theme.ForMode(mode))

	if opts.initConfig {
		path := config.ConfigFileName + ".yaml"
		if err := config.WriteDefault(path); err != nil {
			printer.Errorf("%v", err)
			return NewExitError(1)
		}
		printer.Successf("wrote %s", path)
		return nil
	}

	pipe := pipeline.New(a.Config, a.Exec, printer, a.Dir)
	pipe.SetVerbose(opts.verbose)
	ctx := cmd.Context()

	// When action flags are combined, only the first one in raw argument
	// order takes effect; the rest are never consulted.
	switch firstAction(a.RawArgs) {
	case actionLint:
		pipe.LintOnly(ctx)
		return nil
	case actionTest:
		pipe.TestOnly(ctx)
		return nil
	case actionRun:
		pipe.RunOnly(ctx)
		return nil
	}

	pipe.Run(ctx)
	return nil
}
