// Package cli wires devloop's command-line surface: flag parsing, action
// dispatch, and process exit behavior.
//
// The surface is a single root command carrying the classic short flags:
// -m selects the color mode, -l/-t/-r run exactly one action and exit, and
// -v requests verbose tool output for -l and -t. When several action flags
// are combined, the first one in raw argument order wins. Unknown or
// malformed flags print usage and exit 0, and the full pipeline itself
// always exits 0 regardless of outcome; pass/fail lives in the printed
// banners alone.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"devloop/internal/config"
	"devloop/internal/tools"
)

// App is the dependency container for CLI commands.
//
// Production wiring comes from [Execute]; tests build an App by hand with
// a [tools.MockExecutor] and a buffer for Out.
type App struct {
	// Config is the loaded configuration.
	Config *config.Config

	// Exec runs the external tools.
	Exec tools.Executor

	// Out receives all printer output.
	Out io.Writer

	// Dir is the working directory the pipeline operates on.
	Dir string

	// RawArgs are the unparsed CLI arguments, used to resolve which
	// action flag came first.
	RawArgs []string
}

// ExecuteResult carries the outcome of one CLI invocation.
type ExecuteResult struct {
	// ExitCode is the process exit code to use.
	ExitCode int

	// Err is the underlying error, nil on success and for usage dumps.
	Err error
}

// RunWithConfig executes the CLI against the given config and argument
// list, returning the result instead of terminating the process.
func RunWithConfig(cfg *config.Config, args []string, out io.Writer, dir string) ExecuteResult {
	app := &App{
		Config:  cfg,
		Exec:    tools.NewExecutor(),
		Out:     out,
		Dir:     dir,
		RawArgs: args,
	}
	return app.Execute(args)
}

// Execute runs the root command with the given arguments and maps errors
// to exit codes. Usage dumps exit 0, faithful to the original contract.
func (a *App) Execute(args []string) ExecuteResult {
	cmd := NewRootCommand(a)
	cmd.SetArgs(args)
	cmd.SetOut(a.Out)
	cmd.SetErr(a.Out)

	if err := cmd.Execute(); err != nil {
		if errors.Is(err, ErrUsage) {
			return ExecuteResult{ExitCode: 0}
		}
		if code, ok := IsExitError(err); ok {
			return ExecuteResult{ExitCode: code, Err: err}
		}
		return ExecuteResult{ExitCode: 1, Err: err}
	}
	return ExecuteResult{ExitCode: 0}
}

// Execute is the process entry point used by main.
func Execute() int {
	cfg, err := config.NewLoader().Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "devloop: %v\n", err)
		return 1
	}

	res := RunWithConfig(cfg, os.Args[1:], os.Stdout, ".")
	if res.Err != nil {
		fmt.Fprintf(os.Stderr, "devloop: %v\n", res.Err)
	}
	return res.ExitCode
}
