// Package tools spawns the external developer tools that devloop wraps:
// the formatter, linter, test runner, coverage tool, and program runner.
//
// Key types:
//   - [Executor]: interface for running external tools
//   - [ExecExecutor]: production implementation over os/exec
//   - [MockExecutor]: test double that records invocations without spawning
//
// Stages decide pass/fail from captured text, never from exit codes, so
// [Executor.Capture] deliberately swallows non-zero exit statuses.
package tools

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// Invocation records a single external tool invocation for inspection.
type Invocation struct {
	// Name is the tool binary name.
	Name string

	// Args are the arguments passed to the tool.
	Args []string
}

// String renders the invocation as the command line it represents.
func (i Invocation) String() string {
	s := i.Name
	for _, a := range i.Args {
		s += " " + a
	}
	return s
}

// Executor runs external tools.
//
// Capture blocks until the tool completes and returns its entire buffered
// standard output. A tool exiting non-zero is not an error at this layer:
// the caller inspects the captured text. Capture returns an error only when
// the tool could not be spawned at all (missing binary, bad working
// directory).
//
// Stream runs the tool with stdin, stdout, and stderr connected directly to
// the calling process and returns the tool's exit code. Nothing is captured.
type Executor interface {
	Capture(ctx context.Context, name string, args ...string) (string, error)
	Stream(ctx context.Context, name string, args ...string) int
}

// ExecExecutor implements [Executor] using os/exec.
type ExecExecutor struct {
	// Dir is the working directory for spawned tools. Empty means the
	// current process working directory.
	Dir string
}

// NewExecutor returns an [ExecExecutor] running tools in the current
// working directory.
func NewExecutor() *ExecExecutor {
	return &ExecExecutor{}
}

// Capture runs the tool and returns its buffered standard output.
//
// The tool's standard error passes through to the caller's stderr so
// diagnostics remain visible; only stdout participates in pass/fail
// decisions.
func (e *ExecExecutor) Capture(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = e.Dir
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// Non-zero exit: the output is still the answer.
			return stdout.String(), nil
		}
		return stdout.String(), fmt.Errorf("running %s: %w", name, err)
	}
	return stdout.String(), nil
}

// Stream runs the tool fully transparently and returns its exit code.
func (e *ExecExecutor) Stream(ctx context.Context, name string, args ...string) int {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = e.Dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	fmt.Fprintf(os.Stderr, "devloop: running %s: %v\n", name, err)
	return 1
}
