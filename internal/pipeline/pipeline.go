// Package pipeline implements the devloop check pipeline:
// format -> lint -> test -> coverage -> run.
//
// Stages communicate through a value-threaded [State] with sticky failure.
// Pass/fail is decided from each tool's captured text output, never from
// its exit status, and the pipeline itself never terminates the process:
// the caller always exits 0, reporting outcome through banners only.
//
// Key types:
//   - [Pipeline] runs the full sequence or a single isolated action
//   - [State] carries the sticky all-passed flag and the discovered test file
package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"devloop/internal/config"
	"devloop/internal/output"
	"devloop/internal/tools"
)

const (
	// failMarker in test runner output means at least one test failed.
	failMarker = "FAIL:"

	// coverageMarker must appear in coverage output for the project to
	// count as fully covered.
	coverageMarker = "100.0"
)

// Pipeline runs the developer checks for one working directory.
//
// Use [New] to create an instance, then [Pipeline.Run] for the full
// sequence or one of LintOnly, TestOnly, RunOnly for the isolated actions
// behind the -l, -t, and -r flags.
type Pipeline struct {
	cfg     *config.Config
	exec    tools.Executor
	printer *output.Printer
	dir     string
	verbose bool
}

// New creates a Pipeline over the given working directory.
func New(cfg *config.Config, exec tools.Executor, printer *output.Printer, dir string) *Pipeline {
	return &Pipeline{
		cfg:     cfg,
		exec:    exec,
		printer: printer,
		dir:     dir,
	}
}

// SetVerbose enables verbose tool output for the single-action paths.
// The full pipeline's lint stage never forwards verbosity; only the
// isolated -l and -t actions do.
func (p *Pipeline) SetVerbose(v bool) {
	p.verbose = v
}

// Run executes the full pipeline and returns the final state.
//
// The sequence is: enumerate sources, format each file, lint, then test
// and coverage when a test file was discovered (coverage runs even when
// tests failed), and finally the program itself if every check passed.
// An empty source set flips the state to failed and skips everything but
// the final banner.
func (p *Pipeline) Run(ctx context.Context) State {
	start := time.Now()
	state := NewState()

	sources, err := Discover(p.dir)
	if err != nil {
		p.printer.Errorf("%v", err)
		return state.Fail()
	}

	if len(sources) == 0 {
		p.printer.Warnf("no Go source files in %s", p.dir)
		state = state.Fail()
	} else {
		state = p.formatStage(ctx, sources, state)
		state = p.lintStage(ctx, state)
		if state.TestFile == "" {
			p.printer.Warnf("no test file found, skipping tests and coverage")
		} else {
			state = p.testStage(ctx, state)
			state = p.coverStage(ctx, state)
		}
	}

	total := time.Since(start).Round(time.Millisecond)
	if state.AllPassed {
		p.runStage(ctx)
		p.printer.SuccessBanner("All checks passed", "Total: "+total.String())
	} else {
		p.printer.ErrorBanner("Checks failed", "Total: "+total.String())
	}
	return state
}

// formatStage formats every source file in place and records the last
// source file whose conventional test file exists on disk.
func (p *Pipeline) formatStage(ctx context.Context, sources []string, state State) State {
	p.printer.Divider("format")
	for _, src := range sources {
		p.printer.Infof("formatting %s", src)
		name, args := command(p.cfg.Tools.Format, src)
		if _, err := p.exec.Capture(ctx, name, args...); err != nil {
			p.printer.Errorf("%s: %v", src, err)
		}
		p.printer.Infof("formatted %s", src)

		if test := TestFileFor(src); fileExists(filepath.Join(p.dir, test)) {
			state.TestFile = test
		}
	}
	return state
}

// lintStage runs the linter over the project. Any captured output counts
// as findings; the linter's exit code is not consulted.
func (p *Pipeline) lintStage(ctx context.Context, state State) State {
	p.printer.Divider("lint")
	return p.lintCheck(ctx, false, state)
}

func (p *Pipeline) lintCheck(ctx context.Context, verbose bool, state State) State {
	name, args := command(p.cfg.Tools.Lint)
	if verbose {
		args = append(args, "-v")
	}
	out, err := p.exec.Capture(ctx, name, args...)
	if err != nil {
		p.printer.Errorf("lint: %v", err)
		return state.Fail()
	}
	if out != "" {
		p.printer.Output(out)
		p.printer.ErrorBanner("lint found issues")
		return state.Fail()
	}
	p.printer.SuccessBanner("lint passed")
	return state
}

// testStage runs the race-enabled test suite across all packages. Output
// containing the failure marker flips the state; the exit code does not.
func (p *Pipeline) testStage(ctx context.Context, state State) State {
	p.printer.Divider("test")
	return p.testCheck(ctx, false, state)
}

func (p *Pipeline) testCheck(ctx context.Context, verbose bool, state State) State {
	name, args := command(p.cfg.Tools.Test)
	if verbose {
		args = append(args, "-v")
	}
	out, err := p.exec.Capture(ctx, name, args...)
	if err != nil {
		p.printer.Errorf("test: %v", err)
		return state.Fail()
	}
	if strings.Contains(out, failMarker) {
		p.printer.Output(out)
		p.printer.ErrorBanner("tests failed")
		return state.Fail()
	}
	p.printer.SuccessBanner("tests passed")
	return state
}

// coverStage measures coverage across all packages, writing the profile to
// the configured file. Anything short of full coverage fails the pipeline
// and generates an HTML report next to the profile. Both artifacts are
// left on disk.
func (p *Pipeline) coverStage(ctx context.Context, state State) State {
	p.printer.Divider("coverage")
	name, args := command(p.cfg.Tools.Cover, "-coverprofile="+p.cfg.Coverage.Profile)
	out, err := p.exec.Capture(ctx, name, args...)
	if err != nil {
		p.printer.Errorf("coverage: %v", err)
		return state.Fail()
	}
	if !strings.Contains(out, coverageMarker) {
		p.printer.Output(out)
		htmlName, htmlArgs := command(p.cfg.Tools.CoverHTML,
			"-html="+p.cfg.Coverage.Profile, "-o", p.cfg.Coverage.HTML)
		if _, err := p.exec.Capture(ctx, htmlName, htmlArgs...); err != nil {
			p.printer.Errorf("coverage report: %v", err)
		}
		p.printer.ErrorBanner("coverage below 100%", "Report: "+p.cfg.Coverage.HTML)
		return state.Fail()
	}
	p.printer.SuccessBanner("coverage at 100%")
	return state
}

// runStage launches the program entry point with live, uncaptured output.
func (p *Pipeline) runStage(ctx context.Context) int {
	p.printer.Divider("run")
	name, args := command(p.cfg.Tools.Run, p.cfg.Entry)
	return p.exec.Stream(ctx, name, args...)
}

// LintOnly runs the linter in isolation (the -l flag). Verbose mode
// forwards -v to the linter, which the in-pipeline lint stage never does.
func (p *Pipeline) LintOnly(ctx context.Context) State {
	return p.lintCheck(ctx, p.verbose, NewState())
}

// TestOnly runs the test suite in isolation (the -t flag).
func (p *Pipeline) TestOnly(ctx context.Context) State {
	return p.testCheck(ctx, p.verbose, NewState())
}

// RunOnly launches the program in isolation (the -r flag) and returns the
// program's exit code. The caller ignores it: single actions exit 0.
func (p *Pipeline) RunOnly(ctx context.Context) int {
	name, args := command(p.cfg.Tools.Run, p.cfg.Entry)
	return p.exec.Stream(ctx, name, args...)
}

// command splits a configured argv vector into binary name and arguments,
// appending any stage-specific extras.
func command(argv []string, extra ...string) (string, []string) {
	if len(argv) == 0 {
		return "", extra
	}
	args := make([]string, 0, len(argv)-1+len(extra))
	args = append(args, argv[1:]...)
	args = append(args, extra...)
	return argv[0], args
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
