package cli

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devloop/internal/tools"
)

func TestRoot_FullPipeline(t *testing.T) {
	mock := &tools.MockExecutor{}
	app, buf, _ := newTestApp(t, mock, "main.go")

	res := execute(app)

	assert.Equal(t, 0, res.ExitCode)
	assert.NoError(t, res.Err)
	assert.True(t, mock.Ran("gofmt -l -w main.go"))
	assert.True(t, mock.Ran("golangci-lint run"))
	assert.Contains(t, buf.String(), "no test file found")
}

func TestRoot_ExitsZeroOnFailedChecks(t *testing.T) {
	mock := &tools.MockExecutor{
		Outputs: map[string]string{"golangci-lint run": "main.go:1: issue\n"},
	}
	app, buf, _ := newTestApp(t, mock, "main.go")

	res := execute(app)

	// Failure is visible only in the banners, never in the exit code.
	assert.Equal(t, 0, res.ExitCode)
	assert.Contains(t, buf.String(), "✗ Checks failed")
}

func TestRoot_SingleActionFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCmd  string
		streamed bool
	}{
		{name: "lint only", args: []string{"-l"}, wantCmd: "golangci-lint run"},
		{name: "test only", args: []string{"-t"}, wantCmd: "go test -race ./..."},
		{name: "run only", args: []string{"-r"}, wantCmd: "go run main.go", streamed: true},
		{name: "first action wins: lint before test", args: []string{"-l", "-t"}, wantCmd: "golangci-lint run"},
		{name: "first action wins: test before lint", args: []string{"-t", "-l"}, wantCmd: "go test -race ./..."},
		{name: "first action wins: run before lint", args: []string{"-r", "-l"}, wantCmd: "go run main.go", streamed: true},
		{name: "combined cluster", args: []string{"-lt"}, wantCmd: "golangci-lint run"},
		{name: "mode value not mistaken for action", args: []string{"-m", "light", "-t", "-l"}, wantCmd: "go test -race ./..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &tools.MockExecutor{}
			app, _, _ := newTestApp(t, mock, "main.go")

			res := execute(app, tt.args...)

			require.Equal(t, 0, res.ExitCode)
			if tt.streamed {
				assert.Empty(t, mock.Invocations)
				require.Len(t, mock.Streamed, 1)
				assert.Equal(t, tt.wantCmd, mock.Streamed[0].String())
			} else {
				// Exactly one external command, nothing else touched.
				assert.Empty(t, mock.Streamed)
				require.Len(t, mock.Invocations, 1)
				assert.Equal(t, tt.wantCmd, mock.Invocations[0].String())
			}
		})
	}
}

func TestRoot_VerboseAppliesRegardlessOfPosition(t *testing.T) {
	// Two-pass parsing: unlike the original script, -v works even after
	// the action flag it modifies.
	for _, args := range [][]string{{"-v", "-l"}, {"-l", "-v"}, {"-lv"}, {"-vl"}} {
		mock := &tools.MockExecutor{}
		app, _, _ := newTestApp(t, mock, "main.go")

		res := execute(app, args...)

		require.Equal(t, 0, res.ExitCode, "args %v", args)
		require.Len(t, mock.Invocations, 1, "args %v", args)
		assert.Equal(t, "golangci-lint run -v", mock.Invocations[0].String(), "args %v", args)
	}
}

func TestRoot_UnknownFlagPrintsUsageAndExitsZero(t *testing.T) {
	mock := &tools.MockExecutor{}
	app, buf, _ := newTestApp(t, mock, "main.go")

	res := execute(app, "-x")

	assert.Equal(t, 0, res.ExitCode)
	assert.NoError(t, res.Err)
	assert.Contains(t, buf.String(), "Usage:")
	assert.Empty(t, mock.Invocations, "no stage runs after a usage dump")
}

func TestRoot_MissingModeValuePrintsUsage(t *testing.T) {
	mock := &tools.MockExecutor{}
	app, buf, _ := newTestApp(t, mock, "main.go")

	res := execute(app, "-m")

	assert.Equal(t, 0, res.ExitCode)
	assert.Contains(t, buf.String(), "Usage:")
	assert.Empty(t, mock.Invocations)
}

func TestRoot_PositionalArgsPrintUsage(t *testing.T) {
	mock := &tools.MockExecutor{}
	app, buf, _ := newTestApp(t, mock, "main.go")

	res := execute(app, "lint")

	assert.Equal(t, 0, res.ExitCode)
	assert.Contains(t, buf.String(), "Usage:")
	assert.Empty(t, mock.Invocations)
}

func TestRoot_InvalidModeFallsBackToDark(t *testing.T) {
	// -m with an unrecognized value configures the default theme and the
	// pipeline continues; it never errors or exits early.
	mock := &tools.MockExecutor{}
	app, buf, _ := newTestApp(t, mock, "main.go")

	res := execute(app, "-m", "sepia")

	assert.Equal(t, 0, res.ExitCode)
	assert.True(t, mock.Ran("golangci-lint run"))
	assert.Contains(t, buf.String(), "✓ lint passed")
}

// chdir is a stand-in for t.Chdir (added in Go 1.24) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })
}

func TestRoot_InitConfig(t *testing.T) {
	chdir(t, t.TempDir())
	mock := &tools.MockExecutor{}
	app, buf, _ := newTestApp(t, mock)

	res := execute(app, "--init-config")

	assert.Equal(t, 0, res.ExitCode)
	assert.Contains(t, buf.String(), "wrote devloop.yaml")
	_, err := os.Stat("devloop.yaml")
	assert.NoError(t, err)
	assert.Empty(t, mock.Invocations, "init-config runs no tools")
}

func TestRoot_InitConfig_ExistingFileFails(t *testing.T) {
	chdir(t, t.TempDir())
	require.NoError(t, os.WriteFile("devloop.yaml", []byte("mode: light\n"), 0644))
	mock := &tools.MockExecutor{}
	app, buf, _ := newTestApp(t, mock)

	res := execute(app, "--init-config")

	assert.Equal(t, 1, res.ExitCode)
	code, ok := IsExitError(res.Err)
	require.True(t, ok)
	assert.Equal(t, 1, code)
	assert.Contains(t, buf.String(), "already exists")
}

func TestRoot_Version(t *testing.T) {
	mock := &tools.MockExecutor{}
	app, buf, _ := newTestApp(t, mock)

	res := execute(app, "--version")

	assert.Equal(t, 0, res.ExitCode)
	assert.Contains(t, buf.String(), version)
	assert.Empty(t, mock.Invocations)
}
