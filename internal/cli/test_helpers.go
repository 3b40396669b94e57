package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"devloop/internal/config"
	"devloop/internal/tools"
)

// newTestApp builds an App over a temp directory seeded with the given
// files, a mock executor, and a capture buffer.
func newTestApp(t *testing.T, mock *tools.MockExecutor, files ...string) (*App, *bytes.Buffer, string) {
	t.Helper()

	dir := t.TempDir()
	for _, name := range files {
		err := os.WriteFile(filepath.Join(dir, name), []byte("package main\n"), 0644)
		if err != nil {
			t.Fatalf("failed to seed %s: %v", name, err)
		}
	}

	buf := &bytes.Buffer{}
	app := &App{
		Config: config.DefaultConfig(),
		Exec:   mock,
		Out:    buf,
		Dir:    dir,
	}
	return app, buf, dir
}

// execute runs the app with the given args, keeping RawArgs in sync the
// way production wiring does.
func execute(app *App, args ...string) ExecuteResult {
	app.RawArgs = args
	return app.Execute(args)
}
