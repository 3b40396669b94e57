package pipeline

import (
	"fmt"
	"os"
	"strings"
)

// Discover returns the Go source file names in dir, in sorted order.
//
// Only the directory itself is scanned; subdirectories are the test and
// coverage tools' business, which already walk all packages.
func Discover(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}

	var sources []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(entry.Name(), ".go") {
			sources = append(sources, entry.Name())
		}
	}
	return sources, nil
}

// TestFileFor returns the conventional test file name for a source file:
// "main.go" becomes "main_test.go".
func TestFileFor(src string) string {
	return strings.TrimSuffix(src, ".go") + "_test.go"
}
