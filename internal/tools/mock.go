package tools

import (
	"context"
	"strings"
)

// MockExecutor implements [Executor] without spawning real processes.
//
// Canned Capture output is looked up first by the full command line
// ("go test -race ./..."), then by the bare tool name. Every call is
// recorded in Invocations so tests can assert on exactly which tools ran
// and in what order.
type MockExecutor struct {
	// Invocations records every Capture call in order.
	Invocations []Invocation

	// Streamed records every Stream call in order.
	Streamed []Invocation

	// Outputs maps a full command line or a tool name to canned Capture
	// output. Commands not present capture empty output.
	Outputs map[string]string

	// CaptureErr, when set, is returned by every Capture call.
	CaptureErr error

	// StreamExit is the exit code returned by every Stream call.
	StreamExit int
}

// Capture records the invocation and returns the canned output for it.
func (m *MockExecutor) Capture(_ context.Context, name string, args ...string) (string, error) {
	inv := Invocation{Name: name, Args: args}
	m.Invocations = append(m.Invocations, inv)
	if m.CaptureErr != nil {
		return "", m.CaptureErr
	}
	if out, ok := m.Outputs[inv.String()]; ok {
		return out, nil
	}
	return m.Outputs[name], nil
}

// Stream records the invocation and returns StreamExit.
func (m *MockExecutor) Stream(_ context.Context, name string, args ...string) int {
	m.Streamed = append(m.Streamed, Invocation{Name: name, Args: args})
	return m.StreamExit
}

// CommandLines returns the recorded Capture invocations as command lines,
// a convenience for test assertions.
func (m *MockExecutor) CommandLines() []string {
	lines := make([]string, len(m.Invocations))
	for i, inv := range m.Invocations {
		lines[i] = inv.String()
	}
	return lines
}

// Ran reports whether any recorded invocation (captured or streamed)
// contains the given substring.
func (m *MockExecutor) Ran(substr string) bool {
	for _, inv := range append(append([]Invocation{}, m.Invocations...), m.Streamed...) {
		if strings.Contains(inv.String(), substr) {
			return true
		}
	}
	return false
}
