package pipeline

// State carries the pipeline outcome between stages.
//
// State is threaded through the stage functions by value and accumulated by
// the orchestrator, so no stage shares mutable globals with another.
type State struct {
	// AllPassed starts true and is flipped by [State.Fail]. It never
	// returns to true within one invocation; the run stage executes only
	// while it still holds.
	AllPassed bool

	// TestFile is the last test file the formatting stage discovered
	// (last match wins when several source files have tests). It gates
	// the test and coverage stages.
	TestFile string
}

// NewState returns the starting state for one pipeline invocation.
func NewState() State {
	return State{AllPassed: true}
}

// Fail returns the state marked failed. Failure is sticky: there is no
// operation that sets AllPassed back to true.
func (s State) Fail() State {
	s.AllPassed = false
	return s
}
