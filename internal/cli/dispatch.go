package cli

import "strings"

// action identifies a single-shot action selected by a CLI flag.
type action int

const (
	actionNone action = iota
	actionLint
	actionTest
	actionRun
)

// firstAction returns the action flag that appears first in raw argument
// order, scanning both long forms and shorthand clusters.
//
// pflag parses all flags up front, so by the time dispatch happens the
// boolean values alone cannot say which action flag came first. The
// original tool dispatched on flags in encounter order and exited after
// the first action; this scan preserves that ordering rule on top of the
// two-pass parse.
func firstAction(args []string) action {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return actionNone
		case arg == "--lint":
			return actionLint
		case arg == "--test":
			return actionTest
		case arg == "--run":
			return actionRun
		case strings.HasPrefix(arg, "--"):
			// --mode consumes the next argument unless the value is
			// attached with '='.
			if arg == "--mode" {
				i++
			}
		case strings.HasPrefix(arg, "-") && len(arg) > 1:
			a, consumedNext := scanShorthands(arg[1:])
			if a != actionNone {
				return a
			}
			if consumedNext {
				i++
			}
		}
	}
	return actionNone
}

// scanShorthands walks a shorthand cluster like "-vl" or "-mlight" and
// returns the first action letter found. consumedNext reports that the
// cluster ended with -m and its value is the following argument.
func scanShorthands(letters string) (a action, consumedNext bool) {
	for j := 0; j < len(letters); j++ {
		switch letters[j] {
		case 'l':
			return actionLint, false
		case 't':
			return actionTest, false
		case 'r':
			return actionRun, false
		case 'm':
			// -m takes a value: the rest of this cluster, or the next
			// argument when nothing follows.
			if j == len(letters)-1 {
				return actionNone, true
			}
			return actionNone, false
		}
	}
	return actionNone, false
}
