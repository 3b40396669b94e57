package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirstAction(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want action
	}{
		{name: "no args", args: nil, want: actionNone},
		{name: "no action flags", args: []string{"-v", "-m", "light"}, want: actionNone},
		{name: "lint short", args: []string{"-l"}, want: actionLint},
		{name: "test short", args: []string{"-t"}, want: actionTest},
		{name: "run short", args: []string{"-r"}, want: actionRun},
		{name: "lint long", args: []string{"--lint"}, want: actionLint},
		{name: "test long", args: []string{"--test"}, want: actionTest},
		{name: "run long", args: []string{"--run"}, want: actionRun},
		{name: "first of several shorts", args: []string{"-t", "-l", "-r"}, want: actionTest},
		{name: "first of several longs", args: []string{"--run", "--lint"}, want: actionRun},
		{name: "mixed long then short", args: []string{"--lint", "-t"}, want: actionLint},
		{name: "verbose before action", args: []string{"-v", "-l"}, want: actionLint},
		{name: "cluster picks first letter", args: []string{"-tl"}, want: actionTest},
		{name: "cluster with verbose", args: []string{"-vl"}, want: actionLint},
		{name: "mode consumes next arg", args: []string{"-m", "light", "-t"}, want: actionTest},
		{name: "mode value looks like a flag target", args: []string{"-m", "light"}, want: actionNone},
		{name: "mode with attached value", args: []string{"-mlight", "-r"}, want: actionRun},
		{name: "long mode with equals", args: []string{"--mode=light", "-l"}, want: actionLint},
		{name: "long mode consumes next arg", args: []string{"--mode", "light", "-t"}, want: actionTest},
		{name: "action inside mode value is ignored", args: []string{"-mlr"}, want: actionNone},
		{name: "double dash stops scanning", args: []string{"--", "-l"}, want: actionNone},
		{name: "other long flags skipped", args: []string{"--init-config", "-t"}, want: actionTest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, firstAction(tt.args))
		})
	}
}
