package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Mode
	}{
		{name: "light selects light", input: "light", want: ModeLight},
		{name: "dark selects dark", input: "dark", want: ModeDark},
		{name: "unknown falls back to dark", input: "solarized", want: ModeDark},
		{name: "empty falls back to dark", input: "", want: ModeDark},
		{name: "case sensitive", input: "Light", want: ModeDark},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseMode(tt.input))
		})
	}
}

func TestForMode_PalettesDiffer(t *testing.T) {
	dark := ForMode(ModeDark)
	light := ForMode(ModeLight)

	assert.NotEqual(t, dark.Success.GetForeground(), light.Success.GetForeground())
	assert.NotEqual(t, dark.Error.GetForeground(), light.Error.GetForeground())
	assert.NotEqual(t, dark.Warn.GetForeground(), light.Warn.GetForeground())
}

func TestForMode_Deterministic(t *testing.T) {
	assert.Equal(t, ForMode(ModeDark), ForMode(ModeDark))
	assert.Equal(t, ForMode(ModeLight), ForMode(ModeLight))
}
