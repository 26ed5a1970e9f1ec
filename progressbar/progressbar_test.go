package progressbar

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderDefaults(t *testing.T) {
	got := Render(0.5)

	expected := "\rProgress: [" +
		strings.Repeat("#", 25) + strings.Repeat("-", 25) +
		"] 50%   \r"
	assert.Equal(t, expected, got)
}

func TestRenderRounding(t *testing.T) {
	got := Render(0.478)

	// 50 * 0.478 rounds to 24 blocks, 47.8% rounds to 48%.
	expected := "\rProgress: [" +
		strings.Repeat("#", 24) + strings.Repeat("-", 26) +
		"] 48%   \r"
	assert.Equal(t, expected, got)
}

func TestRenderClamping(t *testing.T) {
	tests := []struct {
		name     string
		progress float64
		expected string
	}{
		{
			name:     "negative halts with an empty bar",
			progress: -0.5,
			expected: "\rProgress: [" + strings.Repeat("-", 50) + "] 0%  Halt...\r\n",
		},
		{
			name:     "exactly one is done",
			progress: 1,
			expected: "\rProgress: [" + strings.Repeat("#", 50) + "] 100%  Done...\r\n",
		},
		{
			name:     "above one clamps to done",
			progress: 2.5,
			expected: "\rProgress: [" + strings.Repeat("#", 50) + "] 100%  Done...\r\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Render(tt.progress))
		})
	}
}

func TestRenderCustomWidthAndLabel(t *testing.T) {
	got := Render(0.5, WithWidth(10), WithLabel("Copy"))
	assert.Equal(t, "\rCopy: [#####-----] 50%   \r", got)
}

func TestRenderNegativeWidth(t *testing.T) {
	got := Render(0.5, WithWidth(-3))
	assert.Equal(t, "\rProgress: [] 50%   \r", got)
}

func TestWithTerminalWidth(t *testing.T) {
	orig := terminalSize
	defer func() { terminalSize = orig }()
	terminalSize = func(int) (int, int, error) { return 80, 24, nil }

	got := Render(0, WithTerminalWidth(1))

	// 80 columns minus the 8-cell label and 11 cells of decoration.
	assert.Contains(t, got, "["+strings.Repeat("-", 61)+"]")
}

func TestWithTerminalWidthWideLabel(t *testing.T) {
	orig := terminalSize
	defer func() { terminalSize = orig }()
	terminalSize = func(int) (int, int, error) { return 80, 24, nil }

	// CJK label runes occupy two display cells each.
	got := Render(0, WithTerminalWidth(1), WithLabel("進捗"))
	assert.Contains(t, got, "["+strings.Repeat("-", 65)+"]")
}

func TestWithTerminalWidthSeesFinalLabel(t *testing.T) {
	orig := terminalSize
	defer func() { terminalSize = orig }()
	terminalSize = func(int) (int, int, error) { return 80, 24, nil }

	// Option order must not matter for the fitted width.
	got := Render(0, WithTerminalWidth(1), WithLabel("X"))
	assert.Contains(t, got, "["+strings.Repeat("-", 68)+"]")
}

func TestWithTerminalWidthNotATerminal(t *testing.T) {
	orig := terminalSize
	defer func() { terminalSize = orig }()
	terminalSize = func(int) (int, int, error) { return 0, 0, errors.New("not a terminal") }

	got := Render(0, WithTerminalWidth(1))
	assert.Contains(t, got, "["+strings.Repeat("-", 50)+"]", "falls back to the default width")
}

func TestFitWidthClampsToMinimum(t *testing.T) {
	assert.Equal(t, minWidth, fitWidth(20, "Progress"))
	assert.Equal(t, minWidth, fitWidth(0, ""))
}

func TestFprint(t *testing.T) {
	var buf bytes.Buffer

	err := Fprint(&buf, 0.25, WithWidth(4), WithLabel("Sync"))
	require.NoError(t, err)
	assert.Equal(t, "\rSync: [#---] 25%   \r", buf.String())
}

type failWriter struct {
	err error
}

func (w failWriter) Write([]byte) (int, error) {
	return 0, w.err
}

func TestFprintWriteError(t *testing.T) {
	errBroken := errors.New("broken pipe")

	err := Fprint(failWriter{err: errBroken}, 0.5)
	require.ErrorIs(t, err, errBroken)
}
