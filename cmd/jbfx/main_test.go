package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jblib/jblib-go/colorize"
)

func runCapture(t *testing.T, args []string, stdin string) (int, string, string) {
	t.Helper()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	code := run(args, strings.NewReader(stdin), stdout, stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunStyleFromArgs(t *testing.T) {
	code, stdout, stderr := runCapture(t, []string{"-fg", "red", "hello"}, "")

	require.Equal(t, 0, code)
	assert.Equal(t, "\033[31mhello\033[0m\n", stdout)
	assert.Empty(t, stderr)
}

func TestRunJoinsTextArguments(t *testing.T) {
	code, stdout, _ := runCapture(t, []string{"-fg", "red", "hello", "world"}, "")

	require.Equal(t, 0, code)
	assert.Equal(t, "\033[31mhello world\033[0m\n", stdout)
}

func TestRunReadsStdin(t *testing.T) {
	code, stdout, stderr := runCapture(t, []string{"-effect", "rainbow"}, "AB\n")

	require.Equal(t, 0, code)
	assert.Equal(t, "\033[38;2;255;0;0mA\033[38;2;255;0;255mB\033[0m\n", stdout)
	assert.Empty(t, stderr)
}

func TestRunGradientWithTripleFlag(t *testing.T) {
	code, stdout, _ := runCapture(t, []string{"-effect", "gradient", "-start", "red", "-end", "0,0,205", "AB"}, "")

	require.Equal(t, 0, code)
	assert.Equal(t, "\033[38;2;205;0;0mA\033[38;2;0;0;205mB\033[0m\n", stdout)
}

func TestRunCycleWithRepeatedColorFlags(t *testing.T) {
	code, stdout, _ := runCapture(t, []string{"-effect", "cycle", "-color", "red", "-color", "0,0,255", "ABC"}, "")

	require.Equal(t, 0, code)
	assert.Equal(t, "\033[38;2;205;0;0mA\033[38;2;0;0;255mB\033[38;2;205;0;0mC\033[0m\n", stdout)
}

func TestRunStyleAttributes(t *testing.T) {
	code, stdout, _ := runCapture(t, []string{"-bold", "-underline", "x"}, "")

	require.Equal(t, 0, code)
	assert.Equal(t, "\033[1;4mx\033[0m\n", stdout)
}

func TestRunPulseWritesFrames(t *testing.T) {
	code, stdout, stderr := runCapture(t,
		[]string{"-effect", "pulse", "-start", "red", "-end", "black", "-cycles", "1", "-steps", "1", "-speed", "1ns", "HI"}, "")

	require.Equal(t, 0, code)
	expected := "\r\033[38;2;205;0;0mHI\033[0m" +
		"\r\033[38;2;0;0;0mHI\033[0m" +
		"\r\033[38;2;205;0;0mHI\033[0m\n"
	assert.Equal(t, expected, stdout)
	assert.Empty(t, stderr)
}

func TestRunUnknownEffect(t *testing.T) {
	code, _, stderr := runCapture(t, []string{"-effect", "sparkle", "x"}, "")

	require.Equal(t, 1, code)
	assert.Contains(t, stderr, "Usage:")
	assert.Contains(t, stderr, `unknown effect "sparkle"`)
}

func TestRunGradientRequiresStartAndEnd(t *testing.T) {
	code, _, stderr := runCapture(t, []string{"-effect", "gradient", "x"}, "")

	require.Equal(t, 1, code)
	assert.Contains(t, stderr, "-start and -end are required")
}

func TestRunCycleRequiresColors(t *testing.T) {
	code, _, stderr := runCapture(t, []string{"-effect", "cycle", "x"}, "")

	require.Equal(t, 1, code)
	assert.Contains(t, stderr, "at least one -color")
}

func TestRunRejectsMalformedTriple(t *testing.T) {
	code, _, stderr := runCapture(t, []string{"-fg", "1,2", "x"}, "")

	require.Equal(t, 1, code)
	assert.Contains(t, stderr, "color must be a registry name")
}

func TestRunRejectsNegativeCycles(t *testing.T) {
	code, _, stderr := runCapture(t, []string{"-effect", "pulse", "-start", "red", "-end", "black", "-cycles", "-1", "x"}, "")

	require.Equal(t, 1, code)
	assert.Contains(t, stderr, `field "cycles" must not be negative`)
}

func TestRunUnknownColorName(t *testing.T) {
	code, stdout, stderr := runCapture(t, []string{"-fg", "ultraviolet", "x"}, "")

	require.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, `unknown color: "ultraviolet"`)
}

func TestRunHelpExitsZero(t *testing.T) {
	code, _, stderr := runCapture(t, []string{"-h"}, "")

	require.Equal(t, 0, code)
	assert.Contains(t, stderr, "Usage:")
}

func TestParseColorFlag(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected colorize.ColorSpec
		wantErr  bool
	}{
		{name: "registry name", input: "red", expected: colorize.Name("red")},
		{name: "name with space", input: "Bright Blue", expected: colorize.Name("Bright Blue")},
		{name: "triple", input: "205,0,0", expected: colorize.RGB{R: 205, G: 0, B: 0}},
		{name: "triple with spaces", input: "205, 0, 0", expected: colorize.RGB{R: 205, G: 0, B: 0}},
		{name: "two components", input: "1,2", wantErr: true},
		{name: "non-numeric component", input: "a,b,c", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := parseColorFlag(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, errInvalidColorValue)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, spec)
		})
	}
}
