// Package terminal decides whether an output stream should carry ANSI
// escape sequences. Detection follows the conventional priority order:
// explicit command-line preference, CLICOLOR_FORCE, NO_COLOR, CI
// detection, a TTY check on the target stream, and TERM capability.
package terminal

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// Swappable for tests, which have no TTY to probe.
var isTerminal = term.IsTerminal

// ciEnvVars contains common CI environment variables
var ciEnvVars = []string{
	"CI",                     // Generic CI indicator
	"CONTINUOUS_INTEGRATION", // Generic CI indicator
	"GITHUB_ACTIONS",         // GitHub Actions
	"TRAVIS",                 // Travis CI
	"CIRCLECI",               // Circle CI
	"JENKINS_URL",            // Jenkins
	"BUILD_NUMBER",           // Jenkins/TeamCity/etc
	"GITLAB_CI",              // GitLab CI
	"APPVEYOR",               // AppVeyor
	"BUILDKITE",              // Buildkite
	"DRONE",                  // Drone CI
	"TF_BUILD",               // Azure DevOps
}

// colorTerms lists TERM values (or prefixes) that are known to render
// basic terminal colors.
var colorTerms = []string{
	"xterm",
	"screen",
	"tmux",
	"rxvt",
	"vt100",
	"vt220",
	"ansi",
	"linux",
	"cygwin",
	"putty",
}

// Preference captures explicit color requests from command-line flags.
// Flags outrank every environment variable.
type Preference struct {
	ForceColor   bool
	DisableColor bool
}

// SupportsColor reports whether the stream on fd should receive colored
// output. The streams are judged independently: a process whose stdout is
// piped can still color diagnostics on an interactive stderr.
func SupportsColor(fd int, pref Preference) bool {
	if pref.ForceColor {
		return true
	}
	if pref.DisableColor {
		return false
	}

	if isTruthy(os.Getenv("CLICOLOR_FORCE")) {
		return true
	}

	// NO_COLOR disables color whenever it is set, even to an empty value.
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}

	if isCIEnvironment() || !isTerminal(fd) || !termSupportsColor() {
		return false
	}

	// CLICOLOR only applies on an interactive stream.
	if cliColor := os.Getenv("CLICOLOR"); cliColor != "" {
		return isTruthy(cliColor)
	}

	return true
}

func isCIEnvironment() bool {
	for _, envVar := range ciEnvVars {
		if value := os.Getenv(envVar); value != "" {
			// CI=false and CI=0 explicitly opt out.
			if envVar == "CI" {
				return isCITruthy(value)
			}
			return true
		}
	}
	return false
}

func termSupportsColor() bool {
	name := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	if name == "" || name == "dumb" {
		return false
	}
	for _, colorTerm := range colorTerms {
		if name == colorTerm || strings.HasPrefix(name, colorTerm+"-") {
			return true
		}
	}
	// Unknown terminals default to no color: missing color support beats
	// writing escape sequences a terminal cannot interpret.
	return false
}

// isTruthy checks if a string value should be considered "true".
// Supports: "1", "true", "yes" (case insensitive)
func isTruthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}

// isCITruthy treats any value except "false", "0" and "no" as CI.
func isCITruthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "false", "0", "no":
		return false
	default:
		return true
	}
}
