package version

import (
	"strings"

	"github.com/fatih/color"
)

// Version information for the decaf CLI.
// These variables can be overridden at build time via -ldflags.
var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

var (
	versionMajorColor = color.New(color.FgYellow, color.Bold)
	versionMinorColor = color.New(color.FgGreen, color.Bold)
	versionPatchColor = color.New(color.FgBlue, color.Bold)
)

// Colored renders Version with each numeric component in its own colour.
// Versions that are not major.minor.patch come back unchanged.
func Colored(enabled bool) string {
	v := strings.TrimSpace(Version)
	if !enabled {
		return v
	}
	core, suffix, _ := strings.Cut(v, "-")
	parts := strings.Split(core, ".")
	if len(parts) != 3 {
		return v
	}
	out := sprint(versionMajorColor, parts[0]) + "." +
		sprint(versionMinorColor, parts[1]) + "." +
		sprint(versionPatchColor, parts[2])
	if suffix != "" {
		out += "-" + suffix
	}
	return out
}

func sprint(c *color.Color, s string) string {
	forced := *c
	forced.EnableColor()
	return forced.Sprint(s)
}
