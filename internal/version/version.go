package version

import "github.com/fatih/color"

// Build metadata for the fretlint CLI, overridable at link time via
// -ldflags "-X fretlint/internal/version.GitCommit=... ".

const (
	major      = "0"
	minor      = "1"
	patch      = "0"
	prerelease = "dev"
)

var (
	majorColor = color.New(color.FgYellow, color.Bold)
	minorColor = color.New(color.FgGreen, color.Bold)
	patchColor = color.New(color.FgBlue, color.Bold)

	// Version is the colorized semantic version of the CLI.
	Version = renderVersion()

	// GitCommit is the git hash the binary was built from, when recorded.
	GitCommit = ""

	// BuildDate is the build timestamp in ISO-8601, when recorded.
	BuildDate = ""
)

func renderVersion() string {
	v := majorColor.Sprint(major) + "." + minorColor.Sprint(minor) + "." + patchColor.Sprint(patch)
	if prerelease != "" {
		v += "-" + prerelease
	}
	return v
}
