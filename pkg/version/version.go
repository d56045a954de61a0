// Package version reports build information injected with -ldflags.
package version

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

//nolint:gochecknoglobals // Set at build time via -ldflags "-X".
var (
	version   = "0.0.0-dev"
	gitCommit = "unknown"
	buildDate = "unknown"
)

// Name is the binary name.
const Name = "impactcalc"

// GetVersion returns the build version without a leading "v".
func GetVersion() string {
	if v, err := semver.NewVersion(version); err == nil {
		return v.String()
	}
	return version
}

// GetGitCommit returns the commit the binary was built from.
func GetGitCommit() string {
	return gitCommit
}

// GetBuildDate returns the build timestamp.
func GetBuildDate() string {
	return buildDate
}

// Semver parses the build version.
func Semver() (*semver.Version, error) {
	v, err := semver.NewVersion(version)
	if err != nil {
		return nil, fmt.Errorf("build version %q is not semver: %w", version, err)
	}
	return v, nil
}

// IsDevelopment reports whether this is an untagged build: an unparseable
// version or one with a prerelease suffix.
func IsDevelopment() bool {
	v, err := Semver()
	if err != nil {
		return true
	}
	return v.Prerelease() != ""
}

// Info returns a one-line description for --version output.
func Info() string {
	return fmt.Sprintf("%s %s (commit %s, built %s)", Name, GetVersion(), gitCommit, buildDate)
}
