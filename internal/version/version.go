// Package version holds the build identity, settable at compile time
// via -ldflags.
package version

import (
	"fmt"
	"runtime"

	"github.com/Masterminds/semver/v3"
)

var (
	// Version is the semantic version of the application.
	Version = "0.1.0"

	// GitCommit is the git commit hash when the binary was built.
	GitCommit = "unknown"

	// BuildDate is the date when the binary was built.
	BuildDate = "unknown"
)

// Info bundles everything version introspection needs.
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"gitCommit"`
	BuildDate string `json:"buildDate"`
	GoVersion string `json:"goVersion"`
	Platform  string `json:"platform"`
}

// Get returns the current build's version info.
func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String renders the short form shown in the shell banner.
func (i Info) String() string {
	short := i.Version
	if sv, err := semver.NewVersion(i.Version); err == nil {
		short = sv.String()
	}
	if i.GitCommit != "unknown" && len(i.GitCommit) >= 7 {
		return fmt.Sprintf("v%s (%s)", short, i.GitCommit[:7])
	}
	return "v" + short
}

// Detailed renders the multi-line form for the version command.
func (i Info) Detailed() string {
	return fmt.Sprintf("awshell %s\n  commit:   %s\n  built:    %s\n  go:       %s\n  platform: %s",
		i.String(), i.GitCommit, i.BuildDate, i.GoVersion, i.Platform)
}

// IsValid reports whether Version parses as semver.
func IsValid() bool {
	_, err := semver.NewVersion(Version)
	return err == nil
}
