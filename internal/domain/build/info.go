// Package build provides domain entities for build information.
package build

import "runtime/debug"

// Info holds build-time information injected via ldflags.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// WithModuleVersion fills an unset Version from the module build info, so
// `go install ...@vX` binaries report their tag.
func (i Info) WithModuleVersion() Info {
	if i.Version != "" && i.Version != "dev" {
		return i
	}
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		i.Version = bi.Main.Version
	}
	return i
}

// Contributors returns the list of project contributors.
func Contributors() []string {
	return []string{"bnema"}
}

// RepoURL returns the GitHub repository URL.
func RepoURL() string {
	return "https://github.com/bnema/keyroute"
}
