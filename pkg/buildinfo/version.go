// Package buildinfo provides build-time version information.
//
// Variables are set via ldflags during build:
//
//	go build -ldflags "-X github.com/matzehuels/navgraph/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/matzehuels/navgraph/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/matzehuels/navgraph/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// Binaries installed with "go install module@version" carry no ldflags;
// for those the module version recorded by the Go toolchain is used.
package buildinfo

import (
	"fmt"
	"runtime/debug"
)

// devVersion is the Version of builds without ldflags.
const devVersion = "dev"

var (
	// Version is the semantic version (e.g., "v1.2.3").
	// Set via ldflags: -X github.com/matzehuels/navgraph/pkg/buildinfo.Version=...
	Version = devVersion

	// Commit is the git commit SHA.
	// Set via ldflags: -X github.com/matzehuels/navgraph/pkg/buildinfo.Commit=...
	Commit = "none"

	// Date is the build timestamp.
	// Set via ldflags: -X github.com/matzehuels/navgraph/pkg/buildinfo.Date=...
	Date = "unknown"
)

// readBuildInfo is replaced in tests.
var readBuildInfo = debug.ReadBuildInfo

// Current returns Version, falling back to the main module version when
// Version was not set at link time.
func Current() string {
	if Version != devVersion {
		return Version
	}
	if info, ok := readBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return v
		}
	}
	return Version
}

// String returns the formatted build information.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", Current(), Commit, Date)
}

// Template returns the version template string for cobra.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Current(), Commit, Date)
}
