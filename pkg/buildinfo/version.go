// Package buildinfo holds version metadata stamped in at link time:
//
//	go build -ldflags "-X github.com/polyroots/polyroots/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/polyroots/polyroots/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/polyroots/polyroots/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info is the build metadata in a form that can be serialized.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"built"`
}

// Get returns the current build metadata.
func Get() Info {
	return Info{Version: Version, Commit: Commit, Date: Date}
}

// String returns the formatted build information.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", Version, Commit, Date)
}

// Template returns the version template for cobra's --version flag.
func Template() string {
	return fmt.Sprintf("{{.Name}} %s (%s, %s)\n", Version, Commit, Date)
}
