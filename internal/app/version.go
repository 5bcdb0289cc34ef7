package app

import "fmt"

// Version, Commit, and BuildTime are injected at build time, e.g.
// go build -ldflags "-X github.com/ideahub/ideahub-backend/internal/app.Version=1.2.0".
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion formats the build identity for startup logs.
func BuildVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}
