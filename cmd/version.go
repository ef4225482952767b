// Package cmd holds build metadata injected with -ldflags, e.g.
//
//	go build -ldflags "-X github.com/thoreinstein/formkit/cmd.Version=v0.3.0" ./cmd/formkit
package cmd

var (
	// Version is the semantic version of the build.
	Version = "dev"
	// Commit is the git commit SHA of the build.
	Commit = "none"
	// Date is the build date.
	Date = "unknown"
)
