// Package env holds build metadata injected at link time via -ldflags.
package env

var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildTime  = "unknown"
)
