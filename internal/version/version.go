// Package version carries build metadata, overridable via ldflags.
package version

// Version is the parley release version. Overridden at build time with
// -ldflags "-X parley/internal/version.Version=v1.2.3".
var Version = "dev"
