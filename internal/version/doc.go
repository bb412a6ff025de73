// Package version exposes build metadata of furiosa-version itself.
//
// Variables Version, Commit, and BuildTime are injected at build time via
// Go ldflags and default to sensible values for local builds.
// Full renders them for the `version` subcommand.
package version
