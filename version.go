/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package grimoire

import "github.com/go-openapi/strfmt"

// Version information set by build flags
var (
	// Version is the semantic version of grimoire
	Version = "0.1.0"

	// GitCommit is the git commit hash (set by build flags)
	GitCommit = "unknown"

	// BuildDate is the RFC 3339 build date (set by build flags)
	BuildDate = "unknown"

	// GoVersion is the Go version used to build
	GoVersion = "unknown"
)

// VersionInfo contains version information
type VersionInfo struct {
	Version   string           `json:"version" yaml:"version"`
	GitCommit string           `json:"gitCommit" yaml:"gitCommit"`
	BuildDate string           `json:"buildDate" yaml:"buildDate"`
	GoVersion string           `json:"goVersion" yaml:"goVersion"`
	BuiltAt   *strfmt.DateTime `json:"builtAt,omitempty" yaml:"builtAt,omitempty"`
}

// GetVersionInfo returns the version information. BuiltAt is set when
// BuildDate parses as a date-time.
func GetVersionInfo() VersionInfo {
	info := VersionInfo{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: GoVersion,
	}
	if built, err := strfmt.ParseDateTime(BuildDate); err == nil {
		info.BuiltAt = &built
	}
	return info
}
