// ============================================================================
// iadate - IA Time
// ============================================================================
//
// Package:     version
// Description: Central version management for the library and its surfaces
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

import "fmt"

// Version constants
const (
	// Release version of the module
	Platform = "0.3.0"

	// Component versions
	IATime = "0.3.0"
	CLI    = "0.3.0"
	Live   = "0.2.0"
	Store  = "0.1.0"

	// Wire protocol version of the live update stream
	Protocol = "1"
)

// Build information, set via -ldflags at build time
var (
	Commit    = "unknown"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "iatime":
		return IATime
	case "cli":
		return CLI
	case "live":
		return Live
	case "store":
		return Store
	default:
		return Platform
	}
}

// String returns a one-line version summary
func String() string {
	return fmt.Sprintf("iadate %s (commit %s, built %s)", Platform, Commit, BuildDate)
}
