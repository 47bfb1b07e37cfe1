// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package version exposes the build stamp embedded into the binaries at
// link time with -ldflags "-X".
package version

import "fmt"

// Set at link time. Binaries built without the stamp report "not-set".
var (
	BuildHost      = "not-set"
	BuildUser      = "not-set"
	BuildTimestamp = "not-set"
	BuildRevision  = "not-set"
	BuildStatus    = "not-set"
)

// Formatted returns the one-line version banner.
func Formatted() string {
	return fmt.Sprintf("Version: %s-%s Host: %s User: %s Timestamp: %s\n",
		BuildRevision, BuildStatus, BuildHost, BuildUser, BuildTimestamp)
}
