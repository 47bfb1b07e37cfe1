// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatted(t *testing.T) {
	banner := Formatted()

	re := regexp.MustCompile(`Version:\s.+?-.+?\sHost:\s.+?\sUser:\s.+?\sTimestamp:\s\S+?\s`)
	assert.True(t, re.MatchString(banner), "unexpected version banner: %q", banner)
}
