// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertResolved checks the log output within a HarnessResult to confirm
// that a request resolved to a component of the given kind.
func AssertResolved(t *testing.T, result *HarnessResult, request, kind string) {
	t.Helper()

	for _, line := range strings.Split(result.LogOutput, "\n") {
		if strings.Contains(line, "Component resolved.") &&
			strings.Contains(line, fmt.Sprintf("request=%s", request)) &&
			strings.Contains(line, fmt.Sprintf("kind=%s", kind)) {
			return
		}
	}
	require.Fail(t, "component not resolved",
		"expected request '%s' to resolve to kind '%s'", request, kind)
}

// AssertMetric checks that the run summary logged the given metric value.
func AssertMetric(t *testing.T, result *HarnessResult, key string, value float64) {
	t.Helper()

	expected := fmt.Sprintf("%s:%v", key, value)
	require.True(t,
		strings.Contains(result.LogOutput, expected),
		"expected metric %q in run summary, logs:\n%s", expected, result.LogOutput,
	)
}
