// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package testutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/nmltree/internal/app"
	"github.com/vk/nmltree/internal/config"
	"github.com/vk/nmltree/internal/hcl"
	"github.com/vk/nmltree/internal/registry"
	"github.com/vk/nmltree/internal/resolver"
)

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	Output    string
	LogOutput string
	Err       error
	App       *app.App
}

// RunOptions tweaks a harness run.
type RunOptions struct {
	// Settings replace the defaults. Log level is always forced to debug.
	Settings *config.Settings
	// Requests are raw "[resource:]id" strings.
	Requests []string
	// Modules replace the core plan modules when non-empty.
	Modules []registry.Module
}

// RunIntegrationTest writes files into a temporary directory, then builds
// and runs an App over it using a default background context.
func RunIntegrationTest(t *testing.T, files map[string]string, opts RunOptions) *HarnessResult {
	t.Helper()
	return RunIntegrationTestWithContext(context.Background(), t, files, opts)
}

// RunIntegrationTestWithContext is RunIntegrationTest with a caller-provided
// context.
func RunIntegrationTestWithContext(ctx context.Context, t *testing.T, files map[string]string, opts RunOptions) *HarnessResult {
	t.Helper()

	// 1. Write all document files. Names may contain subdirectories.
	tmpDir := t.TempDir()
	for name, content := range files {
		filePath := filepath.Join(tmpDir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0o755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0o644))
	}

	// 2. Build the app configuration.
	settings := opts.Settings
	if settings == nil {
		settings = config.DefaultSettings()
	}
	settings.LogLevel = "debug"

	requests := make([]resolver.Request, 0, len(opts.Requests))
	for _, raw := range opts.Requests {
		req, err := resolver.ParseRequest(raw)
		require.NoError(t, err)
		requests = append(requests, req)
	}

	appConfig, err := app.NewConfig(app.Config{
		DocPaths: []string{tmpDir},
		Settings: settings,
		Requests: requests,
	})
	require.NoError(t, err)

	outBuffer := &app.SafeBuffer{}
	logBuffer := &app.SafeBuffer{}

	// 3. Construct the app, converting a startup panic into an error.
	var testApp *app.App
	var panicErr any
	func() {
		defer func() {
			if r := recover(); r != nil {
				panicErr = r
			}
		}()
		testApp = app.NewApp(outBuffer, logBuffer, appConfig, hcl.NewLoader(settings.Include...), opts.Modules...)
	}()

	if panicErr != nil {
		return &HarnessResult{
			LogOutput: logBuffer.String(),
			Err:       fmt.Errorf("application startup panicked | %v", panicErr),
		}
	}

	runErr := testApp.Run(ctx)

	if os.Getenv("NMLTREE_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
	}

	return &HarnessResult{
		Output:    outBuffer.String(),
		LogOutput: logBuffer.String(),
		Err:       runErr,
		App:       testApp,
	}
}
