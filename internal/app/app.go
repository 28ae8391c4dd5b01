// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/vk/nmltree/internal/config"
	"github.com/vk/nmltree/internal/ctxlog"
	"github.com/vk/nmltree/internal/localsession"
	"github.com/vk/nmltree/internal/registry"
	"github.com/vk/nmltree/internal/session"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	loader   config.Loader
	registry *registry.Registry
	sessions session.SessionFactory
}

// NewApp is the constructor for the main application. The rendered tree is
// written to outW and logs to logW. With no modules, the core plan modules
// are registered. An invalid set of plans is a programming error and
// panics.
func NewApp(outW, logW io.Writer, appConfig *Config, loader config.Loader, modules ...registry.Module) *App {
	logger := newLogger(appConfig.Settings.LogLevel, appConfig.Settings.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All plan modules registered.", "count", len(modules))

	if err := reg.Validate(ctx); err != nil {
		panic(err)
	}
	logger.Debug("Registry validation passed.")

	return &App{
		outW:     outW,
		logger:   logger,
		config:   appConfig,
		loader:   loader,
		registry: reg,
		sessions: &localsession.Factory{},
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}
