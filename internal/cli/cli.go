// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/vk/nmltree/internal/app"
	"github.com/vk/nmltree/internal/config"
	"github.com/vk/nmltree/internal/fsutil"
	"github.com/vk/nmltree/internal/nodeid"
	"github.com/vk/nmltree/internal/resolver"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// stringList is a repeatable string flag.
type stringList []string

func (s *stringList) String() string {
	return strings.Join(*s, ",")
}

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

// Parse processes command-line arguments. It returns a populated AppConfig,
// a boolean indicating if the program should exit cleanly, or an ExitError.
//
// Settings are layered: built-in defaults, then the settings file, then any
// flag given explicitly on the command line.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("nmltree", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
nmltree - Builds the biophysical property tree of a NeuroML model and
resolves components by identifier.

Usage:
  nmltree [options] [DOC_PATH...]

Arguments:
  DOC_PATH
    Path to a single .hcl file or a directory containing .hcl files.

Options:
`)
		flagSet.PrintDefaults()
	}

	var docs, includes, requests stringList
	defaults := config.DefaultSettings()

	flagSet.Var(&docs, "doc", "Path to a document file or directory. Repeatable.")
	flagSet.Var(&docs, "d", "Path to a document file or directory (shorthand).")
	configFlag := flagSet.String("config", "", "Path to a YAML settings file. Defaults to "+config.DefaultSettingsFile+" if present.")
	flagSet.Var(&includes, "include", "Glob pattern selecting document files inside directories. Repeatable.")
	formatFlag := flagSet.String("format", defaults.OutputFormat, "Output format. Options: 'text', 'json' or 'hcl'.")
	lookupFlag := flagSet.String("lookup", defaults.LookupMode, "Cache lookup mode. Options: 'permissive' or 'strict'.")
	flagSet.Var(&requests, "resolve", "Component to resolve, as [resource:]id. Repeatable.")
	selectFlag := flagSet.String("select", "", "Render only the subtree at this path, e.g. bioPhys1.membraneProperties.")
	logFormatFlag := flagSet.String("log-format", defaults.LogFormat, "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", defaults.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	paths := append([]string(docs), flagSet.Args()...)
	slog.Debug("Document paths determined.", "paths", paths)

	if len(paths) == 0 {
		slog.Debug("No document path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	settings, err := loadSettings(*configFlag)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	explicit := &config.Settings{}
	flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "format":
			explicit.OutputFormat = strings.ToLower(*formatFlag)
		case "lookup":
			explicit.LookupMode = strings.ToLower(*lookupFlag)
		case "include":
			explicit.Include = includes
		case "log-format":
			explicit.LogFormat = strings.ToLower(*logFormatFlag)
		case "log-level":
			explicit.LogLevel = strings.ToLower(*logLevelFlag)
		}
	})
	settings.Merge(explicit)

	if err := fsutil.ValidatePatterns(settings.Include); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	parsed := make([]resolver.Request, 0, len(requests))
	for _, raw := range requests {
		req, err := resolver.ParseRequest(raw)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		parsed = append(parsed, req)
	}
	var selected *nodeid.Address
	if *selectFlag != "" {
		selected, err = nodeid.Parse(*selectFlag)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
	}
	slog.Debug("CLI parameter validation complete.")

	cfg, err := app.NewConfig(app.Config{
		DocPaths: paths,
		Settings: settings,
		Requests: parsed,
		Select:   selected,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", cfg)
	return cfg, false, nil
}

// loadSettings reads the settings file at path. An empty path falls back to
// DefaultSettingsFile, which may be absent.
func loadSettings(path string) (*config.Settings, error) {
	if path != "" {
		return config.LoadSettings(path)
	}
	if _, err := os.Stat(config.DefaultSettingsFile); errors.Is(err, fs.ErrNotExist) {
		return config.DefaultSettings(), nil
	}
	return config.LoadSettings(config.DefaultSettingsFile)
}
