// Package cli turns command-line arguments into an app.Config. It layers
// built-in defaults, the optional YAML settings file and explicit flags, and
// reports invalid input as an ExitError carrying the process exit code.
package cli
