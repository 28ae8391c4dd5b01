// Package integration_tests runs the whole application over documents
// written to a temporary directory.
package integration_tests
