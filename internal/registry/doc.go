// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package registry holds the resolution plans of the component resolver.
//
// A plan maps a requested resource (what the caller asks for, e.g. "cell")
// to the ordered list of document partitions scanned to satisfy it. Some
// component families overlap in practice, so a request for a generic cell
// also scans the specialized cell partitions. Keeping that order as data
// makes it inspectable and testable instead of being buried in control flow.
//
// Plans are registered at startup and then validated against the document's
// partition table, so a typo in a partition name fails fast instead of
// silently producing ComponentNotFound at runtime.
package registry
