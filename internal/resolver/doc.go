// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package resolver resolves a component identifier and a requested resource
// to a component of a document, memoizing what it discovers.
//
// # Resolution
//
// Resolve proceeds in three stages:
//
//  1. Cache: the discovered-components cache is consulted first. In
//     permissive mode any entry under the id is returned, whatever its kind.
//     In strict mode only kinds accepted by the request match.
//  2. Plan: the partitions registered for the resource are scanned in plan
//     order. A scan remembers every component it passes, not just the
//     target, and stops at the first match. A partition already scanned to
//     its end in this session is skipped.
//  3. Fallback: the fallback resolver, responsible for a disjoint component
//     family, is asked from its cache view and then by scanning its own
//     partitions.
//
// When every stage misses, Resolve fails with a *NotFoundError, which
// matches ErrComponentNotFound under errors.Is. The cache gains no entry for
// the missing id.
//
// # Thread-Safety
//
// A Resolver holds no per-session state and may be shared. The cache passed
// to Resolve is owned by the caller's session and must not be used
// concurrently.
package resolver
