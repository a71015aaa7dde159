// Package testutil provides utilities for testing cork components.
//
// Key components:
//   - Harness: a Board wired to in-memory buffers with fixed width and
//     working directory
//   - File helpers: CreateFile and CreateDir under a test temp directory
//
// All test data should be defined inline; each test gets its own harness.
package testutil
