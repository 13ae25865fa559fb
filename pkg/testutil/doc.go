// Package testutil provides utilities for testing linkfix components.
//
// Key components:
//   - FakeExecutor: scripted CommandExecutor keyed by command line
//   - RecordingLinker: Linker that records replacements instead of touching disk
//   - CreateDir / CreateSymlink: real-filesystem fixtures under t.TempDir()
package testutil
