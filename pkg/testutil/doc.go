// Package testutil provides utilities for testing vitestarter components.
//
// Key components:
//   - TestEnvironment: a project directory on a MemoryFS or a real temp dir
//   - MemoryFS: in-memory types.FS with write counting and error injection
//   - FakeRunner: records package-manager invocations instead of running them
//   - File helpers: CreateFileT, ReadFileT, AssertFileContent
//
// Usage guidelines:
//   - Prefer EnvMemoryOnly; only filesystem and CLI tests touch a real t.TempDir
//   - All test data should be defined inline, not in external files
package testutil
