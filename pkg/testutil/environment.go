package testutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vitestarter/vitestarter/pkg/filesystem"
	"github.com/vitestarter/vitestarter/pkg/types"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// memoryProjectDir is the project root inside a MemoryFS
const memoryProjectDir = "/project"

// TestEnvironment is a project directory with a filesystem and a fake
// package manager
type TestEnvironment struct {
	ProjectDir string
	FS         types.FS
	Runner     *FakeRunner
	Type       EnvType

	// Memory is set for EnvMemoryOnly
	Memory *MemoryFS

	t *testing.T
}

// NewTestEnvironment creates a new test environment. Isolated environments
// also point XDG_STATE_HOME and XDG_CONFIG_HOME at temp directories and set
// NO_COLOR, so logs and user config never leak in from the host.
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{
		Runner: &FakeRunner{},
		Type:   envType,
		t:      t,
	}

	switch envType {
	case EnvMemoryOnly:
		env.Memory = NewMemoryFS()
		env.FS = env.Memory
		env.ProjectDir = memoryProjectDir
		require.NoError(t, env.FS.MkdirAll(env.ProjectDir, 0755))
	case EnvIsolated:
		base := t.TempDir()
		t.Setenv("XDG_STATE_HOME", filepath.Join(base, "state"))
		t.Setenv("XDG_CONFIG_HOME", filepath.Join(base, "config"))
		t.Setenv("NO_COLOR", "1")

		env.FS = filesystem.NewOS()
		env.ProjectDir = filepath.Join(base, "project")
		require.NoError(t, env.FS.MkdirAll(env.ProjectDir, 0755))
	default:
		t.Fatalf("unknown environment type %d", envType)
	}

	return env
}

// Path returns the absolute path of a project-relative slash path
func (e *TestEnvironment) Path(rel string) string {
	return filepath.Join(e.ProjectDir, filepath.FromSlash(rel))
}

// ManifestPath returns the location of package.json
func (e *TestEnvironment) ManifestPath() string {
	return e.Path("package.json")
}

// WithManifest writes package.json with the given content
func (e *TestEnvironment) WithManifest(content string) *TestEnvironment {
	e.t.Helper()
	CreateFileT(e.t, e.FS, e.ManifestPath(), content)
	return e
}

// WithFile writes a project file, creating parent directories
func (e *TestEnvironment) WithFile(rel, content string) *TestEnvironment {
	e.t.Helper()
	CreateFileT(e.t, e.FS, e.Path(rel), content)
	return e
}

// Manifest returns the current package.json content
func (e *TestEnvironment) Manifest() string {
	e.t.Helper()
	return ReadFileT(e.t, e.FS, e.ManifestPath())
}
