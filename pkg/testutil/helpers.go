package testutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitestarter/vitestarter/pkg/types"
)

// CreateFileT writes content at path, creating parent directories
func CreateFileT(t *testing.T, fsys types.FS, path, content string) {
	t.Helper()
	require.NoError(t, fsys.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, fsys.WriteFile(path, []byte(content), 0644))
}

// ReadFileT returns the content at path, failing the test if it cannot be read
func ReadFileT(t *testing.T, fsys types.FS, path string) string {
	t.Helper()
	data, err := fsys.ReadFile(path)
	require.NoError(t, err, "reading %s", path)
	return string(data)
}

// AssertFileContent checks that path exists with exactly the given content
func AssertFileContent(t *testing.T, fsys types.FS, path, want string) {
	t.Helper()
	data, err := fsys.ReadFile(path)
	if assert.NoError(t, err, "reading %s", path) {
		assert.Equal(t, want, string(data), "content of %s", path)
	}
}

// AssertNoFile checks that nothing exists at path
func AssertNoFile(t *testing.T, fsys types.FS, path string) {
	t.Helper()
	_, err := fsys.Stat(path)
	assert.Error(t, err, "expected %s to be absent", path)
}
