package manifest_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	starterrors "github.com/vitestarter/vitestarter/pkg/errors"
	"github.com/vitestarter/vitestarter/pkg/manifest"
	"github.com/vitestarter/vitestarter/pkg/testutil"
	"github.com/vitestarter/vitestarter/pkg/types"
)

const basePackageJSON = `{
  "name": "vite-react-starter",
  "private": true,
  "version": "0.0.0",
  "type": "module",
  "scripts": {
    "dev": "vite",
    "build": "tsc -b && vite build",
    "test": "echo \"no tests\""
  },
  "dependencies": {
    "react": "^19.1.0"
  }
}
`

var (
	unit = types.Feature{
		Name:            "unit",
		DevDependencies: []string{"vitest", "@vitest/ui"},
		Scripts: []types.Script{
			{Name: "test", Command: "vitest"},
			{Name: "test:ui", Command: "vitest --ui"},
		},
	}
	e2e = types.Feature{
		Name:            "e2e",
		DevDependencies: []string{"@playwright/test"},
		Scripts: []types.Script{
			{Name: "test", Command: "playwright test"},
			{Name: "test:e2e", Command: "playwright test"},
		},
	}
	router = types.Feature{
		Name:         "router",
		Dependencies: []string{"react-router", "@tanstack/query"},
	}
)

func mustParse(t *testing.T, doc string) *manifest.Manifest {
	t.Helper()
	m, err := manifest.Parse("package.json", []byte(doc))
	require.NoError(t, err)
	return m
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not json", `{"name": `},
		{"array", `["a"]`},
		{"string", `"package"`},
		{"empty", ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := manifest.Parse("package.json", []byte(tt.doc))
			require.Error(t, err)
			assert.True(t, starterrors.IsErrorCode(err, starterrors.ErrManifestParse))
		})
	}
}

func TestParse_Normalizes(t *testing.T) {
	m := mustParse(t, `{"author":"Jos\u00e9 \/ x","scripts":{"a":"1"},"name":"<app>","scripts":{"b":"2"}}`)

	assert.Equal(t, `{"author":"José / x","scripts":{"b":"2"},"name":"<app>"}`, string(m.Bytes()))
}

func TestMerge_DuplicateSectionUsesLastValue(t *testing.T) {
	m := mustParse(t, `{"scripts":{"a":"1"},"scripts":{"b":"2"}}`)

	merged, err := m.Merge(types.Selection{unit})
	require.NoError(t, err)
	out, err := merged.Format()
	require.NoError(t, err)

	want := `{
  "scripts": {
    "b": "2",
    "test": "vitest",
    "test:ui": "vitest --ui"
  },
  "devDependencies": {}
}
`
	assert.Equal(t, want, string(out))
}

func TestLoad_Missing(t *testing.T) {
	fsys := testutil.NewMemoryFS()

	_, err := manifest.Load(fsys, "/project/package.json")
	require.Error(t, err)
	assert.True(t, starterrors.IsErrorCode(err, starterrors.ErrManifestRead))
}

func TestMerge_ScriptsAndSections(t *testing.T) {
	m := mustParse(t, basePackageJSON)

	merged, err := m.Merge(types.Selection{unit})
	require.NoError(t, err)

	assert.Equal(t, []types.Script{
		{Name: "dev", Command: "vite"},
		{Name: "build", Command: "tsc -b && vite build"},
		{Name: "test", Command: "vitest"},
		{Name: "test:ui", Command: "vitest --ui"},
	}, merged.Scripts())

	assert.True(t, merged.HasSection(manifest.SectionDevDependencies))
	_, pinned := merged.Dependency(manifest.SectionDevDependencies, "vitest")
	assert.False(t, pinned, "dev dependencies are left to the installer")
}

func TestMerge_LaterFeatureWins(t *testing.T) {
	m := mustParse(t, `{"name":"x"}`)

	merged, err := m.Merge(types.Selection{unit, e2e})
	require.NoError(t, err)

	got, ok := merged.Script("test")
	require.True(t, ok)
	assert.Equal(t, "playwright test", got)

	reversed, err := m.Merge(types.Selection{e2e, unit})
	require.NoError(t, err)
	got, _ = reversed.Script("test")
	assert.Equal(t, "vitest", got)
}

func TestMerge_RuntimeDependenciesUseLatest(t *testing.T) {
	m := mustParse(t, basePackageJSON)

	merged, err := m.Merge(types.Selection{router})
	require.NoError(t, err)

	v, ok := merged.Dependency(manifest.SectionDependencies, "react-router")
	require.True(t, ok)
	assert.Equal(t, "latest", v)

	v, ok = merged.Dependency(manifest.SectionDependencies, "@tanstack/query")
	require.True(t, ok)
	assert.Equal(t, "latest", v)

	v, _ = merged.Dependency(manifest.SectionDependencies, "react")
	assert.Equal(t, "^19.1.0", v)
	assert.Len(t, merged.Scripts(), 3)
	assert.False(t, merged.HasSection(manifest.SectionDevDependencies))
}

func TestMerge_IsPure(t *testing.T) {
	m := mustParse(t, basePackageJSON)
	before := m.Bytes()

	_, err := m.Merge(types.Selection{unit, e2e, router})
	require.NoError(t, err)

	assert.Equal(t, before, m.Bytes())
	got, _ := m.Script("test")
	assert.Equal(t, `echo "no tests"`, got)
}

func TestMerge_CreatesMissingOrNullSections(t *testing.T) {
	m := mustParse(t, `{"name":"x","scripts":null}`)

	merged, err := m.Merge(types.Selection{unit})
	require.NoError(t, err)

	assert.Equal(t, []string{"test", "test:ui"}, types.Feature{Scripts: merged.Scripts()}.ScriptNames())
	assert.True(t, merged.HasSection(manifest.SectionDevDependencies))
	assert.False(t, merged.HasSection(manifest.SectionDependencies))
}

func TestMerge_NonObjectSection(t *testing.T) {
	m := mustParse(t, `{"scripts":"vite"}`)

	_, err := m.Merge(types.Selection{unit})
	require.Error(t, err)
	assert.True(t, starterrors.IsErrorCode(err, starterrors.ErrManifestParse))
}

func TestMerge_EmptySelection(t *testing.T) {
	m := mustParse(t, basePackageJSON)

	merged, err := m.Merge(nil)
	require.NoError(t, err)
	assert.Equal(t, m.Bytes(), merged.Bytes())
}

func TestFormat(t *testing.T) {
	m := mustParse(t, `{"name":"x",  "scripts":{"dev":"vite"},"devDependencies":{},"files":["dist"]}`)

	out, err := m.Format()
	require.NoError(t, err)

	want := `{
  "name": "x",
  "scripts": {
    "dev": "vite"
  },
  "devDependencies": {},
  "files": [
    "dist"
  ]
}
`
	assert.Equal(t, want, string(out))
}

func TestFormat_KeepsKeyOrder(t *testing.T) {
	m := mustParse(t, basePackageJSON)

	merged, err := m.Merge(types.Selection{unit})
	require.NoError(t, err)
	out, err := merged.Format()
	require.NoError(t, err)

	want := `{
  "name": "vite-react-starter",
  "private": true,
  "version": "0.0.0",
  "type": "module",
  "scripts": {
    "dev": "vite",
    "build": "tsc -b && vite build",
    "test": "vitest",
    "test:ui": "vitest --ui"
  },
  "dependencies": {
    "react": "^19.1.0"
  },
  "devDependencies": {}
}
`
	assert.Equal(t, want, string(out))
}

func TestSave(t *testing.T) {
	fsys := testutil.NewMemoryFS()
	testutil.CreateFileT(t, fsys, "/project/package.json", `{"name":"x"}`)

	m, err := manifest.Load(fsys, "/project/package.json")
	require.NoError(t, err)
	merged, err := m.Merge(types.Selection{unit})
	require.NoError(t, err)

	require.NoError(t, merged.Save(fsys))

	testutil.AssertFileContent(t, fsys, "/project/package.json", `{
  "name": "x",
  "devDependencies": {},
  "scripts": {
    "test": "vitest",
    "test:ui": "vitest --ui"
  }
}
`)
}

func TestSave_WriteFailure(t *testing.T) {
	fsys := testutil.NewMemoryFS()
	testutil.CreateFileT(t, fsys, "/project/package.json", `{"name":"x"}`)
	m, err := manifest.Load(fsys, "/project/package.json")
	require.NoError(t, err)

	fsys.WithError("/project/package.json", errors.New("read-only file system"))

	err = m.Save(fsys)
	require.Error(t, err)
	assert.True(t, starterrors.IsErrorCode(err, starterrors.ErrManifestWrite))
}
