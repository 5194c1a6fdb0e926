package setup_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitestarter/vitestarter/pkg/catalog"
	"github.com/vitestarter/vitestarter/pkg/output"
	"github.com/vitestarter/vitestarter/pkg/setup"
	"github.com/vitestarter/vitestarter/pkg/testutil"
)

func initOptions(t *testing.T, env *testutil.TestEnvironment, out *bytes.Buffer) setup.InitOptions {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)

	return setup.InitOptions{
		Dir:          env.ProjectDir,
		ManifestPath: env.ManifestPath(),
		App:          cat.App,
		FS:           env.FS,
		Printer:      output.NewPrinter(out, out, output.FormatText),
	}
}

func TestInitWithManifest(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly).
		WithManifest(`{"name":"starter","dependencies":{"react":"^19.0.0"}}`)
	var out bytes.Buffer
	opts := initOptions(t, env, &out)

	result, err := setup.Init(opts)
	require.NoError(t, err)

	assert.Equal(t, []string{"src/App.tsx"}, result.Files)
	testutil.AssertFileContent(t, env.FS, env.Path("src/App.tsx"), opts.App.Files[0].Content)
	assert.Contains(t, opts.App.Files[0].Content, "Bas van Driel")

	require.NotNil(t, result.Manifest)
	testutil.AssertFileContent(t, env.FS, env.ManifestPath(), `{
  "name": "starter",
  "dependencies": {
    "react": "^19.0.0",
    "react-router": "latest"
  }
}
`)
	assert.Contains(t, out.String(), "  Created: src/App.tsx\n")
	assert.Contains(t, out.String(), "✓ Updated package.json\n")
}

func TestInitWithoutManifest(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	var out bytes.Buffer

	result, err := setup.Init(initOptions(t, env, &out))
	require.NoError(t, err)

	assert.Nil(t, result.Manifest)
	testutil.AssertNoFile(t, env.FS, env.ManifestPath())
	assert.Contains(t, out.String(), "No package.json found. Add these dependencies yourself: react-router")
}
