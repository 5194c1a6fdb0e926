package catalog_test

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitestarter/vitestarter/pkg/catalog"
	"github.com/vitestarter/vitestarter/pkg/errors"
)

func TestDefaultCatalog(t *testing.T) {
	c, err := catalog.Default()
	require.NoError(t, err)

	assert.Equal(t, []string{"vitest", "playwright"}, c.Names())

	vitest, ok := c.Lookup("vitest")
	require.True(t, ok)
	assert.Equal(t, "Vitest - Unit Testing Framework", vitest.Description)
	assert.Equal(t,
		[]string{"vitest", "@vitest/ui", "@testing-library/react", "@testing-library/jest-dom", "jsdom"},
		vitest.DevDependencies)
	assert.Equal(t, []string{"test", "test:ui", "test:coverage"}, vitest.ScriptNames())
	assert.Equal(t, "vitest --coverage", vitest.Scripts[2].Command)
	assert.Equal(t, []string{"vitest.config.ts", "src/test/setup.ts", "src/App.test.tsx"}, vitest.FilePaths())
	assert.Len(t, vitest.Hints, 3)

	playwright, ok := c.Lookup("playwright")
	require.True(t, ok)
	assert.Equal(t, []string{"@playwright/test", "@axe-core/playwright"}, playwright.DevDependencies)
	assert.Equal(t, []string{"test:e2e", "test:e2e:ui", "test:e2e:debug"}, playwright.ScriptNames())
	assert.Equal(t, []string{"playwright.config.ts", "e2e/example.spec.ts"}, playwright.FilePaths())
	assert.Equal(t, []string{`Run "npx playwright install" to install browsers`}, playwright.Notes)

	_, ok = c.Lookup("eslint")
	assert.False(t, ok)
}

func TestDefaultCatalog_TemplateContents(t *testing.T) {
	c, err := catalog.Default()
	require.NoError(t, err)

	vitest, _ := c.Lookup("vitest")
	config := vitest.Files[0].Content
	assert.True(t, strings.HasPrefix(config, "import { defineConfig } from 'vitest/config';\n"))
	assert.Contains(t, config, "setupFiles: './src/test/setup.ts',")
	assert.True(t, strings.HasSuffix(config, "});\n"))

	playwright, _ := c.Lookup("playwright")
	assert.Contains(t, playwright.Files[0].Content, "forbidOnly: !!process.env.CI,")
	assert.Contains(t, playwright.Files[1].Content, "await expect(page).toHaveTitle(/Vite/);")

	require.Len(t, c.App.Files, 1)
	assert.Equal(t, "src/App.tsx", c.App.Files[0].Path)
	assert.Contains(t, c.App.Files[0].Content, `path: "/",`)
	assert.Contains(t, c.App.Files[0].Content, `<div className="text-sm">Bas van Driel</div>`)
}

func TestAllReturnsCopy(t *testing.T) {
	c, err := catalog.Default()
	require.NoError(t, err)

	all := c.All()
	all[0] = all[1]

	assert.Equal(t, []string{"vitest", "playwright"}, c.Names())
}

func TestParse_Invalid(t *testing.T) {
	templates := fstest.MapFS{
		"a/file.txt": {Data: []byte("content")},
	}

	tests := []struct {
		name    string
		doc     string
		wantMsg string
	}{
		{
			name:    "malformed toml",
			doc:     "[[features]\nname = ",
			wantMsg: "failed to parse catalog",
		},
		{
			name:    "unknown field",
			doc:     "[[features]]\nname = \"a\"\ncolour = \"red\"\n",
			wantMsg: "failed to parse catalog",
		},
		{
			name:    "duplicate feature",
			doc:     "[[features]]\nname = \"a\"\n[[features]]\nname = \"a\"\n",
			wantMsg: `duplicate feature "a"`,
		},
		{
			name:    "reserved name",
			doc:     "[[features]]\nname = \"all\"\n",
			wantMsg: `feature name "all" is reserved`,
		},
		{
			name:    "name not flag safe",
			doc:     "[[features]]\nname = \"Vi Test\"\n",
			wantMsg: `invalid feature name "Vi Test"`,
		},
		{
			name:    "missing template",
			doc:     "[[features]]\nname = \"a\"\n[[features.files]]\npath = \"x.txt\"\ntemplate = \"a/missing.txt\"\n",
			wantMsg: `template "a/missing.txt" not found`,
		},
		{
			name:    "path escapes project",
			doc:     "[[features]]\nname = \"a\"\n[[features.files]]\npath = \"../x.txt\"\ntemplate = \"a/file.txt\"\n",
			wantMsg: "must be a clean path inside the project",
		},
		{
			name:    "duplicate script",
			doc:     "[[features]]\nname = \"a\"\n[[features.scripts]]\nname = \"t\"\ncommand = \"x\"\n[[features.scripts]]\nname = \"t\"\ncommand = \"y\"\n",
			wantMsg: `duplicate script "t"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := catalog.Parse([]byte(tt.doc), templates)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrCatalogInvalid))
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestParse_Valid(t *testing.T) {
	templates := fstest.MapFS{
		"lint/eslint.config.js": {Data: []byte("export default [];\n")},
	}
	doc := `
[[features]]
name = "eslint"
description = "ESLint"
dev_dependencies = ["eslint"]

  [[features.scripts]]
  name = "lint"
  command = "eslint ."

  [[features.files]]
  path = "eslint.config.js"
  template = "lint/eslint.config.js"
`
	c, err := catalog.Parse([]byte(doc), templates)
	require.NoError(t, err)

	f, ok := c.Lookup("eslint")
	require.True(t, ok)
	assert.Equal(t, "export default [];\n", f.Files[0].Content)
	assert.Equal(t, "eslint .", f.Scripts[0].Command)
}
