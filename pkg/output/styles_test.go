package output

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyleRegistry(t *testing.T) {
	for _, name := range []string{"Banner", "Step", "Label", "Path", "Success", "Error", "Muted"} {
		t.Run(name, func(t *testing.T) {
			_, exists := StyleRegistry[name]
			assert.True(t, exists, "style %s should exist in registry", name)
		})
	}
}

func TestGetStyleUnknown(t *testing.T) {
	style := GetStyle("NoSuchStyle")
	assert.Equal(t, "plain", style.Render("plain"))
}

func TestParseStyles(t *testing.T) {
	t.Run("builds_styles", func(t *testing.T) {
		registry, err := ParseStyles([]byte(`
colors:
  brand:
    light: "#000000"
    dark: "#FFFFFF"
styles:
  Title:
    bold: true
    foreground: brand
  Ghost:
    foreground: missing
`))
		require.NoError(t, err)
		require.Contains(t, registry, "Title")
		assert.True(t, registry["Title"].GetBold())
		assert.Equal(t, lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"}, registry["Title"].GetForeground())

		// unknown colors are ignored
		assert.Equal(t, lipgloss.NoColor{}, registry["Ghost"].GetForeground())
	})

	t.Run("invalid_yaml", func(t *testing.T) {
		_, err := ParseStyles([]byte("styles: [unclosed"))
		assert.Error(t, err)
	})
}
