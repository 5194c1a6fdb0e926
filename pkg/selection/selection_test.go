package selection_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitestarter/vitestarter/pkg/selection"
	"github.com/vitestarter/vitestarter/pkg/types"
)

var testCatalog = types.Selection{
	{Name: "vitest", Description: "Vitest"},
	{Name: "playwright", Description: "Playwright"},
	{Name: "storybook", Description: "Storybook"},
}

// scriptedConfirmer answers questions from a fixed list and records them
type scriptedConfirmer struct {
	answers   []bool
	questions []string
	err       error
}

func (s *scriptedConfirmer) Confirm(question string) (bool, error) {
	s.questions = append(s.questions, question)
	if s.err != nil {
		return false, s.err
	}
	answer := s.answers[0]
	s.answers = s.answers[1:]
	return answer, nil
}

type recordingReporter struct {
	events []string
}

func (r *recordingReporter) FeatureSelected(f types.Feature) { r.events = append(r.events, "+"+f.Name) }
func (r *recordingReporter) FeatureSkipped(f types.Feature)  { r.events = append(r.events, "-"+f.Name) }

func flags(names ...string) selection.Flags {
	f := selection.Flags{Features: map[string]bool{}}
	for _, n := range names {
		if n == "all" {
			f.All = true
			continue
		}
		f.Features[n] = true
	}
	return f
}

func TestSelect_FlagsPreserveCatalogOrder(t *testing.T) {
	tests := []struct {
		name  string
		flags []string
		want  []string
	}{
		{"single", []string{"playwright"}, []string{"playwright"}},
		{"reverse order on command line", []string{"storybook", "vitest"}, []string{"vitest", "storybook"}},
		{"every feature", []string{"playwright", "storybook", "vitest"}, []string{"vitest", "playwright", "storybook"}},
		{"unknown names ignored", []string{"eslint", "vitest"}, []string{"vitest"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reporter := &recordingReporter{}
			got, mode, err := selection.Select(testCatalog, flags(tt.flags...), nil, reporter)
			require.NoError(t, err)

			assert.Equal(t, selection.ModeFlags, mode)
			assert.Equal(t, tt.want, got.Names())
			for i, name := range tt.want {
				assert.Equal(t, "+"+name, reporter.events[i])
			}
		})
	}
}

func TestSelect_AllWinsOverEverything(t *testing.T) {
	for _, extra := range [][]string{nil, {"vitest"}, {"playwright", "eslint"}} {
		got, mode, err := selection.Select(testCatalog, flags(append(extra, "all")...), nil, nil)
		require.NoError(t, err)

		assert.Equal(t, selection.ModeAll, mode)
		assert.Equal(t, []string{"vitest", "playwright", "storybook"}, got.Names())
	}
}

func TestSelect_Interactive(t *testing.T) {
	confirmer := &scriptedConfirmer{answers: []bool{true, false, true}}
	reporter := &recordingReporter{}

	got, mode, err := selection.Select(testCatalog, flags(), confirmer, reporter)
	require.NoError(t, err)

	assert.Equal(t, selection.ModeInteractive, mode)
	assert.Equal(t, []string{"vitest", "storybook"}, got.Names())
	assert.Equal(t, []string{
		"Do you want to install Vitest? (y/N): ",
		"Do you want to install Playwright? (y/N): ",
		"Do you want to install Storybook? (y/N): ",
	}, confirmer.questions)
	assert.Equal(t, []string{"+vitest", "-playwright", "+storybook"}, reporter.events)
}

func TestSelect_InteractiveAllDeclined(t *testing.T) {
	confirmer := &scriptedConfirmer{answers: []bool{false, false, false}}

	got, _, err := selection.Select(testCatalog, flags(), confirmer, nil)
	require.NoError(t, err)
	assert.True(t, got.IsEmpty())
}

func TestSelect_InteractiveError(t *testing.T) {
	confirmer := &scriptedConfirmer{err: errors.New("stdin closed")}

	_, _, err := selection.Select(testCatalog, flags(), confirmer, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "asking about vitest")
	assert.Len(t, confirmer.questions, 1)
}

func TestSelect_InteractiveWithoutPrompter(t *testing.T) {
	_, _, err := selection.Select(testCatalog, flags(), nil, nil)
	assert.Error(t, err)
}

func TestFlags(t *testing.T) {
	assert.True(t, flags().Interactive())
	assert.False(t, flags("all").Interactive())
	assert.False(t, flags("vitest").Interactive())

	f := selection.Flags{Features: map[string]bool{"vitest": false}}
	assert.False(t, f.Any())
	assert.True(t, f.Interactive())
}
