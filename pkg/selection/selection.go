// Package selection turns CLI flags or interactive answers into the ordered
// set of features to apply.
package selection

import (
	"fmt"

	"github.com/vitestarter/vitestarter/pkg/logging"
	"github.com/vitestarter/vitestarter/pkg/types"
)

// Mode describes how the selection was made
type Mode string

const (
	ModeAll         Mode = "all"
	ModeFlags       Mode = "flags"
	ModeInteractive Mode = "interactive"
)

// QuestionFormat is the interactive question asked for each feature
const QuestionFormat = "Do you want to install %s? (y/N): "

// Flags holds the selection flags found on the command line
type Flags struct {
	All      bool
	Features map[string]bool
}

// Any reports whether at least one per-feature flag is set
func (f Flags) Any() bool {
	for _, set := range f.Features {
		if set {
			return true
		}
	}
	return false
}

// Interactive reports whether no selection flag was given
func (f Flags) Interactive() bool {
	return !f.All && !f.Any()
}

// Confirmer asks the user a yes/no question
type Confirmer interface {
	Confirm(question string) (bool, error)
}

// Reporter is told about every decision as it is made
type Reporter interface {
	FeatureSelected(f types.Feature)
	FeatureSkipped(f types.Feature)
}

// Select builds the selection from flags, falling back to asking about each
// catalog entry when no selection flag is present. confirmer is only used
// in interactive mode; reporter may be nil.
func Select(catalog types.Selection, flags Flags, confirmer Confirmer, reporter Reporter) (types.Selection, Mode, error) {
	logger := logging.GetLogger("selection")
	if reporter == nil {
		reporter = nopReporter{}
	}

	switch {
	case flags.All:
		logger.Debug().Msg("Selecting every feature")
		return All(catalog), ModeAll, nil
	case flags.Any():
		selected := FromFlags(catalog, flags)
		for _, f := range selected {
			reporter.FeatureSelected(f)
		}
		logger.Debug().Strs("features", selected.Names()).Msg("Selected from flags")
		return selected, ModeFlags, nil
	default:
		if confirmer == nil {
			return nil, ModeInteractive, fmt.Errorf("interactive selection needs a prompter")
		}
		selected, err := Interactive(catalog, confirmer, reporter)
		if err != nil {
			return nil, ModeInteractive, err
		}
		logger.Debug().Strs("features", selected.Names()).Msg("Selected interactively")
		return selected, ModeInteractive, nil
	}
}

// All returns every catalog entry
func All(catalog types.Selection) types.Selection {
	return append(types.Selection(nil), catalog...)
}

// FromFlags returns the catalog entries whose flag is set, in catalog order
func FromFlags(catalog types.Selection, flags Flags) types.Selection {
	var selected types.Selection
	for _, f := range catalog {
		if flags.Features[f.Name] {
			selected = append(selected, f)
		}
	}
	return selected
}

// Interactive asks about each catalog entry in order, one question at a time
func Interactive(catalog types.Selection, confirmer Confirmer, reporter Reporter) (types.Selection, error) {
	if reporter == nil {
		reporter = nopReporter{}
	}

	var selected types.Selection
	for _, f := range catalog {
		ok, err := confirmer.Confirm(fmt.Sprintf(QuestionFormat, f.Description))
		if err != nil {
			return nil, fmt.Errorf("asking about %s: %w", f.Name, err)
		}
		if ok {
			selected = append(selected, f)
			reporter.FeatureSelected(f)
		} else {
			reporter.FeatureSkipped(f)
		}
	}
	return selected, nil
}

type nopReporter struct{}

func (nopReporter) FeatureSelected(types.Feature) {}
func (nopReporter) FeatureSkipped(types.Feature)  {}
