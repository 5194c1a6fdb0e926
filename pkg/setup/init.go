package setup

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/vitestarter/vitestarter/pkg/logging"
	"github.com/vitestarter/vitestarter/pkg/manifest"
	"github.com/vitestarter/vitestarter/pkg/materialize"
	"github.com/vitestarter/vitestarter/pkg/output"
	"github.com/vitestarter/vitestarter/pkg/types"
)

// InitOptions configures writing the application template
type InitOptions struct {
	Dir          string
	ManifestPath string
	// App is the application bundle from the catalog
	App     types.Feature
	FS      types.FS
	Printer *output.Printer
}

// InitResult describes what Init changed
type InitResult struct {
	Files []string
	// Manifest is the saved manifest, nil when the project has none
	Manifest *manifest.Manifest
}

// Init writes the application template into the project. When a manifest
// exists, the bundle's runtime dependencies are added to it; otherwise the
// user is told which dependencies to add. Nothing is installed.
func Init(opts InitOptions) (*InitResult, error) {
	logger := logging.GetLogger("setup.init")
	p := opts.Printer
	app := types.Selection{opts.App}

	var merged *manifest.Manifest
	if _, err := opts.FS.Stat(opts.ManifestPath); err == nil {
		m, err := manifest.Load(opts.FS, opts.ManifestPath)
		if err != nil {
			return nil, err
		}
		if merged, err = m.Merge(app); err != nil {
			return nil, err
		}
	} else {
		logger.Debug().Str("path", opts.ManifestPath).Msg("No manifest, skipping merge")
	}

	reportFeature(p, opts.App)
	written, err := materialize.New(opts.FS, opts.Dir).Feature(opts.App, p.Created)
	result := &InitResult{Files: written}
	if err != nil {
		return nil, err
	}

	name := filepath.Base(opts.ManifestPath)
	if merged == nil {
		if deps := app.Dependencies(); len(deps) > 0 {
			p.Blank()
			p.Println(fmt.Sprintf(MsgNoManifestForInit, name, strings.Join(deps, ", ")))
		}
		return result, nil
	}

	if err := merged.Save(opts.FS); err != nil {
		return nil, err
	}
	result.Manifest = merged
	for _, dep := range app.Dependencies() {
		version, _ := merged.Dependency(manifest.SectionDependencies, dep)
		logger.Info().Str("dependency", dep).Str("version", version).Msg("Recorded runtime dependency")
	}
	p.Blank()
	p.Success(fmt.Sprintf(MsgManifestUpdated, name))
	return result, nil
}
