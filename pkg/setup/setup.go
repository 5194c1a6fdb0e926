package setup

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/vitestarter/vitestarter/pkg/installer"
	"github.com/vitestarter/vitestarter/pkg/logging"
	"github.com/vitestarter/vitestarter/pkg/manifest"
	"github.com/vitestarter/vitestarter/pkg/materialize"
	"github.com/vitestarter/vitestarter/pkg/output"
	"github.com/vitestarter/vitestarter/pkg/selection"
	"github.com/vitestarter/vitestarter/pkg/types"
)

// Options holds everything a setup run needs
type Options struct {
	// Dir is the project directory template paths are relative to
	Dir string
	// ManifestPath is the full path of package.json
	ManifestPath string
	// Features is the catalog, in prompt order
	Features types.Selection
	Flags    selection.Flags
	// Prompter answers the interactive questions
	Prompter selection.Confirmer

	FS        types.FS
	Installer *installer.Installer
	Printer   *output.Printer
}

// Result describes a completed run
type Result struct {
	Mode      selection.Mode
	Selection types.Selection
	// Files are the relative paths written, in write order
	Files []string
	// Manifest is the saved manifest, nil when nothing was selected
	Manifest *manifest.Manifest
	Install  installer.Result
}

// Run executes the setup pipeline. An empty selection prints a notice and
// returns without touching the project.
func Run(ctx context.Context, opts Options) (*Result, error) {
	logger := logging.GetLogger("setup")
	done := logging.LogOperationStart(logger, "setup")
	defer done()

	p := opts.Printer
	p.Banner(MsgWelcome)

	var reporter selection.Reporter = p
	switch {
	case opts.Flags.All:
		p.Println(MsgInstallingAll)
		p.Blank()
	case opts.Flags.Interactive():
		p.Println(MsgInteractiveIntro)
		p.Blank()
		reporter = spacedReporter{p}
	}

	sel, mode, err := selection.Select(opts.Features, opts.Flags, opts.Prompter, reporter)
	if err != nil {
		return nil, err
	}
	if mode == selection.ModeFlags {
		p.Blank()
	}

	result := &Result{Mode: mode, Selection: sel}
	logger.Info().
		Str("mode", string(mode)).
		Strs("features", sel.Names()).
		Msg("Selection complete")

	if sel.IsEmpty() {
		p.Println(MsgNothingSelected)
		return result, nil
	}

	m, err := manifest.Load(opts.FS, opts.ManifestPath)
	if err != nil {
		return nil, err
	}
	merged, err := m.Merge(sel)
	if err != nil {
		return nil, err
	}

	p.Println(MsgApplying)

	mat := materialize.New(opts.FS, opts.Dir)
	for _, f := range sel {
		p.Blank()
		reportFeature(p, f)

		written, err := mat.Feature(f, p.Created)
		result.Files = append(result.Files, written...)
		if err != nil {
			return nil, err
		}
	}

	if err := merged.Save(opts.FS); err != nil {
		return nil, err
	}
	result.Manifest = merged
	p.Blank()
	p.Success(fmt.Sprintf(MsgManifestUpdated, filepath.Base(merged.Path())))

	result.Install = install(ctx, opts.Installer, p, sel.DevDependencies())

	p.Summary(sel)
	return result, nil
}

func reportFeature(p *output.Printer, f types.Feature) {
	p.Step(fmt.Sprintf(MsgConfiguring, f.Description))
	if len(f.DevDependencies) > 0 {
		p.Detail(MsgAddingDevDeps, f.DevDependencies)
	}
	if len(f.Dependencies) > 0 {
		p.Detail(MsgAddingDeps, f.Dependencies)
	}
	if len(f.Scripts) > 0 {
		p.Detail(MsgAddingScripts, f.ScriptNames())
	}
}

func install(ctx context.Context, inst *installer.Installer, p *output.Printer, packages []string) installer.Result {
	logger := logging.GetLogger("setup")

	p.Blank()
	p.Println(MsgInstalling)

	res := inst.Install(ctx, packages)
	switch {
	case res.Failed():
		logger.Warn().Err(res.Err).Msg("Continuing after failed install")
		p.Failure(fmt.Sprintf(MsgInstallFailed, inst.Command()))
	case res.Status == installer.StatusInstalled:
		p.Blank()
		p.Success(MsgInstallOK)
	case res.Status == installer.StatusSkipped:
		if len(packages) > 0 {
			p.Println(fmt.Sprintf(MsgInstallDisabled, res.CommandLine))
		}
	}
	return res
}

// spacedReporter adds the blank line that follows each interactive answer
type spacedReporter struct {
	p *output.Printer
}

func (r spacedReporter) FeatureSelected(f types.Feature) {
	r.p.FeatureSelected(f)
	r.p.Blank()
}

func (r spacedReporter) FeatureSkipped(f types.Feature) {
	r.p.FeatureSkipped(f)
	r.p.Blank()
}
