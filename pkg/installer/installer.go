// Package installer adds development dependencies through the project's
// package manager.
//
// The install step is best effort: Install never returns an error. It
// returns a Result describing what happened and leaves reporting to the
// caller, so a failed install cannot undo or fail the steps before it.
package installer

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/vitestarter/vitestarter/pkg/errors"
	"github.com/vitestarter/vitestarter/pkg/logging"
)

// Status of an install attempt
type Status string

const (
	StatusInstalled Status = "installed"
	StatusFailed    Status = "failed"
	StatusSkipped   Status = "skipped"
)

// Default package manager invocation
var (
	DefaultCommand = "npm"
	DefaultArgs    = []string{"install", "--save-dev"}
)

// Options configures the package manager invocation
type Options struct {
	// Command is the package manager executable
	Command string
	// Args precede the package names
	Args []string
	// Dir is the project directory the command runs in
	Dir string
	// Disabled skips the install step entirely
	Disabled bool
}

// Result is the outcome of Install
type Result struct {
	Status   Status
	Packages []string
	// CommandLine is the command as a user would type it
	CommandLine string
	Message     string
	Err         error
}

// Failed reports whether the package manager ran and failed
func (r Result) Failed() bool {
	return r.Status == StatusFailed
}

// Installer runs the package manager for a list of packages
type Installer struct {
	runner Runner
	opts   Options
	logger zerolog.Logger
}

// New creates an installer. Empty option fields fall back to npm defaults.
func New(runner Runner, opts Options) *Installer {
	if opts.Command == "" {
		opts.Command = DefaultCommand
	}
	if opts.Args == nil {
		opts.Args = append([]string(nil), DefaultArgs...)
	}
	return &Installer{
		runner: runner,
		opts:   opts,
		logger: logging.GetLogger("installer"),
	}
}

// Command returns the package manager executable
func (i *Installer) Command() string {
	return i.opts.Command
}

// Disabled reports whether the install step is turned off
func (i *Installer) Disabled() bool {
	return i.opts.Disabled
}

// Args returns the full argument list for installing packages
func (i *Installer) Args(packages []string) []string {
	args := make([]string, 0, len(i.opts.Args)+len(packages))
	args = append(args, i.opts.Args...)
	return append(args, packages...)
}

// CommandLine renders the invocation for packages
func (i *Installer) CommandLine(packages []string) string {
	return strings.Join(append([]string{i.opts.Command}, i.Args(packages)...), " ")
}

// Install adds packages as development dependencies. Packages are passed
// through in order, duplicates included. Nothing runs when packages is
// empty or the installer is disabled.
func (i *Installer) Install(ctx context.Context, packages []string) Result {
	result := Result{
		Packages:    packages,
		CommandLine: i.CommandLine(packages),
	}

	if len(packages) == 0 {
		result.Status = StatusSkipped
		result.Message = "no dependencies to install"
		return result
	}
	if i.opts.Disabled {
		result.Status = StatusSkipped
		result.Message = "install disabled"
		i.logger.Info().Str("command", result.CommandLine).Msg("Install disabled, skipping")
		return result
	}

	args := i.Args(packages)
	logging.LogCommand(i.logger, i.opts.Command, args)

	if err := i.runner.Run(ctx, i.opts.Command, args, i.opts.Dir); err != nil {
		result.Status = StatusFailed
		result.Err = errors.Wrapf(err, errors.ErrInstallFailed, "%s exited with an error", i.opts.Command).
			WithDetail("command", result.CommandLine)
		result.Message = result.Err.Error()
		i.logger.Warn().
			Err(err).
			Str("command", result.CommandLine).
			Msg("Dependency installation failed")
		return result
	}

	result.Status = StatusInstalled
	i.logger.Info().
		Strs("packages", packages).
		Msg("Dependencies installed")
	return result
}
