package installer

import (
	"context"
	"io"
	"os"
	"os/exec"
)

// Runner starts the package manager. Implementations block until the
// process exits and report a non-zero exit as an error.
type Runner interface {
	Run(ctx context.Context, name string, args []string, dir string) error
}

// ExecRunner runs commands with os/exec, wiring the child to the given streams
type ExecRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecRunner creates a runner whose children inherit the process's standard streams
func NewExecRunner() *ExecRunner {
	return &ExecRunner{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Run executes the command in dir and waits for it
func (r *ExecRunner) Run(ctx context.Context, name string, args []string, dir string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	return cmd.Run()
}
