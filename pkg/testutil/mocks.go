package testutil

import (
	"context"
	"sync"
)

// RunCall records a single FakeRunner invocation
type RunCall struct {
	Name string
	Args []string
	Dir  string
}

// FakeRunner stands in for the package manager. It records every call
// and returns Err (nil by default).
type FakeRunner struct {
	mu    sync.Mutex
	Err   error
	calls []RunCall
}

// Run records the invocation
func (f *FakeRunner) Run(_ context.Context, name string, args []string, dir string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, RunCall{Name: name, Args: append([]string(nil), args...), Dir: dir})
	return f.Err
}

// Calls returns the recorded invocations
func (f *FakeRunner) Calls() []RunCall {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]RunCall(nil), f.calls...)
}
