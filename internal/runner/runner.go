package runner

import (
	"context"
	"io"
)

// Spec describes a single external tool invocation.
type Spec struct {
	Program string
	Args    []string
	Dir     string
	// Env entries are overlaid on the inherited process environment.
	Env map[string]string
	// Stdout/Stderr of nil inherit the parent streams.
	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader
	// Verbose echoes the logical command line before execution.
	Verbose bool
}

// Executor runs a Spec and reports the child exit status.
//
// The returned error covers invocation-level failures only (program not
// found, start failure); a tool that runs and exits nonzero yields that
// status and a nil error.
type Executor interface {
	Run(ctx context.Context, spec Spec) (int, error)
}

// NotFoundError reports a program that could not be located on the search
// path. Callers use it to fall back to an alternate tool name.
type NotFoundError struct{ Program string }

func (e *NotFoundError) Error() string { return "program " + e.Program + " not found" }

// CommandLine renders the logical command for verbose echo.
func CommandLine(spec Spec) string {
	out := spec.Program
	for _, a := range spec.Args {
		out += " " + a
	}
	return out
}
