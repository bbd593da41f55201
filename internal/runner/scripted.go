package runner

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Scripted executes the program through a generated shell script run by the
// user's configured shell. Direct invocation of the Swift toolchain was found
// to not reliably propagate environment and stream redirection down to the
// underlying build tool, so the swift-build/swift-package calls go through
// this indirection instead.
type Scripted struct {
	// LibraryPath entries are prepended to LD_LIBRARY_PATH inside the script.
	LibraryPath []string
	// Root is exported as NXSWIFT_ROOT for toolchain scripts that need to
	// locate the frontend's own installation.
	Root string
}

const defaultShell = "bash"

func (s Scripted) Run(ctx context.Context, spec Spec) (int, error) {
	if spec.Verbose {
		fmt.Fprintln(os.Stderr, "+ "+CommandLine(spec))
	}
	path, err := writeScript(s, spec)
	if err != nil {
		return -1, err
	}
	// The script is deliberately left behind for post-mortem inspection.
	shell := os.Getenv("SHELL")
	if shell == "" {
		shell = defaultShell
	}
	inner := spec
	inner.Program = shell
	inner.Args = []string{path}
	inner.Verbose = false
	return Direct{}.Run(ctx, inner)
}

// Script renders the shell script body for a Spec without writing it.
func (s Scripted) Script(spec Spec) string {
	var b strings.Builder
	b.WriteString("#!/bin/sh\n")
	if len(s.LibraryPath) > 0 {
		b.WriteString("export LD_LIBRARY_PATH=")
		b.WriteString(shellQuote(strings.Join(s.LibraryPath, ":")))
		b.WriteString(":\"$LD_LIBRARY_PATH\"\n")
	}
	if s.Root != "" {
		b.WriteString("export NXSWIFT_ROOT=" + shellQuote(s.Root) + "\n")
	}
	keys := make([]string, 0, len(spec.Env))
	for k := range spec.Env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString("export " + k + "=" + shellQuote(spec.Env[k]) + "\n")
	}
	b.WriteString("exec " + shellQuote(spec.Program))
	for _, a := range spec.Args {
		b.WriteString(" " + shellQuote(a))
	}
	b.WriteString("\n")
	return b.String()
}

func writeScript(s Scripted, spec Spec) (string, error) {
	f, err := os.CreateTemp("", "nxswift-*.sh")
	if err != nil {
		return "", fmt.Errorf("failed to create launch script: %w", err)
	}
	if _, err := f.WriteString(s.Script(spec)); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("failed to write launch script: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to write launch script: %w", err)
	}
	if err := os.Chmod(f.Name(), 0o755); err != nil {
		return "", fmt.Errorf("failed to mark launch script executable: %w", err)
	}
	return f.Name(), nil
}

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
