package toolchain

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/nxswift/nxswift/internal/runner"
)

const (
	includeListStart = "#include <...> search starts here:"
	includeListEnd   = "End of search list."
)

// ScrapeIncludePaths asks the cross compiler for its system include search
// paths by running it once in preprocessor-only mode and matching the
// diagnostic output line by line.
func ScrapeIncludePaths(ctx context.Context, exec runner.Executor, compiler string) ([]string, error) {
	var diag bytes.Buffer
	status, err := exec.Run(ctx, runner.Spec{
		Program: compiler,
		Args:    []string{"-E", "-x", "c", "-v", "/dev/null"},
		Stdout:  io.Discard,
		Stderr:  &diag,
	})
	if err != nil {
		return nil, err
	}
	if status != 0 {
		return nil, fmt.Errorf("failed to query include paths: %s exited with status %d", compiler, status)
	}
	paths := parseIncludePaths(diag.String())
	if len(paths) == 0 {
		return nil, fmt.Errorf("failed to query include paths: no search list in %s output", compiler)
	}
	return paths, nil
}

// parseIncludePaths extracts the indented path lines between the search-list
// markers, preserving the compiler's order.
func parseIncludePaths(diag string) []string {
	var paths []string
	inList := false
	for _, line := range strings.Split(diag, "\n") {
		switch {
		case strings.HasPrefix(line, includeListStart):
			inList = true
		case strings.HasPrefix(line, includeListEnd):
			return paths
		case inList && strings.HasPrefix(line, " "):
			paths = append(paths, strings.TrimSpace(line))
		}
	}
	return paths
}
