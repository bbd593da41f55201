package toolchain

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/nxswift/nxswift/internal/runner"
)

// Package query tools, tried in order. dkp-pacman is the devkitPro install;
// plain pacman covers distributions that ship the SDK packages natively.
var queryTools = []string{"dkp-pacman", "pacman"}

var swiftVersionPattern = regexp.MustCompile(`Swift version (\S+)`)

// SwiftVersion runs `swift --version` and extracts the reported version token.
func SwiftVersion(ctx context.Context, exec runner.Executor) (string, error) {
	var out bytes.Buffer
	status, err := exec.Run(ctx, runner.Spec{
		Program: "swift",
		Args:    []string{"--version"},
		Stdout:  &out,
		Stderr:  io.Discard,
	})
	if err != nil {
		var nf *runner.NotFoundError
		if errors.As(err, &nf) {
			return "", errors.New("swift not found on PATH")
		}
		return "", err
	}
	if status != 0 {
		return "", fmt.Errorf("swift --version exited with status %d", status)
	}
	m := swiftVersionPattern.FindStringSubmatch(out.String())
	if m == nil {
		return "", errors.New("could not parse swift --version output")
	}
	return m[1], nil
}

// QueryPackageVersion reads the installed version of an SDK sub-package
// through the system package query tool. Output line format: "<name> <version>".
func QueryPackageVersion(ctx context.Context, exec runner.Executor, pkg string) (string, error) {
	for _, tool := range queryTools {
		var out bytes.Buffer
		status, err := exec.Run(ctx, runner.Spec{
			Program: tool,
			Args:    []string{"-Q", pkg},
			Stdout:  &out,
			Stderr:  io.Discard,
		})
		if err != nil {
			var nf *runner.NotFoundError
			if errors.As(err, &nf) {
				continue
			}
			return "", err
		}
		if status != 0 {
			return "", fmt.Errorf("package %s is not installed", pkg)
		}
		fields := strings.Fields(out.String())
		if len(fields) < 2 || fields[0] != pkg {
			return "", fmt.Errorf("could not parse %s output for package %s", tool, pkg)
		}
		return fields[1], nil
	}
	return "", fmt.Errorf("no package query tool found (tried %s)", strings.Join(queryTools, ", "))
}
