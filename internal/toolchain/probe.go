package toolchain

import (
	"context"
	"fmt"
	"os"

	"github.com/nxswift/nxswift/internal/manifest"
	"github.com/nxswift/nxswift/internal/runner"
)

// ProbeOptions selects which environment checks apply to the current
// subcommand. Only build and run consult the SDK root and the SDK
// sub-package pins.
type ProbeOptions struct {
	Manifest manifest.Manifest
	NeedSDK  bool
	// SDKRoot is the raw DEVKITPRO value; filled from the environment by
	// ReadSDKRoot and injectable in tests.
	SDKRoot string
	// ReportAll keeps probing past the first failure so doctor can render a
	// complete report. Subcommands leave it false and stay fail-fast.
	ReportAll bool
}

// ReadSDKRoot reads the SDK root environment variable.
func ReadSDKRoot() string { return os.Getenv(SDKRootEnv) }

// Check is one probe result.
type Check struct {
	Name   string `json:"name"`
	OK     bool   `json:"ok"`
	Detail string `json:"detail,omitempty"`
}

// Report collects probe results. Err surfaces the first failure so callers
// keep the fail-fast contract while doctor renders the whole report.
type Report struct {
	Checks []Check `json:"checks"`
}

func (r Report) Err() error {
	for _, c := range r.Checks {
		if !c.OK {
			return fmt.Errorf("%s", c.Detail)
		}
	}
	return nil
}

// Probe validates the host environment against the manifest. It never exits
// the process; callers decide how to surface failures.
func Probe(ctx context.Context, exec runner.Executor, opts ProbeOptions) Report {
	var rep Report
	add := func(name string, err error, okDetail string) bool {
		c := Check{Name: name, OK: err == nil, Detail: okDetail}
		if err != nil {
			c.Detail = err.Error()
		}
		rep.Checks = append(rep.Checks, c)
		return c.OK
	}

	if !add("swift", checkSwift(ctx, exec, opts.Manifest.SwiftVersion), opts.Manifest.SwiftVersion) && !opts.ReportAll {
		return rep
	}

	if !opts.NeedSDK {
		return rep
	}

	if !add(SDKRootEnv, checkSDKRoot(opts.SDKRoot), opts.SDKRoot) && !opts.ReportAll {
		return rep
	}

	for _, pin := range opts.Manifest.PinnedPackages() {
		name, want := pin[0], pin[1]
		if !add(name, checkPackagePin(ctx, exec, name, want), want) && !opts.ReportAll {
			return rep
		}
	}
	return rep
}

func checkSwift(ctx context.Context, exec runner.Executor, pinned string) error {
	got, err := SwiftVersion(ctx, exec)
	if err != nil {
		return err
	}
	if got != pinned {
		return fmt.Errorf("swift version mismatch: manifest pins %s, toolchain reports %s", pinned, got)
	}
	return nil
}

func checkSDKRoot(root string) error {
	if root == "" {
		return fmt.Errorf("%s is not set", SDKRootEnv)
	}
	if root != RequiredSDKRoot {
		return fmt.Errorf("%s must be %s (SDK modulemaps hardcode this path; modulemap format limitation)",
			SDKRootEnv, RequiredSDKRoot)
	}
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%s does not point to an existing directory: %s", SDKRootEnv, root)
	}
	return nil
}

func checkPackagePin(ctx context.Context, exec runner.Executor, pkg, want string) error {
	installed, err := QueryPackageVersion(ctx, exec, pkg)
	if err != nil {
		return err
	}
	if installed != want {
		return fmt.Errorf("%s version mismatch: manifest pins %s, installed %s", pkg, want, installed)
	}
	return nil
}
