package frontend

import (
	"context"
	"os"

	"github.com/nxswift/nxswift/internal/builder"
	"github.com/nxswift/nxswift/internal/deploy"
	"github.com/nxswift/nxswift/internal/hooks"
	"github.com/nxswift/nxswift/internal/manifest"
	"github.com/nxswift/nxswift/internal/runner"
	"github.com/nxswift/nxswift/internal/toolchain"
)

// Session carries the per-invocation state every subcommand needs: the
// manifest pins, the resolved locations, and the executors. Tests substitute
// fake executors to assert on constructed argument vectors.
type Session struct {
	Manifest manifest.Manifest
	// BaseDir is the directory holding the nxswift binary; the toolchain
	// tree and the manifest live next to it.
	BaseDir string
	// WorkDir is the package directory being built.
	WorkDir string
	// SDKRoot is the raw DEVKITPRO value.
	SDKRoot string
	// Exec runs probes, the include scrape and the deploy tool directly.
	Exec runner.Executor
	// BuildExec, when set, replaces the scripted executor used for
	// swift-build/swift-package calls.
	BuildExec runner.Executor
}

// NewSession loads the manifest colocated with the binary and resolves the
// ambient locations. Called once per invocation, before dispatch.
func NewSession() (*Session, error) {
	base, err := toolchain.ExecutableDir()
	if err != nil {
		return nil, err
	}
	mpath, err := manifest.DefaultPath()
	if err != nil {
		return nil, err
	}
	m, err := manifest.Load(mpath)
	if err != nil {
		return nil, err
	}
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return &Session{
		Manifest: m,
		BaseDir:  base,
		WorkDir:  wd,
		SDKRoot:  toolchain.ReadSDKRoot(),
		Exec:     runner.Direct{},
	}, nil
}

// Validate runs the environment probe fail-fast.
func (s *Session) Validate(ctx context.Context, needSDK bool) error {
	rep := toolchain.Probe(ctx, s.Exec, toolchain.ProbeOptions{
		Manifest: s.Manifest,
		NeedSDK:  needSDK,
		SDKRoot:  s.SDKRoot,
	})
	return rep.Err()
}

// Doctor runs every probe check and returns the full report.
func (s *Session) Doctor(ctx context.Context) toolchain.Report {
	return toolchain.Probe(ctx, s.Exec, toolchain.ProbeOptions{
		Manifest:  s.Manifest,
		NeedSDK:   true,
		SDKRoot:   s.SDKRoot,
		ReportAll: true,
	})
}

func (s *Session) scriptedExec(layout toolchain.Layout) runner.Executor {
	if s.BuildExec != nil {
		return s.BuildExec
	}
	return runner.Scripted{LibraryPath: layout.LibraryPath(), Root: s.BaseDir}
}

// Build validates the environment, prepares the toolchain and runs
// swift-build. The returned status is the build tool's own exit code.
func (s *Session) Build(ctx context.Context, opts builder.Options) (int, error) {
	if err := opts.Validate(); err != nil {
		return 1, err
	}
	if err := s.Validate(ctx, true); err != nil {
		return 1, err
	}
	layout, err := toolchain.ResolveLayout(s.BaseDir)
	if err != nil {
		return 1, err
	}
	includes, err := toolchain.ScrapeIncludePaths(ctx, s.Exec, toolchain.CrossCompilerPath(s.SDKRoot))
	if err != nil {
		return 1, err
	}
	if err := toolchain.EnsureCompilerLinks(toolchain.CompilerBinDir(s.SDKRoot)); err != nil {
		return 1, err
	}
	args := builder.BuildArgs(layout, s.SDKRoot, includes, opts)
	h, err := hooks.Load(s.WorkDir)
	if err != nil {
		return 1, err
	}
	if h != nil {
		if args, err = h.Prebuild(args); err != nil {
			return 1, err
		}
	}
	return s.scriptedExec(layout).Run(ctx, runner.Spec{
		Program: layout.BuildTool,
		Args:    args,
		Dir:     s.WorkDir,
		Verbose: opts.Verbose,
	})
}

// Clean forwards the fixed clean subcommand to swift-package. Clean never
// consults the SDK root.
func (s *Session) Clean(ctx context.Context, verbose bool) (int, error) {
	if err := s.Validate(ctx, false); err != nil {
		return 1, err
	}
	layout, err := toolchain.ResolveLayout(s.BaseDir)
	if err != nil {
		return 1, err
	}
	return s.scriptedExec(layout).Run(ctx, runner.Spec{
		Program: layout.PackageTool,
		Args:    builder.CleanArgs(),
		Dir:     s.WorkDir,
		Verbose: verbose,
	})
}

// Package forwards user arguments to swift-package verbatim.
func (s *Session) Package(ctx context.Context, userArgs []string) (int, error) {
	if err := s.Validate(ctx, false); err != nil {
		return 1, err
	}
	layout, err := toolchain.ResolveLayout(s.BaseDir)
	if err != nil {
		return 1, err
	}
	return s.scriptedExec(layout).Run(ctx, runner.Spec{
		Program: layout.PackageTool,
		Args:    builder.PackageArgs(userArgs),
		Dir:     s.WorkDir,
	})
}

// Run builds, then deploys the single artifact found in the working
// directory. A failed build stops the run; the deploy tool is never invoked.
func (s *Session) Run(ctx context.Context, bopts builder.Options, dopts deploy.Options) (int, error) {
	status, err := s.Build(ctx, bopts)
	if err != nil || status != 0 {
		return status, err
	}
	artifact, err := deploy.FindArtifact(s.WorkDir)
	if err != nil {
		return 1, err
	}
	return deploy.Deploy(ctx, s.Exec, artifact, dopts)
}

// ExitError propagates a delegated tool's exit status without wrapping it in
// a new message; the tool already reported its own failure.
type ExitError struct{ Code int }

func (e ExitError) Error() string { return "" }

func (e ExitError) ExitCode() int { return e.Code }

// StatusToErr converts a nonzero delegated-tool status into an ExitError.
func StatusToErr(status int, err error) error {
	if err != nil {
		return err
	}
	if status != 0 {
		return ExitError{Code: status}
	}
	return nil
}
