package deploy

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nxswift/nxswift/internal/runner"
)

// Tool is the external utility that uploads and launches a built artifact on
// the console over the network.
const Tool = "nxlink"

// ArtifactExt is the executable-package extension recognized on the target.
const ArtifactExt = ".nro"

// sigintExit is the shell-convention status for a child killed by SIGINT.
const sigintExit = 130

// Options holds the deploy flags of the run subcommand.
type Options struct {
	Address string
	Retries int
	Path    string
	Args    []string
	Server  bool
}

// FindArtifact scans dir (non-recursive) for the single executable-package
// artifact to deploy. Zero artifacts is a hard failure; more than one is an
// explicitly unimplemented case rather than a silent guess.
func FindArtifact(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("failed to scan %s: %v", dir, err)
	}
	var found []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasSuffix(e.Name(), ArtifactExt) {
			found = append(found, e.Name())
		}
	}
	switch len(found) {
	case 0:
		return "", fmt.Errorf("did not find any %s product to run", ArtifactExt)
	case 1:
		return filepath.Join(dir, found[0]), nil
	default:
		return "", fmt.Errorf("found multiple %s products; product selection unimplemented", ArtifactExt)
	}
}

// ToolArgs assembles the nxlink argument vector. The artifact path precedes
// --args, as nxlink requires.
func ToolArgs(artifact string, opts Options) []string {
	var args []string
	if opts.Address != "" {
		args = append(args, "--address", opts.Address)
	}
	if opts.Retries > 0 {
		args = append(args, "--retries", strconv.Itoa(opts.Retries))
	}
	if opts.Path != "" {
		args = append(args, "--path", opts.Path)
	}
	if opts.Server {
		args = append(args, "--server")
	}
	args = append(args, artifact)
	if len(opts.Args) > 0 {
		args = append(args, "--args")
		args = append(args, opts.Args...)
	}
	return args
}

// Deploy runs nxlink on the artifact. The frontend swallows SIGINT for the
// duration of this call only: nxlink's interactive server loop conventionally
// exits by interrupt, so an interrupt-driven exit counts as success.
func Deploy(ctx context.Context, exec runner.Executor, artifact string, opts Options) (int, error) {
	restore := suppressInterrupt()
	defer restore()

	status, err := exec.Run(ctx, runner.Spec{
		Program: Tool,
		Args:    ToolArgs(artifact, opts),
	})
	if err != nil {
		var nf *runner.NotFoundError
		if errors.As(err, &nf) {
			return 1, fmt.Errorf("%s not found on PATH", Tool)
		}
		return 1, err
	}
	if status == sigintExit {
		return 0, nil
	}
	return status, nil
}

// suppressInterrupt keeps the frontend alive across Ctrl-C while the deploy
// tool runs. The signal goes to a channel that is never read. Must use Notify,
// not Ignore: SIG_IGN survives exec, and the spawned tool has to keep the
// default disposition so Ctrl-C can still terminate it.
func suppressInterrupt() func() {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt)
	return func() {
		signal.Stop(ch)
	}
}
