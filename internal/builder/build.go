package builder

import (
	"strconv"

	"github.com/nxswift/nxswift/internal/toolchain"
)

// Target triple the toolchain was built for.
const targetTriple = "aarch64-none-elf"

// BuildDir is the dedicated build output directory, kept apart from a host
// SwiftPM's default .build so the two can coexist in one package.
const BuildDir = ".build-nx"

// BuildArgs assembles the swift-build argument vector: fixed toolchain flags
// first, then the scraped include paths, then user flags. Identical inputs
// always yield an identical vector.
func BuildArgs(layout toolchain.Layout, sdkRoot string, includes []string, opts Options) []string {
	args := []string{
		"--build-path", BuildDir,
		"-Xswiftc", "-target", "-Xswiftc", targetTriple,
		"-Xswiftc", "-resource-dir", "-Xswiftc", layout.SwiftLib,
		"-Xlinker", "-L" + layout.ICU,
	}
	for _, p := range includes {
		args = append(args, "-Xcc", "-I"+p)
	}
	args = append(args, "-Xcc", "-I"+toolchain.SDKIncludeDir(sdkRoot))

	if opts.Verbose {
		args = append(args, "--verbose")
	}
	if opts.Jobs > 0 {
		args = append(args, "--jobs", strconv.Itoa(opts.Jobs))
	}
	if opts.Configuration != "" {
		args = append(args, "--configuration", opts.Configuration)
	}
	for _, f := range opts.Xcc {
		args = append(args, "-Xcc", f)
	}
	for _, f := range opts.Xlinker {
		args = append(args, "-Xlinker", f)
	}
	for _, f := range opts.Xswiftc {
		args = append(args, "-Xswiftc", f)
	}
	return args
}

// CleanArgs forwards the single fixed subcommand to swift-package.
func CleanArgs() []string { return []string{"clean"} }

// PackageArgs forwards user arguments to swift-package verbatim and
// unmodified. Deliberate raw pass-through; nothing is interpreted here.
func PackageArgs(userArgs []string) []string {
	return append([]string(nil), userArgs...)
}
