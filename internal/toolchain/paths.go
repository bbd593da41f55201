package toolchain

import (
	"fmt"
	"os"
	"path/filepath"
)

// SDKRootEnv names the environment variable pointing at the devkitPro root.
const SDKRootEnv = "DEVKITPRO"

// RequiredSDKRoot is the only SDK root the toolchain accepts: the modulemap
// files shipped with the SDK hardcode this path at toolchain build time.
// Variable so tests can point it at a scratch directory.
var RequiredSDKRoot = "/opt/devkitpro"

// Cross-compiler binary names under <sdk>/devkitA64/bin. SwiftPM resolves the
// C compiler by the clang names, so compatibility symlinks are maintained for
// them.
const (
	CrossCC  = "aarch64-none-elf-gcc"
	CrossCXX = "aarch64-none-elf-g++"
)

// Layout holds the toolchain tree resolved relative to the nxswift binary.
type Layout struct {
	Root        string // directory containing the nxswift binary
	BuildTool   string // toolchain/usr/bin/swift-build
	PackageTool string // toolchain/usr/bin/swift-package
	SwiftLib    string // toolchain/usr/lib/swift
	ICU         string // toolchain/icu
}

// LibraryPath returns the runtime library directories exported to the build
// tool via LD_LIBRARY_PATH.
func (l Layout) LibraryPath() []string {
	return []string{l.SwiftLib, l.ICU}
}

// ExecutableDir resolves the directory holding the running binary.
func ExecutableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate own executable: %v", err)
	}
	return filepath.Dir(exe), nil
}

// ResolveLayout computes the fixed toolchain layout under baseDir and fails
// on the first missing path.
func ResolveLayout(baseDir string) (Layout, error) {
	l := Layout{
		Root:        baseDir,
		BuildTool:   filepath.Join(baseDir, "toolchain", "usr", "bin", "swift-build"),
		PackageTool: filepath.Join(baseDir, "toolchain", "usr", "bin", "swift-package"),
		SwiftLib:    filepath.Join(baseDir, "toolchain", "usr", "lib", "swift"),
		ICU:         filepath.Join(baseDir, "toolchain", "icu"),
	}
	for _, p := range []string{l.BuildTool, l.PackageTool, l.SwiftLib, l.ICU} {
		if _, err := os.Stat(p); err != nil {
			return Layout{}, fmt.Errorf("toolchain path not found: %s", p)
		}
	}
	return l, nil
}

// CompilerBinDir returns the SDK directory holding the cross-compiler.
func CompilerBinDir(sdkRoot string) string {
	return filepath.Join(sdkRoot, "devkitA64", "bin")
}

// CrossCompilerPath returns the cross C compiler under the SDK root.
func CrossCompilerPath(sdkRoot string) string {
	return filepath.Join(CompilerBinDir(sdkRoot), CrossCC)
}

// SDKIncludeDir returns the fixed libnx include directory under the SDK root.
func SDKIncludeDir(sdkRoot string) string {
	return filepath.Join(sdkRoot, "libnx", "include")
}
