package toolchain

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func makeToolchainTree(t *testing.T) string {
	t.Helper()
	base := t.TempDir()
	for _, d := range []string{
		filepath.Join(base, "toolchain", "usr", "bin"),
		filepath.Join(base, "toolchain", "usr", "lib", "swift"),
		filepath.Join(base, "toolchain", "icu"),
	} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
	}
	for _, f := range []string{"swift-build", "swift-package"} {
		p := filepath.Join(base, "toolchain", "usr", "bin", f)
		if err := os.WriteFile(p, []byte("#!/bin/sh\n"), 0o755); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	return base
}

func TestResolveLayout(t *testing.T) {
	base := makeToolchainTree(t)
	l, err := ResolveLayout(base)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if l.Root != base {
		t.Fatalf("root: %s", l.Root)
	}
	if !strings.HasSuffix(l.BuildTool, filepath.Join("toolchain", "usr", "bin", "swift-build")) {
		t.Fatalf("build tool: %s", l.BuildTool)
	}
	lp := l.LibraryPath()
	if len(lp) != 2 || lp[0] != l.SwiftLib || lp[1] != l.ICU {
		t.Fatalf("library path: %v", lp)
	}
}

func TestResolveLayoutMissingPath(t *testing.T) {
	base := makeToolchainTree(t)
	if err := os.RemoveAll(filepath.Join(base, "toolchain", "icu")); err != nil {
		t.Fatalf("remove: %v", err)
	}
	_, err := ResolveLayout(base)
	if err == nil || !strings.HasPrefix(err.Error(), "toolchain path not found") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSDKPathHelpers(t *testing.T) {
	if got := CrossCompilerPath("/opt/devkitpro"); got != "/opt/devkitpro/devkitA64/bin/aarch64-none-elf-gcc" {
		t.Fatalf("cross compiler: %s", got)
	}
	if got := SDKIncludeDir("/opt/devkitpro"); got != "/opt/devkitpro/libnx/include" {
		t.Fatalf("include dir: %s", got)
	}
}
