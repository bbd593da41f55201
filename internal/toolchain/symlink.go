package toolchain

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// compatLinks maps the compiler names SwiftPM expects to the binaries the SDK
// actually ships.
var compatLinks = [][2]string{
	{"clang", CrossCC},
	{"clang++", CrossCXX},
}

// EnsureCompilerLinks creates the clang/clang++ compatibility symlinks in the
// SDK compiler directory when they are missing. An existing entry of any kind
// is left alone. A creation denied by filesystem permissions fails with the
// exact commands needed to remediate.
func EnsureCompilerLinks(binDir string) error {
	for _, link := range compatLinks {
		name, target := link[0], link[1]
		path := filepath.Join(binDir, name)
		if _, err := os.Lstat(path); err == nil {
			continue
		}
		if err := os.Symlink(target, path); err != nil {
			if errors.Is(err, fs.ErrPermission) {
				return fmt.Errorf(
					"cannot create compatibility symlink %s: permission denied; run: sudo ln -s %s %s",
					path, target, path)
			}
			return fmt.Errorf("cannot create compatibility symlink %s: %v", path, err)
		}
	}
	return nil
}
