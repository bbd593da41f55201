package manifest

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

//go:embed schema.cue
var schemaCue []byte

// FileName is the manifest file expected next to the nxswift binary.
const FileName = "manifest.json"

// Manifest pins the toolchain and SDK sub-package versions this frontend was
// built against. Read-only for the process lifetime; reloaded fresh each run.
type Manifest struct {
	SwiftVersion string `json:"swift-version"`
	Libnx        string `json:"libnx"`
	DevkitA64    string `json:"devkitA64"`
}

// PinnedPackages lists the SDK sub-packages to verify through the package
// query tool, in check order.
func (m Manifest) PinnedPackages() [][2]string {
	return [][2]string{
		{"libnx", m.Libnx},
		{"devkitA64", m.DevkitA64},
	}
}

// DefaultPath returns the manifest location colocated with the running binary.
func DefaultPath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate own executable: %v", err)
	}
	return filepath.Join(filepath.Dir(exe), FileName), nil
}

// Load reads and validates the manifest at path.
func Load(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("failed to read manifest: %w", err)
	}
	if err := validate(data); err != nil {
		return Manifest{}, err
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("invalid manifest: %v", err)
	}
	return m, nil
}

// validate checks the raw manifest bytes against the embedded schema.
// JSON is a subset of CUE, so the document compiles directly.
func validate(data []byte) error {
	ctx := cuecontext.New()
	schema := ctx.CompileBytes(schemaCue)
	if err := schema.Err(); err != nil {
		return fmt.Errorf("invalid manifest schema: %v", err)
	}
	v := ctx.CompileBytes(data)
	if err := v.Err(); err != nil {
		return fmt.Errorf("invalid manifest: %v", err)
	}
	if err := schema.Unify(v).Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("invalid manifest: %v", err)
	}
	return nil
}
