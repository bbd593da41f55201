package projectcfg

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the optional per-project defaults file read from the working
// directory. Explicit command-line flags always win over file values.
const FileName = ".nxswift.yaml"

// Config holds per-project defaults for build and run flags.
type Config struct {
	Configuration string `yaml:"configuration"`
	Jobs          int    `yaml:"jobs"`
	Verbose       bool   `yaml:"verbose"`
	Address       string `yaml:"address"`
}

// Load reads FileName from dir. A missing file is not an error and yields a
// zero Config with found=false. Unknown keys and malformed YAML are fatal.
func Load(dir string) (cfg Config, found bool, err error) {
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Config{}, false, nil
		}
		return Config{}, false, fmt.Errorf("failed to read %s: %v", FileName, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, false, fmt.Errorf("invalid %s: %v", FileName, err)
	}
	if cfg.Configuration != "" && cfg.Configuration != "debug" && cfg.Configuration != "release" {
		return Config{}, false, fmt.Errorf("invalid %s: configuration must be debug or release", FileName)
	}
	if cfg.Jobs < 0 {
		return Config{}, false, fmt.Errorf("invalid %s: jobs must not be negative", FileName)
	}
	return cfg, true, nil
}
