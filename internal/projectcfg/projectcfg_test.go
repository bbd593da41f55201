package projectcfg

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	d := t.TempDir()
	if err := os.WriteFile(filepath.Join(d, FileName), []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return d
}

func TestLoadMissingFileIsZero(t *testing.T) {
	cfg, found, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if found {
		t.Fatalf("expected found=false")
	}
	if cfg != (Config{}) {
		t.Fatalf("expected zero config, got %+v", cfg)
	}
}

func TestLoadValues(t *testing.T) {
	d := writeConfig(t, "configuration: release\njobs: 4\nverbose: true\naddress: 192.168.1.42\n")
	cfg, found, err := Load(d)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !found {
		t.Fatalf("expected found")
	}
	want := Config{Configuration: "release", Jobs: 4, Verbose: true, Address: "192.168.1.42"}
	if cfg != want {
		t.Fatalf("want %+v got %+v", want, cfg)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	d := writeConfig(t, "configuration: debug\nretries: 3\n")
	_, _, err := Load(d)
	if err == nil || !strings.HasPrefix(err.Error(), "invalid "+FileName) {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadRejectsBadConfiguration(t *testing.T) {
	d := writeConfig(t, "configuration: profile\n")
	if _, _, err := Load(d); err == nil {
		t.Fatalf("expected error")
	}
}

func TestLoadRejectsNegativeJobs(t *testing.T) {
	d := writeConfig(t, "jobs: -2\n")
	_, _, err := Load(d)
	if err == nil || err.Error() != "invalid "+FileName+": jobs must not be negative" {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, _, err := Load(writeConfig(t, "jobs: 0\n")); err != nil {
		t.Fatalf("zero jobs means unset: %v", err)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	d := writeConfig(t, "configuration: [\n")
	if _, _, err := Load(d); err == nil {
		t.Fatalf("expected error")
	}
}
