package runner

import (
	"context"
	"strings"
	"testing"
)

func TestApplyEnvOverlay(t *testing.T) {
	base := []string{"PATH=/usr/bin", "HOME=/home/u", "=weird"}
	out := applyEnvOverlay(base, map[string]string{"PATH": "/opt/bin", "NEW": "1"})
	got := map[string]string{}
	for _, kv := range out {
		i := strings.IndexByte(kv, '=')
		got[kv[:i]] = kv[i+1:]
	}
	if got["PATH"] != "/opt/bin" {
		t.Fatalf("PATH not overlaid: %q", got["PATH"])
	}
	if got["HOME"] != "/home/u" {
		t.Fatalf("HOME lost: %q", got["HOME"])
	}
	if got["NEW"] != "1" {
		t.Fatalf("NEW missing")
	}
	if _, ok := got[""]; ok {
		t.Fatalf("malformed entry kept")
	}
}

func TestApplyEnvOverlayNoOverlayCopies(t *testing.T) {
	base := []string{"A=1"}
	out := applyEnvOverlay(base, nil)
	if len(out) != 1 || out[0] != "A=1" {
		t.Fatalf("unexpected: %v", out)
	}
	out[0] = "A=2"
	if base[0] != "A=1" {
		t.Fatalf("base mutated")
	}
}

func TestScriptedScriptContent(t *testing.T) {
	s := Scripted{
		LibraryPath: []string{"/toolchain/usr/lib", "/toolchain/icu"},
		Root:        "/opt/nxswift",
	}
	spec := Spec{
		Program: "/toolchain/usr/bin/swift-build",
		Args:    []string{"--jobs", "4", "-Xcc", "-I/odd path"},
		Env:     map[string]string{"B": "2", "A": "1"},
	}
	got := s.Script(spec)
	want := "#!/bin/sh\n" +
		"export LD_LIBRARY_PATH='/toolchain/usr/lib:/toolchain/icu':\"$LD_LIBRARY_PATH\"\n" +
		"export NXSWIFT_ROOT='/opt/nxswift'\n" +
		"export A='1'\n" +
		"export B='2'\n" +
		"exec '/toolchain/usr/bin/swift-build' '--jobs' '4' '-Xcc' '-I/odd path'\n"
	if got != want {
		t.Fatalf("unexpected script\nwant:\n%s\ngot:\n%s", want, got)
	}
}

func TestShellQuoteEmbeddedQuote(t *testing.T) {
	got := shellQuote("it's")
	want := `'it'\''s'`
	if got != want {
		t.Fatalf("want %s got %s", want, got)
	}
}

func TestCommandLine(t *testing.T) {
	got := CommandLine(Spec{Program: "swift", Args: []string{"--version"}})
	if got != "swift --version" {
		t.Fatalf("got %q", got)
	}
}

func TestFakeRecordsAndReplays(t *testing.T) {
	f := &Fake{Results: []FakeResult{{Status: 2}}}
	code, err := f.Run(context.Background(), Spec{Program: "swift"})
	if err != nil || code != 2 {
		t.Fatalf("code=%d err=%v", code, err)
	}
	code, err = f.Run(context.Background(), Spec{Program: "swift"})
	if err != nil || code != 0 {
		t.Fatalf("exhausted results should default to 0: code=%d err=%v", code, err)
	}
	if len(f.Calls) != 2 {
		t.Fatalf("calls not recorded: %d", len(f.Calls))
	}
}
