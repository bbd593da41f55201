package toolchain

import (
	"context"
	"testing"

	"github.com/nxswift/nxswift/internal/runner"
)

func TestSwiftVersionParsesToken(t *testing.T) {
	f := &runner.Fake{Results: []runner.FakeResult{{
		Stdout: "Swift version 5.9.2 (swift-5.9.2-RELEASE)\nTarget: aarch64-none-elf\n",
	}}}
	got, err := SwiftVersion(context.Background(), f)
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if got != "5.9.2" {
		t.Fatalf("want 5.9.2 got %s", got)
	}
	if f.Calls[0].Program != "swift" || f.Calls[0].Args[0] != "--version" {
		t.Fatalf("unexpected invocation: %+v", f.Calls[0])
	}
}

func TestSwiftVersionNotFound(t *testing.T) {
	f := &runner.Fake{Results: []runner.FakeResult{{Status: -1, Err: &runner.NotFoundError{Program: "swift"}}}}
	_, err := SwiftVersion(context.Background(), f)
	if err == nil || err.Error() != "swift not found on PATH" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSwiftVersionUnparseable(t *testing.T) {
	f := &runner.Fake{Results: []runner.FakeResult{{Stdout: "not a version banner\n"}}}
	if _, err := SwiftVersion(context.Background(), f); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestQueryPackageVersionPrimaryTool(t *testing.T) {
	f := &runner.Fake{Results: []runner.FakeResult{{Stdout: "libnx 4.6.0\n"}}}
	got, err := QueryPackageVersion(context.Background(), f, "libnx")
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if got != "4.6.0" {
		t.Fatalf("want 4.6.0 got %s", got)
	}
	if f.Calls[0].Program != "dkp-pacman" {
		t.Fatalf("expected dkp-pacman first, got %s", f.Calls[0].Program)
	}
}

func TestQueryPackageVersionFallsBackToPacman(t *testing.T) {
	f := &runner.Fake{Results: []runner.FakeResult{
		{Status: -1, Err: &runner.NotFoundError{Program: "dkp-pacman"}},
		{Stdout: "devkitA64 r25\n"},
	}}
	got, err := QueryPackageVersion(context.Background(), f, "devkitA64")
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if got != "r25" {
		t.Fatalf("want r25 got %s", got)
	}
	if len(f.Calls) != 2 || f.Calls[1].Program != "pacman" {
		t.Fatalf("expected pacman fallback, calls: %+v", f.Calls)
	}
}

func TestQueryPackageVersionNoTool(t *testing.T) {
	f := &runner.Fake{Results: []runner.FakeResult{
		{Status: -1, Err: &runner.NotFoundError{Program: "dkp-pacman"}},
		{Status: -1, Err: &runner.NotFoundError{Program: "pacman"}},
	}}
	_, err := QueryPackageVersion(context.Background(), f, "libnx")
	if err == nil || err.Error() != "no package query tool found (tried dkp-pacman, pacman)" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestQueryPackageVersionNotInstalled(t *testing.T) {
	f := &runner.Fake{Results: []runner.FakeResult{{Status: 1}}}
	_, err := QueryPackageVersion(context.Background(), f, "libnx")
	if err == nil || err.Error() != "package libnx is not installed" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestQueryPackageVersionParseFailure(t *testing.T) {
	f := &runner.Fake{Results: []runner.FakeResult{{Stdout: "unrelated output\n"}}}
	if _, err := QueryPackageVersion(context.Background(), f, "libnx"); err == nil {
		t.Fatalf("expected parse error")
	}
}
