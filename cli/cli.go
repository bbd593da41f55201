package cli

// Version and Date should be set at build time using ldflags, e.g.:
//
//  -ldflags "-X 'github.com/nxswift/nxswift/cli.Version=1.2.3' -X 'github.com/nxswift/nxswift/cli.Date=2026-02-09'"
var (
	Version string
	Date    string
)
