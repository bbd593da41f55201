package pkgcmd

import (
	"github.com/nxswift/nxswift/internal/frontend"
	"github.com/spf13/cobra"
)

// Cmd implements `nxswift package`. Every argument is forwarded to
// swift-package verbatim and unmodified, so flag parsing is disabled
// entirely: `nxswift package foo --bar` forwards exactly ["foo", "--bar"].
var Cmd = &cobra.Command{
	Use:                "package [args...]",
	Short:              "Forward arguments to swift-package unmodified",
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := frontend.NewSession()
		if err != nil {
			return err
		}
		return frontend.StatusToErr(s.Package(cmd.Context(), args))
	},
}
