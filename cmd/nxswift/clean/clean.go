package clean

import (
	"github.com/nxswift/nxswift/internal/frontend"
	"github.com/spf13/cobra"
)

// Cmd implements `nxswift clean`: a single fixed subcommand forwarded to
// swift-package.
var Cmd = &cobra.Command{
	Use:           "clean",
	Short:         "Remove build artifacts via swift-package clean",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := frontend.NewSession()
		if err != nil {
			return err
		}
		return frontend.StatusToErr(s.Clean(cmd.Context(), false))
	},
}
