package build

import (
	"github.com/nxswift/nxswift/internal/builder"
	"github.com/nxswift/nxswift/internal/frontend"
	"github.com/nxswift/nxswift/internal/projectcfg"
	"github.com/spf13/cobra"
)

var opts builder.Options

// Cmd implements `nxswift build`.
var Cmd = &cobra.Command{
	Use:           "build",
	Short:         "Build the package for the Switch target",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := frontend.NewSession()
		if err != nil {
			return err
		}
		cfg, _, err := projectcfg.Load(s.WorkDir)
		if err != nil {
			return err
		}
		o := opts
		o.Merge(cfg, cmd.Flags().Changed)
		return frontend.StatusToErr(s.Build(cmd.Context(), o))
	},
}

func init() {
	builder.AddBuildFlags(Cmd.Flags(), &opts)
}
