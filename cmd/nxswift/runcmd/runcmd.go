package runcmd

import (
	"github.com/nxswift/nxswift/internal/builder"
	"github.com/nxswift/nxswift/internal/deploy"
	"github.com/nxswift/nxswift/internal/frontend"
	"github.com/nxswift/nxswift/internal/projectcfg"
	"github.com/spf13/cobra"
)

var (
	buildOpts  builder.Options
	deployOpts deploy.Options
)

// Cmd implements `nxswift run`: build, then deploy the single .nro artifact
// from the working directory with nxlink.
var Cmd = &cobra.Command{
	Use:           "run",
	Short:         "Build, then upload and launch the artifact on the console",
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
		bo := buildOpts
		bo.Merge(cfg, cmd.Flags().Changed)
		do := deployOpts
		if !cmd.Flags().Changed("address") && cfg.Address != "" {
			do.Address = cfg.Address
		}
		return frontend.StatusToErr(s.Run(cmd.Context(), bo, do))
	},
}

func init() {
	builder.AddBuildFlags(Cmd.Flags(), &buildOpts)
	Cmd.Flags().StringVarP(&deployOpts.Address, "address", "a", "", "Console address for nxlink")
	Cmd.Flags().IntVarP(&deployOpts.Retries, "retries", "r", 0, "Connection retry count for nxlink")
	Cmd.Flags().StringVarP(&deployOpts.Path, "path", "p", "", "Remote path for the uploaded artifact")
	Cmd.Flags().StringArrayVar(&deployOpts.Args, "args", nil, "Program argument passed to the artifact; each occurrence appends one argument")
	Cmd.Flags().BoolVarP(&deployOpts.Server, "server", "s", false, "Start the nxlink server after launch")
}
