package root

import (
	"github.com/nxswift/nxswift/cmd/nxswift/build"
	"github.com/nxswift/nxswift/cmd/nxswift/clean"
	"github.com/nxswift/nxswift/cmd/nxswift/doctor"
	"github.com/nxswift/nxswift/cmd/nxswift/pkgcmd"
	"github.com/nxswift/nxswift/cmd/nxswift/runcmd"
	"github.com/nxswift/nxswift/cmd/nxswift/version"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for nxswift.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nxswift",
		Short: "CLI: build and deploy Swift homebrew for the Nintendo Switch via the devkitPro toolchain",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Show help when no subcommand is provided.
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Subcommands
	cmd.AddCommand(version.VersionCmd)
	cmd.AddCommand(build.Cmd)
	cmd.AddCommand(clean.Cmd)
	cmd.AddCommand(pkgcmd.Cmd)
	cmd.AddCommand(runcmd.Cmd)
	cmd.AddCommand(doctor.Cmd)

	return cmd
}

// Execute runs the root command with provided args.
func Execute(args []string) error {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	return cmd.Execute()
}
