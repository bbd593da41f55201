package doctor

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/nxswift/nxswift/internal/frontend"
	"github.com/nxswift/nxswift/internal/toolchain"
	"github.com/spf13/cobra"
)

var flagJSON bool

// Cmd implements `nxswift doctor`: run every environment check and render the
// full report instead of stopping at the first failure. No build is executed.
var Cmd = &cobra.Command{
	Use:           "doctor",
	Short:         "Check the host environment against the manifest pins",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := frontend.NewSession()
		if err != nil {
			return err
		}
		rep := s.Doctor(cmd.Context())
		if err := render(os.Stdout, rep, flagJSON); err != nil {
			return err
		}
		if rep.Err() != nil {
			return errors.New("environment checks failed")
		}
		return nil
	},
}

func render(w io.Writer, rep toolchain.Report, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}
	for _, c := range rep.Checks {
		state := "ok"
		if !c.OK {
			state = "fail"
		}
		if _, err := fmt.Fprintf(w, "%-4s %-10s %s\n", state, c.Name, c.Detail); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	Cmd.Flags().BoolVar(&flagJSON, "json", false, "Print the report as JSON")
}
