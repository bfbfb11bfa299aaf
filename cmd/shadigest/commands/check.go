package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"shadigest/internal/report"
	"shadigest/internal/source"
)

var errStdinTwice = errors.New("manifest read from stdin cannot list - as an input")

func checkCmd(opts *options) *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "check MANIFEST",
		Short: "Verify files listed in a sha256sum-style manifest (- reads stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = cmd.InOrStdin()
			if args[0] != source.Stdin {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			lines, err := report.ParseManifest(in)
			if err != nil {
				return err
			}
			if args[0] == source.Stdin {
				for _, l := range lines {
					if l.Path == source.Stdin {
						return fmt.Errorf("line %d: %w", l.Line, errStdinTwice)
					}
				}
			}

			a := opts.appCtx
			checks, checkErr := a.Check(cmd.Context(), lines)
			if checks == nil {
				return checkErr
			}
			if quiet {
				checks = failedOnly(checks)
			}
			if err := report.WriteChecks(cmd.OutOrStdout(), a.Format(), checks); err != nil {
				return err
			}
			return checkErr
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "only report failures")
	return cmd
}

func failedOnly(checks []report.Check) []report.Check {
	out := checks[:0:0]
	for _, c := range checks {
		if c.Status != report.StatusOK {
			out = append(out, c)
		}
	}
	return out
}
