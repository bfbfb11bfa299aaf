package commands

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"shadigest/internal/report"
	"shadigest/internal/source"
)

func sumCmd(opts *options) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "sum [FILE...]",
		Short: "Print SHA-256 digests; with no FILE, or when FILE is -, read stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{source.Stdin}
			}
			a := opts.appCtx
			entries, err := a.Sum(cmd.Context(), args)
			if err != nil {
				return err
			}

			if output != "" {
				err = report.WriteFile(output, 0o644, func(buf *bytes.Buffer) error {
					return report.WriteEntries(buf, a.Format(), entries)
				})
			} else {
				err = report.WriteEntries(cmd.OutOrStdout(), a.Format(), entries)
			}
			if err != nil {
				return err
			}

			var failed int
			for _, e := range entries {
				if e.Error != "" {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d input(s) could not be hashed", failed, len(entries))
			}
			return nil
		},
	}

	cmd.Flags().Bool("double", false, "print SHA-256(SHA-256(input))")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write results to this file instead of stdout")
	return cmd
}
