package commands

import (
	"context"

	"github.com/spf13/cobra"

	"shadigest/internal/app"
	"shadigest/internal/logging"
	"shadigest/internal/report"
	"shadigest/internal/source"
)

type options struct {
	verbose bool
	format  report.Format
	codec   source.Codec
	jobs    int

	appCtx *app.App
}

// Execute runs the CLI with os.Args.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	opts := &options{format: report.FormatText, codec: source.CodecNone}

	root := &cobra.Command{
		Use:          "shadigest",
		Short:        "Self-contained SHA-256 checksums",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log := logging.New(cmd.ErrOrStderr(), logging.Level(opts.verbose))
			opts.appCtx = app.New(app.Config{
				Format: opts.format,
				Codec:  opts.codec,
				Double: double(cmd),
				Jobs:   opts.jobs,
				Stdin:  cmd.InOrStdin(),
				Logger: log,
			})
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging to stderr")
	pf.VarP(&opts.format, "format", "f", "output format: text, json or yaml")
	pf.Var(&opts.codec, "decompress", "input decoding: none, auto, gzip, zstd, lz4 or hex")
	pf.IntVarP(&opts.jobs, "jobs", "j", 0, "inputs hashed in parallel (default GOMAXPROCS)")

	root.AddCommand(sumCmd(opts), checkCmd(opts), selftestCmd())
	return root
}

// double reads the sum command's --double flag; other commands lack it.
func double(cmd *cobra.Command) bool {
	v, err := cmd.Flags().GetBool("double")
	return err == nil && v
}
