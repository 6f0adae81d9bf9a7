package main

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/phobologic/typeshed2spec/internal/batch"
)

var errStale = errors.New("summaries are out of date")

func newCheckCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check PATH",
		Short: "Check that generated summaries are up to date",
		Long: `Regenerate every summary in memory and compare it with the file in the
output directory. Missing or differing files are listed and the command
exits non-zero.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stale, err := batch.Check(cmd.Context(), a.batchOptions(args[0]))
			if err != nil {
				return err
			}
			if len(stale) == 0 {
				_, _ = fmt.Fprintln(a.stdout, "summaries are up to date")
				return nil
			}
			for _, job := range stale {
				_, _ = fmt.Fprintf(a.stdout, "stale: %s (from %s)\n", job.Output, job.Source)
			}
			return errors.Wrapf(errStale, "%d file(s)", len(stale))
		},
	}
	addBatchFlags(cmd)
	return cmd
}
