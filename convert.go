package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phobologic/typeshed2spec/internal/batch"
)

func newConvertCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert PATH",
		Short: "Convert a stub file or a directory of stubs",
		Long: `Convert a stub file, or every stub file found under a directory, into
summary-spec XML. Each output is named after its input with the extension
replaced by .xml. The first file that cannot be converted stops the run.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jobs, err := batch.Run(cmd.Context(), a.batchOptions(args[0]))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(a.stdout, "converted %d file(s) into %s\n", len(jobs), a.cfg.OutputDirectory)
			return nil
		},
	}
	addBatchFlags(cmd)
	return cmd
}
