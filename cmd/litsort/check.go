package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"litsort/internal/driver"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <file|directory>...",
	Short: "Report invocation errors without writing anything",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func init() {
	addPipelineFlags(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	p, err := newPipeline(cmd, args)
	if err != nil {
		return err
	}
	fs, results, err := p.run(cmd.Context())
	if err != nil {
		return err
	}

	// диагностики — основной вывод check, поэтому в stdout
	color := p.settings.color && isTerminal(stdoutFile(cmd))
	if err := p.report(cmd.OutOrStdout(), color, fs, results); err != nil {
		return err
	}

	if !p.settings.quiet {
		invocations := 0
		for i := range results {
			invocations += results[i].Invocations
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "checked %d files, %d invocations, %d files with errors\n",
			len(results), invocations, countErrors(results))
	}
	p.printTimings(cmd.ErrOrStderr())

	if driver.HasErrors(results) {
		return errHasErrors
	}
	return nil
}
