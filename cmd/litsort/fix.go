package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"litsort/internal/driver"
	"litsort/internal/fix"
)

var fixCmd = &cobra.Command{
	Use:   "fix [flags] <file|directory>...",
	Short: "Apply the suggested fixes of diagnostics",
	Long: `Fix expands the given files, then applies the fixes attached to the
reported diagnostics, such as a missing comma or a key that is not NFC-normalized.
By default only the first fix is applied; use --all or --id to choose.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFix,
}

func init() {
	addPipelineFlags(fixCmd)
	fixCmd.Flags().Bool("all", false, "apply every non-conflicting fix")
	fixCmd.Flags().String("id", "", "apply the fix with this id (see --dry-run)")
	fixCmd.Flags().Bool("dry-run", false, "list fixes without writing files")
	fixCmd.MarkFlagsMutuallyExclusive("all", "id")
}

func runFix(cmd *cobra.Command, args []string) error {
	all, err := cmd.Flags().GetBool("all")
	if err != nil {
		return fmt.Errorf("failed to get all flag: %w", err)
	}
	id, err := cmd.Flags().GetString("id")
	if err != nil {
		return fmt.Errorf("failed to get id flag: %w", err)
	}
	dryRun, err := cmd.Flags().GetBool("dry-run")
	if err != nil {
		return fmt.Errorf("failed to get dry-run flag: %w", err)
	}

	opts := fix.ApplyOptions{Mode: fix.ApplyModeOnce, DryRun: dryRun}
	switch {
	case id != "":
		opts.Mode = fix.ApplyModeID
		opts.TargetID = id
	case all:
		opts.Mode = fix.ApplyModeAll
	}

	p, err := newPipeline(cmd, args)
	if err != nil {
		return err
	}
	// фиксы строятся по свежей диагностике
	p.opts.Cache = nil
	fs, results, err := p.run(cmd.Context())
	if err != nil {
		return err
	}
	bag := driver.Diagnostics(results)
	bag.Sort()
	bag.Dedup()

	res, err := fix.Apply(fs, bag.Items(), opts)
	out := cmd.OutOrStdout()
	if res != nil {
		verb := "applied"
		if dryRun {
			verb = "would apply"
		}
		for _, a := range res.Applied {
			fmt.Fprintf(out, "%s %s: %s (%s, %s)\n", verb, a.ID, a.Title, a.PrimaryPath, a.Code.ID())
		}
		if !p.settings.quiet {
			for _, s := range res.Skipped {
				fmt.Fprintf(cmd.ErrOrStderr(), "skipped %s: %s\n", s.ID, s.Reason)
			}
			if !dryRun {
				for _, c := range res.FileChanges {
					fmt.Fprintf(out, "wrote %s (%d edits)\n", c.Path, c.EditCount)
				}
			}
		}
	}
	if errors.Is(err, fix.ErrNoFixes) {
		if !p.settings.quiet {
			fmt.Fprintln(cmd.ErrOrStderr(), "no fixes to apply")
		}
		return nil
	}
	return err
}
