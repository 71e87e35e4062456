package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"litsort/internal/driver"
	"litsort/internal/source"
	"litsort/internal/ui"
)

var expandCmd = &cobra.Command{
	Use:   "expand [flags] <file|directory>...",
	Short: "Expand sort!(...) invocations",
	Long: `Expand replaces every invocation with the sorted array literal.
A single file is printed to stdout. With --write, foo.go.in is written to foo.go
([files].strip_suffix); with --in-place the input itself is rewritten.
Files with errors are never written.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExpand,
}

func init() {
	addPipelineFlags(expandCmd)
	expandCmd.Flags().Bool("write", false, "write results next to the inputs, stripping [files].strip_suffix")
	expandCmd.Flags().Bool("in-place", false, "rewrite input files")
	expandCmd.Flags().String("ui", "auto", "progress UI for multi-file runs (auto|on|off)")
	expandCmd.MarkFlagsMutuallyExclusive("write", "in-place")
}

func runExpand(cmd *cobra.Command, args []string) error {
	write, err := cmd.Flags().GetBool("write")
	if err != nil {
		return fmt.Errorf("failed to get write flag: %w", err)
	}
	inPlace, err := cmd.Flags().GetBool("in-place")
	if err != nil {
		return fmt.Errorf("failed to get in-place flag: %w", err)
	}
	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}

	p, err := newPipeline(cmd, args)
	if err != nil {
		return err
	}
	toStdout := !write && !inPlace
	if toStdout && len(p.files) != 1 {
		return fmt.Errorf("%d files matched; use --write or --in-place to expand more than one", len(p.files))
	}

	var (
		fs      *source.FileSet
		results []driver.FileResult
	)
	// stdout занят результатом, прогресс только при записи в файлы
	if !toStdout && !p.settings.quiet && len(p.files) > 1 && shouldUseTUI(mode) {
		fs, results, err = runWithUI(cmd.Context(), "expanding", p)
	} else {
		fs, results, err = p.run(cmd.Context())
	}
	if err != nil {
		return err
	}

	if err := p.report(cmd.ErrOrStderr(), p.settings.color, fs, results); err != nil {
		return err
	}

	written := 0
	var writeErrs []error
	for i := range results {
		res := &results[i]
		if res.Failed() {
			continue
		}
		if toStdout {
			if _, err := cmd.OutOrStdout().Write(res.Output); err != nil {
				return err
			}
			continue
		}
		changed, err := writeResult(res, write, p)
		if err != nil {
			writeErrs = append(writeErrs, err)
			continue
		}
		if changed {
			written++
		}
	}

	if !p.settings.quiet && !toStdout {
		fmt.Fprintf(cmd.ErrOrStderr(), "expanded %d files, wrote %d, %d with errors\n",
			len(results)-countErrors(results), written, countErrors(results))
	}
	p.printTimings(cmd.ErrOrStderr())

	if err := errors.Join(writeErrs...); err != nil {
		return err
	}
	if driver.HasErrors(results) {
		return errHasErrors
	}
	return nil
}

// writeResult stores one expanded file and reports whether anything changed on disk.
func writeResult(res *driver.FileResult, write bool, p *pipeline) (bool, error) {
	target := res.Path
	if write {
		var err error
		if target, err = p.settings.cfg.OutputPath(res.Path); err != nil {
			return false, err
		}
	}

	perm := os.FileMode(0o644)
	if st, err := os.Stat(res.Path); err == nil {
		perm = st.Mode().Perm()
	}
	if old, err := os.ReadFile(target); err == nil && bytes.Equal(old, res.Output) {
		return false, nil
	}
	if err := os.WriteFile(target, res.Output, perm); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", target, err)
	}
	p.settings.log.Debug("file written", "file", target, "bytes", len(res.Output))
	return true, nil
}

func runWithUI(ctx context.Context, title string, p *pipeline) (*source.FileSet, []driver.FileResult, error) {
	events := make(chan ui.Event, 256)
	opts := p.opts
	opts.OnStart = func(path string) {
		events <- ui.Event{File: path, Status: ui.StatusWorking}
	}
	opts.OnFile = func(res driver.FileResult) {
		ev := ui.Event{File: res.Path, Status: ui.StatusDone, Note: fmt.Sprintf("%d/%d expanded", res.Expanded, res.Invocations)}
		if res.Failed() {
			ev.Status = ui.StatusFailed
		}
		events <- ev
	}
	return runUI(ctx, title, p.files, events, func() (*source.FileSet, []driver.FileResult, error) {
		return driver.ExpandFiles(ctx, p.files, opts)
	}, os.Stderr)
}
