package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"litsort/internal/diagfmt"
	"litsort/internal/driver"
	"litsort/internal/expand"
	"litsort/internal/format"
	"litsort/internal/observ"
	"litsort/internal/source"
)

// addPipelineFlags registers the flags shared by expand and check.
func addPipelineFlags(c *cobra.Command) {
	c.Flags().Int("jobs", 0, "max parallel workers (0 = [run].jobs from config, then GOMAXPROCS)")
	c.Flags().String("style", "", "emitted array syntax (bracket|go), overrides [macro].style")
	c.Flags().Bool("multiline", false, "put every element on its own line")
	c.Flags().Bool("lint-nfc", false, "warn about string keys that are not NFC-normalized")
	c.Flags().String("format", "pretty", "diagnostics format (pretty|json|short)")
	c.Flags().Bool("cache", false, "reuse expansions of unchanged files (default: [run].cache)")
	c.Flags().Bool("clear-cache", false, "drop the expansion cache before running")
}

type pipeline struct {
	settings *runSettings
	opts     driver.Options
	files    []string
	diagFmt  diagfmt.Format
}

func newPipeline(cmd *cobra.Command, paths []string) (*pipeline, error) {
	s, err := loadSettings(cmd)
	if err != nil {
		return nil, err
	}

	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return nil, fmt.Errorf("failed to get jobs flag: %w", err)
	}
	if !cmd.Flags().Changed("jobs") {
		jobs = s.cfg.Run.Jobs
	}
	styleName, err := cmd.Flags().GetString("style")
	if err != nil {
		return nil, fmt.Errorf("failed to get style flag: %w", err)
	}
	style := s.cfg.FormatStyle()
	if styleName != "" {
		if style, err = format.ParseStyle(styleName); err != nil {
			return nil, err
		}
	}
	multiline, err := cmd.Flags().GetBool("multiline")
	if err != nil {
		return nil, fmt.Errorf("failed to get multiline flag: %w", err)
	}
	lintNFC, err := cmd.Flags().GetBool("lint-nfc")
	if err != nil {
		return nil, fmt.Errorf("failed to get lint-nfc flag: %w", err)
	}
	fmtName, err := cmd.Flags().GetString("format")
	if err != nil {
		return nil, fmt.Errorf("failed to get format flag: %w", err)
	}
	diagFmt, err := diagfmt.ParseFormat(fmtName)
	if err != nil {
		return nil, err
	}

	reg, err := s.registry()
	if err != nil {
		return nil, err
	}
	cache, err := openCache(cmd, s)
	if err != nil {
		return nil, err
	}

	timer := observ.NewTimer()
	idx := timer.Begin("discover")
	files, err := driver.ListFiles(paths, s.cfg.Files.Include)
	timer.End(idx, fmt.Sprintf("%d files", len(files)))
	if err != nil {
		return nil, err
	}

	return &pipeline{
		settings: s,
		files:    files,
		diagFmt:  diagFmt,
		opts: driver.Options{
			Expand: expand.Options{
				Registry: reg,
				Format:   format.Options{Style: style, Multiline: multiline, UseTabs: true},
				LintNFC:  lintNFC,
			},
			Jobs:           jobs,
			MaxDiagnostics: s.maxDiagnostics,
			Logger:         s.log,
			Timer:          timer,
			Cache:          cache,
		},
	}, nil
}

// openCache returns nil when caching is off.
func openCache(cmd *cobra.Command, s *runSettings) (*driver.DiskCache, error) {
	useCache, err := cmd.Flags().GetBool("cache")
	if err != nil {
		return nil, fmt.Errorf("failed to get cache flag: %w", err)
	}
	if !cmd.Flags().Changed("cache") {
		useCache = s.cfg.Run.Cache
	}
	clearCache, err := cmd.Flags().GetBool("clear-cache")
	if err != nil {
		return nil, fmt.Errorf("failed to get clear-cache flag: %w", err)
	}
	if !useCache && !clearCache {
		return nil, nil
	}

	cache, err := driver.OpenDiskCache("litsort")
	if err != nil {
		// без кэша всё равно можно работать
		s.log.Warn("expansion cache unavailable", "err", err)
		return nil, nil
	}
	if clearCache {
		if err := cache.DropAll(); err != nil {
			return nil, fmt.Errorf("failed to clear cache: %w", err)
		}
	}
	if !useCache {
		return nil, nil
	}
	return cache, nil
}

func (p *pipeline) run(ctx context.Context) (*source.FileSet, []driver.FileResult, error) {
	return driver.ExpandFiles(ctx, p.files, p.opts)
}

// report prints the merged diagnostics of results in the chosen format.
// color applies to the pretty format only.
func (p *pipeline) report(w io.Writer, color bool, fs *source.FileSet, results []driver.FileResult) error {
	bag := driver.Diagnostics(results)
	bag.Sort()
	bag.Dedup()
	if bag.Len() == 0 && p.diagFmt != diagfmt.FormatJSON {
		return nil
	}

	switch p.diagFmt {
	case diagfmt.FormatJSON:
		return diagfmt.JSON(w, bag, fs, diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         diagfmt.PathModeRelative,
			IncludeNotes:     true,
			IncludeFixes:     true,
		})
	case diagfmt.FormatShort:
		return diagfmt.Short(w, bag, fs, true)
	default:
		diagfmt.Pretty(w, bag, fs, diagfmt.PrettyOpts{
			Color:     color,
			Context:   1,
			PathMode:  diagfmt.PathModeRelative,
			ShowNotes: true,
			ShowFixes: true,
		})
		return nil
	}
}

func (p *pipeline) printTimings(w io.Writer) {
	if !p.settings.timings {
		return
	}
	fmt.Fprint(w, p.opts.Timer.Summary())
}

// countErrors returns the number of failed files.
func countErrors(results []driver.FileResult) int {
	n := 0
	for i := range results {
		if results[i].Failed() || (results[i].Bag != nil && results[i].Bag.HasErrors()) {
			n++
		}
	}
	return n
}
