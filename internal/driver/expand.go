package driver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"litsort/internal/diag"
	"litsort/internal/expand"
	"litsort/internal/observ"
	"litsort/internal/source"
)

// FileResult is the outcome of expanding one file.
type FileResult struct {
	Path   string
	FileID source.FileID
	Bag    *diag.Bag
	// Output is nil unless every invocation expanded.
	Output      []byte
	Invocations int
	Expanded    int
	// Cached is set when the result came from the disk cache.
	Cached  bool
	Elapsed time.Duration
	// Err is expand.ErrFailed, a load error or an internal failure of this file.
	Err error
}

// Failed reports whether the file produced no output.
func (r *FileResult) Failed() bool { return r.Err != nil }

type Options struct {
	Expand         expand.Options
	Jobs           int
	MaxDiagnostics int
	// BaseDir is used for relative paths in diagnostics; empty means the working directory.
	BaseDir string
	Logger  *slog.Logger
	Timer   *observ.Timer
	// Cache, if set, stores results of files that expanded without diagnostics.
	Cache *DiskCache
	// OnStart and OnFile are called from worker goroutines.
	OnStart func(path string)
	OnFile  func(FileResult)
}

// ExpandFiles expands every file in parallel. Files are loaded up front so
// workers share the FileSet read-only; every worker owns its Bag and Builder.
// The returned error is only about cancellation; per-file problems are in the results.
func ExpandFiles(ctx context.Context, files []string, opts Options) (*source.FileSet, []FileResult, error) {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	timer := opts.Timer
	if timer == nil {
		timer = observ.NewTimer()
	}

	fileSet := source.NewFileSetWithBase(opts.BaseDir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	// Предзагружаем все файлы, FileSet дальше только читается
	loadIdx := timer.Begin("load")
	fileIDs := make([]source.FileID, len(files))
	loadErrors := make(map[int]error)
	for i, path := range files {
		fileID, err := fileSet.Load(path)
		if err != nil {
			// пустой виртуальный файл, чтобы у диагностики был путь
			fileIDs[i] = fileSet.AddVirtual(path, nil)
			loadErrors[i] = err
			continue
		}
		fileIDs[i] = fileID
	}
	timer.End(loadIdx, fmt.Sprintf("%d files", len(files)))

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// индексы уникальны для каждой горутины, мьютекс не нужен
	results := make([]FileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			if opts.OnStart != nil {
				opts.OnStart(path)
			}
			start := time.Now()
			res := FileResult{
				Path:   path,
				FileID: fileIDs[i],
				Bag:    diag.NewBag(opts.MaxDiagnostics),
			}
			if loadErr, ok := loadErrors[i]; ok {
				diag.ReportError(diag.BagReporter{Bag: res.Bag}, diag.IOLoadFileError, source.At(res.FileID, 0),
					"failed to load file: "+loadErr.Error()).Emit()
				res.Err = loadErr
			} else {
				expandCached(fileSet.Get(res.FileID), &res, opts, log)
			}
			res.Elapsed = time.Since(start)

			timer.Add("expand "+path, start, res.Elapsed, fmt.Sprintf("%d/%d", res.Expanded, res.Invocations))
			log.Debug("expanded file",
				"file", path,
				"invocations", res.Invocations,
				"expanded", res.Expanded,
				"cached", res.Cached,
				"elapsed", res.Elapsed,
				"error", res.Err,
			)
			results[i] = res
			if opts.OnFile != nil {
				opts.OnFile(res)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

// expandCached consults opts.Cache before expanding and fills it afterwards.
// Cache errors are logged and otherwise ignored.
func expandCached(file *source.File, res *FileResult, opts Options, log *slog.Logger) {
	if opts.Cache == nil {
		expandFile(file, res, opts.Expand)
		return
	}
	key := expansionKey(file, opts.Expand)
	var entry CachedExpansion
	hit, err := opts.Cache.Get(key, &entry)
	if err != nil {
		log.Warn("cache read failed", "file", file.Path, "err", err)
	}
	if hit {
		res.Output = entry.Output
		res.Invocations = entry.Invocations
		res.Expanded = entry.Expanded
		res.Cached = true
		return
	}

	expandFile(file, res, opts.Expand)
	if res.Err != nil || res.Bag.Len() != 0 {
		return
	}
	entry = CachedExpansion{
		Schema:      diskCacheSchemaVersion,
		Output:      res.Output,
		Invocations: res.Invocations,
		Expanded:    res.Expanded,
	}
	if err := opts.Cache.Put(key, &entry); err != nil {
		log.Warn("cache write failed", "file", file.Path, "err", err)
	}
}

func expandFile(file *source.File, res *FileResult, opts expand.Options) {
	defer func() {
		if r := recover(); r != nil {
			res.Output = nil
			res.Err = fmt.Errorf("%s: internal error: %v", file.Path, r)
		}
	}()
	out, err := expand.File(file, opts, diag.BagReporter{Bag: res.Bag})
	res.Invocations = len(out.Invocations)
	res.Expanded = out.Expanded
	res.Output = out.Output
	res.Err = err
}

// HasErrors reports whether any result failed or carries an error diagnostic.
func HasErrors(results []FileResult) bool {
	for i := range results {
		if results[i].Err != nil && !errors.Is(results[i].Err, context.Canceled) {
			return true
		}
		if results[i].Bag != nil && results[i].Bag.HasErrors() {
			return true
		}
	}
	return false
}

// Diagnostics merges the bags of all results in file order.
func Diagnostics(results []FileResult) *diag.Bag {
	all := diag.NewBag(0)
	for i := range results {
		all.Merge(results[i].Bag)
	}
	return all
}
