// Package driver orchestrates the front-end core: it loads source files into
// the registry, collects diagnostics deterministically, and consults the
// on-disk diagnostics cache.
package driver

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"lumen/internal/diag"
	"lumen/internal/observ"
	"lumen/internal/source"
)

// DiagnoseOptions configures a Diagnose run.
type DiagnoseOptions struct {
	// MaxDiagnostics caps the bag; zero means the default of 100.
	MaxDiagnostics int
	// Jobs limits parallel file reads; zero means GOMAXPROCS.
	Jobs int
	// Canon keys the file registry; nil means case-sensitive.
	Canon source.Canonicalizer
	// Cache, when non-nil, is consulted per file content hash.
	Cache *DiskCache
}

// DiagnoseResult carries the populated registry, the sorted and deduplicated
// diagnostics, and phase timings.
type DiagnoseResult struct {
	Files  *source.FileMap[*source.File]
	Bag    *diag.Bag
	Timing observ.Report
}

type loadResult struct {
	path string
	file *source.File
	err  error
}

// Diagnose loads every named file, registers it under its canonical
// identity, and aggregates file-level diagnostics. Unreadable files become
// diagnostics, not errors; the returned error is reserved for cancellation.
func Diagnose(ctx context.Context, paths []string, opts *DiagnoseOptions) (*DiagnoseResult, error) {
	if opts == nil {
		opts = &DiagnoseOptions{}
	}
	maxDiags := opts.MaxDiagnostics
	if maxDiags <= 0 {
		maxDiags = 100
	}
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	timer := observ.NewTimer()
	result := &DiagnoseResult{
		Files: source.NewFileMap[*source.File](opts.Canon),
		Bag:   diag.NewBag(maxDiags),
	}

	// Deterministic processing order regardless of argument order.
	ordered := append([]string(nil), paths...)
	sort.Strings(ordered)

	loadIdx := timer.Begin("load")
	loaded := make([]loadResult, len(ordered))
	grp, grpCtx := errgroup.WithContext(ctx)
	grp.SetLimit(jobs)
	for i, path := range ordered {
		i, path := i, path
		grp.Go(func() error {
			if err := grpCtx.Err(); err != nil {
				return err
			}
			text, err := os.ReadFile(path)
			if err != nil {
				loaded[i] = loadResult{path: path, err: err}
				return nil
			}
			loaded[i] = loadResult{path: path, file: source.NewFile(path, string(text))}
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return result, err
	}
	timer.End(loadIdx, fmt.Sprintf("%d files", len(ordered)))

	registerIdx := timer.Begin("register")
	reporter := diag.BagReporter{Bag: result.Bag}
	for _, lr := range loaded {
		if lr.err != nil {
			if os.IsNotExist(lr.err) {
				reporter.Report(diag.New(diag.MsgFileNotFound, lr.path))
			} else {
				reporter.Report(diag.New(diag.MsgCannotReadFile, lr.path, lr.err))
			}
			continue
		}
		if result.Files.Contains(lr.file.Path) {
			reporter.Report(diag.New(diag.MsgDuplicateFile, lr.file.Path))
		}
		result.Files.Set(lr.file.Path, lr.file)
	}
	timer.End(registerIdx, "")

	scanIdx := timer.Begin("scan")
	result.Files.ForEachValue(func(f *source.File) {
		scanFile(f, reporter, opts.Cache)
	})
	timer.End(scanIdx, "")

	sortIdx := timer.Begin("sort")
	result.Bag.SortAndDedup()
	timer.End(sortIdx, "")

	result.Timing = timer.Report()
	return result, nil
}

// scanFile produces the driver's own per-file diagnostics, going through the
// disk cache when one is configured.
func scanFile(f *source.File, r diag.Reporter, cache *DiskCache) {
	if cache != nil {
		var payload FilePayload
		if ok, err := cache.Get(f.Hash, &payload); err == nil && ok {
			replayDiagnostics(f, payload, r)
			return
		}
	}

	diags := fileDiagnostics(f)
	for _, d := range diags {
		r.Report(d)
	}
	if cache != nil {
		// best effort; the cache never fails a compilation
		_ = cache.Put(f.Hash, encodePayload(f, diags))
	}
}

func fileDiagnostics(f *source.File) []*diag.Diagnostic {
	var out []*diag.Diagnostic
	if f.TextLength() == 0 {
		out = append(out, diag.NewFile(f, 0, 0, diag.MsgEmptyFile, f.Path))
	}
	return out
}
