package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"loom/internal/ast"
	"loom/internal/diag"
	"loom/internal/parser"
	"loom/internal/source"
)

// SourceExt is the file extension ParseDir walks a directory for.
const SourceExt = ".lm"

// FileParseResult is one file's outcome from ParseDir: the same shape as
// Parse's result, plus the path it came from so callers can report
// per-file diagnostics.
type FileParseResult struct {
	Path     string
	FileID   source.FileID
	Module   *ast.Module
	Interner source.Interner
	Bag      *diag.Bag
}

// ListSourceFiles returns every *.lm file under dir, sorted. Callers that
// want to render progress before ParseDir's first Event arrives (cmd/loom's
// inspect subcommand does, to size its file list up front) call this
// directly; ParseDir itself calls it internally too.
func ListSourceFiles(dir string) ([]string, error) {
	return listSourceFiles(dir)
}

func listSourceFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, SourceExt) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// ParseDir parses every *.lm file under dir concurrently, up to jobs at a
// time. Per spec.md §7's scheduling model, each file gets its own
// *parser.Parser and *diag.Context; all of them share one immutable
// *source.SourceManager (loaded up front, before any goroutine starts) and
// one source.SyncInterner, so identifiers spelled the same way in two
// files still intern to the same SymbolID. jobs <= 0 means unbounded.
//
// report, if non-nil, is called with a Event for every stage transition of
// every file; cmd/loom's inspect subcommand uses it to drive a live
// progress display. It is called from parser goroutines and must be safe
// for concurrent use.
func ParseDir(ctx context.Context, dir string, maxDiagnostics, jobs int, report func(Event)) (*source.SourceManager, []string, []*FileParseResult, error) {
	if report == nil {
		report = func(Event) {}
	}

	files, err := listSourceFiles(dir)
	if err != nil {
		return nil, nil, nil, err
	}
	sm := source.NewSourceManagerWithBase(dir)
	if len(files) == 0 {
		return sm, files, nil, nil
	}
	for _, path := range files {
		report(Event{File: path, Stage: StageLoad, Status: StatusQueued})
	}

	ids := make([]source.FileID, len(files))
	for i, path := range files {
		id, err := sm.LoadFile(path)
		if err != nil {
			return nil, nil, nil, err
		}
		ids[i] = id
	}

	interner := source.NewSyncInterner()
	results := make([]*FileParseResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	if jobs > 0 {
		g.SetLimit(jobs)
	}
	for i := range files {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			report(Event{File: files[i], Stage: StageParse, Status: StatusWorking})
			fctx := newContext(maxDiagnostics)
			p := parser.New(sm.Get(ids[i]), fctx, interner)
			mod := p.Parse()
			fctx.Bag().Sort()
			results[i] = &FileParseResult{
				Path:     files[i],
				FileID:   ids[i],
				Module:   mod,
				Interner: interner,
				Bag:      fctx.Bag(),
			}
			status := StatusDone
			if fctx.Bag().HasErrors() {
				status = StatusError
			}
			report(Event{File: files[i], Stage: StageParse, Status: status})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return sm, files, results, err
	}
	return sm, files, results, nil
}
