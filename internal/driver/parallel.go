package driver

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"decaf/internal/diag"
	"decaf/internal/source"
)

// Ext is the source file extension TokenizeDir picks up.
const Ext = ".decaf"

// DirResult is the outcome of TokenizeDir.
type DirResult struct {
	FileSet *source.FileSet
	Units   []*TokenizeResult // sorted by path
	Failed  int               // units with errors
}

// listDecafFiles возвращает отсортированный список всех *.decaf файлов в директории
func listDecafFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, Ext) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// TokenizeDir lexes every *.decaf file under dir in parallel. Each unit gets
// its own lexer, channel and diagnostic bag; a unit that cannot be opened or
// read is reported in its own bag and does not stop the others.
func TokenizeDir(ctx context.Context, dir string, opts Options) (*DirResult, error) {
	done := opts.Timer.Track("discover")
	files, err := listDecafFiles(dir)
	if err != nil {
		done("")
		return nil, err
	}
	done(pluralFiles(len(files)))

	fileSet := source.NewFileSetWithBase(dir)
	out := &DirResult{FileSet: fileSet, Units: make([]*TokenizeResult, len(files))}
	if len(files) == 0 {
		return out, nil
	}

	// FileSet is not safe for concurrent use, so every unit is registered up front.
	for i, path := range files {
		out.Units[i] = &TokenizeResult{
			FileSet: fileSet,
			File:    fileSet.Get(fileSet.Add(path, 0)),
		}
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	var failed atomic.Int32
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for _, res := range out.Units {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := tokenizeFile(gctx, res, opts); err != nil {
				return err
			}
			if res.Bag.HasErrors() {
				failed.Add(1)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	out.Failed = int(failed.Load())
	return out, nil
}

func tokenizeFile(ctx context.Context, res *TokenizeResult, opts Options) error {
	// #nosec G304 -- path comes from walking the requested directory
	f, err := os.Open(res.File.Path)
	if err != nil {
		res.Bag = diag.NewBag(opts.MaxDiagnostics)
		res.Err = err
		res.Bag.Add(diag.NewError(diag.IOLoadFileError, source.Pos{File: res.File.ID}, err.Error()))
		opts.logger().WarnContext(ctx, "cannot open unit", "path", res.File.Path, "err", err)
		return nil
	}
	defer f.Close()
	return tokenizeUnit(ctx, res, source.NewReader(res.File, f), opts)
}

func pluralFiles(n int) string {
	if n == 1 {
		return "1 file"
	}
	return fmt.Sprintf("%d files", n)
}
