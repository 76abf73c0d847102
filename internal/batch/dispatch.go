package batch

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// ErrNoMatch indicates that directory mode found no file matching the
// configured glob.
var ErrNoMatch = errors.New("no files matched the FITS glob")

// Run converts the target, which may be a single FITS file or a directory
// of them, and returns one Result per input file.
//
// A non-nil error is returned only for conditions fatal to the whole run:
// a target path that does not exist, an invalid glob pattern, or a
// directory with no matching files. Per-file failures land in the Results
// and are logged as they happen; they never stop the other files.
//
// Directory mode fans the file list out over a pool of opts.Workers
// goroutines. Each worker exclusively owns the data of the file it is
// processing, and completion order is unspecified.
func Run(target string, opts Options, log *slog.Logger) ([]Result, error) {
	info, err := os.Stat(target)
	if err != nil {
		return nil, fmt.Errorf("target %s does not exist: %w", target, err)
	}

	if !info.IsDir() {
		res := Convert(target, opts)
		report(log, res)
		return []Result{res}, nil
	}

	files, err := filepath.Glob(filepath.Join(target, opts.Glob))
	if err != nil {
		return nil, fmt.Errorf("bad glob pattern %q: %w", opts.Glob, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %s in %s", ErrNoMatch, opts.Glob, target)
	}

	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(files) {
		workers = len(files)
	}

	jobs := make(chan string)
	out := make(chan Result)

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for path := range jobs {
				out <- Convert(path, opts)
			}
		}()
	}

	go func() {
		for _, path := range files {
			jobs <- path
		}
		close(jobs)
		wg.Wait()
		close(out)
	}()

	results := make([]Result, 0, len(files))
	for res := range out {
		report(log, res)
		results = append(results, res)
	}
	return results, nil
}

// Failed counts the failed results.
func Failed(results []Result) int {
	n := 0
	for _, res := range results {
		if res.Failed() {
			n++
		}
	}
	return n
}

func report(log *slog.Logger, res Result) {
	if res.Failed() {
		log.Error("conversion failed", "file", res.Path, "error", res.Err)
		return
	}
	log.Info("converted", "file", res.Path, "out", res.Out)
}
