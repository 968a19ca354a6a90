// Package batch solves a directory of puzzle files concurrently. Each
// puzzle's own search stays single-threaded (pkg/csp never parallelizes a
// single solve); only the file-level fan-out runs on a worker pool, a
// fixed-size adaptation of the teacher's internal/parallel.StaticWorkerPool
// stripped of its dynamic rescaling and deadlock-detector machinery, which
// a short-lived batch of independent solves has no use for.
package batch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/kanelogic/logicgrid/internal/puzzlefile"
	"github.com/kanelogic/logicgrid/pkg/csp"
)

// ErrPoolShutdown is returned by submit after shutdown has been called.
var ErrPoolShutdown = errors.New("batch: worker pool is shut down")

// Result is one puzzle file's outcome.
type Result struct {
	Path     string
	Solution csp.Solution
	Err      error
	Elapsed  time.Duration
}

// pool is a fixed-size worker pool: maxWorkers goroutines draining a single
// task channel, mirroring the teacher's StaticWorkerPool shape.
type pool struct {
	taskChan     chan func()
	shutdownChan chan struct{}
	wg           sync.WaitGroup
	once         sync.Once
}

func newPool(workers int) *pool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	p := &pool{
		taskChan:     make(chan func(), workers*2),
		shutdownChan: make(chan struct{}),
	}
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
	return p
}

func (p *pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case task := <-p.taskChan:
			if task != nil {
				task()
			}
		case <-p.shutdownChan:
			return
		}
	}
}

func (p *pool) submit(ctx context.Context, task func()) error {
	select {
	case <-p.shutdownChan:
		return ErrPoolShutdown
	default:
	}
	select {
	case p.taskChan <- task:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-p.shutdownChan:
		return ErrPoolShutdown
	}
}

func (p *pool) shutdown() {
	p.once.Do(func() {
		close(p.shutdownChan)
		close(p.taskChan)
		p.wg.Wait()
	})
}

// Run loads and solves every *.yaml/*.yml file in dir, up to workers at a
// time, logging one line per job to logger. Results are returned in the
// order the files were discovered, not completion order.
func Run(ctx context.Context, logger zerolog.Logger, dir string, workers int) ([]Result, error) {
	paths, err := discoverPuzzleFiles(dir)
	if err != nil {
		return nil, err
	}

	results := make([]Result, len(paths))
	wp := newPool(workers)
	defer wp.shutdown()

	var wg sync.WaitGroup
	for i, path := range paths {
		i, path := i, path
		wg.Add(1)
		err := wp.submit(ctx, func() {
			defer wg.Done()
			results[i] = solveOne(logger, path)
		})
		if err != nil {
			wg.Done()
			return nil, fmt.Errorf("batch: submitting %s: %w", path, err)
		}
	}
	wg.Wait()

	return results, nil
}

func solveOne(logger zerolog.Logger, path string) Result {
	start := time.Now()
	p, err := puzzlefile.Load(path)
	if err != nil {
		logger.Error().Str("path", path).Err(err).Msg("failed to load puzzle file")
		return Result{Path: path, Err: err, Elapsed: time.Since(start)}
	}

	sol, err := csp.Solve(p)
	elapsed := time.Since(start)
	event := logger.Info()
	if err != nil {
		event = logger.Warn().Err(err)
	}
	event.Str("path", path).Int("rows", p.N).Dur("elapsed", elapsed).Msg("solved puzzle file")

	return Result{Path: path, Solution: sol, Err: err, Elapsed: elapsed}
}

func discoverPuzzleFiles(dir string) ([]string, error) {
	var paths []string
	for _, pattern := range []string{"*.yaml", "*.yml"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, fmt.Errorf("batch: globbing %s: %w", dir, err)
		}
		paths = append(paths, matches...)
	}
	return paths, nil
}
