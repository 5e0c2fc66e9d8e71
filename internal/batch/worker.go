// Package batch runs a file of fixed-width integer expressions through
// pkg/fixedint concurrently and collects the outcomes in a
// pkg/result.Table. Concurrency lives entirely at this layer: each
// worker goroutine evaluates a line into its own, unshared fixedint
// value and only the table (not the values) is synchronized.
package batch

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/oisee/fixedint/pkg/result"
)

// Task is a single line of batch input: "<width> <u|i> <op> <args...>",
// e.g. "256 u add 10 20" or "128 i div -7 2".
type Task struct {
	Line int
	Expr string
}

// WorkerPool evaluates batch tasks across NumWorkers goroutines,
// collecting outcomes into a shared result.Table.
type WorkerPool struct {
	NumWorkers int
	Results    *result.Table
	completed  atomic.Int64
}

// NewWorkerPool creates a pool with the given number of workers; a
// non-positive count defaults to runtime.NumCPU().
func NewWorkerPool(numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{
		NumWorkers: numWorkers,
		Results:    result.NewTable(),
	}
}

// Completed returns the number of tasks finished so far.
func (wp *WorkerPool) Completed() int64 {
	return wp.completed.Load()
}

// Run distributes tasks across workers and blocks until all have been
// evaluated, printing periodic progress for large batches.
func (wp *WorkerPool) Run(tasks []Task, verbose bool) {
	total := int64(len(tasks))

	ch := make(chan Task, len(tasks))
	for _, t := range tasks {
		ch <- t
	}
	close(ch)

	done := make(chan struct{})
	start := time.Now()
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				comp := wp.completed.Load()
				if comp == 0 || comp >= total {
					continue
				}
				pct := float64(comp) / float64(total) * 100
				fmt.Printf("  [%s] %d/%d (%.1f%%)\n", time.Since(start).Round(time.Second), comp, total, pct)
			}
		}
	}()

	var wg sync.WaitGroup
	for i := 0; i < wp.NumWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for task := range ch {
				rec := Evaluate(task)
				wp.Results.Add(rec)
				wp.completed.Add(1)
				if verbose {
					if rec.Err != "" {
						fmt.Printf("  [%d] ERROR %q: %s\n", rec.Line, rec.Input, rec.Err)
					} else {
						fmt.Printf("  [%d] %s = %s\n", rec.Line, rec.Input, rec.Output)
					}
				}
			}
		}()
	}
	wg.Wait()
	close(done)
}
