package main

import (
	"context"
	"runtime"
	"sync"
)

// maxAutoWorkers caps the GOMAXPROCS-based worker count.
const maxAutoWorkers = 8

// resolvePoolSize determines the worker count.
// Priority: explicit value > GOMAXPROCS-based calculation.
func resolvePoolSize(workers int) int {
	if workers > 0 {
		return workers
	}

	// GOMAXPROCS is adjusted by automaxprocs for containers.
	n := runtime.GOMAXPROCS(0)
	if n < 1 {
		return 1
	}
	if n > maxAutoWorkers {
		return maxAutoWorkers
	}
	return n
}

// runPool applies work to every item on n goroutines and returns the
// results in item order. Items still queued when ctx is canceled get
// canceled(item, ctx.Err()) instead.
func runPool[T, R any](ctx context.Context, n int, items []T, work func(context.Context, T) R, canceled func(T, error) R) []R {
	if len(items) == 0 {
		return nil
	}
	if n > len(items) {
		n = len(items)
	}
	if n < 1 {
		n = 1
	}

	results := make([]R, len(items))
	jobs := make(chan int, len(items))
	var wg sync.WaitGroup

	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if err := ctx.Err(); err != nil {
					results[idx] = canceled(items[idx], err)
					continue
				}
				results[idx] = work(ctx, items[idx])
			}
		}()
	}

	for i := range items {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}
