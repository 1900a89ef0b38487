// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"fmt"
	"sync"

	"bcmodel-core/group"
	"bcmodel-core/resolve"
)

// ResolveFunc distributes probability over candidates for one observed barcode.
type ResolveFunc func(observed string, candidates []string) ([]resolve.Assignment, error)

// Config controls the resolution pipeline.
type Config struct {
	Threads int         // number of worker goroutines (>=1)
	Resolve ResolveFunc // nil = resolve.Resolve
}

// Resolution is one resolved group. Index is the 0-based ordinal of the group
// across all input files.
type Resolution struct {
	Index       int
	SourceFile  string
	Group       group.Group
	Assignments []resolve.Assignment
}

// ForEachResolution reads groups from files, resolves them on cfg.Threads
// workers and calls visit once per group in input order. The first error
// (loader, resolver, visit or cancellation) stops the run and is returned;
// no further groups are visited after it.
func ForEachResolution(
	parent context.Context,
	cfg Config,
	files []string,
	visit func(Resolution) error,
) error {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}
	resolveFn := cfg.Resolve
	if resolveFn == nil {
		resolveFn = resolve.Resolve
	}

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	var (
		mu       sync.Mutex
		firstErr error
	)
	fail := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		mu.Unlock()
		cancel()
	}

	type job struct {
		idx int
		src string
		g   group.Group
	}
	jobs := make(chan job, cfg.Threads*2)
	results := make(chan Resolution, cfg.Threads*2)

	// Workers
	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		go func() {
			defer wg.Done()
			for j := range jobs {
				if ctx.Err() != nil {
					continue
				}
				as, err := resolveFn(j.g.Observed, j.g.Candidates)
				if err != nil {
					fail(fmt.Errorf("%s:%d: %w", j.src, j.g.Line, err))
					continue
				}
				select {
				case results <- Resolution{Index: j.idx, SourceFile: j.src, Group: j.g, Assignments: as}:
				case <-ctx.Done():
				}
			}
		}()
	}

	// Collector: re-order by index so output does not depend on scheduling.
	var cwg sync.WaitGroup
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		pending := make(map[int]Resolution)
		next := 0
		for r := range results {
			pending[r.Index] = r
			for {
				cur, ok := pending[next]
				if !ok {
					break
				}
				delete(pending, next)
				next++
				if ctx.Err() != nil {
					continue
				}
				if err := visit(cur); err != nil {
					fail(err)
				}
			}
		}
	}()

	// Feed work
	idx := 0
feed:
	for _, path := range files {
		ch, done, err := group.Stream(ctx, path)
		if err != nil {
			fail(err)
			break feed
		}
		for g := range ch {
			select {
			case jobs <- job{idx: idx, src: path, g: g}:
				idx++
			case <-ctx.Done():
			}
		}
		if err := <-done; err != nil {
			fail(err)
			break feed
		}
	}

	close(jobs)
	wg.Wait()
	close(results)
	cwg.Wait()

	if err := parent.Err(); err != nil {
		return err
	}
	mu.Lock()
	defer mu.Unlock()
	return firstErr
}
