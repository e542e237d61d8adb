package hull

import (
	"sync"
	"sync/atomic"
)

// parallelFor runs fn(0), fn(1), ..., fn(n-1) across up to workers
// goroutines, each claiming the next index from a shared atomic counter
// (work-stealing, since per-index cost varies with conflict-list size)
// rather than a fixed static split. It blocks until every call returns.
//
// fn must only write to memory private to index i (e.g. results[i]); this
// package relies on that to avoid locking shared facet/conflict state
// during the parallel phase and merging it in a cheap sequential pass
// afterwards, since Go maps (unlike the original's index-addressable
// array conflict representation) are not safe for concurrent writes even
// to disjoint keys.
func parallelFor(workers, n int, fn func(i int)) {
	if n <= 0 {
		return
	}
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}
	if workers == 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for {
				i := int(next.Add(1)) - 1
				if i >= n {
					return
				}
				fn(i)
			}
		}()
	}
	wg.Wait()
}
