// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package batch sorts and searches many independent slices concurrently on
// a persistent worker pool.
//
// Each slice is still sorted by a single goroutine with sortr.Sort; the pool
// only spreads distinct slices across workers. Callers must not pass the
// same backing array twice in one call.
//
// Usage:
//
//	pool := batch.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	batch.SortAll(pool, shards, func(a, b Row) int { return cmp.Compare(a.Key, b.Key) })
package batch

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/ajroetker/go-sortr/sortr"
	"golang.org/x/sys/cpu"
)

// Pool is a persistent worker pool that can be reused across many batch
// operations. Workers are spawned once at creation and reused.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool

	// counters holds one entry per worker, written only by that worker.
	counters []counter
}

// counter is padded to its own cache line so workers don't contend.
type counter struct {
	_        cpu.CacheLinePad
	slices   atomic.Int64
	elements atomic.Int64
	_        cpu.CacheLinePad
}

// workItem is one worker's share of a batch operation.
type workItem struct {
	fn      func(worker int)
	barrier *sync.WaitGroup
}

// Stats reports the work done by a pool since creation or the last
// ResetStats.
type Stats struct {
	Workers  int
	Slices   int64
	Elements int64

	// PerWorker holds the number of slices handled by each worker.
	PerWorker []int64
}

// New creates a new pool with the specified number of workers.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan workItem, numWorkers*2),
		counters:   make([]counter, numWorkers),
	}

	for id := 0; id < numWorkers; id++ {
		go p.worker(id)
	}

	return p
}

func (p *Pool) worker(id int) {
	for item := range p.workC {
		item.fn(id)
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the pool. Pending work completes first.
// Calling Close multiple times is safe. Operations on a closed pool run
// sequentially on the calling goroutine.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// Stats returns a snapshot of the pool's counters.
func (p *Pool) Stats() Stats {
	st := Stats{
		Workers:   p.numWorkers,
		PerWorker: make([]int64, p.numWorkers),
	}
	for i := range p.counters {
		c := &p.counters[i]
		n := c.slices.Load()
		st.PerWorker[i] = n
		st.Slices += n
		st.Elements += c.elements.Load()
	}
	return st
}

// ResetStats zeroes the pool's counters.
func (p *Pool) ResetStats() {
	for i := range p.counters {
		p.counters[i].slices.Store(0)
		p.counters[i].elements.Store(0)
	}
}

func (p *Pool) record(worker, elements int) {
	c := &p.counters[worker]
	c.slices.Add(1)
	c.elements.Add(int64(elements))
}

// forEach calls fn for each index in [0, n) using atomic work stealing,
// so a few large slices don't leave other workers idle.
// Blocks until all work completes.
func (p *Pool) forEach(n int, fn func(worker, i int)) {
	if n <= 0 {
		return
	}

	workers := min(p.numWorkers, n)

	if p.closed.Load() || workers == 1 {
		for i := 0; i < n; i++ {
			fn(0, i)
		}
		return
	}

	var nextIdx atomic.Int32
	var wg sync.WaitGroup
	wg.Add(workers)

	for w := 0; w < workers; w++ {
		p.workC <- workItem{
			fn: func(worker int) {
				for {
					idx := int(nextIdx.Add(1)) - 1
					if idx >= n {
						return
					}
					fn(worker, idx)
				}
			},
			barrier: &wg,
		}
	}

	wg.Wait()
}

// SortAll sorts every slice in batches in place with sortr.Sort.
// The slices must not share backing memory.
func SortAll[S ~[]E, E any](p *Pool, batches []S, cmp func(a, b E) int) {
	p.forEach(len(batches), func(worker, i int) {
		sortr.Sort(batches[i], cmp)
		p.record(worker, len(batches[i]))
	})
}

// SearchAll looks up every key in s, which must be sorted according to cmp
// and must not be modified during the call. The result holds the index of
// a match for each key, or -1.
func SearchAll[S ~[]E, E, K any](p *Pool, s S, keys []K, cmp func(key K, elem E) int) []int {
	out := make([]int, len(keys))
	p.forEach(len(keys), func(worker, i int) {
		out[i], _ = sortr.Search(s, keys[i], cmp)
		p.record(worker, 1)
	})
	return out
}
