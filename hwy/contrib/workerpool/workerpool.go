// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool runs index ranges on a fixed set of goroutines that
// live as long as the Pool.
//
// A Pool is created once and shared by the parallel entry points, such as
// farray's ApplyParallel over lane-aligned chunks of an array, or the
// diagnostic boundary searches that run one scalar bisection per kernel.
//
//	pool := workerpool.New(0)
//	defer pool.Close()
//	pool.ParallelFor(n, func(start, end int) { ... })
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a fixed set of worker goroutines.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New starts numWorkers workers, or GOMAXPROCS workers if numWorkers <= 0.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan workItem, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close stops the workers after pending work completes. Later calls run
// sequentially on the caller. Close may be called more than once.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// ParallelFor splits [0, n) into one contiguous range per worker and calls
// fn(start, end) for each. It blocks until all ranges are done.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	p.ParallelForAligned(n, 1, fn)
}

// ParallelForAligned is ParallelFor with every range except the last
// starting and ending on a multiple of align, so that callers working in
// lane groups only see a partial group at the very end.
func (p *Pool) ParallelForAligned(n, align int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	align = max(align, 1)
	blocks := (n + align - 1) / align
	workers := min(p.numWorkers, blocks)
	if p.closed.Load() || workers == 1 {
		fn(0, n)
		return
	}
	chunk := (blocks + workers - 1) / workers * align
	p.run((n+chunk-1)/chunk, func(i int) {
		fn(i*chunk, min((i+1)*chunk, n))
	})
}

// ParallelForAtomic calls fn(i) for every i in [0, n), handing out indices
// one at a time so that uneven work balances across workers. It blocks
// until all calls return.
func (p *Pool) ParallelForAtomic(n int, fn func(i int)) {
	if n <= 0 {
		return
	}
	workers := min(p.numWorkers, n)
	if p.closed.Load() || workers == 1 {
		for i := range n {
			fn(i)
		}
		return
	}
	var next atomic.Int64
	p.run(workers, func(int) {
		for i := int(next.Add(1)) - 1; i < n; i = int(next.Add(1)) - 1 {
			fn(i)
		}
	})
}

// run queues task(0) ... task(k-1) and waits for all of them.
func (p *Pool) run(k int, task func(i int)) {
	var wg sync.WaitGroup
	wg.Add(k)
	for i := range k {
		p.workC <- workItem{fn: func() { task(i) }, barrier: &wg}
	}
	wg.Wait()
}

// Map calls fn for every index in [0, n) on the pool and returns the
// results in index order.
func Map[R any](p *Pool, n int, fn func(i int) R) []R {
	out := make([]R, max(n, 0))
	p.ParallelForAtomic(n, func(i int) { out[i] = fn(i) })
	return out
}
