package gf

import (
	"runtime"
	"sync"
)

// minChunk is the smallest number of cells handed to one worker.
const minChunk = 1 << 13

// parallelFor runs fn over [0, n) split into contiguous chunks. Small ranges
// run inline on the calling goroutine.
func parallelFor(n int, fn func(start, end int)) {
	workers := runtime.GOMAXPROCS(0)
	if n <= minChunk || workers <= 1 {
		fn(0, n)
		return
	}

	if n/minChunk < workers {
		workers = n / minChunk
	}

	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	wg.Add(workers)

	for w := 0; w < workers; w++ {
		start := w * chunkSize
		end := start + chunkSize
		if end > n {
			end = n
		}

		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}

	wg.Wait()
}

// parallelMax reduces [0, n) with fn per chunk and returns the largest result.
func parallelMax(n int, fn func(start, end int) float64) float64 {
	workers := runtime.GOMAXPROCS(0)
	if n <= minChunk || workers <= 1 {
		return fn(0, n)
	}
	if n/minChunk < workers {
		workers = n / minChunk
	}
	chunkSize := (n + workers - 1) / workers

	partial := make([]float64, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		start := w * chunkSize
		end := start + chunkSize
		if end > n {
			end = n
		}
		go func(w, s, e int) {
			defer wg.Done()
			partial[w] = fn(s, e)
		}(w, start, end)
	}
	wg.Wait()

	m := partial[0]
	for _, v := range partial[1:] {
		m = maxNaN(m, v)
	}
	return m
}
