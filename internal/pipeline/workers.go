package pipeline

import (
	"runtime"
	"sync"

	"github.com/MD5Visual/QTask/internal/ir"
)

// rendition is the encoded PNG for one size, or the error producing it.
type rendition struct {
	data []byte
	err  error
}

// renderJob represents one size to produce.
type renderJob struct {
	size int
}

// renderResult carries a finished job back to the collector.
type renderResult struct {
	size int
	rendition
}

// worker resizes and encodes sizes from jobs. src is shared and only read.
func worker(jobs <-chan renderJob, results chan<- renderResult, src *ir.Image, opts Options, wg *sync.WaitGroup) {
	defer wg.Done()
	for job := range jobs {
		data, err := RenderPNG(src, job.size, opts.Compression)
		results <- renderResult{size: job.size, rendition: rendition{data: data, err: err}}
	}
}

// renderAll produces one rendition per distinct size, spread over
// opts.Workers goroutines.
func renderAll(src *ir.Image, sizes []int, opts Options) map[int]rendition {
	var unique []int
	seen := make(map[int]bool, len(sizes))
	for _, s := range sizes {
		if !seen[s] {
			seen[s] = true
			unique = append(unique, s)
		}
	}

	numWorkers := opts.Workers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	numWorkers = max(1, min(numWorkers, len(unique)))

	jobs := make(chan renderJob, len(unique))
	results := make(chan renderResult, len(unique))

	var wg sync.WaitGroup
	for range numWorkers {
		wg.Add(1)
		go worker(jobs, results, src, opts, &wg)
	}

	for _, s := range unique {
		jobs <- renderJob{size: s}
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	out := make(map[int]rendition, len(unique))
	for r := range results {
		out[r.size] = r.rendition
	}
	return out
}
