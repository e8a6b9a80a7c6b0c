package worker

import (
	"context"
	"sync"

	"github.com/readcoil/strictstrings/internal/model"
)

// ScanFunc scans a single file and produces its report.
type ScanFunc func(ctx context.Context, path string) (*model.Report, error)

// FileResult pairs a scanned path with its outcome. Exactly one of
// Report and Err is set.
type FileResult struct {
	Path   string
	Report *model.Report
	Err    error
}

// Pool runs file scans with bounded concurrency. Submission and
// draining may happen from different goroutines, so a producer can keep
// feeding paths while Wait collects results.
type Pool struct {
	workers    int
	scan       ScanFunc
	jobs       chan string
	results    chan FileResult
	wg         sync.WaitGroup
	ctx        context.Context
	cancelFunc context.CancelFunc
	closeJobs  sync.Once
	closeOnce  sync.Once
}

// NewPool creates a pool of workers running scan. Cancelling the parent
// context stops the pool.
func NewPool(ctx context.Context, workers int, scan ScanFunc) *Pool {
	if workers <= 0 {
		workers = 1
	}

	poolCtx, cancel := context.WithCancel(ctx)

	return &Pool{
		workers:    workers,
		scan:       scan,
		jobs:       make(chan string, workers*2),
		results:    make(chan FileResult, workers*2),
		ctx:        poolCtx,
		cancelFunc: cancel,
	}
}

// Start starts the workers
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for {
		select {
		case <-p.ctx.Done():
			return
		case path, ok := <-p.jobs:
			if !ok {
				return
			}
			report, err := p.scan(p.ctx, path)
			select {
			case p.results <- FileResult{Path: path, Report: report, Err: err}:
			case <-p.ctx.Done():
				return
			}
		}
	}
}

// Submit queues a path for scanning. Submitting after Close panics;
// submitting after Shutdown is a no-op.
func (p *Pool) Submit(path string) {
	select {
	case <-p.ctx.Done():
	case p.jobs <- path:
	}
}

// Close signals that no more paths will be submitted
func (p *Pool) Close() {
	p.closeJobs.Do(func() {
		close(p.jobs)
	})
}

// Wait drains results until every submitted path has been scanned.
// Close must be called (possibly from the producing goroutine) or Wait
// never returns.
func (p *Pool) Wait() []FileResult {
	go func() {
		p.wg.Wait()
		p.closeResults()
	}()

	var results []FileResult
	for result := range p.results {
		results = append(results, result)
	}
	return results
}

// Shutdown stops the pool immediately, abandoning queued paths
func (p *Pool) Shutdown() {
	p.cancelFunc()
	p.wg.Wait()
	p.closeResults()
}

func (p *Pool) closeResults() {
	p.closeOnce.Do(func() {
		close(p.results)
	})
}
