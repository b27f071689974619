package worker

import (
	"context"
	"sync"
)

// Job is a unit of work executed by the pool
type Job interface {
	Execute(ctx context.Context) Result
}

// Result is the outcome of one job
type Result interface {
	GetError() error
}

// Pool runs jobs on a fixed number of workers. Results are drained
// into a slice as workers finish, so any number of jobs can be
// submitted before Wait is called.
type Pool struct {
	workers       int
	jobQueue      chan Job
	results       chan Result
	collected     []Result
	collectorDone chan struct{}
	wg            sync.WaitGroup
	ctx           context.Context
	cancelFunc    context.CancelFunc
	closeOnce     sync.Once
}

// NewPool creates a pool with the given number of workers
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	p := &Pool{
		workers:       workers,
		jobQueue:      make(chan Job, workers*2),
		results:       make(chan Result, workers*2),
		collectorDone: make(chan struct{}),
		ctx:           ctx,
		cancelFunc:    cancel,
	}
	go p.collect()
	return p
}

// collect drains results while jobs are still being submitted
func (p *Pool) collect() {
	for result := range p.results {
		p.collected = append(p.collected, result)
	}
	close(p.collectorDone)
}

// Start launches the workers
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
		case job, ok := <-p.jobQueue:
			if !ok {
				return
			}
			result := job.Execute(p.ctx)
			select {
			case p.results <- result:
			case <-p.ctx.Done():
				return
			}
		}
	}
}

// Submit queues a job for execution
func (p *Pool) Submit(job Job) {
	select {
	case <-p.ctx.Done():
	case p.jobQueue <- job:
	}
}

// Wait blocks until all submitted jobs are done and returns their results
func (p *Pool) Wait() []Result {
	close(p.jobQueue)
	p.wg.Wait()
	p.closeResults()
	<-p.collectorDone
	return p.collected
}

// Shutdown stops the pool without waiting for queued jobs
func (p *Pool) Shutdown() {
	p.cancelFunc()
	p.wg.Wait()
	p.closeResults()
	<-p.collectorDone
}

func (p *Pool) closeResults() {
	p.closeOnce.Do(func() {
		close(p.results)
	})
}
