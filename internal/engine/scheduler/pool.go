// Package scheduler runs progressive fills on a fixed pool of workers.
package scheduler

import (
	"context"
	"sync"
	"sync/atomic"

	"go.trai.ch/fractile/internal/core/domain"
	"go.trai.ch/fractile/internal/core/ports"
)

// Stats counts what the workers did.
type Stats struct {
	Levels    int64
	Finished  int64
	Cancelled int64
	Requeued  int64
}

// Pool is a fixed set of workers draining a shared priority queue.
//
// A worker pops the most urgent task and fills one level. Work that published
// a level, or that was preempted, goes back at one priority lower so repeated
// passes over one tile cannot starve its peers. Everything else is released.
type Pool struct {
	queue   *Queue
	workers int
	wake    chan struct{}

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	levels    atomic.Int64
	finished  atomic.Int64
	cancelled atomic.Int64
	requeued  atomic.Int64
}

// NewPool creates a pool. Non-positive worker counts fall back to the default.
func NewPool(workers int) *Pool {
	if workers < 1 {
		workers = domain.DefaultWorkers()
	}
	return &Pool{
		queue:   NewQueue(),
		workers: workers,
		wake:    make(chan struct{}, workers),
	}
}

// Start launches the workers. They run until ctx is done or Shutdown is called.
func (p *Pool) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cancel != nil {
		return
	}
	ctx, p.cancel = context.WithCancel(ctx)
	for range p.workers {
		p.wg.Go(func() {
			p.work(ctx)
		})
	}
}

// Submit queues work and wakes one idle worker.
func (p *Pool) Submit(priority int, work ports.Fillable) {
	p.queue.Push(priority, work)
	p.signal()
}

func (p *Pool) signal() {
	select {
	case p.wake <- struct{}{}:
	default:
		// Every worker already has a wakeup pending.
	}
}

func (p *Pool) work(ctx context.Context) {
	for {
		task, ok := p.queue.Pop()
		if !ok {
			select {
			case <-ctx.Done():
				return
			case <-p.wake:
				continue
			}
		}
		if ctx.Err() != nil {
			task.Work.Release()
			return
		}
		p.run(task)
	}
}

func (p *Pool) run(task Task) {
	res := task.Work.Fill()
	switch {
	case res.Status == domain.StatusLevelCompleted:
		p.levels.Add(1)
		p.requeue(task)
	case res.Status == domain.StatusCancelled && res.Reason == domain.ReasonPreempted:
		p.cancelled.Add(1)
		p.requeue(task)
	case res.Status == domain.StatusCancelled && res.Reason == domain.ReasonBusy:
		// Someone else owns the fill and will release it.
		p.cancelled.Add(1)
	case res.Status == domain.StatusCancelled:
		p.cancelled.Add(1)
		task.Work.Release()
	default:
		p.finished.Add(1)
		task.Work.Release()
	}
}

func (p *Pool) requeue(task Task) {
	p.requeued.Add(1)
	p.queue.Push(task.Priority-1, task.Work)
}

// Shutdown stops the workers, waits for them to exit and releases whatever
// was still queued.
func (p *Pool) Shutdown() {
	p.mu.Lock()
	cancel := p.cancel
	p.mu.Unlock()

	if cancel != nil {
		cancel()
		p.wg.Wait()
	}
	for _, task := range p.queue.Drain() {
		task.Work.Release()
	}
}

// Pending returns the number of queued tasks.
func (p *Pool) Pending() int {
	return p.queue.Len()
}

// Workers returns the pool size.
func (p *Pool) Workers() int {
	return p.workers
}

// Stats returns a snapshot of the worker counters.
func (p *Pool) Stats() Stats {
	return Stats{
		Levels:    p.levels.Load(),
		Finished:  p.finished.Load(),
		Cancelled: p.cancelled.Load(),
		Requeued:  p.requeued.Load(),
	}
}
