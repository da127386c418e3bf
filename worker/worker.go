package worker

import (
	"runtime"
	"sync"

	"github.com/getsentry/sentry-go"
)

// Pool is a fixed-size pool of goroutines for CPU intensive work, such as
// procedural asset generation.
type Pool struct {
	queue chan func()
	wg    sync.WaitGroup
}

// NewPool spawns a pool with the given number of workers. A size of zero or
// less uses one worker per CPU.
func NewPool(size int) *Pool {
	if size <= 0 {
		size = runtime.NumCPU()
	}
	p := &Pool{queue: make(chan func(), size)}
	for i := 0; i < size; i++ {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for f := range p.queue {
		p.run(f)
	}
}

func (p *Pool) run(f func()) {
	defer p.wg.Done()
	defer sentry.Recover()
	f()
}

// Submit queues a function on the pool.
func (p *Pool) Submit(f func()) {
	p.wg.Add(1)
	p.queue <- f
}

// Wait blocks until all submitted work has completed.
func (p *Pool) Wait() {
	p.wg.Wait()
}

// Close stops the workers. Submit must not be called after Close.
func (p *Pool) Close() {
	close(p.queue)
}

var (
	defaultPool *Pool
	defaultOnce sync.Once
)

// Submit queues a function on the shared default pool.
func Submit(f func()) {
	defaultOnce.Do(func() {
		defaultPool = NewPool(0)
	})
	defaultPool.Submit(f)
}

// Wait blocks until the shared default pool is drained.
func Wait() {
	if defaultPool != nil {
		defaultPool.Wait()
	}
}
