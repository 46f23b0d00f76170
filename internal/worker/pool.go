package worker

import "sync"

// Pool runs submitted jobs on a fixed set of goroutines and exposes their
// outputs on a results channel.
type Pool[T any] struct {
	jobs    chan func() T
	results chan T
	wg      sync.WaitGroup
}

func NewPool[T any](workerCount int, bufferSize int) *Pool[T] {
	p := &Pool[T]{
		jobs:    make(chan func() T, bufferSize),
		results: make(chan T, bufferSize),
	}

	p.wg.Add(workerCount)
	for i := 0; i < workerCount; i++ {
		go p.worker()
	}

	return p
}

func (p *Pool[T]) worker() {
	defer p.wg.Done()
	for job := range p.jobs {
		p.results <- job()
	}
}

func (p *Pool[T]) Submit(fn func() T) {
	p.jobs <- fn
}

func (p *Pool[T]) Results() <-chan T {
	return p.results
}

// Close stops accepting jobs and closes the results channel once the
// in-flight ones finish. Submit after Close panics.
func (p *Pool[T]) Close() {
	close(p.jobs)
	go func() {
		p.wg.Wait()
		close(p.results)
	}()
}
