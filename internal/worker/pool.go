// worker/pool.go
package worker

import "sync"

// Job produces one result. Jobs carry their own inputs via closure.
type Job[T any] func() T

type Result[T any] struct {
	JobID  int
	Output T
}

// Pool runs jobs on a fixed set of goroutines and delivers results on
// a channel. Close after the last Submit; Results is closed once every
// submitted job has finished.
type Pool[T any] struct {
	jobs    chan jobWrapper[T]
	results chan Result[T]
	wg      sync.WaitGroup
}

type jobWrapper[T any] struct {
	id int
	fn Job[T]
}

func NewPool[T any](workerCount, bufferSize int) *Pool[T] {
	p := &Pool[T]{
		jobs:    make(chan jobWrapper[T], bufferSize),
		results: make(chan Result[T], bufferSize),
	}

	p.wg.Add(workerCount)
	for i := 0; i < workerCount; i++ {
		go p.worker()
	}
	go func() {
		p.wg.Wait()
		close(p.results)
	}()

	return p
}

func (p *Pool[T]) worker() {
	defer p.wg.Done()
	for job := range p.jobs {
		p.results <- Result[T]{JobID: job.id, Output: job.fn()}
	}
}

func (p *Pool[T]) Submit(id int, fn Job[T]) {
	p.jobs <- jobWrapper[T]{id: id, fn: fn}
}

// Close signals that no more jobs will be submitted.
func (p *Pool[T]) Close() {
	close(p.jobs)
}

func (p *Pool[T]) Results() <-chan Result[T] {
	return p.results
}
