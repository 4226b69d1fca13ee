package workerpool

import "sync"

// Job represents a unit of work to be run by the pool.
type Job[T any] struct {
	Task func() (T, error)
}

// JobResult represents the result of a job.
type JobResult[T any] struct {
	Result T
	Err    error
}

// Dispatcher fans submitted jobs out to a fixed number of workers and
// funnels their results into a single result queue. Results arrive in
// completion order, not submission order.
type Dispatcher[T any] struct {
	JobQueue    chan Job[T]
	ResultQueue chan JobResult[T]

	numWorkers int
	quitChan   chan struct{}
	wg         sync.WaitGroup
}

// NewDispatcher creates a dispatcher with the given number of workers.
func NewDispatcher[T any](numWorkers int) *Dispatcher[T] {
	return &Dispatcher[T]{
		JobQueue:    make(chan Job[T]),
		ResultQueue: make(chan JobResult[T]),
		numWorkers:  numWorkers,
		quitChan:    make(chan struct{}),
	}
}

// Run starts the workers and blocks until Stop is called.
func (d *Dispatcher[T]) Run() {
	d.wg.Add(d.numWorkers)
	for i := 0; i < d.numWorkers; i++ {
		go d.work()
	}

	d.wg.Wait()
	close(d.ResultQueue)
}

// Stop terminates the workers. Jobs already picked up finish and deliver
// their results; queued jobs that no worker reached are dropped.
func (d *Dispatcher[T]) Stop() {
	close(d.quitChan)
}

func (d *Dispatcher[T]) work() {
	defer d.wg.Done()

	for {
		select {
		case job := <-d.JobQueue:
			result, err := job.Task()
			d.ResultQueue <- JobResult[T]{Result: result, Err: err}
		case <-d.quitChan:
			return
		}
	}
}
