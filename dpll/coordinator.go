package dpll

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"

	"github.com/satcore/satcore/cnf"
)

// coordinator holds the shared state of the parallel search: a FIFO work
// queue guarded by a mutex/condition-variable pair, an atomic idle
// counter, a one-shot result slot, and a cooperative cancellation flag
// that shares the queue's mutex. The "am I the terminator" decision must
// read idle while holding the queue mutex, so cancel is decided in that
// same critical section, closing the race against a worker that is about
// to enqueue fresh work.
type coordinator struct {
	mu    sync.Mutex
	cond  *sync.Cond
	queue []*cnf.Formula

	cancel bool // guarded by mu

	idle    int64 // atomic
	workers int

	resultOnce sync.Once
	resultCh   chan cnf.Result

	log hclog.Logger
}

// SolveParallel decides f using a pool of workers goroutines (defaulting
// to runtime.NumCPU() when workers <= 0), each running the sequential
// engine on instances pulled from a shared queue and publishing one
// sibling sub-problem to that queue at every branch point instead of
// exploring it locally. The first worker to find SAT publishes it and
// every worker cooperatively shuts down; otherwise shutdown is triggered
// by the worker that observes the queue empty with every worker idle.
//
// ctx is an external escape hatch only: the core itself implements no
// timeout, and the caller remains responsible for bounding non-terminating
// sub-problems. log may be nil, in which case logging is discarded.
func SolveParallel(ctx context.Context, f *cnf.Formula, workers int, log hclog.Logger) cnf.Result {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if log == nil {
		log = hclog.NewNullLogger()
	}

	c := &coordinator{
		queue:    []*cnf.Formula{f},
		idle:     int64(workers),
		workers:  workers,
		resultCh: make(chan cnf.Result, 1),
		log:      log.Named("dpll.coordinator"),
	}
	c.cond = sync.NewCond(&c.mu)

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		id := uuid.New()
		go func() {
			defer wg.Done()
			c.runWorker(id)
		}()
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		c.log.Debug("context cancelled, requesting shutdown")
		c.requestCancel()
		<-done
	}

	select {
	case result := <-c.resultCh:
		return result
	default:
		return cnf.Unsat
	}
}

// requestCancel broadcasts cancellation without publishing a result; used
// only for the caller-supplied context timeout/cancel escape hatch, which
// is not itself part of the core's specified termination conditions.
func (c *coordinator) requestCancel() {
	c.mu.Lock()
	c.cancel = true
	c.cond.Broadcast()
	c.mu.Unlock()
}

// runWorker is one worker's loop: pull an instance off the shared queue,
// run the sequential engine on it, and either publish a SAT result or fold
// back into the idle count and check whether the whole search is done.
func (c *coordinator) runWorker(id uuid.UUID) {
	log := c.log.With("worker_id", id.String())
	for {
		c.mu.Lock()
		for len(c.queue) == 0 && !c.cancel {
			c.cond.Wait()
		}
		if c.cancel {
			c.mu.Unlock()
			log.Debug("observed cancellation while waiting, exiting")
			return
		}
		atomic.AddInt64(&c.idle, -1)
		item := c.queue[0]
		c.queue = c.queue[1:]
		c.mu.Unlock()

		result := run(item, c.parallelBranch)

		if result.Sat {
			log.Debug("found a satisfying model, publishing")
			c.publish(result)
			return
		}

		atomic.AddInt64(&c.idle, 1)
		c.mu.Lock()
		if atomic.LoadInt64(&c.idle) == int64(c.workers) && len(c.queue) == 0 {
			log.Debug("queue empty and every worker idle, terminating as UNSAT")
			c.cancel = true
			c.cond.Broadcast()
			c.mu.Unlock()
			return
		}
		c.mu.Unlock()
	}
}

// parallelBranch is the branch operation for parallel search: clone top
// into a sibling, assign name true in top, assign name false in the
// sibling, and publish the sibling to the shared queue instead of pushing
// it onto a local stack. The worker continues on top locally; stack is
// left untouched (parallel-mode search never grows its own stack beyond
// the one item it dequeued).
func (c *coordinator) parallelBranch(stack *[]*cnf.Formula, top *cnf.Formula, name string) {
	sibling := top.Clone()
	top.Assign(name, true)
	sibling.Assign(name, false)

	c.mu.Lock()
	c.queue = append(c.queue, sibling)
	c.mu.Unlock()
	c.cond.Signal()
}

// publish installs result exactly once: the first call wins, every
// subsequent call (even a concurrent SAT result from another worker) is
// silently discarded.
func (c *coordinator) publish(result cnf.Result) {
	c.resultOnce.Do(func() {
		c.resultCh <- result
		c.mu.Lock()
		c.cancel = true
		c.cond.Broadcast()
		c.mu.Unlock()
	})
}
