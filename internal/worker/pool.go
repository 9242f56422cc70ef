// Package worker replays independent positions in parallel. Every job
// gets its own session and board; nothing is shared between workers.
package worker

import (
	"sort"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chesscore-go/internal/chess"
)

// WorkItem is one position to replay.
type WorkItem struct {
	Index int // Input order, restored by Collect
	FEN   string
	Moves []string
}

// ProcessResult is the outcome of replaying a WorkItem.
type ProcessResult struct {
	Index     int
	SessionID string
	Board     *chess.Board // Final position; nil if the FEN was rejected
	Placement string
	Ply       int
	Skipped   []string
	Err       error
}

// ProcessFunc replays a single item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool runs a ProcessFunc over submitted items on a fixed set of goroutines.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopFlag    int32
	failFast    bool
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// WithFailFast stops the pool after the first result that carries an error.
// Items already in flight still finish; queued ones are dropped.
func WithFailFast() PoolOption {
	return func(p *Pool) {
		p.failFast = true
	}
}

// NewPool creates a pool. Default: 1 worker, buffer size of 10.
func NewPool(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // drain without processing
		}
		res := p.processFunc(item)
		if p.failFast && res.Err != nil {
			p.Stop()
		}
		p.resultChan <- res
	}
}

// Submit queues an item. It blocks while the buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// Stop makes workers drain remaining items without processing them.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped reports whether Stop has been called.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the work channel, waits for the workers and then closes
// the result channel.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Collect drains the result channel and returns the results in input order.
func (p *Pool) Collect() []ProcessResult {
	var results []ProcessResult
	for r := range p.Results() {
		results = append(results, r)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })
	return results
}

// Run starts the pool, submits items until they run out or the pool is
// stopped, and returns the results in input order. A pool runs only once.
func (p *Pool) Run(items []WorkItem) []ProcessResult {
	p.Start()
	go func() {
		for _, item := range items {
			if p.IsStopped() {
				break
			}
			p.Submit(item)
		}
		p.Close()
	}()
	return p.Collect()
}
