// Package bench implements the qmark message-passing benchmark: a set of
// queue micro servers (qtasks) and micro clients (ctasks) exchanging
// text-encoded messages over per-task inbound queues.
package bench

import (
	"fmt"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"qmark/pkg/protocol"
	"qmark/pkg/queue"
)

// Default sweep parameters.
const (
	DefaultQTasks = 61
	DefaultCTasks = 379
	DefaultRuns   = 7
)

// Options carries optional benchmark knobs.
type Options struct {
	// Debug makes every task log each processed message at Debug level.
	Debug bool
}

// ConfigError reports a task count that cannot form a runnable benchmark.
type ConfigError struct {
	Param string
	Value int
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("bench: %s must be at least 1, got %d", e.Param, e.Value)
}

// Bench holds the queue arenas and parameters for a single run. A Bench is
// good for exactly one Run; the harness constructs a fresh one per sample.
type Bench struct {
	numQTasks int
	numCTasks int
	debug     bool

	// inbound queue arenas, indexed by task id
	qtaskQueues []*queue.Queue
	ctaskQueues []*queue.Queue

	dropped atomic.Uint64
}

// New builds the queue arenas for numQTasks servers and numCTasks clients.
func New(numQTasks, numCTasks int, opts Options) (*Bench, error) {
	if numQTasks < 1 {
		return nil, &ConfigError{Param: "numQTasks", Value: numQTasks}
	}
	if numCTasks < 1 {
		return nil, &ConfigError{Param: "numCTasks", Value: numCTasks}
	}
	b := &Bench{
		numQTasks:   numQTasks,
		numCTasks:   numCTasks,
		debug:       opts.Debug,
		qtaskQueues: make([]*queue.Queue, numQTasks),
		ctaskQueues: make([]*queue.Queue, numCTasks),
	}
	for i := range b.qtaskQueues {
		b.qtaskQueues[i] = queue.New()
	}
	for i := range b.ctaskQueues {
		b.ctaskQueues[i] = queue.New()
	}
	return b, nil
}

// Run spawns all tasks, waits for every client to finish, shuts the servers
// down and returns the elapsed wall time. A decode error in any task aborts
// the run and propagates; servers are still signalled to exit so no
// goroutine outlives the call.
func (b *Bench) Run() (time.Duration, error) {
	start := time.Now()

	var servers errgroup.Group
	for ix := 0; ix < b.numQTasks; ix++ {
		ix := ix
		servers.Go(func() error { return b.qtask(ix) })
	}
	var clients errgroup.Group
	for ix := 0; ix < b.numCTasks; ix++ {
		ix := ix
		clients.Go(func() error { return b.ctask(ix) })
	}

	cerr := clients.Wait()
	exit := protocol.Exit().Encode()
	for _, qq := range b.qtaskQueues {
		qq.Put(exit)
	}
	serr := servers.Wait()

	elapsed := time.Since(start)
	if cerr != nil {
		return elapsed, cerr
	}
	if serr != nil {
		return elapsed, serr
	}
	return elapsed, nil
}

// Dropped reports how many relay messages were discarded because their
// target kind named no known client queue. A correct run keeps this at zero.
func (b *Bench) Dropped() uint64 { return b.dropped.Load() }
