// Package queue provides the unbounded FIFO used as the inbound mailbox of
// every benchmark task: many concurrent producers, one consumer, blocking
// receive. All synchronization lives here; task logic never takes a lock.
package queue

import "sync"

// Queue is an unbounded multi-producer single-consumer FIFO of encoded
// wire messages. The zero value is not usable; call New.
type Queue struct {
	mu     sync.Mutex
	cond   *sync.Cond
	items  []string
	head   int
	closed bool
}

// New returns an empty open queue.
func New() *Queue {
	q := &Queue{items: make([]string, 0, 8)}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// Put appends an item. It never blocks and is safe to call from many
// goroutines. Put on a closed queue panics.
func (q *Queue) Put(item string) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		panic("queue: Put on closed queue")
	}
	q.items = append(q.items, item)
	q.mu.Unlock()
	q.cond.Signal()
}

// Get removes and returns the oldest item, blocking while the queue is
// empty. It returns ok=false once the queue is closed and drained.
func (q *Queue) Get() (item string, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for q.head == len(q.items) {
		if q.closed {
			return "", false
		}
		q.cond.Wait()
	}
	item = q.items[q.head]
	q.items[q.head] = "" // release for GC
	q.head++
	// reclaim consumed prefix once it dominates the backing array
	if q.head > 32 && q.head*2 >= len(q.items) {
		q.items = append(q.items[:0], q.items[q.head:]...)
		q.head = 0
	}
	return item, true
}

// TryGet is a non-blocking Get; ok is false when the queue is empty.
func (q *Queue) TryGet() (item string, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.head == len(q.items) {
		return "", false
	}
	item = q.items[q.head]
	q.items[q.head] = ""
	q.head++
	return item, true
}

// Len reports the number of queued items.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items) - q.head
}

// Close marks the queue closed and wakes blocked readers. Items already
// queued remain readable.
func (q *Queue) Close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()
	q.cond.Broadcast()
}
