package joystick

import (
	"sort"
	"sync"
	"time"
)

// Scheduler runs a callback after a delay. The joystick uses it to drive
// the return animation without blocking the caller.
// Implementations must not call fn before AfterFunc has returned.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

// Timer is a pending callback returned by a Scheduler.
type Timer interface {
	// Stop prevents the callback from running. It returns false
	// if the callback already ran or was stopped before.
	Stop() bool
}

// FrameQueue is a Scheduler driven by the host's frame clock.
// Callbacks only run from Advance, on the goroutine calling it.
type FrameQueue struct {
	mu    sync.Mutex
	now   time.Time
	seq   uint64
	tasks []*task
}

type task struct {
	q   *FrameQueue
	due time.Time
	seq uint64
	fn  func()
}

var _ Scheduler = (*FrameQueue)(nil)

// NewFrameQueue creates a new queue whose clock starts at now.
func NewFrameQueue(now time.Time) *FrameQueue {
	return &FrameQueue{now: now}
}

// AfterFunc schedules fn to run once the queue clock is at least d past its current value.
func (q *FrameQueue) AfterFunc(d time.Duration, fn func()) Timer {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.seq++
	t := &task{q: q, due: q.now.Add(d), seq: q.seq, fn: fn}
	q.tasks = append(q.tasks, t)

	return t
}

// Advance moves the queue clock to now and runs every due callback, ordered by
// due time and then by submission. Callbacks scheduled meanwhile run in the same
// call if they are already due. The clock never moves backwards.
func (q *FrameQueue) Advance(now time.Time) int {
	q.mu.Lock()
	if now.After(q.now) {
		q.now = now
	}
	q.mu.Unlock()

	var n int
	for {
		t := q.pop()
		if t == nil {
			return n
		}
		t.fn()
		n++
	}
}

// Now returns the current queue clock.
func (q *FrameQueue) Now() time.Time {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.now
}

// Next returns the due time of the earliest pending callback.
func (q *FrameQueue) Next() (time.Time, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.tasks) == 0 {
		return time.Time{}, false
	}
	q.sort()
	return q.tasks[0].due, true
}

// Len returns the number of pending callbacks.
func (q *FrameQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.tasks)
}

// pop removes and returns the earliest due task, or nil if none is due.
func (q *FrameQueue) pop() *task {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.tasks) == 0 {
		return nil
	}
	q.sort()
	t := q.tasks[0]
	if t.due.After(q.now) {
		return nil
	}
	q.tasks = q.tasks[1:]

	return t
}

// sort orders the pending tasks. Caller must hold the locker.
func (q *FrameQueue) sort() {
	sort.SliceStable(q.tasks, func(i, j int) bool {
		a, b := q.tasks[i], q.tasks[j]
		if !a.due.Equal(b.due) {
			return a.due.Before(b.due)
		}
		return a.seq < b.seq
	})
}

// Stop removes the task from its queue.
func (t *task) Stop() bool {
	q := t.q
	q.mu.Lock()
	defer q.mu.Unlock()

	for i, p := range q.tasks {
		if p == t {
			q.tasks = append(q.tasks[:i], q.tasks[i+1:]...)
			return true
		}
	}
	return false
}
