package engine

import (
	"context"
	"time"
)

// FrameID identifies a requested animation frame. Zero is never issued.
type FrameID uint64

// FrameFunc is called once per delivered frame with a monotonic timestamp.
type FrameFunc func(timestamp time.Duration)

// Host delivers animation frames. A frame callback is delivered at most once;
// cancelling an id before delivery drops it.
type Host interface {
	RequestFrame(fn FrameFunc) FrameID
	CancelFrame(id FrameID)
}

// Frame describes the most recently delivered frame.
type Frame struct {
	Index     int64
	Timestamp time.Duration
	Elapsed   time.Duration
}

type pendingFrame struct {
	id FrameID
	fn FrameFunc
}

// FrameQueue is an in-process Host. Backends call Step once per display
// refresh; tests call it directly.
type FrameQueue struct {
	nextID  FrameID
	pending []pendingFrame

	// batch being delivered by Step; cancelled entries lose their fn.
	inFlight []pendingFrame
}

// NewFrameQueue creates an empty queue.
func NewFrameQueue() *FrameQueue {
	return &FrameQueue{}
}

// RequestFrame queues fn for the next Step.
func (q *FrameQueue) RequestFrame(fn FrameFunc) FrameID {
	q.nextID++
	q.pending = append(q.pending, pendingFrame{id: q.nextID, fn: fn})
	return q.nextID
}

// CancelFrame drops a request that has not been delivered yet, including one
// later in the batch a Step is currently delivering. Unknown ids are ignored.
func (q *FrameQueue) CancelFrame(id FrameID) {
	for i, p := range q.pending {
		if p.id == id {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
	for i := range q.inFlight {
		if q.inFlight[i].id == id {
			q.inFlight[i].fn = nil
			return
		}
	}
}

// Pending returns the number of queued requests.
func (q *FrameQueue) Pending() int {
	return len(q.pending)
}

// Step delivers every request queued before the call and returns how many
// ran. Requests made by the callbacks themselves wait for the next Step.
func (q *FrameQueue) Step(timestamp time.Duration) int {
	batch := q.pending
	q.pending = nil

	outer := q.inFlight
	q.inFlight = batch
	defer func() { q.inFlight = outer }()

	delivered := 0
	for i := range batch {
		fn := batch[i].fn
		if fn == nil {
			continue
		}
		batch[i].fn = nil
		fn(timestamp)
		delivered++
	}
	return delivered
}

// Run steps q at the given interval until the context is cancelled.
func Run(ctx context.Context, q *FrameQueue, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	start := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			q.Step(now.Sub(start))
		}
	}
}
