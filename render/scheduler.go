package render

import "time"

// Clock provides the current time. SystemClock reads the wall clock; tests use a fake.
type Clock interface {
	Now() time.Time
}

// SystemClock is the real monotonic clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FrameHandle identifies a pending frame request. The zero handle is never issued.
type FrameHandle uint64

// FrameCallback runs on the next frame with the frame's timestamp.
type FrameCallback func(now time.Time)

// FrameScheduler is the host's frame-request primitive.
type FrameScheduler interface {
	RequestFrame(cb FrameCallback) FrameHandle
	CancelFrame(h FrameHandle)
}

// FrameQueue is a FrameScheduler pumped explicitly by its host: callbacks requested
// before RunFrame run on that RunFrame, callbacks requested while it runs wait for
// the next one. It is not safe for concurrent use.
type FrameQueue struct {
	pending []queuedFrame
	// running holds the handles of the batch RunFrame is iterating; false once run or cancelled.
	running map[FrameHandle]bool
	nextID  FrameHandle
}

type queuedFrame struct {
	handle FrameHandle
	cb     FrameCallback
}

// NewFrameQueue creates an empty queue.
func NewFrameQueue() *FrameQueue {
	return &FrameQueue{}
}

func (q *FrameQueue) RequestFrame(cb FrameCallback) FrameHandle {
	q.nextID++
	q.pending = append(q.pending, queuedFrame{handle: q.nextID, cb: cb})
	return q.nextID
}

func (q *FrameQueue) CancelFrame(h FrameHandle) {
	if _, ok := q.running[h]; ok {
		q.running[h] = false
		return
	}
	for i, f := range q.pending {
		if f.handle == h {
			q.pending = append(q.pending[:i:i], q.pending[i+1:]...)
			return
		}
	}
}

// Pending returns the number of callbacks waiting for the next RunFrame.
func (q *FrameQueue) Pending() int {
	return len(q.pending)
}

// RunFrame runs every callback queued before the call, in request order.
func (q *FrameQueue) RunFrame(now time.Time) {
	batch := q.pending
	q.pending = nil
	if len(batch) == 0 {
		return
	}

	q.running = make(map[FrameHandle]bool, len(batch))
	for _, f := range batch {
		q.running[f.handle] = true
	}
	for _, f := range batch {
		if !q.running[f.handle] {
			continue
		}
		q.running[f.handle] = false
		f.cb(now)
	}
	q.running = nil
}
