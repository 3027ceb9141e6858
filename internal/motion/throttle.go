package motion

import "sync"

// FrameSource runs a callback before the next frame is painted.
type FrameSource interface {
	RequestFrame(fn func())
}

// FrameThrottle coalesces notifications so apply runs at most once per
// frame, always with the latest viewport.
type FrameThrottle struct {
	mu        sync.Mutex
	frames    FrameSource
	apply     func(Viewport)
	latest    Viewport
	scheduled bool
	stopped   bool
}

func NewFrameThrottle(frames FrameSource, apply func(Viewport)) *FrameThrottle {
	return &FrameThrottle{frames: frames, apply: apply}
}

// Notify records v and requests a frame unless one is already pending.
func (t *FrameThrottle) Notify(v Viewport) {
	t.mu.Lock()
	t.latest = v
	if t.scheduled || t.stopped {
		t.mu.Unlock()
		return
	}
	t.scheduled = true
	t.mu.Unlock()

	t.frames.RequestFrame(t.flush)
}

// Stop drops any pending frame; later notifications are ignored.
func (t *FrameThrottle) Stop() {
	t.mu.Lock()
	t.stopped = true
	t.mu.Unlock()
}

func (t *FrameThrottle) flush() {
	t.mu.Lock()
	t.scheduled = false
	if t.stopped {
		t.mu.Unlock()
		return
	}
	v := t.latest
	t.mu.Unlock()

	t.apply(v)
}
