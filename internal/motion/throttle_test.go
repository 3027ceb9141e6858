package motion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeFrames struct {
	queue []func()
}

func (f *fakeFrames) RequestFrame(fn func()) { f.queue = append(f.queue, fn) }

func (f *fakeFrames) Len() int { return len(f.queue) }

func (f *fakeFrames) Tick() {
	queue := f.queue
	f.queue = nil
	for _, fn := range queue {
		fn()
	}
}

func TestFrameThrottle_CoalescesToLatest(t *testing.T) {
	frames := &fakeFrames{}
	var got []Viewport
	th := NewFrameThrottle(frames, func(v Viewport) { got = append(got, v) })

	th.Notify(Viewport{ScrollY: 1})
	th.Notify(Viewport{ScrollY: 2})
	th.Notify(Viewport{ScrollY: 3})

	assert.Equal(t, 1, frames.Len())
	frames.Tick()
	assert.Equal(t, []Viewport{{ScrollY: 3}}, got)

	// The next notification requests a new frame.
	th.Notify(Viewport{ScrollY: 4})
	assert.Equal(t, 1, frames.Len())
	frames.Tick()
	assert.Equal(t, []Viewport{{ScrollY: 3}, {ScrollY: 4}}, got)
}

func TestFrameThrottle_NoFrameWithoutNotify(t *testing.T) {
	frames := &fakeFrames{}
	NewFrameThrottle(frames, func(Viewport) { t.Fatal("unexpected apply") })

	assert.Equal(t, 0, frames.Len())
}

func TestFrameThrottle_Stop(t *testing.T) {
	frames := &fakeFrames{}
	calls := 0
	th := NewFrameThrottle(frames, func(Viewport) { calls++ })

	th.Notify(Viewport{ScrollY: 1})
	th.Stop()
	frames.Tick()
	th.Notify(Viewport{ScrollY: 2})

	assert.Equal(t, 0, calls)
	assert.Equal(t, 0, frames.Len())
}
