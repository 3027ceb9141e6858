package motion

import (
	"math"
	"sync"
)

// Falloff bounds the parallax transform. Scale and opacity are at their
// maxima when an element sits on the viewport centre and fall linearly to
// their minima one half-viewport away.
type Falloff struct {
	MaxOffset  float64
	MinScale   float64
	MaxScale   float64
	MinOpacity float64
	MaxOpacity float64
}

// DefaultFalloff is the falloff used by the landing page.
func DefaultFalloff() Falloff {
	return Falloff{
		MaxOffset:  24,
		MinScale:   0.95,
		MaxScale:   1.05,
		MinOpacity: 0.6,
		MaxOpacity: 1,
	}
}

// Transform is the visual adjustment written onto an element.
type Transform struct {
	OffsetY float64
	Scale   float64
	Opacity float64
}

// Identity leaves an element untouched.
var Identity = Transform{Scale: 1, Opacity: 1}

// Distance returns the element centre's distance from the viewport centre
// in half-viewport units, clamped to [-1, 1]. Positive means below centre.
func Distance(v Viewport, r Rect) float64 {
	if v.Height <= 0 {
		return 0
	}
	return clamp((r.Center()-v.Center())/(v.Height/2), -1, 1)
}

// Parallax maps scroll state and element geometry to a transform.
// Elements below the centre are pushed up and elements above pulled down,
// by up to MaxOffset pixels.
func Parallax(v Viewport, r Rect, f Falloff) Transform {
	d := Distance(v, r)
	a := math.Abs(d)

	offset := 0.0
	if d != 0 {
		offset = -d * f.MaxOffset
	}

	return Transform{
		OffsetY: offset,
		Scale:   clamp(lerp(f.MaxScale, f.MinScale, a), f.MinScale, f.MaxScale),
		Opacity: clamp(lerp(f.MaxOpacity, f.MinOpacity, a), f.MinOpacity, f.MaxOpacity),
	}
}

// Element is a parallax target. Geometry returns false once the element
// is detached, in which case it is skipped.
type Element interface {
	Geometry() (Rect, bool)
	Apply(Transform)
}

// RevealState reports which items have been revealed.
type RevealState interface {
	Visible(i int) bool
}

// ScrollSource delivers scroll notifications until the returned function
// is called.
type ScrollSource interface {
	Subscribe(fn func(Viewport)) (unsubscribe func())
}

// ParallaxController applies Parallax to the revealed elements of one
// section on every scroll notification.
type ParallaxController struct {
	mu       sync.Mutex
	falloff  Falloff
	elements []Element
	revealed RevealState
	throttle *FrameThrottle
	cancel   func()
}

// NewParallax creates a controller for elements. Element i moves only once
// revealed.Visible(i) is true; a nil RevealState moves every element.
func NewParallax(elements []Element, falloff Falloff, revealed RevealState) *ParallaxController {
	return &ParallaxController{
		falloff:  falloff,
		elements: elements,
		revealed: revealed,
	}
}

// Update applies the transform for v to every revealed, attached element
// and returns how many were written.
func (p *ParallaxController) Update(v Viewport) int {
	p.mu.Lock()
	elements := p.elements
	revealed := p.revealed
	falloff := p.falloff
	p.mu.Unlock()

	applied := 0
	for i, el := range elements {
		if el == nil {
			continue
		}
		if revealed != nil && !revealed.Visible(i) {
			continue
		}
		rect, ok := el.Geometry()
		if !ok {
			continue
		}
		el.Apply(Parallax(v, rect, falloff))
		applied++
	}
	return applied
}

// Attach subscribes the controller to src. With a non-nil frames source,
// notifications are coalesced to one Update per frame; otherwise every
// notification updates immediately. Attaching again replaces the previous
// subscription.
func (p *ParallaxController) Attach(src ScrollSource, frames FrameSource) {
	p.Detach()

	var throttle *FrameThrottle
	notify := func(v Viewport) { p.Update(v) }
	if frames != nil {
		throttle = NewFrameThrottle(frames, func(v Viewport) { p.Update(v) })
		notify = throttle.Notify
	}
	unsubscribe := src.Subscribe(notify)

	p.mu.Lock()
	p.throttle = throttle
	p.cancel = unsubscribe
	p.mu.Unlock()
}

// Detach removes the scroll subscription and drops any pending frame.
// It is safe to call more than once.
func (p *ParallaxController) Detach() {
	p.mu.Lock()
	cancel := p.cancel
	throttle := p.throttle
	p.cancel = nil
	p.throttle = nil
	p.mu.Unlock()

	if throttle != nil {
		throttle.Stop()
	}
	if cancel != nil {
		cancel()
	}
}

// Attached reports whether the controller holds a scroll subscription.
func (p *ParallaxController) Attached() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cancel != nil
}
