package motion

import (
	"sort"
	"sync"
	"time"
)

// Container is the target id of the single watched element of a group
// created with NewRevealGroup.
const Container = -1

// RevealOptions parameterise when a target counts as "in view" and how
// reveals are staggered.
type RevealOptions struct {
	// Threshold is the visible fraction of a target needed to reveal it.
	Threshold float64
	// RootMargin grows the viewport by this many pixels above and below,
	// so targets trigger slightly before they scroll into view.
	RootMargin float64
	// Stagger is added per item index.
	Stagger time.Duration
	// BaseDelay applies to every item.
	BaseDelay time.Duration
}

// Delay returns the reveal delay of item i.
func (o RevealOptions) Delay(i int) time.Duration {
	if i < 0 {
		i = 0
	}
	return o.BaseDelay + time.Duration(i)*o.Stagger
}

// Intersection is one viewport-intersection notification for a target.
type Intersection struct {
	Target int
	Ratio  float64
}

// Reveal tracks the hidden→visible state of a fixed number of items.
//
// Each item starts hidden and becomes visible at most once. A watched
// target is released on its first qualifying intersection, so later
// notifications for it are ignored. Reveal is safe for use from timer
// goroutines.
type Reveal struct {
	mu       sync.Mutex
	opts     RevealOptions
	sched    Scheduler
	group    bool
	visible  []bool
	watching map[int]struct{}
	pending  map[int]Timer
	onReveal func(int)
	closed   bool
}

// NewReveal watches one target per item; target i reveals item i.
func NewReveal(count int, opts RevealOptions, sched Scheduler) *Reveal {
	r := newReveal(count, opts, sched)
	for i := 0; i < count; i++ {
		r.watching[i] = struct{}{}
	}
	return r
}

// NewRevealGroup watches a single Container target whose first crossing
// reveals every item, item i after opts.Delay(i).
func NewRevealGroup(count int, opts RevealOptions, sched Scheduler) *Reveal {
	r := newReveal(count, opts, sched)
	r.group = true
	if count > 0 {
		r.watching[Container] = struct{}{}
	}
	return r
}

func newReveal(count int, opts RevealOptions, sched Scheduler) *Reveal {
	if count < 0 {
		count = 0
	}
	if sched == nil {
		sched = WallClock
	}
	return &Reveal{
		opts:     opts,
		sched:    sched,
		visible:  make([]bool, count),
		watching: make(map[int]struct{}),
		pending:  make(map[int]Timer),
	}
}

// OnReveal registers fn to be called once for each item as it turns
// visible. fn runs without the controller's lock held.
func (r *Reveal) OnReveal(fn func(item int)) {
	r.mu.Lock()
	r.onReveal = fn
	r.mu.Unlock()
}

// Observe handles one intersection notification and reports whether it
// triggered a reveal. Notifications for released or unknown targets, or
// below the threshold, do nothing.
func (r *Reveal) Observe(e Intersection) bool {
	r.mu.Lock()
	if r.closed || e.Ratio <= 0 || e.Ratio < r.opts.Threshold {
		r.mu.Unlock()
		return false
	}
	if _, ok := r.watching[e.Target]; !ok {
		r.mu.Unlock()
		return false
	}
	delete(r.watching, e.Target)

	var now []int
	var later []int
	for _, i := range r.itemsFor(e.Target) {
		if r.visible[i] {
			continue
		}
		if r.opts.Delay(i) <= 0 {
			r.visible[i] = true
			now = append(now, i)
			continue
		}
		later = append(later, i)
	}
	cb := r.onReveal
	r.mu.Unlock()

	for _, i := range now {
		if cb != nil {
			cb(i)
		}
	}
	for _, i := range later {
		r.schedule(i)
	}
	return true
}

// Sync evaluates every watched target against the viewport and observes
// the result. geometry reports false for targets that are not attached,
// which are skipped. Calling Sync at mount reveals targets that are
// already in view.
func (r *Reveal) Sync(v Viewport, geometry func(target int) (Rect, bool)) {
	for _, target := range r.watched() {
		rect, ok := geometry(target)
		if !ok {
			continue
		}
		r.Observe(Intersection{
			Target: target,
			Ratio:  IntersectionRatio(v, rect, r.opts.RootMargin),
		})
	}
}

// Visible reports whether item i has been revealed.
func (r *Reveal) Visible(i int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i < 0 || i >= len(r.visible) {
		return false
	}
	return r.visible[i]
}

// Snapshot returns a copy of all visibility flags.
func (r *Reveal) Snapshot() []bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]bool, len(r.visible))
	copy(out, r.visible)
	return out
}

// Revealed returns how many items are visible.
func (r *Reveal) Revealed() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, v := range r.visible {
		if v {
			n++
		}
	}
	return n
}

// Done reports whether every item is visible.
func (r *Reveal) Done() bool {
	return r.Revealed() == r.Len()
}

// Len returns the number of items.
func (r *Reveal) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.visible)
}

// Close stops pending reveals and releases all watchers. Items already
// visible stay visible.
func (r *Reveal) Close() {
	r.mu.Lock()
	r.closed = true
	pending := r.pending
	r.pending = make(map[int]Timer)
	r.watching = make(map[int]struct{})
	r.mu.Unlock()

	for _, t := range pending {
		t.Stop()
	}
}

func (r *Reveal) itemsFor(target int) []int {
	if !r.group {
		if target < 0 || target >= len(r.visible) {
			return nil
		}
		return []int{target}
	}
	items := make([]int, len(r.visible))
	for i := range items {
		items[i] = i
	}
	return items
}

func (r *Reveal) watched() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	targets := make([]int, 0, len(r.watching))
	for t := range r.watching {
		targets = append(targets, t)
	}
	sort.Ints(targets)
	return targets
}

func (r *Reveal) schedule(i int) {
	t := r.sched.AfterFunc(r.opts.Delay(i), func() { r.flip(i) })

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		t.Stop()
		return
	}
	if !r.visible[i] {
		r.pending[i] = t
	}
}

func (r *Reveal) flip(i int) {
	r.mu.Lock()
	delete(r.pending, i)
	if r.closed || r.visible[i] {
		r.mu.Unlock()
		return
	}
	r.visible[i] = true
	cb := r.onReveal
	r.mu.Unlock()

	if cb != nil {
		cb(i)
	}
}
