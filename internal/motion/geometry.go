// Package motion models the scroll-driven effects on the landing page:
// one-shot reveals when an element enters the viewport and a parallax
// transform derived from an element's distance to the viewport centre.
//
// Nothing here touches a browser. Geometry comes in as plain numbers and
// results go out through small interfaces, so the behaviour can be tested
// directly and mirrored by the browser adapter in static/js/motion.js.
package motion

// Viewport is the visible window in document coordinates (CSS pixels).
type Viewport struct {
	ScrollY float64
	Height  float64
}

// Center returns the vertical centre of the viewport.
func (v Viewport) Center() float64 {
	return v.ScrollY + v.Height/2
}

// Rect is the vertical extent of an element in document coordinates.
type Rect struct {
	Top    float64
	Height float64
}

func (r Rect) Bottom() float64 { return r.Top + r.Height }
func (r Rect) Center() float64 { return r.Top + r.Height/2 }

// IntersectionRatio returns the fraction of r's height inside the viewport
// after growing the viewport by margin pixels at the top and bottom.
// Elements without height never intersect.
func IntersectionRatio(v Viewport, r Rect, margin float64) float64 {
	if r.Height <= 0 || v.Height <= 0 {
		return 0
	}

	top := v.ScrollY - margin
	bottom := v.ScrollY + v.Height + margin

	overlap := min(bottom, r.Bottom()) - max(top, r.Top)
	if overlap <= 0 {
		return 0
	}
	return clamp(overlap/r.Height, 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}
