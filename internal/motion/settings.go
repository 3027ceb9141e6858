package motion

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrInvalidSettings is returned by Settings.Validate.
var ErrInvalidSettings = errors.New("invalid motion settings")

// Settings bundles everything a section needs to wire its reveal and
// parallax behaviour.
type Settings struct {
	Reveal        RevealOptions
	Falloff       Falloff
	FrameThrottle bool
}

// DefaultSettings reveals at 20% visibility with a 120ms stagger and uses
// DefaultFalloff with frame throttling on.
func DefaultSettings() Settings {
	return Settings{
		Reveal: RevealOptions{
			Threshold: 0.2,
			Stagger:   120 * time.Millisecond,
		},
		Falloff:       DefaultFalloff(),
		FrameThrottle: true,
	}
}

// Delay returns the reveal delay of item i.
func (s Settings) Delay(i int) time.Duration {
	return s.Reveal.Delay(i)
}

func (s Settings) Validate() error {
	r, f := s.Reveal, s.Falloff
	for _, v := range []float64{r.Threshold, r.RootMargin, f.MaxOffset, f.MinScale, f.MaxScale, f.MinOpacity, f.MaxOpacity} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite value", ErrInvalidSettings)
		}
	}
	switch {
	case r.Threshold < 0 || r.Threshold > 1:
		return fmt.Errorf("%w: threshold %.2f outside [0,1]", ErrInvalidSettings, r.Threshold)
	case r.Stagger < 0 || r.BaseDelay < 0:
		return fmt.Errorf("%w: negative reveal delay", ErrInvalidSettings)
	case f.MaxOffset < 0:
		return fmt.Errorf("%w: negative parallax offset", ErrInvalidSettings)
	case f.MinScale <= 0 || f.MinScale > f.MaxScale:
		return fmt.Errorf("%w: scale bounds [%.2f, %.2f]", ErrInvalidSettings, f.MinScale, f.MaxScale)
	case f.MinOpacity < 0 || f.MaxOpacity > 1 || f.MinOpacity > f.MaxOpacity:
		return fmt.Errorf("%w: opacity bounds [%.2f, %.2f]", ErrInvalidSettings, f.MinOpacity, f.MaxOpacity)
	}
	return nil
}

// ClientConfig is the JSON form of Settings read by the browser adapter.
type ClientConfig struct {
	Threshold     float64        `json:"threshold"`
	RootMargin    string         `json:"rootMargin"`
	StaggerMS     int64          `json:"staggerMs"`
	BaseDelayMS   int64          `json:"baseDelayMs"`
	FrameThrottle bool           `json:"frameThrottle"`
	Parallax      ClientParallax `json:"parallax"`
	Spotlight     ClientPoint    `json:"spotlight"`
}

type ClientParallax struct {
	MaxOffset  float64 `json:"maxOffset"`
	MinScale   float64 `json:"minScale"`
	MaxScale   float64 `json:"maxScale"`
	MinOpacity float64 `json:"minOpacity"`
	MaxOpacity float64 `json:"maxOpacity"`
}

type ClientPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Client converts s for the browser. RootMargin becomes a CSS margin that
// only grows the viewport vertically.
func (s Settings) Client() ClientConfig {
	return ClientConfig{
		Threshold:     s.Reveal.Threshold,
		RootMargin:    fmt.Sprintf("%gpx 0px %gpx 0px", s.Reveal.RootMargin, s.Reveal.RootMargin),
		StaggerMS:     s.Reveal.Stagger.Milliseconds(),
		BaseDelayMS:   s.Reveal.BaseDelay.Milliseconds(),
		FrameThrottle: s.FrameThrottle,
		Parallax: ClientParallax{
			MaxOffset:  s.Falloff.MaxOffset,
			MinScale:   s.Falloff.MinScale,
			MaxScale:   s.Falloff.MaxScale,
			MinOpacity: s.Falloff.MinOpacity,
			MaxOpacity: s.Falloff.MaxOpacity,
		},
		Spotlight: ClientPoint{X: SpotlightDefaultX, Y: SpotlightDefaultY},
	}
}
