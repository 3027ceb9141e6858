package motion

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettings_Valid(t *testing.T) {
	s := DefaultSettings()

	require.NoError(t, s.Validate())
	assert.Equal(t, 0.2, s.Reveal.Threshold)
	assert.True(t, s.FrameThrottle)
	assert.Equal(t, 360*time.Millisecond, s.Delay(3))
}

func TestSettings_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Settings)
	}{
		{"nan threshold", func(s *Settings) { s.Reveal.Threshold = math.NaN() }},
		{"infinite margin", func(s *Settings) { s.Reveal.RootMargin = math.Inf(1) }},
		{"threshold below zero", func(s *Settings) { s.Reveal.Threshold = -0.1 }},
		{"threshold above one", func(s *Settings) { s.Reveal.Threshold = 1.5 }},
		{"negative stagger", func(s *Settings) { s.Reveal.Stagger = -time.Millisecond }},
		{"negative base delay", func(s *Settings) { s.Reveal.BaseDelay = -time.Second }},
		{"negative offset", func(s *Settings) { s.Falloff.MaxOffset = -1 }},
		{"zero min scale", func(s *Settings) { s.Falloff.MinScale = 0 }},
		{"inverted scale", func(s *Settings) { s.Falloff.MinScale, s.Falloff.MaxScale = 1.1, 1.0 }},
		{"opacity above one", func(s *Settings) { s.Falloff.MaxOpacity = 1.2 }},
		{"inverted opacity", func(s *Settings) { s.Falloff.MinOpacity = 0.9; s.Falloff.MaxOpacity = 0.5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.mutate(&s)
			assert.ErrorIs(t, s.Validate(), ErrInvalidSettings)
		})
	}
}

func TestSettings_Client(t *testing.T) {
	s := DefaultSettings()
	s.Reveal.RootMargin = 80
	s.Reveal.BaseDelay = 40 * time.Millisecond

	data, err := json.Marshal(s.Client())
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))

	assert.Equal(t, 0.2, got["threshold"])
	assert.Equal(t, "80px 0px 80px 0px", got["rootMargin"])
	assert.Equal(t, 120.0, got["staggerMs"])
	assert.Equal(t, 40.0, got["baseDelayMs"])
	assert.Equal(t, true, got["frameThrottle"])

	parallax := got["parallax"].(map[string]any)
	assert.Equal(t, 24.0, parallax["maxOffset"])
	assert.Equal(t, 0.95, parallax["minScale"])
	assert.Equal(t, 0.6, parallax["minOpacity"])
}

func TestSpotlight(t *testing.T) {
	b := Box{Left: 100, Top: 50, Width: 400, Height: 200}

	tests := []struct {
		name   string
		x, y   float64
		wx, wy float64
	}{
		{"top left", 100, 50, 0, 0},
		{"centre", 300, 150, 50, 50},
		{"bottom right", 500, 250, 100, 100},
		{"outside clamps", -100, 900, 0, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mx, my := Spotlight(b, tt.x, tt.y)
			assert.InDelta(t, tt.wx, mx, 1e-9)
			assert.InDelta(t, tt.wy, my, 1e-9)
		})
	}

	mx, my := Spotlight(Box{}, 10, 10)
	assert.Equal(t, float64(SpotlightDefaultX), mx)
	assert.Equal(t, float64(SpotlightDefaultY), my)
}
