package motion

// Box is an element's client rectangle.
type Box struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// Default spotlight position, in percent, before the pointer moves.
const (
	SpotlightDefaultX = 60
	SpotlightDefaultY = 40
)

// Spotlight converts a pointer position to the hero highlight position as
// percentages of the box, clamped to [0, 100].
func Spotlight(b Box, x, y float64) (mx, my float64) {
	if b.Width <= 0 || b.Height <= 0 {
		return SpotlightDefaultX, SpotlightDefaultY
	}
	mx = clamp((x-b.Left)/b.Width*100, 0, 100)
	my = clamp((y-b.Top)/b.Height*100, 0, 100)
	return mx, my
}
