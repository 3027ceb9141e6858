package components

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/miix-automations/website/internal/motion"
)

// Reveal and parallax markers read by static/js/motion.js. A reveal target
// is either a single element ("self") or a container ("group") whose
// [data-reveal-item] children reveal together, each after its own delay.

func revealSelf(delayMS int64) g.Node {
	return g.Group{
		Data("reveal", "self"),
		Data("reveal-delay", strconv.FormatInt(delayMS, 10)),
	}
}

func revealGroup() g.Node {
	return Data("reveal", "group")
}

func revealItem(s motion.Settings, i int) g.Node {
	return g.Group{
		Data("reveal-item", strconv.Itoa(i)),
		Data("reveal-delay", strconv.FormatInt(s.Delay(i).Milliseconds(), 10)),
	}
}

// parallax marks an element that moves with scroll once revealed. It must
// sit on a node that is itself a reveal target.
func parallax() g.Node {
	return Data("parallax", "")
}
