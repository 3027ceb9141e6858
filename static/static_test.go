package static

import (
	"io/fs"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS_Assets(t *testing.T) {
	for _, name := range []string{"styles.css", "js/motion.js", "js/theme.js", "images/hero.svg", "images/favicon.svg", "images/og-image.svg"} {
		b, err := fs.ReadFile(FS, name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, b, name)
	}
}

// The adapter moves an element only after that element itself has been
// revealed, matching motion.ParallaxController's per-item gating.
func TestMotionAdapter_ParallaxGatesOnOwnReveal(t *testing.T) {
	b, err := fs.ReadFile(FS, "js/motion.js")
	require.NoError(t, err)
	src := string(b)

	fn := regexp.MustCompile(`(?s)function revealed\(el\) \{(.*?)\n\}`).FindStringSubmatch(src)
	require.Len(t, fn, 2)

	assert.Contains(t, fn[1], `el.matches(REVEAL_TARGET)`)
	assert.Contains(t, fn[1], `el.classList.contains("is-visible")`)
	assert.NotContains(t, fn[1], "closest(")
	assert.Contains(t, src, `const REVEAL_TARGET = '[data-reveal="self"], [data-reveal-item]';`)
	assert.Contains(t, src, "!revealed(el)")
}
