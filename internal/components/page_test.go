package components

import (
	"encoding/json"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	"github.com/miix-automations/website/internal/content"
	"github.com/miix-automations/website/internal/motion"
	"github.com/miix-automations/website/internal/seo"
)

func testConfig() LandingConfig {
	return LandingConfig{
		SiteURL: "https://miix.example",
		Year:    2026,
		Motion:  motion.DefaultSettings(),
		Page:    PageConfig{CanonicalURL: "https://miix.example/"},
	}
}

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}

func renderLanding(t *testing.T) string {
	t.Helper()
	page, err := Landing(testConfig())
	require.NoError(t, err)
	return render(t, page)
}

func TestSections_FixedOrder(t *testing.T) {
	sections, err := Sections(testConfig())
	require.NoError(t, err)

	ids := make([]string, len(sections))
	for i, s := range sections {
		ids[i] = s.ID
	}
	assert.Equal(t, []string{"hero", "features", "services", "case-studies", "process", "cta", "footer"}, ids)
}

func TestLanding_DocumentOrder(t *testing.T) {
	html := renderLanding(t)

	require.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))

	prev := -1
	for _, marker := range []string{`id="hero"`, `<main>`, `id="features"`, `id="services"`, `id="case-studies"`, `id="process"`, `id="cta"`, `</main>`, `<footer`} {
		idx := strings.Index(html, marker)
		require.NotEqual(t, -1, idx, "missing %s", marker)
		assert.Greater(t, idx, prev, "%s out of order", marker)
		prev = idx
	}
}

func TestLanding_HeadAndScripts(t *testing.T) {
	html := renderLanding(t)

	assert.Contains(t, html, "<title>"+content.Brand.Title+"</title>")
	assert.Contains(t, html, `<link rel="canonical" href="https://miix.example/">`)
	assert.Contains(t, html, `data-theme="miix-dark"`)
	assert.Contains(t, html, `src="/static/js/motion.js"`)
	assert.Contains(t, html, "© 2026 MIIX Automations. All rights reserved.")
}

func TestLanding_MotionConfig(t *testing.T) {
	html := renderLanding(t)

	re := regexp.MustCompile(`<script type="application/json" id="motion-config">(.*?)</script>`)
	m := re.FindStringSubmatch(html)
	require.Len(t, m, 2)

	var cfg motion.ClientConfig
	require.NoError(t, json.Unmarshal([]byte(m[1]), &cfg))
	assert.Equal(t, motion.DefaultSettings().Client(), cfg)
}

func TestFeatureGrid_StaggeredRevealItems(t *testing.T) {
	s := motion.DefaultSettings()
	html := render(t, FeatureGrid(content.Features(), content.FeatureChecklist(), s))

	assert.Equal(t, 1, strings.Count(html, `data-reveal="group"`))

	re := regexp.MustCompile(`data-reveal-item="(\d+)" data-reveal-delay="(\d+)"`)
	matches := re.FindAllStringSubmatch(html, -1)
	require.Len(t, matches, 4)

	for i, m := range matches {
		assert.Equal(t, []string{m[0], itoa(i), itoa(int(s.Delay(i).Milliseconds()))}, m)
	}
	assert.Equal(t, "360", matches[3][2])

	for _, f := range content.Features() {
		assert.Contains(t, html, f.Title)
		assert.Contains(t, html, f.Description)
	}
}

func itoa(i int) string {
	b, _ := json.Marshal(i)
	return string(b)
}

func TestLanding_ParallaxOnlyOnRevealTargets(t *testing.T) {
	html := renderLanding(t)

	tags := regexp.MustCompile(`<[a-z]+\s[^>]*data-parallax[^>]*>`).FindAllString(html, -1)
	// Hero image, 4 features, 9 services, 3 case studies, 4 steps, CTA.
	require.Len(t, tags, 1+4+9+3+4+1)

	for _, tag := range tags {
		own := strings.Contains(tag, `data-reveal="self"`) || strings.Contains(tag, "data-reveal-item=")
		assert.True(t, own, "parallax element is not its own reveal target: %s", tag)
	}
}

func TestHero_ImageRevealsBeforeParallax(t *testing.T) {
	html := render(t, Hero(content.Hero(), content.NavLinks(), motion.DefaultSettings()))

	assert.Contains(t, html, `<div class="relative" data-reveal="self" data-reveal-delay="0" data-parallax="">`)
}

func TestProcess_NumbersSteps(t *testing.T) {
	html := render(t, Process(content.Steps(), motion.DefaultSettings()))

	for i, step := range content.Steps() {
		assert.Contains(t, html, itoa(i+1)+". "+step.Title)
	}
	assert.Equal(t, 4, strings.Count(html, "data-parallax"))
}

func TestCaseStudies_RevealEachCard(t *testing.T) {
	html := render(t, CaseStudies(content.CaseStudies(), nil, motion.DefaultSettings()))

	// The section heading plus one per card.
	assert.Equal(t, 1+3, strings.Count(html, `data-reveal="self"`))
	assert.Contains(t, html, "Real-time")
	assert.Contains(t, html, "Lead Capture → CRM Pipeline")
}

func TestLanding_StructuredDataMatchesVisibleContent(t *testing.T) {
	html := renderLanding(t)

	re := regexp.MustCompile(`<script type="application/ld\+json">(.*?)</script>`)
	scripts := re.FindAllStringSubmatch(html, -1)
	require.Len(t, scripts, 2)

	lists := make(map[string]seo.ItemList)
	for _, s := range scripts {
		var list seo.ItemList
		require.NoError(t, json.Unmarshal([]byte(s[1]), &list))
		lists[list.Name] = list
	}

	check := func(name string, entries []content.Entry) {
		list, ok := lists[name]
		require.True(t, ok, name)
		require.Len(t, list.ItemListElement, len(entries))
		for i, e := range entries {
			assert.Equal(t, e.Title, list.ItemListElement[i].Name)
			assert.Equal(t, e.Description, list.ItemListElement[i].Description)
			// The same text is rendered visibly.
			assert.Contains(t, html, ">"+escape(e.Title)+"<")
		}
	}

	check("MIIX Automations Services", content.Services())
	check("MIIX Automations Case Studies", content.CaseStudies())
}

func escape(s string) string {
	return strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;").Replace(s)
}

func TestIcon(t *testing.T) {
	assert.Equal(t,
		`<span class="iconify inline-block size-4" data-icon="lucide:arrow-right" aria-hidden="true"></span>`,
		render(t, Icon("lucide--arrow-right size-4", "")))
	assert.Equal(t,
		`<span class="iconify inline-block" data-icon="lucide:palette" role="img" aria-label="Theme"></span>`,
		render(t, Icon("lucide--palette", "Theme")))
}

func TestConvertIconName(t *testing.T) {
	assert.Equal(t, "lucide:check-circle-2", convertIconName("lucide--check-circle-2 size-5"))
	assert.Equal(t, "", convertIconName(""))
	assert.Equal(t, "size-5 text-primary", extractSizeClasses("lucide--zap size-5 text-primary"))
	assert.Equal(t, "", extractSizeClasses("lucide--zap"))
}
