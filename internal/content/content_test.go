package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistries_Sizes(t *testing.T) {
	assert.Len(t, Features(), 4)
	assert.Len(t, Services(), 9)
	assert.Len(t, CaseStudies(), 3)
	assert.Len(t, Steps(), 4)
	assert.Len(t, FeatureChecklist(), 3)
}

func TestRegistries_EntriesComplete(t *testing.T) {
	registries := map[string]struct {
		entries  []Entry
		needIcon bool
	}{
		"features":     {Features(), true},
		"services":     {Services(), true},
		"steps":        {Steps(), true},
		"case studies": {CaseStudies(), false},
	}

	for name, reg := range registries {
		t.Run(name, func(t *testing.T) {
			seen := make(map[string]bool)
			for _, e := range reg.entries {
				assert.NotEmpty(t, e.Title)
				assert.NotEmpty(t, e.Description, e.Title)
				if reg.needIcon {
					assert.Regexp(t, `^lucide--[a-z0-9-]+$`, e.Icon, e.Title)
				}
				assert.False(t, seen[e.Title], "duplicate title %q", e.Title)
				seen[e.Title] = true
			}
		})
	}
}

func TestCaseStudies_Metrics(t *testing.T) {
	for _, s := range CaseStudies() {
		require.Len(t, s.Metrics, 3, s.Title)
		assert.NotEmpty(t, s.Category, s.Title)
		for _, m := range s.Metrics {
			assert.NotEmpty(t, m.Label)
			assert.NotEmpty(t, m.Value)
		}
	}
}

func TestRegistries_ReturnCopies(t *testing.T) {
	f := Features()
	f[0].Title = "changed"
	assert.Equal(t, "Rapid Impact", Features()[0].Title)

	cs := CaseStudies()
	cs[0].Metrics[0].Value = "changed"
	assert.Equal(t, "-85%", CaseStudies()[0].Metrics[0].Value)

	links := NavLinks()
	links[0].Href = "changed"
	assert.Equal(t, "#features", NavLinks()[0].Href)
}

func TestFooterLinks(t *testing.T) {
	links := FooterLinks()
	require.Len(t, links, len(NavLinks())+1)
	assert.Equal(t, Link{Label: "Privacy", Href: "/"}, links[len(links)-1])
	assert.Len(t, NavLinks(), 4)
}

func TestSectionCopy_IDsUnique(t *testing.T) {
	ids := map[string]bool{}
	for _, c := range []SectionCopy{FeaturesCopy, ServicesCopy, CaseStudiesCopy, ProcessCopy} {
		assert.False(t, ids[c.ID], c.ID)
		ids[c.ID] = true
		assert.NotEmpty(t, c.Heading)
	}
}
