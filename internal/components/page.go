package components

import (
	"encoding/json"
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/miix-automations/website/internal/content"
	"github.com/miix-automations/website/internal/motion"
	"github.com/miix-automations/website/internal/seo"
)

type LandingConfig struct {
	Page    PageConfig
	SiteURL string
	Year    int
	Motion  motion.Settings
}

// PageSection is one top-level block of the landing page.
type PageSection struct {
	ID   string
	Node g.Node
}

// Sections returns the landing page blocks in document order. Sections
// share nothing but the motion settings.
func Sections(cfg LandingConfig) ([]PageSection, error) {
	org := seo.NewOrganization(content.Brand.Name, cfg.SiteURL)

	servicesLD, err := seo.JSONLD(seo.ServicesList(org, content.Services()))
	if err != nil {
		return nil, fmt.Errorf("services structured data: %w", err)
	}
	studiesLD, err := seo.JSONLD(seo.CaseStudiesList(org, content.CaseStudies()))
	if err != nil {
		return nil, fmt.Errorf("case studies structured data: %w", err)
	}

	s := cfg.Motion
	return []PageSection{
		{"hero", Hero(content.Hero(), content.NavLinks(), s)},
		{content.FeaturesCopy.ID, FeatureGrid(content.Features(), content.FeatureChecklist(), s)},
		{content.ServicesCopy.ID, Services(content.Services(), content.ServiceFootnote(), servicesLD, s)},
		{content.CaseStudiesCopy.ID, CaseStudies(content.CaseStudies(), studiesLD, s)},
		{content.ProcessCopy.ID, Process(content.Steps(), s)},
		{"cta", CTA(content.CTA(), s)},
		{"footer", PageFooter(cfg.Year, content.FooterLinks())},
	}, nil
}

// Landing composes the full landing page document.
func Landing(cfg LandingConfig) (g.Node, error) {
	sections, err := Sections(cfg)
	if err != nil {
		return nil, err
	}

	motionJSON, err := json.Marshal(cfg.Motion.Client())
	if err != nil {
		return nil, fmt.Errorf("motion config: %w", err)
	}

	page := cfg.Page
	page.MotionConfig = motionJSON

	// Hero and footer frame the content sections held in <main>.
	first, last := sections[0], sections[len(sections)-1]
	middle := make([]g.Node, 0, len(sections)-2)
	for _, sec := range sections[1 : len(sections)-1] {
		middle = append(middle, sec.Node)
	}

	return Layout(page,
		first.Node,
		Main(g.Group(middle)),
		last.Node,
	), nil
}
