package content

// Brand identifies the business across the page and its structured data.
var Brand = struct {
	Name        string
	Title       string
	Description string
	Email       string
}{
	Name:        "MIIX Automations",
	Title:       "MIIX Automations - AI + No-Code Workflows That Scale",
	Description: "We design, build and maintain high-impact automations across your stack so your team can focus on value, not manual tasks.",
	Email:       "hello@miix.ai",
}

type HeroCopy struct {
	Eyebrow   string
	Headline  string
	Highlight string
	Lead      string
	Tools     []string
	Primary   Link
	Secondary Link
	ImageAlt  string
}

// Hero returns the copy of the hero section.
func Hero() HeroCopy {
	return HeroCopy{
		Eyebrow:   "AI + No-Code Workflows That Scale",
		Headline:  "Automate the busywork.",
		Highlight: "Grow what matters.",
		Lead:      Brand.Description,
		Tools:     []string{"Zapier", "Make", "Airtable", "Notion", "Slack", "OpenAI"},
		Primary:   Link{Label: "Book a free audit", Href: "#cta"},
		Secondary: Link{Label: "See how it works", Href: "#process"},
		ImageAlt:  "Abstract automation background with flowing gradient ribbons",
	}
}

type SectionCopy struct {
	ID       string
	Heading  string
	Subtitle string
}

var (
	FeaturesCopy = SectionCopy{
		ID:       "features",
		Heading:  "Automation that just works",
		Subtitle: "From lead intake to ops to finance, we connect your tools and remove friction.",
	}
	ServicesCopy = SectionCopy{
		ID:       "services",
		Heading:  "Automation Services",
		Subtitle: "Modern, scalable automation services tailored for marketing and revenue teams.",
	}
	CaseStudiesCopy = SectionCopy{
		ID:       "case-studies",
		Heading:  "Case Studies",
		Subtitle: "A snapshot of recent marketing automation wins delivered end-to-end.",
	}
	ProcessCopy = SectionCopy{
		ID:       "process",
		Heading:  "A simple, proven process",
		Subtitle: "Low lift for your team. High leverage for your ops.",
	}
)

// ProcessLink closes the process section.
var ProcessLink = Link{Label: "See a sample automation deck", Href: "#cta"}

type CTACopy struct {
	Heading   string
	Body      string
	Primary   Link
	Secondary Link
}

// CTA returns the copy of the call-to-action block.
func CTA() CTACopy {
	return CTACopy{
		Heading:   "Ready to automate with confidence?",
		Body:      "Book a free workflow audit. We'll identify quick wins and a roadmap tailored to your tools and goals.",
		Primary:   Link{Label: "Book a free audit", Href: "mailto:" + Brand.Email + "?subject=Free%20workflow%20audit"},
		Secondary: Link{Label: "Email us", Href: "mailto:" + Brand.Email},
	}
}

// FooterLinks are the footer navigation: the in-page anchors plus privacy.
func FooterLinks() []Link {
	links := NavLinks()
	return append(links, Link{Label: "Privacy", Href: "/"})
}
