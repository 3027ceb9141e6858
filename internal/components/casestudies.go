package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/miix-automations/website/internal/content"
	"github.com/miix-automations/website/internal/motion"
)

// CaseStudies renders one card per study with its metrics. Each card is
// its own reveal target.
func CaseStudies(studies []content.Entry, structuredData g.Node, s motion.Settings) g.Node {
	return Section(
		ID(content.CaseStudiesCopy.ID),
		g.Attr("aria-label", "Case studies"),
		Class("container mx-auto py-24"),

		sectionHeader(content.CaseStudiesCopy, 0),

		Div(
			Class("mt-12 grid gap-6 md:grid-cols-2 lg:grid-cols-3"),
			g.Group(mapIndexed(studies, func(i int, study content.Entry) g.Node {
				return Article(
					Class("group card h-full border-border/60 bg-card/80 backdrop-blur-sm transition-all duration-300 hover:shadow-lg"),
					revealSelf(s.Delay(i).Milliseconds()),
					parallax(),
					Div(
						Class("card-body"),
						H3(Class("text-xl"), g.Text(study.Title)),
						P(Class("text-sm text-muted-foreground"), g.Text(study.Category)),
						P(Class("mt-4 text-sm text-muted-foreground"), g.Text(study.Description)),
						Dl(
							Class("mt-5 grid grid-cols-3 gap-3"),
							g.Group(g.Map(study.Metrics, func(m content.Metric) g.Node {
								return Div(
									Class("flex flex-col-reverse rounded-md border border-border/60 bg-background/40 px-3 py-2 text-center"),
									Dt(Class("mt-1 text-xs text-muted-foreground"), g.Text(m.Label)),
									Dd(Class("text-sm font-semibold"), g.Text(m.Value)),
								)
							})),
						),
					),
				)
			})),
		),

		structuredData,
	)
}
