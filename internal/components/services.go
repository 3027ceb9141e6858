package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/miix-automations/website/internal/content"
	"github.com/miix-automations/website/internal/motion"
)

// Services renders the service catalogue followed by its structured data.
func Services(entries []content.Entry, footnote string, structuredData g.Node, s motion.Settings) g.Node {
	return Section(
		ID(content.ServicesCopy.ID),
		g.Attr("aria-label", "Automation services"),
		Class("container mx-auto py-24"),

		sectionHeader(content.ServicesCopy, 0),

		Div(
			Class("mt-12 grid gap-6 sm:grid-cols-2 lg:grid-cols-3"),
			revealGroup(),
			g.Group(mapIndexed(entries, func(i int, svc content.Entry) g.Node {
				return Article(
					Class("group card border-border/60 bg-card/80 backdrop-blur-sm transition-all duration-300 hover:shadow-lg hover:border-primary/40"),
					revealItem(s, i),
					parallax(),
					Div(
						Class("card-body"),
						Div(
							Class("flex items-center gap-3"),
							IconBadge(svc.Icon),
							Span(Class("sr-only"), g.Text(svc.Title+" icon")),
							H3(Class("text-xl"), g.Text(svc.Title)),
						),
						P(Class("mt-2 text-muted-foreground"), g.Text(svc.Description)),
						Div(Class("mt-4 h-px w-full bg-border/60")),
						P(Class("mt-4 text-sm text-muted-foreground"), g.Text(footnote)),
					),
				)
			})),
		),

		structuredData,
	)
}
