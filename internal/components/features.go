package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/miix-automations/website/internal/content"
	"github.com/miix-automations/website/internal/motion"
)

// FeatureGrid reveals its cards as one group once the grid is in view.
func FeatureGrid(entries []content.Entry, checklist []string, s motion.Settings) g.Node {
	return Section(
		ID(content.FeaturesCopy.ID),
		Class("container mx-auto py-16 md:py-24"),

		sectionHeader(content.FeaturesCopy, 0),

		Div(
			Class("mt-10 grid gap-6 sm:grid-cols-2 lg:grid-cols-4"),
			revealGroup(),
			g.Group(mapIndexed(entries, func(i int, f content.Entry) g.Node {
				return Article(
					Class("card glass hover-scale"),
					revealItem(s, i),
					parallax(),
					Div(
						Class("card-body"),
						Div(
							Class("flex items-center gap-3"),
							IconBadge(f.Icon),
							H3(Class("text-lg font-semibold"), g.Text(f.Title)),
						),
						P(Class("mt-2 text-sm text-muted-foreground"), g.Text(f.Description)),
						Ul(
							Class("mt-4 space-y-2 text-sm text-muted-foreground"),
							g.Group(g.Map(checklist, func(item string) g.Node {
								return Li(g.Text("• " + item))
							})),
						),
					),
				)
			})),
		),
	)
}

func mapIndexed[T any](ts []T, cb func(int, T) g.Node) []g.Node {
	nodes := make([]g.Node, 0, len(ts))
	for i, t := range ts {
		nodes = append(nodes, cb(i, t))
	}
	return nodes
}
