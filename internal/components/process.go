package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/miix-automations/website/internal/content"
	"github.com/miix-automations/website/internal/motion"
)

func Process(steps []content.Entry, s motion.Settings) g.Node {
	return Section(
		ID(content.ProcessCopy.ID),
		Class("container mx-auto py-16 md:py-24"),

		sectionHeader(content.ProcessCopy, 0),

		Ol(
			Class("mt-12 grid gap-6 md:grid-cols-2 lg:grid-cols-4"),
			revealGroup(),
			g.Group(mapIndexed(steps, func(i int, step content.Entry) g.Node {
				return Li(
					Class("relative rounded-lg border p-6 glass hover-scale"),
					revealItem(s, i),
					parallax(),
					Div(
						Class("flex items-center gap-3"),
						IconBadge(step.Icon),
						H3(Class("text-lg font-semibold"), g.Text(fmt.Sprintf("%d. %s", i+1, step.Title))),
					),
					P(Class("mt-3 text-sm text-muted-foreground"), g.Text(step.Description)),
				)
			})),
		),

		Div(
			Class("mt-10 flex items-center justify-center"),
			A(
				Href(content.ProcessLink.Href),
				Class("story-link inline-flex items-center gap-2 text-sm"),
				g.Text(content.ProcessLink.Label),
				Icon("lucide--arrow-right size-4", ""),
			),
		),
	)
}
