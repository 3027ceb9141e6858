package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/miix-automations/website/internal/content"
)

func PageFooter(year int, links []content.Link) g.Node {
	return Footer(
		Class("container mx-auto py-10"),
		Div(
			Class("flex flex-col items-center justify-between gap-4 border-t pt-6 text-sm text-muted-foreground md:flex-row"),
			P(g.Text(fmt.Sprintf("© %d %s. All rights reserved.", year, content.Brand.Name))),
			Nav(
				Class("flex items-center gap-6"),
				g.Group(g.Map(links, func(l content.Link) g.Node {
					return A(Href(l.Href), Class("hover:underline"), g.Text(l.Label))
				})),
			),
		),
	)
}
