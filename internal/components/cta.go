package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/miix-automations/website/internal/content"
	"github.com/miix-automations/website/internal/motion"
)

func CTA(cta content.CTACopy, s motion.Settings) g.Node {
	return Section(
		ID("cta"),
		Class("container mx-auto py-16 md:py-24"),
		Div(
			Class("relative overflow-hidden rounded-2xl p-8 md:p-12 glass"),
			revealSelf(s.Delay(0).Milliseconds()),
			parallax(),

			Div(Class("absolute -inset-1 -z-10 rounded-3xl shadow-glow")),

			Div(
				Class("grid gap-6 md:grid-cols-3 md:items-center"),
				Div(
					Class("md:col-span-2"),
					H2(Class("font-display text-2xl md:text-3xl"), g.Text(cta.Heading)),
					P(Class("mt-2 text-muted-foreground"), g.Text(cta.Body)),
				),
				Div(
					Class("flex gap-3 md:justify-end"),
					A(
						Href(cta.Primary.Href),
						Class("btn btn-hero btn-lg hover-scale"),
						Icon("lucide--calendar-check size-4", ""),
						g.Text(cta.Primary.Label),
					),
					A(
						Href(cta.Secondary.Href),
						Class("btn btn-outline btn-lg hover-scale"),
						g.Text(cta.Secondary.Label),
					),
				),
			),
		),
	)
}
