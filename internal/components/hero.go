package components

import (
	"fmt"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/miix-automations/website/internal/content"
	"github.com/miix-automations/website/internal/motion"
)

// TopNav is the site navigation. On small screens the links move into a
// drawer toggled by a checkbox.
func TopNav(links []content.Link) g.Node {
	items := g.Group(g.Map(links, func(l content.Link) g.Node {
		return Li(A(Href(l.Href), Class("story-link"), g.Text(l.Label)))
	}))

	return Nav(
		g.Attr("data-scrolling", ""),
		g.Attr("data-at-top", "true"),
		Class("container mx-auto flex items-center justify-between py-6"),

		Div(
			Class("flex items-center gap-2"),

			Div(
				Class("md:hidden flex-none drawer"),
				Input(
					ID("landing-menu-drawer"),
					Type("checkbox"),
					Class("drawer-toggle"),
				),
				Div(
					Class("drawer-content"),
					Label(
						g.Attr("for", "landing-menu-drawer"),
						Class("btn drawer-button btn-ghost btn-square btn-sm"),
						Icon("lucide--menu size-4.5", ""),
					),
				),
				Div(
					Class("z-[50] drawer-side"),
					Label(
						g.Attr("for", "landing-menu-drawer"),
						g.Attr("aria-label", "close sidebar"),
						Class("drawer-overlay"),
					),
					Ul(Class("p-4 w-80 min-h-full menu"), items),
				),
			),

			A(Href("#"), Logo()),
		),

		Div(
			Class("hidden md:flex items-center gap-6 text-sm"),
			Ul(Class("flex items-center gap-6"), items),
			ThemePicker(),
		),
	)
}

// Hero is the page header: navigation plus the headline block. The
// section tracks the pointer to move a highlight over the hero image.
func Hero(hero content.HeroCopy, links []content.Link, s motion.Settings) g.Node {
	return Header(
		Class("relative overflow-hidden"),
		ID("hero"),

		TopNav(links),

		Section(
			Class("relative container mx-auto grid gap-10 py-14 md:py-24 lg:grid-cols-2 lg:items-center bg-hero"),
			g.Attr("aria-label", "Hero section"),
			Data("spotlight", ""),
			g.Attr("style", fmt.Sprintf("--mx: %d%%; --my: %d%%", motion.SpotlightDefaultX, motion.SpotlightDefaultY)),

			Div(
				Class("relative z-10 max-w-xl"),
				revealGroup(),

				P(
					Class("inline-flex items-center gap-2 rounded-full border px-3 py-1 text-xs text-muted-foreground"),
					revealItem(s, 0),
					Span(Class("size-1.5 rounded-full bg-primary")),
					g.Text(hero.Eyebrow),
				),
				H1(
					Class("mt-6 font-display text-4xl leading-tight sm:text-5xl md:text-6xl"),
					revealItem(s, 1),
					g.Text(hero.Headline),
					Span(Class("block text-gradient"), g.Text(hero.Highlight)),
				),
				P(
					Class("mt-5 text-base text-muted-foreground sm:text-lg"),
					revealItem(s, 2),
					g.Text(hero.Lead),
				),
				Div(
					Class("mt-8 flex flex-wrap items-center gap-3"),
					revealItem(s, 3),
					A(Href(hero.Primary.Href), Class("btn btn-hero btn-lg hover-scale"), g.Text(hero.Primary.Label)),
					A(Href(hero.Secondary.Href), Class("btn btn-secondary btn-lg hover-scale"), g.Text(hero.Secondary.Label)),
				),
				P(
					Class("mt-4 text-xs text-muted-foreground"),
					g.Text(strings.Join(hero.Tools, " • ")),
				),
			),

			Div(
				Class("relative"),
				revealSelf(s.Delay(0).Milliseconds()),
				parallax(),
				Div(Class("absolute inset-0 -z-10 rounded-2xl shadow-glow")),
				Img(
					Src("/static/images/hero.svg"),
					Alt(hero.ImageAlt),
					g.Attr("loading", "eager"),
					Class("w-full rounded-2xl object-cover shadow-xl"),
				),
				Div(Class("pointer-events-none absolute inset-0 rounded-2xl mix-blend-overlay spotlight")),
			),
		),
	)
}
