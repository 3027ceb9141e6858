package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/miix-automations/website/internal/content"
)

type PageConfig struct {
	Title        string
	Description  string
	Theme        string
	OGImage      string
	CanonicalURL string
	// MotionConfig is the JSON read by the motion adapter.
	MotionConfig []byte
}

func Layout(config PageConfig, body ...g.Node) g.Node {
	if config.Theme == "" {
		config.Theme = "miix-dark"
	}

	if config.Title == "" {
		config.Title = content.Brand.Title
	}

	if config.Description == "" {
		config.Description = content.Brand.Description
	}

	if config.OGImage == "" {
		config.OGImage = "/static/images/og-image.svg"
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			g.Attr("data-theme", config.Theme),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				Meta(Name("description"), Content(config.Description)),
				g.If(config.CanonicalURL != "", Link(Rel("canonical"), Href(config.CanonicalURL))),

				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				Meta(g.Attr("property", "og:description"), Content(config.Description)),
				Meta(g.Attr("property", "og:type"), Content("website")),
				Meta(g.Attr("property", "og:image"), Content(config.OGImage)),

				Link(Rel("icon"), Href("/static/images/favicon.svg"), Type("image/svg+xml")),
				Link(Rel("stylesheet"), Href("/static/styles.css")),

				Script(Src("https://code.iconify.design/1/1.0.7/iconify.min.js")),
			),
			Body(
				Class("bg-background text-foreground"),
				g.Group(body),

				g.If(len(config.MotionConfig) > 0,
					Script(Type("application/json"), ID("motion-config"), g.Raw(string(config.MotionConfig))),
				),
				Script(Type("module"), Src("/static/js/theme.js")),
				Script(Type("module"), Src("/static/js/motion.js")),
			),
		),
	})
}
