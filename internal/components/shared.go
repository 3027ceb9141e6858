package components

import (
	"fmt"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/miix-automations/website/internal/content"
)

func Logo() g.Node {
	return Div(
		Class("flex items-center gap-2"),
		Span(Class("size-8 rounded-md bg-gradient-primary"), g.Attr("aria-hidden", "true")),
		Span(
			Class("font-display text-lg font-bold tracking-tight"),
			g.Text(content.Brand.Name),
		),
	)
}

func convertIconName(iconClass string) string {
	parts := strings.Fields(iconClass)
	if len(parts) == 0 {
		return ""
	}
	return strings.Replace(parts[0], "--", ":", 1)
}

func extractSizeClasses(iconClass string) string {
	parts := strings.Fields(iconClass)
	if len(parts) > 1 {
		return strings.Join(parts[1:], " ")
	}
	return ""
}

func Icon(iconClass, ariaLabel string) g.Node {
	iconName := convertIconName(iconClass)
	sizeClasses := extractSizeClasses(iconClass)
	classes := "iconify inline-block"
	if sizeClasses != "" {
		classes = fmt.Sprintf("iconify inline-block %s", sizeClasses)
	}

	if ariaLabel != "" {
		return Span(
			Class(classes),
			g.Attr("data-icon", iconName),
			g.Attr("role", "img"),
			g.Attr("aria-label", ariaLabel),
		)
	}

	return Span(
		Class(classes),
		g.Attr("data-icon", iconName),
		g.Attr("aria-hidden", "true"),
	)
}

// IconBadge is the tinted square holding a card's icon.
func IconBadge(icon string) g.Node {
	return Span(
		Class("inline-flex size-10 shrink-0 items-center justify-center rounded-md bg-primary/10 text-primary ring-1 ring-inset ring-primary/20"),
		Icon(icon+" size-5", ""),
	)
}

// sectionHeader renders the centred heading block every content section
// opens with. The heading itself is a reveal target.
func sectionHeader(c content.SectionCopy, delayMS int64) g.Node {
	return Header(
		Class("mx-auto max-w-2xl text-center"),
		H2(
			Class("font-display text-3xl tracking-tight md:text-4xl"),
			revealSelf(delayMS),
			g.Text(c.Heading),
		),
		P(Class("mt-3 text-muted-foreground"), g.Text(c.Subtitle)),
	)
}

func ThemePicker() g.Node {
	themes := []struct {
		Value string
		Label string
	}{
		{"miix-dark", "Dark"},
		{"miix-light", "Light"},
	}

	return Div(
		Class("dropdown dropdown-end"),
		Button(
			Type("button"),
			Class("btn btn-ghost btn-sm gap-1"),
			g.Attr("aria-haspopup", "true"),
			Icon("lucide--palette", "Theme"),
			Span(Class("max-sm:hidden"), g.Text("Theme")),
		),
		Ul(
			Class("dropdown-content menu rounded-box z-[1] mt-2 w-40 border p-2 shadow"),
			g.Group(g.Map(themes, func(theme struct {
				Value string
				Label string
			}) g.Node {
				return Li(
					Button(
						Type("button"),
						Class("theme-option"),
						g.Attr("data-theme", theme.Value),
						g.Text(theme.Label),
					),
				)
			})),
		),
	)
}
