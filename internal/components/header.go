package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/gridguard/landing/internal/content"
)

// ScrollSolidPX is the scroll offset past which the top bar turns solid.
const ScrollSolidPX = 50

// Topbar is the fixed header. The page script switches it to the solid style
// once the page scrolls past ScrollSolidPX and drives the mobile menu.
func Topbar(reg *content.Registry) g.Node {
	return Header(
		ID("site-header"),
		Class("site-header"),
		Data("solid-after", fmt.Sprint(ScrollSolidPX)),
		Nav(
			Class("container nav"),
			Aria("label", "Main"),
			A(
				Class("brand"),
				Href("#"),
				Logo(),
				Span(g.Text(reg.Brand.Name)),
			),
			Div(
				Class("nav-links"),
				g.Group(g.Map(reg.NavLinks, func(link content.Link) g.Node {
					return A(Href(link.Href), g.Text(link.Label))
				})),
				A(Href(reg.Hero.CTAHref), Class("btn-primary btn-small"), g.Text(reg.Hero.CTAText)),
			),
			Button(
				ID("menu-toggle"),
				Class("menu-toggle"),
				Type("button"),
				Aria("controls", "mobile-menu"),
				Aria("expanded", "false"),
				Aria("label", "Open menu"),
				Icon("menu", "icon"),
			),
		),
		Div(
			ID("mobile-menu"),
			Class("mobile-menu"),
			g.Attr("hidden"),
			g.Group(g.Map(reg.NavLinks, func(link content.Link) g.Node {
				return A(Href(link.Href), g.Text(link.Label))
			})),
			A(Href(reg.Hero.CTAHref), Class("btn-primary"), g.Text(reg.Hero.CTAText)),
		),
	)
}
