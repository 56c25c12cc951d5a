package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/gridguard/landing/internal/content"
)

func PageFooter(reg *content.Registry, year int) g.Node {
	return Footer(
		Class("site-footer"),
		Div(
			Class("container footer-grid"),
			Div(
				A(Class("brand"), Href("#"), Logo(), Span(g.Text(reg.Brand.Name))),
				P(Class("footer-description"), g.Text(reg.Footer.Description)),
			),
			Nav(
				Aria("label", "Footer"),
				Ul(
					Class("footer-links"),
					g.Group(g.Map(reg.Footer.Links, func(link content.Link) g.Node {
						return Li(A(Href(link.Href), g.Text(link.Label)))
					})),
				),
			),
			Div(
				Class("social-links"),
				g.Group(g.Map(reg.Footer.SocialLinks, func(link content.Link) g.Node {
					return A(
						Href(link.Href),
						Aria("label", link.Label),
						Target("_blank"),
						Rel("noopener noreferrer"),
						Icon(link.Icon, "icon"),
					)
				})),
			),
		),
		P(
			Class("copyright"),
			g.Text(fmt.Sprintf("© %d %s. All rights reserved.", year, reg.Brand.Name)),
		),
	)
}
