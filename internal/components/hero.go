package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/gridguard/landing/internal/content"
)

var trustBadges = []struct {
	Icon, Text, Color string
}{
	{"lightning", "Plug & Play", "primary"},
	{"leaf", "Eco-Friendly", "eco"},
	{"shield", "5-Year Warranty", "amber"},
}

// Hero is the full-height opening section with the rotating headline word.
func Hero(reg *content.Registry) g.Node {
	hero := reg.Hero
	hasBg := reg.Images.HeroBg != ""
	class := "hero"
	if hasBg {
		class += " hero-image"
	}

	return Section(
		ID("hero"),
		Class(class),
		Aria("label", reg.Brand.Name),
		g.If(hasBg, Div(
			Class("hero-bg"),
			Style(fmt.Sprintf("background-image: url(%q)", reg.Images.HeroBg)),
		)),
		Div(
			Class("container hero-grid"),
			Div(
				Class("hero-copy"),
				H1(
					g.Text(hero.Headline),
					Rotator(hero.RotatingWords),
				),
				P(Class("hero-description"), g.Text(hero.Description)),
				Div(
					Class("hero-actions"),
					A(Href(hero.CTAHref), Class("btn-primary btn-large"),
						g.Text(hero.CTAText),
						Icon("arrow", "icon"),
					),
					A(Href(hero.SecondaryCTAHref), Class("btn-outline btn-large"), g.Text(hero.SecondaryCTAText)),
				),
				Div(
					Class("trust-badges"),
					g.Group(g.Map(trustBadges, func(b struct{ Icon, Text, Color string }) g.Node {
						return Div(Class("trust-badge tone-"+b.Color), Icon(b.Icon, "icon-small"), Span(g.Text(b.Text)))
					})),
				),
			),
			g.If(reg.Images.HeroProduct != "", Div(
				Class("hero-product"),
				Img(
					Src(reg.Images.HeroProduct),
					Alt(reg.Brand.Name+" home battery unit"),
					Width("400"),
					Height("320"),
				),
			)),
		),
	)
}

// Rotator shows the first rotating word and carries the full list for the
// page script, which advances it every RotateIntervalMS with a RotateFadeMS
// fade. Without a script the first word stays.
func Rotator(words []content.RotatingWord) g.Node {
	if len(words) == 0 {
		return nil
	}
	first := words[0]
	return Span(
		ID("hero-rotator"),
		Class("rotator"),
		Aria("live", "polite"),
		Data("words", jsonAttr(words)),
		Data("interval", fmt.Sprint(RotateIntervalMS)),
		Data("fade", fmt.Sprint(RotateFadeMS)),
		Style("color: "+first.Color),
		g.Text(first.Word+"."),
	)
}
