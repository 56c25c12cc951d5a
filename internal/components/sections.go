package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/gridguard/landing/internal/content"
)

// Reveal sections, in page order.
const (
	SectionFeatures   = "features"
	SectionHowItWorks = "how-it-works"
	SectionSpecs      = "specs"
	SectionFAQ        = "faq"
	SectionCTA        = "cta"
)

// Sections lists every section that carries reveal targets.
var Sections = []string{SectionFeatures, SectionHowItWorks, SectionSpecs, SectionFAQ, SectionCTA}

func Features(f content.Features) g.Node {
	return Section(
		ID(SectionFeatures),
		Class("section"),
		Aria("labelledby", SectionFeatures+"-heading"),
		Div(
			Class("container"),
			SectionHeader(SectionFeatures, "", f.SectionTitle, f.SectionSubtitle),
			Div(
				Class("card-grid"),
				g.Group(mapIndexed(f.Items, func(i int, item content.Feature) g.Node {
					return Article(
						Class("card reveal tone-"+item.Color),
						Reveal(SectionFeatures, "feature-"+item.ID, i*FeatureStaggerMS),
						Div(Class("card-icon"), Icon(item.Icon, "icon")),
						H3(g.Text(item.Title)),
						P(Markdown(item.Description)),
					)
				})),
			),
		),
	)
}

func HowItWorks(h content.HowItWorks) g.Node {
	return Section(
		ID(SectionHowItWorks),
		Class("section section-soft"),
		Aria("labelledby", SectionHowItWorks+"-heading"),
		Div(
			Class("container"),
			SectionHeader(SectionHowItWorks, "", h.SectionTitle, h.SectionSubtitle),
			Ol(
				Class("steps"),
				g.Group(mapIndexed(h.Steps, func(i int, step content.Step) g.Node {
					return Li(
						Class("step reveal"),
						Reveal(SectionHowItWorks, "step-"+step.ID, i*FeatureStaggerMS),
						Span(Class("step-number"), Aria("hidden", "true"), g.Text(step.Number)),
						H3(g.Text(step.Title)),
						P(Markdown(step.Description)),
					)
				})),
			),
		),
	)
}

func Specs(s content.Specs) g.Node {
	return Section(
		ID(SectionSpecs),
		Class("section"),
		Aria("labelledby", SectionSpecs+"-heading"),
		Div(
			Class("container"),
			SectionHeader(SectionSpecs, "", s.SectionTitle, s.SectionSubtitle),
			Dl(
				Class("spec-grid"),
				g.Group(mapIndexed(s.Items, func(i int, spec content.Spec) g.Node {
					return Div(
						Class("spec reveal tone-"+spec.Color),
						Reveal(SectionSpecs, "spec-"+spec.ID, i*FeatureStaggerMS),
						Div(Class("card-icon"), Icon(spec.Icon, "icon")),
						Dt(g.Text(spec.Label)),
						Dd(Class("spec-value"), g.Text(spec.Value)),
						Dd(Class("spec-description"), g.Text(spec.Description)),
					)
				})),
			),
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
