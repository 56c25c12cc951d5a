package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/gridguard/landing/internal/content"
	"github.com/gridguard/landing/internal/signup"
)

// CTA is the closing call to action with the survey link and, when action is
// set, the notify form.
func CTA(cta content.CTA, action string, form signup.Snapshot) g.Node {
	return Section(
		ID(SectionCTA),
		Class("section section-dark"),
		Aria("labelledby", SectionCTA+"-heading"),
		Div(
			Class("container container-narrow"),
			Div(
				Class("cta reveal"),
				Reveal(SectionCTA, "cta-body", 0),
				g.If(cta.Badge != "", Span(Class("badge badge-light"), g.Text(cta.Badge))),
				H2(ID(SectionCTA+"-heading"), g.Text(cta.Headline)),
				P(Class("section-subtitle"), g.Text(cta.Subheadline)),
				g.If(action != "", NotifyForm(cta, action, form)),
				Div(
					Class("cta-survey"),
					A(
						Href(cta.FormURL),
						Target("_blank"),
						Rel("noopener noreferrer"),
						Class("btn-primary btn-large"),
						Icon("survey", "icon"),
						g.Text(cta.ButtonText),
						Icon("external", "icon-small"),
					),
				),
				g.If(cta.Note != "", P(Class("cta-note"), g.Text(cta.Note))),
			),
		),
	)
}

// NotifyForm renders the email capture form in the given state. It posts to
// action when no script is running; otherwise the script drives it over the
// session.
func NotifyForm(cta content.CTA, action string, form signup.Snapshot) g.Node {
	submitting := form.State == signup.Submitting
	label := cta.NotifyButton
	if submitting {
		label = "Submitting..."
	}

	return Form(
		ID("notify-form"),
		Class("notify-form"),
		Method("post"),
		Action(action),
		Data("state", form.State.String()),
		g.Attr("novalidate"),
		Label(For("notify-email"), Class("notify-label"), g.Text(cta.NotifyLabel)),
		Div(
			Class("notify-row"),
			Input(
				ID("notify-email"),
				Type("email"),
				Name("email"),
				AutoComplete("email"),
				Placeholder("you@example.com"),
				Value(form.Value),
				Aria("describedby", "notify-message"),
				g.If(form.State == signup.Failed, Aria("invalid", "true")),
				g.If(submitting, Disabled()),
			),
			Button(
				ID("notify-submit"),
				Type("submit"),
				Class("btn-primary"),
				g.If(submitting, Disabled()),
				g.Text(label),
			),
		),
		P(
			ID("notify-message"),
			Class("notify-message"),
			Role("status"),
			Aria("live", "polite"),
			g.Text(form.Message),
		),
	)
}
