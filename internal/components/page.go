package components

import (
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/gridguard/landing/internal/accordion"
	"github.com/gridguard/landing/internal/content"
	"github.com/gridguard/landing/internal/signup"
)

// State is the interactive state a render reflects. The zero value is a
// fresh page with an idle form. Server renders always start with every FAQ
// item collapsed; expansion lives in the interaction session.
type State struct {
	Form signup.Snapshot
}

// Page renders the whole landing page for reg.
func Page(reg *content.Registry, config PageConfig, state State) g.Node {
	if config.Title == "" {
		config.Title = reg.Brand.Name + " | " + reg.Brand.Tagline
	}
	if config.Description == "" {
		config.Description = reg.Brand.Description
	}

	year := reg.Brand.Year
	if year == 0 {
		year = time.Now().Year()
	}

	return Layout(config,
		Topbar(reg),
		Main(
			Hero(reg),
			Features(reg.Features),
			HowItWorks(reg.HowItWorks),
			Specs(reg.Specs),
			FAQ(reg.FAQ, collapsedFAQ(reg.FAQ)),
			CTA(reg.CTA, config.NotifyAction, state.Form),
		),
		PageFooter(reg, year),
	)
}

// collapsedFAQ builds a fresh accordion for faq, or nil when the ids are
// rejected (FAQ then renders without the accordion's ids).
func collapsedFAQ(faq content.FAQ) *accordion.Accordion {
	acc, err := accordion.New(faq.IDs())
	if err != nil {
		return nil
	}
	return acc
}
