package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/gridguard/landing/internal/accordion"
	"github.com/gridguard/landing/internal/content"
)

var faqTones = []string{"primary", "eco", "brown"}

// FAQ renders the question list. acc supplies expansion state and the
// trigger/region ids; a nil acc renders every item collapsed.
func FAQ(faq content.FAQ, acc *accordion.Accordion) g.Node {
	var items []accordion.Item
	if acc != nil {
		items = acc.Items()
	}

	return Section(
		ID(SectionFAQ),
		Class("section"),
		Aria("labelledby", SectionFAQ+"-heading"),
		Div(
			Class("container container-narrow"),
			SectionHeader(SectionFAQ, "Common Questions", faq.SectionTitle, faq.SectionSubtitle),
			Div(
				Class("faq-list"),
				Role("list"),
				g.Group(mapIndexed(faq.Items, func(i int, q content.Question) g.Node {
					item := accordion.Item{
						ID:        q.ID,
						Index:     i,
						ButtonID:  accordion.ButtonID(q.ID),
						ContentID: accordion.ContentID(q.ID),
					}
					if i < len(items) && items[i].ID == q.ID {
						item = items[i]
					}
					return faqItem(q, item)
				})),
			),
		),
	)
}

func faqItem(q content.Question, item accordion.Item) g.Node {
	state := "closed"
	if item.Expanded {
		state = "open"
	}

	return Div(
		Class("faq-item reveal tone-"+faqTones[item.Index%len(faqTones)]),
		Reveal(SectionFAQ, "faq-"+q.ID, item.Index*FAQStaggerMS),
		Role("listitem"),
		Data("state", state),
		H3(
			Button(
				ID(item.ButtonID),
				Class("faq-button"),
				Type("button"),
				Data("faq-id", q.ID),
				Data("faq-index", fmt.Sprint(item.Index)),
				Aria("expanded", fmt.Sprint(item.Expanded)),
				Aria("controls", item.ContentID),
				Span(Class("faq-question"), g.Text(q.Question)),
				Span(Class("faq-chevron"), Icon("chevron", "icon")),
			),
		),
		Div(
			ID(item.ContentID),
			Class("faq-content"),
			Role("region"),
			Aria("labelledby", item.ButtonID),
			Div(Class("faq-answer"), Markdown(q.Answer)),
		),
	)
}
