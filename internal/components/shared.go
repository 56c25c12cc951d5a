package components

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Stagger steps between consecutive reveal targets of a list.
const (
	FeatureStaggerMS = 100
	FAQStaggerMS     = 50
)

// Hero word rotation timing.
const (
	RotateIntervalMS = 3000
	RotateFadeMS     = 300
)

var iconPaths = map[string]string{
	"lightning":  "M13 10V3L4 14h7v7l9-11h-7z",
	"power":      "M13 10V3L4 14h7v7l9-11h-7z",
	"plug":       "M8 7V3m8 4V3M6 7h12v4a6 6 0 01-12 0V7zm6 10v4",
	"recycle":    "M4 4v5h.582m15.356 2A8.001 8.001 0 004.582 9m0 0H9m11 11v-5h-.581m0 0a8.003 8.003 0 01-15.357-2m15.357 2H15",
	"battery":    "M3 8a2 2 0 012-2h12a2 2 0 012 2v8a2 2 0 01-2 2H5a2 2 0 01-2-2V8zm18 2v4",
	"outlet":     "M5 4h14a1 1 0 011 1v14a1 1 0 01-1 1H5a1 1 0 01-1-1V5a1 1 0 011-1zm4 5v3m6-3v3m-5 4h4",
	"shield":     "M9 12l2 2 4-4m5.618-4.016A11.955 11.955 0 0112 2.944a11.955 11.955 0 01-8.618 3.04A12.02 12.02 0 003 9c0 5.591 3.824 10.29 9 11.622 5.176-1.332 9-6.03 9-11.622 0-1.042-.133-2.052-.382-3.016z",
	"dimensions": "M4 8V4m0 0h4M4 4l5 5m11-1V4m0 0h-4m4 0l-5 5M4 16v4m0 0h4m-4 0l5-5m11 5l-5-5m5 5v-4m0 4h-4",
	"warranty":   "M9 12l2 2 4-4M7.835 4.697a3.42 3.42 0 001.946-.806 3.42 3.42 0 014.438 0 3.42 3.42 0 001.946.806 3.42 3.42 0 013.138 3.138 3.42 3.42 0 00.806 1.946 3.42 3.42 0 010 4.438 3.42 3.42 0 00-.806 1.946 3.42 3.42 0 01-3.138 3.138 3.42 3.42 0 00-1.946.806 3.42 3.42 0 01-4.438 0 3.42 3.42 0 00-1.946-.806 3.42 3.42 0 01-3.138-3.138 3.42 3.42 0 00-.806-1.946 3.42 3.42 0 010-4.438 3.42 3.42 0 00.806-1.946 3.42 3.42 0 013.138-3.138z",
	"leaf":       "M5 3v4M3 5h4M6 17v4m-2-2h4m5-16l2.286 6.857L21 12l-5.714 2.143L13 21l-2.286-6.857L5 12l5.714-2.143L13 3z",
	"arrow":      "M17 8l4 4m0 0l-4 4m4-4H3",
	"chevron":    "M19 9l-7 7-7-7",
	"survey":     "M9 5H7a2 2 0 00-2 2v12a2 2 0 002 2h10a2 2 0 002-2V7a2 2 0 00-2-2h-2M9 5a2 2 0 002 2h2a2 2 0 002-2M9 5a2 2 0 012-2h2a2 2 0 012 2m-3 7h3m-3 4h3m-6-4h.01M9 16h.01",
	"external":   "M10 6H6a2 2 0 00-2 2v10a2 2 0 002 2h10a2 2 0 002-2v-4M14 4h6m0 0v6m0-6L10 14",
	"menu":       "M4 6h16M4 12h16M4 18h16",
	"close":      "M6 18L18 6M6 6l12 12",
	"twitter":    "M23 3a10.9 10.9 0 01-3.14 1.53 4.48 4.48 0 00-7.86 3v1A10.66 10.66 0 013 4s-4 9 5 13a11.64 11.64 0 01-7 2c9 5 20 0 20-11.5a4.5 4.5 0 00-.08-.83A7.72 7.72 0 0023 3z",
	"linkedin":   "M16 8a6 6 0 016 6v7h-4v-7a2 2 0 00-4 0v7h-4v-7a6 6 0 016-6zM2 9h4v12H2zM4 2a2 2 0 110 4 2 2 0 010-4z",
	"instagram":  "M7 2h10a5 5 0 015 5v10a5 5 0 01-5 5H7a5 5 0 01-5-5V7a5 5 0 015-5zm9 5h.01M12 8a4 4 0 110 8 4 4 0 010-8z",
}

// Icon renders a stroked outline icon. Unknown names render nothing.
func Icon(name, class string) g.Node {
	d, ok := iconPaths[name]
	if !ok {
		return nil
	}
	return g.El("svg",
		Class(class),
		g.Attr("fill", "none"),
		g.Attr("viewBox", "0 0 24 24"),
		g.Attr("stroke", "currentColor"),
		Aria("hidden", "true"),
		g.El("path",
			g.Attr("stroke-linecap", "round"),
			g.Attr("stroke-linejoin", "round"),
			g.Attr("stroke-width", "2"),
			g.Attr("d", d),
		),
	)
}

// Logo is the battery mark next to the brand name.
func Logo() g.Node {
	return g.Raw(`<svg class="logo-mark" viewBox="0 0 32 32" fill="none" aria-hidden="true">` +
		`<rect x="4" y="8" width="20" height="16" rx="2" fill="currentColor"/>` +
		`<rect x="24" y="12" width="4" height="8" rx="1" fill="#D97706"/>` +
		`<path d="M15 12L11 17H14L13 20L17 15H14L15 12Z" fill="#FFF"/></svg>`)
}

var markdown = goldmark.New(
	goldmark.WithExtensions(
		extension.Strikethrough,
		extension.Linkify,
	),
)

// Markdown renders content copy written in markdown. Raw HTML in the source
// is dropped. A single paragraph is unwrapped so the result can sit inside an
// existing block element.
func Markdown(src string) g.Node {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return g.Text(src)
	}
	out := strings.TrimSpace(buf.String())
	if strings.Count(out, "<p>") == 1 && strings.HasPrefix(out, "<p>") && strings.HasSuffix(out, "</p>") {
		out = strings.TrimSuffix(strings.TrimPrefix(out, "<p>"), "</p>")
	}
	return g.Raw(out)
}

// Reveal marks an element as a one-shot reveal target inside section. The
// element's class list must include "reveal".
func Reveal(section, id string, delayMS int) g.Node {
	return g.Group([]g.Node{
		ID(id),
		Data("reveal", section),
		g.If(delayMS > 0, Style(fmt.Sprintf("transition-delay: %dms", delayMS))),
	})
}

// SectionHeader is the badge, heading and subtitle block that opens a
// section. The heading id labels the section.
func SectionHeader(section, badge, title, subtitle string) g.Node {
	return Div(
		Class("section-header reveal"),
		Reveal(section, section+"-header", 0),
		g.If(badge != "", Span(Class("badge"), g.Text(badge))),
		H2(ID(section+"-heading"), g.Text(title)),
		g.If(subtitle != "", P(Class("section-subtitle"), g.Text(subtitle))),
	)
}

func jsonAttr(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "[]"
	}
	return string(b)
}
