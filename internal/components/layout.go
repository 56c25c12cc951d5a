// Package components renders the landing page as gomponents nodes.
package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type PageConfig struct {
	Title       string
	Description string
	// SessionPath is the WebSocket endpoint the page script connects to.
	// Empty renders a static page whose content is never hidden.
	SessionPath string
	// NotifyAction is where the notify form posts without a script. Empty
	// leaves the form out.
	NotifyAction string
	// AssetPrefix is prepended to stylesheet and script paths.
	AssetPrefix string
}

func Layout(config PageConfig, content ...g.Node) g.Node {
	if config.AssetPrefix == "" {
		config.AssetPrefix = "/static/"
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				Meta(Name("description"), Content(config.Description)),

				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				Meta(g.Attr("property", "og:description"), Content(config.Description)),
				Meta(g.Attr("property", "og:type"), Content("website")),

				Link(Rel("stylesheet"), Href(config.AssetPrefix+"style.css")),
			),
			Body(
				g.If(config.SessionPath != "", Data("session", config.SessionPath)),
				g.Group(content),

				Script(Src(config.AssetPrefix+"app.js"), Defer()),
			),
		),
	})
}
