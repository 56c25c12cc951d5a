// Package assets embeds the stylesheet and page script.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed static
var staticFS embed.FS

// FS returns the static files rooted at the static directory.
func FS() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
