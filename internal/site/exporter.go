// Package site exports the landing page as a static site.
package site

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/gridguard/landing/internal/assets"
	"github.com/gridguard/landing/internal/components"
	"github.com/gridguard/landing/internal/content"
	"github.com/gridguard/landing/internal/progress"
)

// Exporter renders the page once and writes it, its assets and the content
// registry under OutputDir. The exported page has no session and no notify
// form, so every section and FAQ answer is visible without a server.
type Exporter struct {
	OutputDir string
	Registry  *content.Registry
	Reporter  progress.Reporter
}

// NewExporter creates an Exporter for reg. A nil reporter discards progress.
func NewExporter(reg *content.Registry, outputDir string, reporter progress.Reporter) *Exporter {
	if reporter == nil {
		reporter = progress.Discard
	}
	return &Exporter{
		OutputDir: outputDir,
		Registry:  reg,
		Reporter:  reporter,
	}
}

type exportFile struct {
	name   string
	render func() ([]byte, error)
}

// Export writes the site. Returns the number of files written.
func (e *Exporter) Export() (n int, err error) {
	files := []exportFile{
		{"index.html", e.renderPage},
		{"content.json", e.renderContent},
	}

	staticFS := assets.FS()
	err = fs.WalkDir(staticFS, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		files = append(files, exportFile{
			name:   path.Join("static", p),
			render: func() ([]byte, error) { return fs.ReadFile(staticFS, p) },
		})
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("listing assets: %w", err)
	}

	if err := os.MkdirAll(e.OutputDir, 0o755); err != nil {
		return 0, err
	}

	e.Reporter.Begin(len(files))
	defer func() { e.Reporter.Done(err) }()

	for i, f := range files {
		data, err := f.render()
		if err != nil {
			return i, fmt.Errorf("rendering %s: %w", f.name, err)
		}
		outPath := filepath.Join(e.OutputDir, filepath.FromSlash(f.name))
		if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
			return i, err
		}
		if err := os.WriteFile(outPath, data, 0o644); err != nil {
			return i, fmt.Errorf("writing %s: %w", f.name, err)
		}
		e.Reporter.Wrote(f.name, len(data))
	}

	return len(files), nil
}

func (e *Exporter) renderPage() ([]byte, error) {
	var buf bytes.Buffer
	page := components.Page(e.Registry, components.PageConfig{AssetPrefix: "static/"}, components.State{})
	if err := page.Render(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *Exporter) renderContent() ([]byte, error) {
	return json.MarshalIndent(e.Registry, "", "  ")
}
