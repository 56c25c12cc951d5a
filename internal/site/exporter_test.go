package site

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridguard/landing/internal/content"
	"github.com/gridguard/landing/internal/progress"
)

func TestExport(t *testing.T) {
	out := filepath.Join(t.TempDir(), "dist")
	var log bytes.Buffer

	n, err := NewExporter(content.Default(), out, &progress.LineReporter{Out: &log}).Export()
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	index, err := os.ReadFile(filepath.Join(out, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(index), `href="static/style.css"`)
	assert.Contains(t, string(index), `src="static/app.js"`)
	assert.NotContains(t, string(index), "data-session")
	assert.NotContains(t, string(index), `id="notify-form"`)

	for _, name := range []string{"static/app.js", "static/style.css"} {
		_, err := os.Stat(filepath.Join(out, filepath.FromSlash(name)))
		assert.NoError(t, err, name)
	}

	data, err := os.ReadFile(filepath.Join(out, "content.json"))
	require.NoError(t, err)
	var reg content.Registry
	require.NoError(t, json.Unmarshal(data, &reg))
	assert.Equal(t, content.Default().FAQ.IDs(), reg.FAQ.IDs())

	assert.Contains(t, log.String(), "build: 1/4 index.html")
	assert.Contains(t, log.String(), "build: wrote 4 files")
}

func TestExportWithoutReporter(t *testing.T) {
	n, err := NewExporter(content.Default(), t.TempDir(), nil).Export()
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestExportReportsFailure(t *testing.T) {
	out := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(out, "index.html"), 0o755))

	var log bytes.Buffer
	n, err := NewExporter(content.Default(), out, &progress.LineReporter{Out: &log}).Export()
	require.Error(t, err)
	assert.Equal(t, 0, n)
	assert.Contains(t, log.String(), "build: failed after 0 of 4 files")
}
