// Package progress reports what `gridguard build` writes.
package progress

import (
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
)

// Reporter receives export events in order: one Begin, a Wrote per file,
// then one Done.
type Reporter interface {
	Begin(files int)
	Wrote(name string, size int)
	Done(err error)
}

// NewReporter picks a line-based reporter on CI and a progress bar otherwise.
// Both write to stderr so stdout stays clean for piping.
func NewReporter() Reporter {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return &LineReporter{}
	}
	return &BarReporter{}
}

// Discard drops every event.
var Discard Reporter = discard{}

type discard struct{}

func (discard) Begin(int)         {}
func (discard) Wrote(string, int) {}
func (discard) Done(error)        {}

// tally counts files and bytes across an export.
type tally struct {
	total, files, bytes int
}

func (t *tally) add(size int) {
	t.files++
	t.bytes += size
}

// BarReporter draws one bar per export, described by the file being written.
type BarReporter struct {
	// Out defaults to stderr.
	Out io.Writer
	bar *progressbar.ProgressBar
	tally
}

func (r *BarReporter) Begin(files int) {
	out := r.Out
	if out == nil {
		out = os.Stderr
	}
	r.tally = tally{total: files}
	r.bar = progressbar.NewOptions(files,
		progressbar.OptionSetWriter(out),
		progressbar.OptionSetDescription("build"),
		progressbar.OptionSetWidth(30),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func (r *BarReporter) Wrote(name string, size int) {
	r.add(size)
	if r.bar == nil {
		return
	}
	r.bar.Describe(name)
	_ = r.bar.Add(1)
}

func (r *BarReporter) Done(err error) {
	if r.bar == nil {
		return
	}
	if err != nil {
		_ = r.bar.Clear()
		return
	}
	_ = r.bar.Finish()
}

// LineReporter prints one line per file, for logs that cannot redraw.
type LineReporter struct {
	// Out defaults to stderr.
	Out io.Writer
	tally
}

func (r *LineReporter) out() io.Writer {
	if r.Out == nil {
		return os.Stderr
	}
	return r.Out
}

func (r *LineReporter) Begin(files int) {
	r.tally = tally{total: files}
	fmt.Fprintf(r.out(), "build: %d files\n", files)
}

func (r *LineReporter) Wrote(name string, size int) {
	r.add(size)
	fmt.Fprintf(r.out(), "build: %d/%d %s (%d bytes)\n", r.files, r.total, name, size)
}

func (r *LineReporter) Done(err error) {
	if err != nil {
		fmt.Fprintf(r.out(), "build: failed after %d of %d files: %v\n", r.files, r.total, err)
		return
	}
	fmt.Fprintf(r.out(), "build: wrote %d files, %d bytes\n", r.files, r.bytes)
}
