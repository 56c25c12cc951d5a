package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	"github.com/gridguard/landing/internal/accordion"
	"github.com/gridguard/landing/internal/content"
	"github.com/gridguard/landing/internal/signup"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}

func TestPageRendersAllSections(t *testing.T) {
	reg := content.Default()
	html := render(t, Page(reg, PageConfig{SessionPath: "/ws/session", NotifyAction: "/notify"}, State{}))

	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	for _, id := range []string{`id="hero"`, `id="features"`, `id="how-it-works"`, `id="specs"`, `id="faq"`, `id="cta"`} {
		assert.Contains(t, html, id)
	}
	assert.Contains(t, html, `data-session="/ws/session"`)
	assert.Contains(t, html, `action="/notify"`)
	assert.Contains(t, html, "<title>GridGuard | ")
}

func TestStaticPageHasNoSessionOrForm(t *testing.T) {
	html := render(t, Page(content.Default(), PageConfig{}, State{}))
	assert.NotContains(t, html, "data-session")
	assert.NotContains(t, html, `id="notify-form"`)
	assert.Contains(t, html, `rel="noopener noreferrer"`)
}

func TestFAQLinksTriggersAndRegions(t *testing.T) {
	reg := content.Default()
	first := reg.FAQ.Items[0].ID
	acc, err := accordion.New(reg.FAQ.IDs())
	require.NoError(t, err)
	_, err = acc.Toggle(first)
	require.NoError(t, err)
	html := render(t, FAQ(reg.FAQ, acc))

	assert.Contains(t, html, `id="faq-button-`+first+`"`)
	assert.Contains(t, html, `aria-controls="faq-content-`+first+`"`)
	assert.Contains(t, html, `aria-labelledby="faq-button-`+first+`"`)
	assert.Equal(t, 1, strings.Count(html, `aria-expanded="true"`))
	assert.Equal(t, len(reg.FAQ.Items)-1, strings.Count(html, `aria-expanded="false"`))
	assert.Equal(t, len(reg.FAQ.Items), strings.Count(html, `role="region"`))
	assert.Contains(t, html, `role="list"`)
}

func TestPageRendersFAQCollapsed(t *testing.T) {
	reg := content.Default()
	html := render(t, Page(reg, PageConfig{}, State{}))
	assert.NotContains(t, html, `aria-expanded="true"`)
	assert.Equal(t, len(reg.FAQ.Items), strings.Count(html, `data-state="closed"`))
}

func TestFAQStaggeredDelays(t *testing.T) {
	reg := content.Default()
	require.GreaterOrEqual(t, len(reg.FAQ.Items), 2)
	html := render(t, FAQ(reg.FAQ, nil))
	assert.Contains(t, html, "transition-delay: 50ms")
}

func TestNotifyFormStates(t *testing.T) {
	cta := content.Default().CTA

	failed := render(t, NotifyForm(cta, "/notify", signup.Snapshot{State: signup.Failed, Value: "bad", Message: signup.MsgInvalid}))
	assert.Contains(t, failed, `aria-invalid="true"`)
	assert.Contains(t, failed, `value="bad"`)
	assert.Contains(t, failed, `data-state="failed"`)
	assert.Contains(t, failed, "Please enter a valid email address.")

	submitting := render(t, NotifyForm(cta, "/notify", signup.Snapshot{State: signup.Submitting, Value: "a@b.co"}))
	assert.Contains(t, submitting, "disabled")
	assert.Contains(t, submitting, "Submitting...")

	idle := render(t, NotifyForm(cta, "/notify", signup.Snapshot{}))
	assert.NotContains(t, idle, "disabled")
	assert.Contains(t, idle, cta.NotifyButton)
}

func TestRotatorCarriesWords(t *testing.T) {
	words := content.Default().Hero.RotatingWords
	html := render(t, Rotator(words))
	assert.Contains(t, html, `data-interval="3000"`)
	assert.Contains(t, html, `data-fade="300"`)
	assert.Contains(t, html, words[0].Word+".")
	assert.Contains(t, html, words[1].Word)

	assert.Nil(t, Rotator(nil))
}

func TestMarkdown(t *testing.T) {
	assert.Equal(t, "Plug it <strong>in</strong>.", render(t, Markdown("Plug it **in**.")))
	assert.Equal(t, `See <a href="https://example.com">docs</a>`, render(t, Markdown("See [docs](https://example.com)")))

	multi := render(t, Markdown("One.\n\nTwo."))
	assert.Equal(t, 2, strings.Count(multi, "<p>"))

	assert.NotContains(t, render(t, Markdown("<script>alert(1)</script>")), "<script>")
}

func TestFooterYear(t *testing.T) {
	reg := content.Default()
	reg.Brand.Year = 2024
	html := render(t, Page(reg, PageConfig{}, State{}))
	assert.Contains(t, html, "© 2024 GridGuard.")
}

func TestIconUnknown(t *testing.T) {
	assert.Nil(t, Icon("does-not-exist", "icon"))
	assert.Contains(t, render(t, Icon("chevron", "icon")), `viewBox="0 0 24 24"`)
}
