package layouts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	"github.com/nfrund/flexe/internal/view"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}

func TestCalculateTitle(t *testing.T) {
	assert.Equal(t, "Flexe", CalculateTitle(""))
	assert.Equal(t, "Post - Flexe", CalculateTitle("Post"))
}

func TestBase(t *testing.T) {
	html := render(t, Base("Post", view.FlashData{Success: []string{"Saved"}, Error: []string{"Oops"}}, g.Text("content")))

	assert.Contains(t, html, "<title>Post - Flexe</title>")
	assert.Contains(t, html, htmxSrc)
	assert.Contains(t, html, "/static/js/flexe.js")
	assert.Contains(t, html, `id="toasts"`)
	assert.Contains(t, html, `<p class="flash-success">Saved</p>`)
	assert.Contains(t, html, "Oops")
	assert.Contains(t, html, "content")
}

func TestFlashEmpty(t *testing.T) {
	html := render(t, Base("", view.FlashData{}, g.Text("x")))
	assert.NotContains(t, html, `class="flash"`)
}
