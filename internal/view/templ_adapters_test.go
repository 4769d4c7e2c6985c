package view

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	h "maragu.dev/gomponents/html"
)

type ctxKey struct{}

func TestTemplToNode(t *testing.T) {
	ctx := context.WithValue(context.Background(), ctxKey{}, "from-request")
	component := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<span>"+ctx.Value(ctxKey{}).(string)+"</span>")
		return err
	})

	var b strings.Builder
	require.NoError(t, h.Div(TemplToNode(ctx, component)).Render(&b))
	assert.Equal(t, "<div><span>from-request</span></div>", b.String())
}

func TestNodeToTempl(t *testing.T) {
	var b strings.Builder
	require.NoError(t, NodeToTempl(h.P(h.Class("x"))).Render(context.Background(), &b))
	assert.Equal(t, `<p class="x"></p>`, b.String())

	b.Reset()
	require.NoError(t, NodeToTempl(nil).Render(context.Background(), &b))
	assert.Empty(t, b.String())
}
