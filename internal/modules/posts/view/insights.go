package view

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/nfrund/flexe/internal/domain"
)

type counter struct {
	label string
	value int
}

// Insights shows engagement counters to the post owner.
func Insights(p *domain.Post) templ.Component {
	counters := []counter{
		{"Likes", p.Stats.Likes},
		{"Comments", p.Stats.Comments},
		{"Views", p.Stats.Views},
	}
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf strings.Builder
		buf.WriteString(`<section class="insights"><h1>Post Insights</h1><p><a href="`)
		buf.WriteString(templ.EscapeString(string(templ.URL(PostURL(p.ID)))))
		buf.WriteString(`">Back to post</a></p><dl>`)
		for _, c := range counters {
			buf.WriteString("<dt>")
			buf.WriteString(templ.EscapeString(c.label))
			buf.WriteString("</dt><dd>")
			buf.WriteString(strconv.Itoa(c.value))
			buf.WriteString("</dd>")
		}
		buf.WriteString("</dl></section>")

		_, err := io.WriteString(w, buf.String())
		return err
	})
}
