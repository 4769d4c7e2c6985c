package postmenu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
)

type recorder struct {
	navigations []string
	tools       []Tool
	clipboard   []string
	notices     []string
	copyErr     error
}

func (r *recorder) Navigate(url string)     { r.navigations = append(r.navigations, url) }
func (r *recorder) SetActiveTool(tool Tool) { r.tools = append(r.tools, tool) }
func (r *recorder) Notify(message string)   { r.notices = append(r.notices, message) }
func (r *recorder) CopyToClipboard(text string) error {
	if r.copyErr != nil {
		return r.copyErr
	}
	r.clipboard = append(r.clipboard, text)
	return nil
}

func activate(t *testing.T, own bool, id string) *recorder {
	t.Helper()
	menu := Build("42", Viewer{IsOwnProfile: own}, testLocation)
	d, ok := menu.Find(id)
	require.True(t, ok, "entry %s not visible", id)

	rec := &recorder{}
	require.NoError(t, Dispatch(d, rec))
	return rec
}

func TestDispatchScenarios(t *testing.T) {
	t.Run("owner deletes a post", func(t *testing.T) {
		rec := activate(t, true, EntryDelete)

		assert.Equal(t, []Tool{ToolDelete}, rec.tools)
		assert.Empty(t, rec.navigations)
		assert.Empty(t, rec.clipboard)
	})

	t.Run("visitor reports a post", func(t *testing.T) {
		rec := activate(t, false, EntryReport)
		assert.Equal(t, []Tool{ToolReport}, rec.tools)
	})

	t.Run("visitor copies the link", func(t *testing.T) {
		rec := activate(t, false, EntryCopyLink)

		assert.Equal(t, []string{testLocation}, rec.clipboard)
		assert.Equal(t, []string{"Link Copied to Clipboard"}, rec.notices)
		assert.Empty(t, rec.tools)
	})

	t.Run("owner opens edit and insights pages", func(t *testing.T) {
		assert.Equal(t, []string{"/post/edit/42"}, activate(t, true, EntryEdit).navigations)
		assert.Equal(t, []string{"/post/insights/42"}, activate(t, true, EntryInsights).navigations)
	})

	t.Run("view navigates to current location", func(t *testing.T) {
		assert.Equal(t, []string{testLocation}, activate(t, false, EntryView).navigations)
	})
}

func TestDispatchToolTags(t *testing.T) {
	tests := []struct {
		id   string
		own  bool
		want Tool
	}{
		{EntryDelete, true, ToolDelete},
		{EntryArchive, true, ToolArchive},
		{EntryReport, false, ToolReport},
		{EntryShare, false, ToolShare},
		{EntryBoost, true, ToolBoost},
		{EntryPin, true, ToolPin},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			rec := activate(t, tt.own, tt.id)
			assert.Equal(t, []Tool{tt.want}, rec.tools, "effect must run exactly once")
		})
	}
}

func TestDispatchCopyFailure(t *testing.T) {
	menu := Build("42", Viewer{}, testLocation)
	d, ok := menu.Find(EntryCopyLink)
	require.True(t, ok)

	rec := &recorder{copyErr: errors.New("clipboard unavailable")}
	err := Dispatch(d, rec)

	assert.ErrorContains(t, err, "clipboard unavailable")
	assert.Empty(t, rec.notices, "no notification after a failed copy")
}

func TestDispatchCustom(t *testing.T) {
	d := Descriptor{ID: "docs", Action: Custom{Render: g.Text("Docs"), Href: "/docs"}}

	rec := &recorder{}
	require.NoError(t, Dispatch(d, rec))
	assert.Equal(t, []string{"/docs"}, rec.navigations)
	assert.Empty(t, rec.tools)
}

func TestDispatchMalformed(t *testing.T) {
	err := Dispatch(Descriptor{ID: "broken"}, &recorder{})
	assert.ErrorIs(t, err, ErrMalformedEntry)

	err = Dispatch(Descriptor{ID: "empty", Action: Invoke{}}, &recorder{})
	assert.ErrorIs(t, err, ErrMalformedEntry)
}
