package page

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oarkflow/listingfilter/internal/toggle"
)

const listing = `<!DOCTYPE html>
<html><head><title>x</title></head>
<body>
<a class="files">F</a><a class="imgs">I</a>
<ul>
<li><a href="/view?dir=docs">docs</a></li>
<li><span class="link file">&darr;<a href="/get?file=readme.txt">readme.txt</a></span></li>
<li><span class="link file">&darr;<a href="/get?file=cat.png">cat.png</a></span></li>
</ul>
</body></html>`

func parse(t *testing.T, src string) *Document {
	t.Helper()
	d, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	return d
}

func render(t *testing.T, d *Document) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, d.Render(&buf))
	return buf.String()
}

func click(t *testing.T, d *Document, c *toggle.Controller, k toggle.Click) {
	t.Helper()
	p, ok := c.Click(k)
	require.True(t, ok, "click %s ignored", k)
	require.NoError(t, d.Apply(p))
}

func TestView(t *testing.T) {
	v := parse(t, listing).View()
	assert.True(t, v.FilesControl)
	assert.True(t, v.ImagesControl)
	require.Len(t, v.Entries, 3)
	assert.False(t, v.Entries[0].IsFile())
	assert.Equal(t, "docs", v.Entries[0].Name)
	assert.Equal(t, "/get?file=cat.png", v.Entries[2].Links[0].Href)
	assert.Equal(t, "png", v.Entries[2].Links[0].Extension)
}

func TestScenario(t *testing.T) {
	d := parse(t, listing)
	c := d.Controller()
	assert.False(t, c.Files().Unavailable)
	assert.False(t, c.Images().Unavailable)
	cat := toggle.LinkRef{Entry: 2, Link: 0}
	assert.Contains(t, render(t, d), `class="link file imglink"`)

	click(t, d, c, toggle.ClickFiles)
	assert.True(t, d.EntryHidden(0))
	assert.False(t, d.EntryHidden(1))
	assert.False(t, d.EntryHidden(2))
	assert.Contains(t, render(t, d), `class="files active"`)

	click(t, d, c, toggle.ClickFiles)
	assert.False(t, d.EntryHidden(0))
	assert.NotContains(t, render(t, d), "display")

	click(t, d, c, toggle.ClickImages)
	assert.True(t, d.LinkHidden(cat))
	assert.False(t, d.LinkHidden(toggle.LinkRef{Entry: 1}))
	assert.Equal(t, 1, d.Previews())
	out := render(t, d)
	assert.Contains(t, out, `<a target="_blank" href="/get?file=cat.png" class="linkimg"><img src="/get?file=cat.png"/></a>`)
	assert.Less(t, strings.Index(out, "cat.png</a></span>"), strings.Index(out, `class="linkimg"`))

	click(t, d, c, toggle.ClickImages)
	assert.False(t, d.LinkHidden(cat))
	assert.Zero(t, d.Previews())
	assert.NotContains(t, render(t, d), "active")
}

func TestImagesRoundTripsLeaveNoPreviews(t *testing.T) {
	d := parse(t, listing)
	c := d.Controller()
	for range 4 {
		click(t, d, c, toggle.ClickImages)
		assert.Equal(t, 1, d.Previews())
		click(t, d, c, toggle.ClickImages)
		assert.Zero(t, d.Previews())
	}
	assert.False(t, d.LinkHidden(toggle.LinkRef{Entry: 2}))
}

func TestUnavailableControls(t *testing.T) {
	d := parse(t, `<body><a class="files"></a><a class="imgs"></a><ul><li>only a dir</li></ul></body>`)
	c := d.Controller()
	assert.True(t, c.Files().Unavailable)
	assert.True(t, c.Images().Unavailable)
	out := render(t, d)
	assert.Contains(t, out, `<a class="files unavail">`)
	assert.Contains(t, out, `<a class="imgs unavail">`)
}

func TestNoImagesEligible(t *testing.T) {
	d := parse(t, `<body><a class="files"></a><a class="imgs"></a><ul>
<li><span class="link file"><a href="a.TXT">a</a></span></li></ul></body>`)
	c := d.Controller()
	assert.False(t, c.Files().Unavailable)
	assert.True(t, c.Images().Unavailable)
}

func TestHidePreservesOtherStyles(t *testing.T) {
	d := parse(t, `<body><a class="files"></a><ul>
<li style="color: red">dir</li>
<li><span class="link file"><a href="x.png">x</a></span></li></ul></body>`)
	c := d.Controller()
	click(t, d, c, toggle.ClickFiles)
	assert.Contains(t, render(t, d), `style="color: red; display: none"`)
	click(t, d, c, toggle.ClickFiles)
	assert.Contains(t, render(t, d), `style="color: red"`)
}

func TestApplyOutOfRange(t *testing.T) {
	d := parse(t, listing)
	err := d.Apply(toggle.Patch{HideEntries: []int{9}})
	assert.ErrorIs(t, err, ErrOutOfRange)
	err = d.Apply(toggle.Patch{InsertPreviews: []toggle.Preview{{Ref: toggle.LinkRef{Entry: 0}}}})
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestProcess(t *testing.T) {
	var out bytes.Buffer
	c, err := Process(strings.NewReader(listing), &out, toggle.ClickFiles, toggle.ClickImages)
	require.NoError(t, err)
	assert.Equal(t, toggle.ShowingFilesOnly, c.FilesState())
	assert.Equal(t, toggle.ImagesVisible, c.ImagesState())
	assert.Equal(t, 1, strings.Count(out.String(), `class="linkimg"`))
	assert.Contains(t, out.String(), `<li style="display: none">`)
}

func TestNestedListsAreNotEntries(t *testing.T) {
	d := parse(t, `<body><a class="files"></a><ul>
<li>outer<ul><li><span class="link file"><a href="in.png">in</a></span></li></ul></li></ul></body>`)
	v := d.View()
	require.Len(t, v.Entries, 1)
	assert.True(t, v.Entries[0].IsFile())
}

func TestMarkKeepsHostClasses(t *testing.T) {
	src := `<body><a class="files active"></a><a class="imgs unavail"></a><ul>
<li><span class="link file"><a href="cat.png">cat</a></span></li></ul></body>`
	var out bytes.Buffer
	c, err := Process(strings.NewReader(src), &out)
	require.NoError(t, err)
	assert.False(t, c.Images().Unavailable)
	assert.Contains(t, out.String(), `<a class="files active">`)
	assert.Contains(t, out.String(), `<a class="imgs unavail">`)
}

func TestPreviewsCountsOnlyInsertedElements(t *testing.T) {
	d := parse(t, `<body><a class="files"></a><a class="imgs"></a><ul>
<li><a class="linkimg" href="banner.png"><img src="banner.png"/></a></li>
<li><span class="link file"><a href="cat.png">cat</a></span></li></ul></body>`)
	c := d.Controller()
	assert.Zero(t, d.Previews())

	click(t, d, c, toggle.ClickImages)
	assert.Equal(t, 1, d.Previews())
	assert.Equal(t, 2, strings.Count(render(t, d), `class="linkimg"`))

	click(t, d, c, toggle.ClickImages)
	assert.Zero(t, d.Previews())
	assert.Contains(t, render(t, d), `<a class="linkimg" href="banner.png">`)
}
