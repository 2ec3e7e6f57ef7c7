package richtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRoundTrip(t *testing.T) {
	src := `<p>Hello <strong>bold</strong> and <em>it</em></p><p></p>` +
		`<p><a href="https://x.io"><span style="color: #ff0000">red link</span></a></p>`
	assert.Equal(t, src, Normalize(src))
	assert.Equal(t, src, Normalize(Normalize(src)))
}

func TestEmptyDocument(t *testing.T) {
	assert.Equal(t, "", Normalize(""))
	assert.Equal(t, "", New("").HTML())
	assert.True(t, Parse("").IsEmpty())
}

func TestParseDecodesEntities(t *testing.T) {
	e := New(`<p>a &amp; b &lt;c&gt;</p>`)
	assert.Equal(t, "a & b <c>", e.Text())
	assert.Equal(t, `<p>a &amp; b &lt;c&gt;</p>`, e.HTML())
}

func TestParseAliasesAndUnknownTags(t *testing.T) {
	assert.Equal(t, `<p><strong>x</strong><em>y</em></p>`, Normalize(`<b>x</b><i>y</i>`))
	assert.Equal(t, `<p>hi</p>`, Normalize(`<p><mark>hi</mark></p>`))
}

func TestParseBlocks(t *testing.T) {
	doc := Parse("<h1>Title</h1>\n<ul>\n<li>one</li>\n<li>two</li>\n</ul>\n")
	assert.Equal(t, "Title\none\ntwo", doc.Text())

	assert.Equal(t, "a\nb", Parse(`<p>a<br>b</p>`).Text())
	assert.Equal(t, "a\nb", Parse("<pre><code>a\nb\n</code></pre>").Text())
}

func TestSerializeTagOrder(t *testing.T) {
	assert.Equal(t,
		`<p><a href="u"><strong>x</strong></a></p>`,
		Normalize(`<p><strong><a href="u">x</a></strong></p>`))
	assert.Equal(t,
		`<p><strong>ab<em>c</em></strong></p>`,
		Normalize(`<p><strong>ab</strong><strong><em>c</em></strong></p>`))
}

func TestTyping(t *testing.T) {
	e := New("")
	e.InsertText("hi")
	assert.Equal(t, "<p>hi</p>", e.HTML())
}

func TestPendingToggle(t *testing.T) {
	e := New("")
	e.Apply(Bold, "")
	require.True(t, e.IsActive(Bold))
	e.InsertText("a")
	e.Apply(Bold, "")
	require.False(t, e.IsActive(Bold))
	e.InsertText("b")
	assert.Equal(t, "<p><strong>a</strong>b</p>", e.HTML())
}

func selectFirst(e *Editor, n int) {
	e.Move(Home, false)
	for i := 0; i < n; i++ {
		e.Move(Right, true)
	}
}

func TestSelectionToggle(t *testing.T) {
	e := New("<p>hello world</p>")
	selectFirst(e, 5)
	e.Apply(Bold, "")
	assert.Equal(t, "<p><strong>hello</strong> world</p>", e.HTML())
	assert.True(t, e.IsActive(Bold))

	e.Apply(Bold, "")
	assert.Equal(t, "<p>hello world</p>", e.HTML())
	assert.False(t, e.IsActive(Bold))
}

func TestPartialSelectionTurnsMarkOn(t *testing.T) {
	e := New("<p><strong>ab</strong>cd</p>")
	e.SelectAll()
	assert.False(t, e.IsActive(Bold))
	e.Apply(Bold, "")
	assert.Equal(t, "<p><strong>abcd</strong></p>", e.HTML())
}

func TestActiveFollowsCursor(t *testing.T) {
	e := New("<p><strong>ab</strong>cd</p>")
	assert.False(t, e.IsActive(Bold))
	e.Move(Left, false)
	e.Move(Left, false)
	assert.True(t, e.IsActive(Bold))
}

func TestColor(t *testing.T) {
	e := New("<p>abc</p>")
	e.SelectAll()
	e.Apply(Color, "#00ff00")
	assert.Equal(t, `<p><span style="color: #00ff00">abc</span></p>`, e.HTML())
	assert.Equal(t, "#00ff00", e.Value(Color))

	e.Apply(Color, "")
	assert.Equal(t, "<p>abc</p>", e.HTML())
}

func TestLinkExtendsToRun(t *testing.T) {
	src := `<p><a href="https://a.io">site</a> x</p>`

	e := New(src)
	e.Move(Home, false)
	e.Move(Right, false)
	e.Move(Right, false)
	require.True(t, e.IsActive(Link))
	e.Apply(Link, "https://b.io")
	assert.Equal(t, `<p><a href="https://b.io">site</a> x</p>`, e.HTML())

	e = New(src)
	e.Move(Home, false)
	e.Move(Right, false)
	e.Apply(Link, "")
	assert.Equal(t, `<p>site x</p>`, e.HTML())
}

func TestNewlineAndBackspace(t *testing.T) {
	e := New("<p>abcd</p>")
	e.Move(Left, false)
	e.Move(Left, false)
	e.Newline()
	assert.Equal(t, "<p>ab</p><p>cd</p>", e.HTML())
	assert.Equal(t, Pos{Para: 1}, e.Cursor())

	e.Backspace()
	assert.Equal(t, "<p>abcd</p>", e.HTML())
	assert.Equal(t, Pos{Para: 0, Offset: 2}, e.Cursor())
}

func TestDeleteForwardMergesParagraphs(t *testing.T) {
	e := New("<p>ab</p><p>cd</p>")
	e.Move(Up, false)
	e.Move(End, false)
	e.Delete()
	assert.Equal(t, "<p>abcd</p>", e.HTML())
}

func TestTypingReplacesSelection(t *testing.T) {
	e := New("<p>one</p><p>two</p>")
	e.SelectAll()
	e.InsertText("z")
	assert.Equal(t, "<p>z</p>", e.HTML())
}

func TestSetContentDropsSelection(t *testing.T) {
	e := New("<p>one</p>")
	e.SelectAll()
	e.SetContent("<p>two</p>")
	_, _, ok := e.Selection()
	assert.False(t, ok)
	assert.Equal(t, Pos{Para: 0, Offset: 3}, e.Cursor())
}

func TestMarkdown(t *testing.T) {
	e := New(`<p><strong>b</strong> <em>i</em> <a href="u">l</a></p><p>two</p>`)
	assert.Equal(t, "**b** *i* [l](u)\n\ntwo", e.Markdown())
}

func TestNormalizeKeepsWhitespaceInsideParagraphs(t *testing.T) {
	for _, src := range []string{
		`<p> </p>`,
		`<p>  x</p>`,
		`<p>a</p><p> b</p>`,
		`<p>a</p><p> </p>`,
		`<p><strong> </strong>x</p>`,
		"<p>tab\there</p>",
	} {
		assert.Equal(t, src, Normalize(src), "source %q", src)
	}

	assert.Equal(t, `<p>a</p><p>b</p>`, Normalize("<p>a</p>\n  <p>b</p>\n"))
}

func TestSerializedOutputIsStableWhileTyping(t *testing.T) {
	type step struct {
		name string
		do   func(e *Editor)
	}
	typ := func(r rune) step {
		return step{string(r), func(e *Editor) { e.Insert(r) }}
	}
	steps := []step{
		typ(' '), typ(' '), typ('x'),
		{"enter", func(e *Editor) { e.Newline() }},
		typ(' '),
		{"bold", func(e *Editor) { e.Apply(Bold, "") }},
		typ(' '), typ('b'),
		{"enter", func(e *Editor) { e.Newline() }},
		{"enter", func(e *Editor) { e.Newline() }},
		{"italic", func(e *Editor) { e.Apply(Italic, "") }},
		typ('<'), typ('&'), typ('"'), typ('\t'), typ(' '),
		{"color", func(e *Editor) { e.Apply(Color, "#0AF") }},
		typ(' '),
		{"backspace", func(e *Editor) { e.Backspace() }},
		{"home", func(e *Editor) { e.Move(Home, false) }},
		typ(' '),
		{"select all", func(e *Editor) { e.SelectAll() }},
		{"underline", func(e *Editor) { e.Apply(Underline, "") }},
		{"end", func(e *Editor) { e.Move(End, false) }},
		typ('\r'), typ(' '),
	}

	e := New("")
	for i, s := range steps {
		s.do(e)
		got := e.HTML()
		require.Equal(t, got, Normalize(got), "step %d (%s)", i, s.name)
		require.Equal(t, e.Text(), New(got).Text(), "step %d (%s)", i, s.name)
	}
}
