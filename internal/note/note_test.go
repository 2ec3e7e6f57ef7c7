package note

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUsesPlaceholders(t *testing.T) {
	now := time.UnixMilli(1_700_000_000_000)
	n := New(42, now)

	assert.Equal(t, int64(42), n.ID)
	assert.Equal(t, "New Note", n.Title)
	assert.Equal(t, "", n.Content)
	assert.Empty(t, n.Tags)
	assert.Equal(t, now.UnixMilli(), n.LastEdited)
}

func TestDecodeAcceptsLegacySingleTag(t *testing.T) {
	notes, err := Decode([]byte(`[{"id":1,"title":"a","content":"","tag":"work","lastEdited":5}]`))
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, []string{"work"}, notes[0].Tags)
	assert.Equal(t, "work", notes[0].Tag())
}

func TestDecodeCapsTagsAtThree(t *testing.T) {
	notes, err := Decode([]byte(`[{"id":1,"title":"a","tags":["a","b","c","d","e"]}]`))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, notes[0].Tags)
}

func TestDecodePrefersTagsOverTag(t *testing.T) {
	notes, err := Decode([]byte(`[{"id":1,"tag":"old","tags":["new"]}]`))
	require.NoError(t, err)
	assert.Equal(t, []string{"new"}, notes[0].Tags)
}

func TestDecodeRejectsMalformedInput(t *testing.T) {
	_, err := Decode([]byte(`[{"id":`))
	require.Error(t, err)
}

func TestDecodeNullIsEmpty(t *testing.T) {
	notes, err := Decode([]byte(`null`))
	require.NoError(t, err)
	assert.NotNil(t, notes)
	assert.Empty(t, notes)
}

func TestEncodeRoundTrip(t *testing.T) {
	in := []Note{
		{ID: 1, Title: "Grocery List", Content: "<p>milk</p>", Tags: []string{"home"}, LastEdited: 10},
		{ID: 2, Title: "Standup", Content: "", Tags: nil, LastEdited: 20},
	}

	data, err := Encode(in)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"tags":[]`)
	assert.NotContains(t, string(data), `"tag":`)

	out, err := Decode(data)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, in[0], out[0])
	assert.Equal(t, []string{}, out[1].Tags)
	assert.Equal(t, in[1].LastEdited, out[1].LastEdited)
}

func TestCompactTags(t *testing.T) {
	got := CompactTags([]string{" work ", "", "home", "  ", "x", "y"})
	assert.Equal(t, []string{"work", "home", "x"}, got)
}

func TestCloneDoesNotShareTags(t *testing.T) {
	n := Note{Tags: []string{"a"}}
	c := n.Clone()
	c.Tags[0] = "b"
	assert.Equal(t, "a", n.Tags[0])
}

func TestPreviewTruncation(t *testing.T) {
	exact := strings.Repeat("a", 100)
	assert.Equal(t, exact, Preview(exact))

	over := strings.Repeat("b", 101)
	assert.Equal(t, strings.Repeat("b", 100)+"...", Preview(over))
}

func TestPreviewStripsMarkupBeforeCounting(t *testing.T) {
	content := "<p><strong>" + strings.Repeat("c", 100) + "</strong></p>"
	assert.Equal(t, strings.Repeat("c", 100), Preview(content))
}

func TestPreviewCountsCharactersNotBytes(t *testing.T) {
	content := strings.Repeat("é", 101)
	got := Preview(content)
	assert.Equal(t, strings.Repeat("é", 100)+"...", got)
}

func TestMatchesTitleOrTag(t *testing.T) {
	grocery := Note{Title: "Grocery List", Tags: []string{"home"}}
	standup := Note{Title: "Standup", Tags: []string{"work"}}

	assert.True(t, Matches(standup, "ORK"))
	assert.False(t, Matches(grocery, "ORK"))

	assert.True(t, Matches(grocery, "grocery"))
	assert.False(t, Matches(standup, "grocery"))

	assert.True(t, Matches(grocery, ""))
}

func TestFilterPreservesOrder(t *testing.T) {
	notes := []Note{
		{ID: 1, Title: "alpha"},
		{ID: 2, Title: "beta"},
		{ID: 3, Title: "alphabet"},
	}
	got := Filter(notes, "ALPHA")
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(3), got[1].ID)
}
