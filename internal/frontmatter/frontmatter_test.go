package frontmatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	serrors "github.com/alexk49/simpblog/internal/errors"
)

func TestSplit_NoFrontMatter_ReturnsBodyOnly(t *testing.T) {
	input := []byte("# Title\n\nHello\n")

	fm, body, had, _, err := Split(input)
	require.NoError(t, err)
	require.False(t, had)
	require.Empty(t, fm)
	require.Equal(t, input, body)
}

func TestSplit_FrontMatter_SplitsBlockAndBody(t *testing.T) {
	input := []byte("---\ntitle: Hello\n---\n# Hi\n")

	fm, body, had, _, err := Split(input)
	require.NoError(t, err)
	require.True(t, had)
	require.Equal(t, []byte("title: Hello\n"), fm)
	require.Equal(t, []byte("# Hi\n"), body)
}

func TestSplit_MissingClosingDelimiter_FailsBuild(t *testing.T) {
	input := []byte("---\ntitle: Hello\n# Hi\n")

	_, _, _, _, err := Split(input)
	require.Error(t, err)
	require.True(t, serrors.IsKind(err, serrors.KindMalformedFrontMatter))
}

func TestSplit_CRLF_SplitsBlockAndBody(t *testing.T) {
	input := []byte("---\r\ntitle: Hello\r\n---\r\n# Hi\r\n")

	fm, body, had, style, err := Split(input)
	require.NoError(t, err)
	require.True(t, had)
	require.Equal(t, "\r\n", style.Newline)
	require.Equal(t, []byte("title: Hello\r\n"), fm)
	require.Equal(t, []byte("# Hi\r\n"), body)
}

func TestSplit_EmptyBlock_ReturnsEmptyFrontMatter(t *testing.T) {
	input := []byte("---\n---\n# Hi\n")

	fm, body, had, _, err := Split(input)
	require.NoError(t, err)
	require.True(t, had)
	require.Empty(t, fm)
	require.Equal(t, []byte("# Hi\n"), body)
}

func TestSplit_ClosingDelimiterAtEOFWithoutNewline_Closes(t *testing.T) {
	input := []byte("---\ntitle: Hello\n---")

	fm, body, had, _, err := Split(input)
	require.NoError(t, err)
	require.True(t, had)
	require.Equal(t, []byte("title: Hello\n"), fm)
	require.Empty(t, body)
}

func TestParse_SplitsAtFirstColonAndTrims(t *testing.T) {
	fields := Parse([]byte("title:  Hello: World \nslug: hello\nnocolon here\n"))

	require.Equal(t, "Hello: World", fields["title"])
	require.Equal(t, "hello", fields["slug"])
	require.NotContains(t, fields, "nocolon here")
}

func TestParseMeta_ValidFields(t *testing.T) {
	meta, err := ParseMeta(map[string]string{
		"title": "Hello",
		"slug":  "hello",
		"date":  "2024-01-01",
		"tags":  "intro, go , intro,",
	})
	require.NoError(t, err)

	require.Equal(t, "Hello", meta.Title)
	require.Equal(t, "hello", meta.Slug)
	require.True(t, meta.HasDate)
	require.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), meta.Date)
	require.Equal(t, []string{"intro", "go"}, meta.Tags)
}

func TestParseMeta_InvalidDate_FailsBuild(t *testing.T) {
	_, err := ParseMeta(map[string]string{"date": "2024-13-40"})

	require.Error(t, err)
	require.True(t, serrors.IsKind(err, serrors.KindInvalidDate))
}

func TestParseMeta_TagsPreserveCase(t *testing.T) {
	meta, err := ParseMeta(map[string]string{"tags": "Go, go"})
	require.NoError(t, err)
	require.Equal(t, []string{"Go", "go"}, meta.Tags)
}

func TestSerialize_RoundTrip_ReproducesEquivalentFields(t *testing.T) {
	cases := []map[string]string{
		{"title": "Hello", "slug": "hello", "date": "2024-01-01", "tags": "intro, go"},
		{"title": "Only Title"},
		{},
	}

	for _, fields := range cases {
		out := Serialize(fields, Style{})
		require.Equal(t, fields, Parse(out))
	}
}

func TestSerialize_SortsKeysDeterministically(t *testing.T) {
	fields := map[string]string{"title": "A", "date": "2024-01-01", "slug": "a"}

	first := Serialize(fields, Style{})
	second := Serialize(fields, Style{})
	require.Equal(t, first, second)
	require.Equal(t, "date: 2024-01-01\nslug: a\ntitle: A\n", string(first))
}

func TestSerializeMeta_RoundTripsRecognizedKeys(t *testing.T) {
	meta, err := ParseMeta(map[string]string{
		"title": "Hello",
		"slug":  "hello",
		"date":  "2024-01-01",
		"tags":  "intro, go",
	})
	require.NoError(t, err)

	fields := SerializeMeta(meta)
	again, err := ParseMeta(fields)
	require.NoError(t, err)
	require.Equal(t, meta, again)
}
