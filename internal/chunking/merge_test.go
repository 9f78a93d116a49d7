package chunking

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMergeOverlapRetainsTrailingContent(t *testing.T) {
	s := newTestSplitter(t, Config{ChunkSize: 10, ChunkOverlap: 3})
	splits := []string{"aa ", "bb ", "cc ", "dd"}

	got := s.merge(splits)

	want := []Chunk{
		{Start: 0, End: 9, Text: "aa bb cc "},
		{Start: 6, End: 11, Text: "cc dd"},
	}
	require.Equal(t, want, got)

	for _, c := range got {
		require.LessOrEqual(t, s.cfg.LenFunc(c.Text), s.cfg.ChunkSize)
	}
	require.Equal(t, "aa bb cc dd", Restore(got))
}

func TestMergeInjectsHeadingPrefix(t *testing.T) {
	s := newTestSplitter(t, Config{ChunkSize: 20, ChunkOverlap: 3})
	splits := []string{"# H1\n", "para1 para1 ", "## H2\n", "para2 para2 "}
	original := "# H1\npara1 para1 ## H2\npara2 para2 "

	got := s.merge(splits)

	want := []Chunk{
		{Start: 0, End: 5, Text: "# H1\n"},
		{Start: 5, End: 17, Text: "# H1\npara1 para1 "},
		{Start: 17, End: 23, Text: "# H1\n## H2\n## H2\n"},
		{Start: 23, End: 35, Text: "# H1\n## H2\npara2 para2 "},
	}
	require.Equal(t, want, got)
	require.Equal(t, original, Restore(got))
}

func TestMergeSingleSplitNoOverflow(t *testing.T) {
	s := newTestSplitter(t, Config{ChunkSize: 100, ChunkOverlap: 10})
	got := s.merge([]string{"Hello, world."})
	require.Equal(t, []Chunk{{Start: 0, End: 13, Text: "Hello, world."}}, got)
}

func TestMergeEmptySplitsProducesNoChunks(t *testing.T) {
	s := newTestSplitter(t, Config{ChunkSize: 10, ChunkOverlap: 1})
	got := s.merge(nil)
	require.Empty(t, got)
}
