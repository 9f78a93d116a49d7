package chunking

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScanProtectedFindsImage(t *testing.T) {
	s := newTestSplitter(t, Config{ChunkSize: 100, ChunkOverlap: 10})
	text := "before ![a](http://x/y.png) after"
	spans := s.scanProtected(text)
	require.Len(t, spans, 1)
	require.Equal(t, "![a](http://x/y.png)", spans[0].content)
	require.Equal(t, strings.Index(text, "!["), spans[0].pos)
}

func TestScanProtectedOverlapResolutionPrefersLongerMatch(t *testing.T) {
	s := newTestSplitter(t, Config{
		ChunkSize:         100,
		ChunkOverlap:      10,
		ProtectedPatterns: []string{`\[.*?\]\(.*?\)`, `!\[.*?\]\(.*?\)`},
	})
	text := "![a](http://x/y.png)"
	spans := s.scanProtected(text)
	// Both patterns match, at different positions: the link pattern
	// (first in the list) matches the shorter "[a](http://x/y.png)"
	// starting at index 1, while the image pattern matches the whole text
	// from index 0. The image match is longer and starts earlier, so it
	// is kept and the overlapping link match is skipped.
	require.Len(t, spans, 1)
	require.Equal(t, 0, spans[0].pos)
	require.Equal(t, text, spans[0].content)
}

func TestScanProtectedDropsOversizedSpan(t *testing.T) {
	formula := "$$" + strings.Repeat("x", 50) + "$$"
	s := newTestSplitter(t, Config{ChunkSize: 10, ChunkOverlap: 1})
	spans := s.scanProtected(formula)
	require.Empty(t, spans)
}
