package chunking

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestSplitter(t *testing.T, cfg Config) *Splitter {
	t.Helper()
	s, err := New(cfg)
	require.NoError(t, err)
	return s
}

func TestSplitBelowThresholdReturnsWhole(t *testing.T) {
	s := newTestSplitter(t, Config{ChunkSize: 100, ChunkOverlap: 10})
	got := s.split("Hello, world.")
	require.Equal(t, []string{"Hello, world."}, got)
}

func TestSplitSeparatorPriorityFullStopWinsOverSpace(t *testing.T) {
	// Scenario 7: "。" must win over " " because it appears earlier in
	// the separators list, so the first top-level piece is "aaa" and the
	// remainder starts with "。".
	s := newTestSplitter(t, Config{
		ChunkSize:    6,
		ChunkOverlap: 1,
		Separators:   []string{"\n", "。", " "},
	})
	got := s.split("aaa。bbb ccc")
	require.Equal(t, strings.Join(got, ""), "aaa。bbb ccc")
	require.Equal(t, "aaa", got[0])
	require.True(t, strings.HasPrefix(got[1], "。"))
}

func TestSplitRecursesUntilEverySplitFits(t *testing.T) {
	s := newTestSplitter(t, Config{
		ChunkSize:    8,
		ChunkOverlap: 2,
		Separators:   []string{"\n"},
	})
	input := "AAAAA\nBBBBB\nCCCCC"
	got := s.split(input)
	require.Equal(t, input, strings.Join(got, ""))
	for _, p := range got {
		require.LessOrEqualf(t, s.cfg.LenFunc(p), s.cfg.ChunkSize, "split %q exceeds chunk size", p)
	}
}

func TestSplitFallsBackToPerCharacter(t *testing.T) {
	s := newTestSplitter(t, Config{
		ChunkSize:    2,
		ChunkOverlap: 0,
		Separators:   []string{},
	})
	got := s.split("abcdef")
	require.Equal(t, "abcdef", strings.Join(got, ""))
	for _, p := range got {
		require.LessOrEqual(t, s.cfg.LenFunc(p), s.cfg.ChunkSize)
	}
}

func TestSplitOversizedIndivisibleUnitEmitsAsIs(t *testing.T) {
	// A LenFunc that always reports a huge size makes even a single rune
	// "oversized"; split must not recurse forever and must still emit
	// something (spec §7: oversized single split is emitted as-is).
	s := newTestSplitter(t, Config{
		ChunkSize:    5,
		ChunkOverlap: 1,
		Separators:   nil,
		LenFunc:      func(string) int { return 1000 },
	})
	got := s.split("x")
	require.Equal(t, []string{"x"}, got)
}
