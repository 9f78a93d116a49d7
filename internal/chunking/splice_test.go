package chunking

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestJoinProtectedNoSpans(t *testing.T) {
	splits := []string{"ab", "cd", "ef"}
	got := joinProtected(splits, nil)
	require.Equal(t, splits, got)
}

func TestJoinProtectedIsolatesSpanWithinOneSplit(t *testing.T) {
	// "abcdef", protected span "cd" fully inside the first split "abcd".
	splits := []string{"abcd", "ef"}
	protected := []protectedSpan{{pos: 2, content: "cd"}}
	got := joinProtected(splits, protected)
	require.Equal(t, []string{"ab", "cd", "ef"}, got)
	require.Equal(t, "abcdef", strings.Join(got, ""))
}

func TestJoinProtectedSpanCrossesSplitBoundary(t *testing.T) {
	// "abcdef", protected span "bc" straddles the boundary between "ab"
	// and "cd".
	splits := []string{"ab", "cd", "ef"}
	protected := []protectedSpan{{pos: 1, content: "bc"}}
	got := joinProtected(splits, protected)
	require.Equal(t, []string{"a", "bc", "d", "ef"}, got)
	require.Equal(t, "abcdef", strings.Join(got, ""))
}

func TestJoinProtectedSpanCrossesMultipleSplits(t *testing.T) {
	// "abcdefgh", protected span "bcdefg" straddles three splits.
	splits := []string{"ab", "cd", "ef", "gh"}
	protected := []protectedSpan{{pos: 1, content: "bcdefg"}}
	got := joinProtected(splits, protected)
	require.Equal(t, []string{"a", "bcdefg", "h"}, got)
	require.Equal(t, "abcdefgh", strings.Join(got, ""))
}
