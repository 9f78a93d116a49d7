package lenfunc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWordCount(t *testing.T) {
	require.Equal(t, 3, WordCount("one two three"))
	require.Equal(t, 0, WordCount("   "))
	require.Equal(t, 0, WordCount(""))
}

func TestSentenceCountEmpty(t *testing.T) {
	require.Equal(t, 0, SentenceCount(""))
	require.Equal(t, 0, SentenceCount("   "))
}

func TestSentenceCountCountsMultipleSentences(t *testing.T) {
	n := SentenceCount("First sentence. Second sentence. Third one!")
	require.GreaterOrEqual(t, n, 2)
}

func TestSentenceOverlapEmptyInputs(t *testing.T) {
	require.Equal(t, "", SentenceOverlap("", 5))
	require.Equal(t, "", SentenceOverlap("some text", 0))
}

func TestSentenceOverlapReturnsTrailingContent(t *testing.T) {
	text := "First sentence. Second sentence. Third sentence."
	got := SentenceOverlap(text, 2)
	require.NotEmpty(t, got)
	require.Contains(t, text, got[:len(got)-1])
}
