package chunking

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRestoreStripsOverlap(t *testing.T) {
	chunks := []Chunk{
		{Start: 0, End: 5, Text: "Hello"},
		{Start: 3, End: 10, Text: "loWorld"},
	}
	require.Equal(t, "HelloWorld", Restore(chunks))
}

func TestRestoreSingleChunk(t *testing.T) {
	chunks := []Chunk{{Start: 0, End: 13, Text: "Hello, world."}}
	require.Equal(t, "Hello, world.", Restore(chunks))
}

func TestRestoreEmpty(t *testing.T) {
	require.Equal(t, "", Restore(nil))
}

func TestRestoreAbsorbsSyntheticHeadingBytes(t *testing.T) {
	// A heading prefix glued to the front of a chunk's Text must not
	// appear in the restored output: only the trailing End-Start bytes
	// of Text are taken.
	chunks := []Chunk{
		{Start: 0, End: 5, Text: "# H\nHello"},
	}
	require.Equal(t, "Hello", Restore(chunks))
}
