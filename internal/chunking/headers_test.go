package chunking

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHeaderTrackerEmptyInitially(t *testing.T) {
	h := NewHeaderTracker()
	require.Equal(t, "", h.Headers())
}

func TestHeaderTrackerPushesNestedHeadings(t *testing.T) {
	h := NewHeaderTracker()
	h.Update("# H1\ntext1\n")
	require.Equal(t, "# H1\n", h.Headers())

	h.Update("## H2\ntext2\n")
	require.Equal(t, "# H1\n## H2\n", h.Headers())
}

func TestHeaderTrackerPopsOnSameOrShallowerLevel(t *testing.T) {
	h := NewHeaderTracker()
	h.Update("# H1\n## H2\n### H3\n")
	require.Equal(t, "# H1\n## H2\n### H3\n", h.Headers())

	// A new H2 pops the existing H2 and H3 (level >= 2), keeping H1.
	h.Update("## H2b\n")
	require.Equal(t, "# H1\n## H2b\n", h.Headers())

	// A new H1 pops everything.
	h.Update("# H1b\n")
	require.Equal(t, "# H1b\n", h.Headers())
}

func TestHeaderTrackerIgnoresNonHeadingLines(t *testing.T) {
	h := NewHeaderTracker()
	h.Update("just some text\nmore text without hashes\n")
	require.Equal(t, "", h.Headers())
}

func TestHeaderTrackerRequiresWhitespaceAfterHashes(t *testing.T) {
	h := NewHeaderTracker()
	h.Update("#no-space-is-not-a-heading\n")
	require.Equal(t, "", h.Headers())
}
