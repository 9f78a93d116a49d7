package chunking

import "sort"

// Restore reconstructs the original input from an emitted chunk list,
// undoing the overlap (and any synthetic heading prefix) that SplitText
// copied into each chunk's Text. It is the inverse of the merge engine,
// used to validate lossless recovery (spec property P1/P7). Mirrors
// spec §4.6.
func Restore(chunks []Chunk) string {
	ordered := make([]Chunk, len(chunks))
	copy(ordered, chunks)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].End != ordered[j].End {
			return ordered[i].End < ordered[j].End
		}
		return ordered[i].Start < ordered[j].Start
	})

	var out []byte
	lastEnd := 0
	for _, c := range ordered {
		n := c.End - lastEnd
		out = append(out, tailBytes(c.Text, n)...)
		lastEnd = c.End
	}
	return string(out)
}

// tailBytes returns the last n bytes of s (0 or all of s if n is out of
// [0, len(s)]), the byte-oriented equivalent of the reference's
// text[last_end - end :] negative-index slice.
func tailBytes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if n >= len(s) {
		return s
	}
	return s[len(s)-n:]
}
