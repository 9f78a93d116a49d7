package chunking

// joinProtected re-aligns splitter output so that every protected span
// appears as exactly one element, never fused with surrounding content.
// It preserves concatenation (I1) and insertion order, and guarantees
// every protected span is isolated (I2). Mirrors the reference _join; the
// reference relies on Python's out-of-range slices silently returning "",
// which tailSlice reproduces so a protected span spanning several splits
// (its tail already emitted) is skipped over cleanly rather than panicking.
func joinProtected(splits []string, protected []protectedSpan) []string {
	res := make([]string, 0, len(splits)+len(protected))

	j := 0
	point, start := 0, 0

	for _, split := range splits {
		end := start + len(split)

		cur := tailSlice(split, point-start)

		for j < len(protected) {
			p := protected[j]
			pEnd := p.pos + len(p.content)

			if end <= p.pos {
				break
			}

			if point < p.pos {
				localEnd := p.pos - point
				res = append(res, cur[:localEnd])
				cur = cur[localEnd:]
				point = p.pos
			}

			res = append(res, p.content)
			j++

			if point < pEnd {
				cur = tailSlice(cur, pEnd-point)
				point = pEnd
			}

			if cur == "" {
				break
			}
		}

		if cur != "" {
			res = append(res, cur)
			point = end
		}

		start = end
	}

	return res
}

// tailSlice returns s[n:], clamping n into [0, len(s)] so an out-of-range
// n (possible when a protected span's tail was already consumed by an
// earlier split) yields "" instead of panicking.
func tailSlice(s string, n int) string {
	if n <= 0 {
		return s
	}
	if n >= len(s) {
		return ""
	}
	return s[n:]
}
