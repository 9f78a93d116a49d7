package chunking

import (
	"sort"

	"github.com/sirupsen/logrus"
)

// protectedSpan is a matched region of text that must survive as exactly
// one element after the splice step: a LaTeX formula, a markdown image or
// link, a table row, or a fenced-code-block header line.
type protectedSpan struct {
	pos     int
	content string
}

// regexMatch is one raw (start, end) hit from a protected-pattern regexp,
// before overlap resolution.
type regexMatch struct {
	start, end int
}

// scanProtected finds every non-overlapping protected-pattern match in
// text, sorted by position ascending. When two matches start at the same
// position the longer one wins; a match at least ChunkSize long cannot
// possibly fit in any chunk and is dropped with a warning rather than
// accepted. Mirrors the reference _split_protected (its
// itertools.accumulate/fold idiom reimplemented as an explicit loop).
func (s *Splitter) scanProtected(text string) []protectedSpan {
	var matches []regexMatch
	for _, re := range s.protectedRe {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			matches = append(matches, regexMatch{loc[0], loc[1]})
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		a, b := matches[i], matches[j]
		if a.start != b.start {
			return a.start < b.start
		}
		return (a.end - a.start) > (b.end - b.start)
	})

	res := make([]protectedSpan, 0, len(matches))
	furthestEnd := -1
	for _, m := range matches {
		skip := m.start < furthestEnd
		if m.end > furthestEnd {
			furthestEnd = m.end
		}
		if skip {
			continue
		}
		length := m.end - m.start
		if length >= s.cfg.ChunkSize {
			s.logger.WithFields(logrus.Fields{
				"start":  m.start,
				"end":    m.end,
				"length": length,
			}).Warn("chunking: protected span ignored, exceeds chunk size")
		} else {
			res = append(res, protectedSpan{pos: m.start, content: text[m.start:m.end]})
		}
	}
	return res
}
