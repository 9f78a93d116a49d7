package chunking

import "strings"

// merge greedily accumulates spliced splits into size- and overlap-bounded
// chunks, driving a fresh HeaderTracker and prepending the live heading
// prefix when room permits. Mirrors the reference _merge, including the
// heading-aware overlap trim spec §9 calls out as the specified variant:
// when a real content element rolls off the front of the buffer, the
// synthetic heading element now exposed at the front rolls off with it.
// The same heading-aware treatment extends to the final chunk: a stale
// synthetic heading left at the buffer's front is replaced rather than
// stacked under a freshly computed one.
func (s *Splitter) merge(splits []string) []Chunk {
	var chunks []Chunk
	var cur []element
	curLen := 0
	curStart := 0

	tracker := NewHeaderTracker()

	for _, split := range splits {
		end := curStart + len(split)
		splitLen := s.cfg.LenFunc(split)
		if splitLen > s.cfg.ChunkSize {
			s.logger.WithField("size", splitLen).
				Error("chunking: split larger than chunk size")
		}

		tracker.Update(split)
		headers := tracker.Headers()
		headersLen := s.cfg.LenFunc(headers)

		if headersLen > s.cfg.ChunkSize {
			s.logger.WithField("size", headersLen).
				Error("chunking: heading prefix larger than chunk size")
			headers, headersLen = "", 0
		}

		if curLen+splitLen+headersLen > s.cfg.ChunkSize {
			if len(cur) > 0 {
				chunks = append(chunks, finalize(cur))
			}

			for len(cur) > 0 && (curLen > s.cfg.ChunkOverlap || curLen+splitLen+headersLen > s.cfg.ChunkSize) {
				front := cur[0]
				cur = cur[1:]
				curLen -= s.cfg.LenFunc(front.text)

				// Header-aware trim: the real content element just
				// dropped may have exposed a stale synthetic heading at
				// the new front; drop that too so it doesn't linger
				// after the content it annotated has rolled off.
				if !front.synthetic() && len(cur) > 0 && cur[0].synthetic() {
					stale := cur[0]
					cur = cur[1:]
					curLen -= s.cfg.LenFunc(stale.text)
				}
			}

			if headers != "" && splitLen+headersLen < s.cfg.ChunkSize && !strings.Contains(split, headers) {
				nextStart := curStart
				if len(cur) > 0 {
					nextStart = cur[0].start
				}
				cur = append([]element{{start: nextStart, end: nextStart, text: headers}}, cur...)
				curLen += headersLen
			}
		}

		cur = append(cur, element{start: curStart, end: end, text: split})
		curLen += splitLen
		curStart = end
	}

	if len(cur) == 0 {
		return chunks
	}

	headers := tracker.Headers()
	if headers != "" && curLen < s.cfg.ChunkSize {
		// A stale synthetic heading may already sit at the front from an
		// earlier trim that stopped short of popping it (cur_len dropped
		// under chunk_overlap before reaching it). Replace it rather than
		// stacking a second heading prefix in front of it.
		if len(cur) > 0 && cur[0].synthetic() {
			curLen -= s.cfg.LenFunc(cur[0].text)
			cur = cur[1:]
		}
		nextStart := curStart
		if len(cur) > 0 {
			nextStart = cur[0].start
		}
		cur = append([]element{{start: nextStart, end: nextStart, text: headers}}, cur...)
	}
	chunks = append(chunks, finalize(cur))

	return chunks
}

// finalize collapses an in-flight element buffer into one emitted Chunk:
// Start of the first element, End of the last, and the concatenation of
// every element's text (synthetic prefixes included).
func finalize(cur []element) Chunk {
	var sb strings.Builder
	for _, e := range cur {
		sb.WriteString(e.text)
	}
	return Chunk{Start: cur[0].start, End: cur[len(cur)-1].end, Text: sb.String()}
}
