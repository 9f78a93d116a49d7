package chunking

// split produces a list of substrings of text, each measuring at most
// ChunkSize under LenFunc, preserving order and losslessly concatenating
// back to text. It tries each configured separator in priority order,
// adopting the first one that yields more than one piece, then recurses
// into any piece still over size; per-character splitting is the final
// fallback. Mirrors the reference _split.
func (s *Splitter) split(text string) []string {
	if s.cfg.LenFunc(text) <= s.cfg.ChunkSize {
		return []string{text}
	}

	var pieces []string
	for _, fn := range s.splitFns {
		pieces = fn(text)
		if len(pieces) > 1 {
			break
		}
	}

	if len(pieces) <= 1 {
		// Nothing split it further, not even per-character: a single
		// indivisible unit exceeds chunk size. Only possible with a
		// non-character-based LenFunc (spec §7, oversized single split).
		s.logger.WithField("size", s.cfg.LenFunc(text)).
			Error("chunking: oversized indivisible unit, emitting as-is")
		return []string{text}
	}

	out := make([]string, 0, len(pieces))
	for _, p := range pieces {
		if s.cfg.LenFunc(p) <= s.cfg.ChunkSize {
			out = append(out, p)
		} else {
			out = append(out, s.split(p)...)
		}
	}
	return out
}
