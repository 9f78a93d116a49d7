package chunking

import "strings"

// splitFunc turns one string into an ordered, lossless sequence of pieces.
// Concatenating its output must reproduce the input exactly.
type splitFunc func(text string) []string

// splitBySeparator returns a splitFunc that splits on sep, keeping sep as
// the prefix of every piece after the first so the split is lossless.
// Mirrors split_text_keep_separator / split_by_sep in the reference
// implementation's utils/split.py.
func splitBySeparator(sep string) splitFunc {
	return func(text string) []string {
		if sep == "" {
			return splitByChar(text)
		}
		parts := strings.Split(text, sep)
		result := make([]string, 0, len(parts))
		for i, p := range parts {
			if i > 0 {
				p = sep + p
			}
			if p != "" {
				result = append(result, p)
			}
		}
		return result
	}
}

// splitByChar splits text into one-rune pieces, the last-resort fallback
// when no configured separator divides the text (reference: split_by_char).
// Splitting by rune rather than by byte keeps multi-byte UTF-8 characters
// atomic, matching Python's per-codepoint list(text).
func splitByChar(text string) []string {
	if text == "" {
		return nil
	}
	out := make([]string, 0, len(text))
	for _, r := range text {
		out = append(out, string(r))
	}
	return out
}
