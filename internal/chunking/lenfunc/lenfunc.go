// Package lenfunc provides alternative chunking.LenFunc implementations for
// callers who want chunk_size measured in tokens or sentences rather than
// the core package's default Unicode character count.
package lenfunc

import (
	"strings"

	"github.com/neurosnap/sentences"
)

// WordCount estimates token count by splitting on whitespace. It is the
// cheapest non-character length function and needs no tokenizer model.
func WordCount(s string) int {
	return len(strings.Fields(s))
}

// defaultTokenizer builds a sentence tokenizer with the library's built-in
// default training data, same as the reference's
// sentences.NewSentenceTokenizer(nil) call.
func defaultTokenizer() *sentences.DefaultSentenceTokenizer {
	return sentences.NewSentenceTokenizer(nil)
}

// SentenceCount returns the number of sentences the default English
// tokenizer finds in s, falling back to 1 for any non-empty text the
// tokenizer can't segment. Useful as chunking.LenFunc when chunk_size is
// meant to bound "sentences per chunk" rather than characters or words.
func SentenceCount(s string) int {
	if strings.TrimSpace(s) == "" {
		return 0
	}
	t := defaultTokenizer()
	sents := t.Tokenize(s)
	if len(sents) == 0 {
		return 1
	}
	return len(sents)
}

// SentenceOverlap returns the trailing sentences of text whose combined
// word count approximates overlapWords. chunking.Config has no overlap-func
// hook of its own (the merge engine's trim is unit-agnostic by design, per
// spec.md §4.4), so this is exported standalone API for callers who want to
// derive their own continuation seed by sentence boundary rather than the
// core splitter's output. Mirrors the reference implementation's
// calculateSentenceOverlap.
func SentenceOverlap(text string, overlapWords int) string {
	if overlapWords <= 0 || text == "" {
		return ""
	}

	t := defaultTokenizer()
	sents := t.Tokenize(text)
	if len(sents) == 0 {
		words := strings.Fields(text)
		if overlapWords > len(words) {
			overlapWords = len(words)
		}
		if overlapWords <= 0 {
			return ""
		}
		return strings.Join(words[len(words)-overlapWords:], " ") + " "
	}

	var kept []string
	accumulated := 0
	for i := len(sents) - 1; i >= 0; i-- {
		sentenceText := strings.TrimSpace(sents[i].Text)
		if sentenceText == "" {
			continue
		}
		wc := WordCount(sentenceText)
		if accumulated+wc <= overlapWords {
			kept = append([]string{sentenceText}, kept...)
			accumulated += wc
			continue
		}
		if len(kept) == 0 {
			kept = append([]string{sentenceText}, kept...)
		}
		break
	}

	if len(kept) == 0 {
		return ""
	}
	return strings.Join(kept, " ") + " "
}
