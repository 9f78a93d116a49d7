// Package parsers turns raw document bytes into plain text for the chunking
// core, grounded on the reference docreader's parser package
// (original_source/docreader/parser/*.py).
package parsers

import (
	"context"
	"io"
)

// Result is what a Parser extracts from a document: text plus any images
// it pulled out along the way, keyed by a reference the parser assigns
// (MarkdownParser numbers them "image-0", "image-1", ...; RemoteDocParser
// keeps the keys the remote service returns).
type Result struct {
	Text   string
	Images map[string]string
}

// Parser turns a document's raw bytes into a Result. Implementations must
// not assume the reader is seekable.
type Parser interface {
	Parse(ctx context.Context, r io.Reader) (Result, error)
}

// TextParser passes input straight through as-is; the baseline parser for
// already-plain-text documents, grounded on text_parser.py.
type TextParser struct{}

func (TextParser) Parse(_ context.Context, r io.Reader) (Result, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return Result{}, err
	}
	return Result{Text: string(b)}, nil
}

var _ Parser = TextParser{}
