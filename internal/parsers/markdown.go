package parsers

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownParser returns the markdown source itself (trimmed of leading
// and trailing whitespace) as the text, and walks the goldmark AST only to
// build a sidecar map of image destinations keyed "image-0", "image-1", ...
// in document order; grounded on markdown_parser.py and
// markdown_image_util.py. The markup is not stripped, so heading structure
// stays in the returned text: the chunking core's own header
// tracker (internal/chunking/headers.go) is the one place heading
// structure gets interpreted, matching §9's choice to keep that
// regex/line-scan based rather than AST based.
type MarkdownParser struct{}

func (MarkdownParser) Parse(_ context.Context, r io.Reader) (Result, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return Result{}, err
	}

	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(src))

	images := map[string]string{}
	imgIndex := 0
	err = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if img, ok := n.(*ast.Image); ok {
			ref := fmt.Sprintf("image-%d", imgIndex)
			imgIndex++
			images[ref] = string(img.Destination)
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return Result{}, fmt.Errorf("walk markdown ast: %w", err)
	}

	return Result{Text: string(bytes.TrimSpace(src)), Images: images}, nil
}

var _ Parser = MarkdownParser{}
