package parsers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// WebParser fetches a URL and extracts its readable text, grounded on
// web_parser.py's StdWebParser but using a plain HTTP GET plus goquery
// instead of a browser-driven scrape (turtacn-kubestack-ai's crawler
// package shows this goquery.NewDocumentFromReader/doc.Find/.Remove
// idiom for stripping chrome before extracting content).
type WebParser struct {
	Client *http.Client
}

func (p WebParser) Parse(ctx context.Context, r io.Reader) (Result, error) {
	urlBytes, err := io.ReadAll(r)
	if err != nil {
		return Result{}, err
	}
	url := strings.TrimSpace(string(urlBytes))

	client := p.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Result{}, fmt.Errorf("build request for %s: %w", url, err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return Result{}, fmt.Errorf("fetch %s: status %d", url, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return Result{}, fmt.Errorf("parse html from %s: %w", url, err)
	}

	doc.Find("nav, footer, script, style, aside, form, noscript").Remove()

	main := doc.Find("article, main").First()
	if main.Length() == 0 {
		main = doc.Find("body").First()
	}

	text := strings.TrimSpace(main.Text())
	return Result{Text: text}, nil
}

var _ Parser = WebParser{}
