package parsers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

// RemoteDocParser hands a document off to an external parsing service over
// HTTP, grounded on mineru_parser.py and markitdown_parser.py, both of
// which are themselves thin HTTP clients around a standalone parsing
// service rather than in-process parsing libraries. No third-party HTTP
// client library appears anywhere in the retrieval pack for this shape of
// call, so this uses net/http and mime/multipart directly.
type RemoteDocParser struct {
	Endpoint string
	Client   *http.Client
}

type remoteParseResponse struct {
	MarkdownContent string            `json:"md_content"`
	Images          map[string]string `json:"images"`
}

func (p RemoteDocParser) Parse(ctx context.Context, r io.Reader) (Result, error) {
	client := p.Client
	if client == nil {
		client = http.DefaultClient
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("files", "document")
	if err != nil {
		return Result{}, fmt.Errorf("build multipart body: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return Result{}, fmt.Errorf("write document to multipart body: %w", err)
	}
	if err := writer.Close(); err != nil {
		return Result{}, fmt.Errorf("close multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.Endpoint+"/file_parse", &body)
	if err != nil {
		return Result{}, fmt.Errorf("build remote parse request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := client.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("call remote parser at %s: %w", p.Endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return Result{}, fmt.Errorf("remote parser at %s returned status %d", p.Endpoint, resp.StatusCode)
	}

	var parsed remoteParseResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return Result{}, fmt.Errorf("decode remote parser response: %w", err)
	}

	return Result{Text: parsed.MarkdownContent, Images: parsed.Images}, nil
}

var _ Parser = RemoteDocParser{}
