package ocr

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
)

// PaddleBackend calls out to a PaddleOCR HTTP serving endpoint. The
// reference ocr/paddle.py instead loads PaddleOCR in-process (CPU-only,
// with AVX instruction-set detection); no such Go SDK exists anywhere in
// the retrieval pack, so the PaddleOCR service's own HTTP serving
// interface is used instead, matching the HTTP-client shape already used
// by RemoteDocParser.
type PaddleBackend struct {
	Endpoint string
	Client   *http.Client
}

type paddlePredictRequest struct {
	Image string `json:"image"`
}

type paddleOCRResult struct {
	Text string `json:"text"`
}

type paddlePredictResponse struct {
	Results []paddleOCRResult `json:"results"`
}

func (b PaddleBackend) Recognize(ctx context.Context, imageBytes []byte) (string, error) {
	client := b.Client
	if client == nil {
		client = http.DefaultClient
	}

	payload, err := json.Marshal(paddlePredictRequest{
		Image: base64.StdEncoding.EncodeToString(imageBytes),
	})
	if err != nil {
		return "", fmt.Errorf("encode paddleocr request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.Endpoint+"/predict", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build paddleocr request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("call paddleocr at %s: %w", b.Endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("paddleocr at %s returned status %d", b.Endpoint, resp.StatusCode)
	}

	var parsed paddlePredictResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode paddleocr response: %w", err)
	}

	var text string
	for i, r := range parsed.Results {
		if i > 0 {
			text += "\n"
		}
		text += r.Text
	}
	return text, nil
}

var _ Backend = PaddleBackend{}
