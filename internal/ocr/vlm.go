package ocr

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

const defaultVLMPrompt = "Extract all body text from this document image as markdown. " +
	"Ignore headers and footers. Represent tables as HTML. Represent formulas as LaTeX. " +
	"Preserve reading order."

// VLMBackend calls an OpenAI-compatible vision chat model, grounded on
// ocr/vlm.py's VLMOCRBackend (base64-encode the image, send it alongside
// a fixed extraction prompt, return the model's text). Chat completion
// usage follows the teacher's CreateChatCompletion call shape
// (pkg/categorizer/llm_categorizer.go); the vision-specific MultiContent
// image part is go-openai's documented API for this call, not present
// verbatim anywhere in the retrieval pack.
type VLMBackend struct {
	Client *openai.Client
	Model  string
	Prompt string
}

func (b VLMBackend) Recognize(ctx context.Context, imageBytes []byte) (string, error) {
	if b.Client == nil {
		return "", fmt.Errorf("vlm ocr backend: client not configured")
	}

	prompt := b.Prompt
	if prompt == "" {
		prompt = defaultVLMPrompt
	}

	b64 := base64.StdEncoding.EncodeToString(imageBytes)
	dataURL := fmt.Sprintf("data:image/png;base64,%s", b64)

	resp, err := b.Client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       b.Model,
		Temperature: 0,
		MaxTokens:   5000,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{
						Type:     openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{URL: dataURL},
					},
					{
						Type: openai.ChatMessagePartTypeText,
						Text: prompt,
					},
				},
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("vlm ocr chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("vlm ocr chat completion returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}

var _ Backend = VLMBackend{}
