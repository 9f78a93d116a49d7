package config

import (
	"errors"
	"fmt"
)

// Validate checks required fields across the configuration, in the
// teacher's explicit-validation-method style (internal/config/validate.go).
func (c *Config) Validate() error {
	if c.Database.Vector.DSN == "" {
		return errors.New("database.vector.dsn is required")
	}

	if c.Embedding.Dimension <= 0 {
		return errors.New("embedding.dimension must be a positive integer")
	}
	if c.Embedding.Provider == "openai" && c.Embedding.OpenAIAPIKey == "" {
		return errors.New("embedding.openai_api_key is required when embedding.provider is openai")
	}

	if c.Chunking.MaxTokens <= 0 {
		return errors.New("chunking.max_tokens must be positive")
	}
	if c.Chunking.Overlap < 0 || c.Chunking.Overlap >= c.Chunking.MaxTokens {
		return fmt.Errorf("chunking.overlap (%d) must be non-negative and less than max_tokens (%d)", c.Chunking.Overlap, c.Chunking.MaxTokens)
	}
	switch c.Chunking.LenFunc {
	case "chars", "words", "sentences":
	default:
		return fmt.Errorf("chunking.len_function must be one of chars, words, sentences, got %q", c.Chunking.LenFunc)
	}

	switch c.OCR.Backend {
	case "dummy":
	case "paddle":
		if c.OCR.PaddleURL == "" {
			return errors.New("ocr.paddle_url is required when ocr.backend is paddle")
		}
	case "vlm":
		if c.OCR.VLMAPIKey == "" {
			return errors.New("ocr.vlm_api_key is required when ocr.backend is vlm")
		}
	default:
		return fmt.Errorf("ocr.backend must be one of dummy, paddle, vlm, got %q", c.OCR.Backend)
	}

	if c.Redis.Address == "" {
		return errors.New("redis.address is required")
	}

	if c.Worker.Concurrency <= 0 {
		return errors.New("worker.concurrency must be a positive integer")
	}
	if len(c.Worker.Queues) == 0 {
		return errors.New("worker.queues must define at least one queue")
	}
	for name, priority := range c.Worker.Queues {
		if name == "" {
			return errors.New("worker.queues contains an empty queue name")
		}
		if priority <= 0 {
			return fmt.Errorf("worker.queues priority for queue '%s' must be positive", name)
		}
	}

	return nil
}
