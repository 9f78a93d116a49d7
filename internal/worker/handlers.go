package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/sirupsen/logrus"

	"docreader/internal/models"
	"docreader/internal/tasks"
)

// HandleParseAndChunk parses a stored document, splits it into chunks via
// the chunking core, embeds each chunk, and persists the embeddings.
func HandleParseAndChunk(deps Deps) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload tasks.ParseAndChunkPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return fmt.Errorf("unmarshal parse-and-chunk payload: %w", err)
		}

		logger := deps.Logger
		if logger == nil {
			logger = logrus.StandardLogger()
		}
		logger = logger.WithFields(logrus.Fields{
			"document_id": payload.DocumentID,
			"source_name": payload.SourceName,
		})

		r, err := deps.Storage.Download(ctx, payload.StorageKey)
		if err != nil {
			return fmt.Errorf("download document %s: %w", payload.StorageKey, err)
		}
		defer r.Close()

		result, err := deps.Parser.Parse(ctx, r)
		if err != nil {
			return fmt.Errorf("parse document %s: %w", payload.StorageKey, err)
		}
		if result.Text == "" {
			return fmt.Errorf("parse document %s: %w", payload.StorageKey, models.ErrEmptyDocument)
		}

		chunks := deps.Splitter.SplitText(result.Text)
		logger.WithField("chunk_count", len(chunks)).Info("document split into chunks")

		texts := make([]string, len(chunks))
		for i, c := range chunks {
			texts[i] = c.Text
		}

		vectors, err := deps.Embedder.GenerateEmbeddings(ctx, texts)
		if err != nil {
			return fmt.Errorf("embed chunks for document %d: %w", payload.DocumentID, err)
		}
		if len(vectors) != len(chunks) {
			return fmt.Errorf("embed chunks for document %d: got %d vectors for %d chunks",
				payload.DocumentID, len(vectors), len(chunks))
		}

		for i, c := range chunks {
			entry := &models.EmbeddingEntry{
				ID:         uuid.New(),
				DocumentID: payload.DocumentID,
				ChunkText:  c.Text,
				Start:      c.Start,
				End:        c.End,
				Vector:     vectors[i],
			}
			if err := deps.Vectors.AddEmbedding(ctx, entry); err != nil {
				return fmt.Errorf("store embedding %d/%d for document %d: %w", i+1, len(chunks), payload.DocumentID, err)
			}
		}

		return nil
	}
}

// HandleOCRRecognize extracts text from a single image pulled out of a
// parsed document and logs the length of the recognized text. The text
// itself is not stored, returned, or folded back into the document.
func HandleOCRRecognize(deps Deps) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload tasks.OCRRecognizePayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return fmt.Errorf("unmarshal ocr-recognize payload: %w", err)
		}

		r, err := deps.Storage.Download(ctx, payload.StorageKey)
		if err != nil {
			return fmt.Errorf("download image %s: %w", payload.StorageKey, err)
		}
		defer r.Close()

		buf, err := io.ReadAll(r)
		if err != nil {
			return fmt.Errorf("read image %s: %w", payload.StorageKey, err)
		}

		backend, err := deps.OCR.Get(payload.Backend)
		if err != nil {
			return fmt.Errorf("resolve ocr backend for document %d: %w", payload.DocumentID, err)
		}

		text, err := backend.Recognize(ctx, buf)
		if err != nil {
			return fmt.Errorf("ocr recognize image %s: %w", payload.ImageRef, err)
		}

		logger := deps.Logger
		if logger == nil {
			logger = logrus.StandardLogger()
		}
		logger.WithFields(logrus.Fields{
			"document_id": payload.DocumentID,
			"image_ref":   payload.ImageRef,
			"text_len":    len(text),
		}).Info("ocr recognition complete")

		return nil
	}
}
