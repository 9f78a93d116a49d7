// Package tasks defines asynq task type constants and their payloads,
// grounded on the teacher's internal/tasks/tasks.go.
package tasks

import (
	"docreader/internal/models"
)

const (
	// TypeParseAndChunk parses a document and runs it through the chunking
	// core, persisting the resulting chunks and their embeddings.
	TypeParseAndChunk = models.TaskTypeParseAndChunk
	// TypeOCRRecognize extracts text from a single image pulled out of a
	// parsed document.
	TypeOCRRecognize = models.TaskTypeOCRRecognize
)

// ParseAndChunkPayload is the JSON payload for TypeParseAndChunk.
type ParseAndChunkPayload struct {
	DocumentID  int64  `json:"document_id"`
	SourceName  string `json:"source_name"`
	ContentType string `json:"content_type"`
	StorageKey  string `json:"storage_key"`
}

// OCRRecognizePayload is the JSON payload for TypeOCRRecognize.
type OCRRecognizePayload struct {
	DocumentID int64  `json:"document_id"`
	ImageRef   string `json:"image_ref"`
	StorageKey string `json:"storage_key"`
	Backend    string `json:"backend"`
}
