package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

// Document represents one ingested unit of input before chunking: the raw
// parsed text plus whatever image sidecar a parser extracted alongside it.
type Document struct {
	ID          int64             `db:"id"`
	SourceName  string            `db:"source_name"`
	Title       string            `db:"title"`
	Body        string            `db:"body"`
	ContentHash string            `db:"content_hash"`
	ContentType string            `db:"content_type"`
	Images      map[string]string `db:"-"`
	Metadata    json.RawMessage   `db:"metadata"`
	CreatedAt   time.Time         `db:"created_at"`
}

// ChunkRecord is the persisted form of a chunking.Chunk: the byte offsets
// and text produced by the chunker, scoped to the document it came from.
type ChunkRecord struct {
	ID         uuid.UUID `db:"id"`
	DocumentID int64     `db:"document_id"`
	Seq        int       `db:"seq"`
	Start      int       `db:"start_offset"`
	End        int       `db:"end_offset"`
	Text       string    `db:"text"`
	CreatedAt  time.Time `db:"created_at"`
}

// EmbeddingEntry is one chunk's vector, as stored in the vector store.
type EmbeddingEntry struct {
	ID         uuid.UUID       `db:"id"`
	DocumentID int64           `db:"document_id"`
	ChunkText  string          `db:"chunk_text"`
	Start      int             `db:"start_offset"`
	End        int             `db:"end_offset"`
	Vector     pgvector.Vector `db:"vector"`
	Metadata   json.RawMessage `db:"metadata"`
	CreatedAt  time.Time       `db:"created_at"`
}

// SearchResult is one hit from a similarity search over chunk embeddings.
type SearchResult struct {
	ID             uuid.UUID `db:"id"`
	DocumentID     int64     `db:"document_id"`
	ChunkText      string    `db:"chunk_text"`
	RelevanceScore float64   `db:"relevance_score"`
}
