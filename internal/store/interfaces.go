package store

import (
	"context"

	"docreader/internal/models"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/pgvector/pgvector-go"
)

// ProviderStatus reports whether an embedding provider is currently usable.
type ProviderStatus int

const (
	ProviderStatusUnknown ProviderStatus = iota
	ProviderStatusActive
	ProviderStatusInactive
	ProviderStatusDisabled
)

// JobClient enqueues background jobs, adapted from the teacher's
// store.JobClient but trimmed to the two task types this module runs.
type JobClient interface {
	Enqueue(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
	Close() error
}

// VectorStore persists and searches chunk embeddings.
type VectorStore interface {
	AddEmbedding(ctx context.Context, entry *models.EmbeddingEntry) error
	GetEmbedding(ctx context.Context, id uuid.UUID) (*models.EmbeddingEntry, error)
	DeleteEmbeddingsByDocumentID(ctx context.Context, documentID int64) error
	SimilaritySearch(ctx context.Context, queryVector pgvector.Vector, k int, filterMetadata map[string]interface{}) ([]models.SearchResult, error)

	Ping(ctx context.Context) error
	Close() error
}

// EmbeddingService turns text into vectors.
type EmbeddingService interface {
	GenerateEmbedding(ctx context.Context, text string) (pgvector.Vector, error)
	GenerateEmbeddings(ctx context.Context, texts []string) ([]pgvector.Vector, error)
	Dimension() int
	ModelName() string
	Name() string
	Status() ProviderStatus
}
